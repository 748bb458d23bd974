package dataset

import "strings"

// DefaultLocation selects every record regardless of region.
const DefaultLocation = "Default Location"

type DiseaseStatus string

const (
	DiseaseNone     DiseaseStatus = "None"
	DiseaseMild     DiseaseStatus = "Mild"
	DiseaseModerate DiseaseStatus = "Moderate"
	DiseaseSevere   DiseaseStatus = "Severe"
)

// ParseDiseaseStatus accepts the four dataset values case-insensitively.
// An empty cell is read as None.
func ParseDiseaseStatus(s string) (DiseaseStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DiseaseNone, true
	case "mild":
		return DiseaseMild, true
	case "moderate":
		return DiseaseModerate, true
	case "severe":
		return DiseaseSevere, true
	}
	return "", false
}

// RawRecord is one sensor/crop observation row. Records are read-only once
// loaded into a Store.
type RawRecord struct {
	FarmID            string        `json:"farm_id"`
	Region            string        `json:"region"`
	CropType          string        `json:"crop_type"`
	SoilMoisturePct   float64       `json:"soil_moisture_pct"`
	SoilPH            float64       `json:"soil_ph"`
	TemperatureC      float64       `json:"temperature_c"`
	RainfallMM        float64       `json:"rainfall_mm"`
	HumidityPct       float64       `json:"humidity_pct"`
	SunlightHours     float64       `json:"sunlight_hours"`
	IrrigationType    string        `json:"irrigation_type"`
	FertilizerType    string        `json:"fertilizer_type"`
	PesticideUsageML  float64       `json:"pesticide_usage_ml"`
	SowingDate        string        `json:"sowing_date"`
	HarvestDate       string        `json:"harvest_date"`
	TotalDays         int           `json:"total_days"`
	YieldKgPerHectare float64       `json:"yield_kg_per_hectare"`
	SensorID          string        `json:"sensor_id"`
	Timestamp         string        `json:"timestamp"`
	Latitude          float64       `json:"latitude"`
	Longitude         float64       `json:"longitude"`
	NDVIIndex         float64       `json:"ndvi_index"`
	CropDiseaseStatus DiseaseStatus `json:"crop_disease_status"`
}

// Diseased reports whether the record carries any disease status other than None.
func (r RawRecord) Diseased() bool { return r.CropDiseaseStatus != DiseaseNone }
