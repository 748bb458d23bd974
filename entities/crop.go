package entities

import "time"

// CropData is the served projection of one dataset row (a yield record).
type CropData struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	SensorID          string    `gorm:"index;not null" json:"sensor_id"`
	SunlightHours     float64   `json:"sunlight_hours"`
	IrrigationType    string    `json:"irrigation_type"`
	FertilizerType    string    `json:"fertilizer_type"`
	PesticideAmount   float64   `json:"pesticide_amount"`
	SowingDate        string    `json:"sowing_date"`
	HarvestDate       string    `json:"harvest_date"`
	TotalDays         int       `json:"total_days"`
	YieldKgPerPlot    float64   `json:"yield_kg_per_plot"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	NDVIIndex         float64   `gorm:"column:ndvi_index" json:"ndvi_index"`
	CropDiseaseStatus string    `json:"crop_disease_status"`
	Timestamp         time.Time `gorm:"index;autoCreateTime" json:"timestamp"`
}

func (CropData) TableName() string { return "crop_data" }
