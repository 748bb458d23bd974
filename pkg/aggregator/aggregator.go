// Package aggregator rolls dataset records up into the weather, soil,
// yield, pest and recommendation shapes the dashboard serves.
//
// Windows are positional: "the first n records" in source order. The
// dataset is not re-sorted by timestamp before windowing.
package aggregator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dataset"
)

const (
	DefaultWindow = 10
	DefaultLimit  = 10

	// temperature_min/max are mean -/+ this spread, not a measured range.
	tempSpread = 5.0

	lowPH       = 6.0
	lowYield    = 3000.0
	lowMoisture = 20.0
)

// Bounds of the synthetic placeholder fields. The dataset carries no wind,
// pressure, nutrient or affected-area measurements.
var (
	WindSpeedRange     = Range{5, 15}
	PressureRange      = Range{1000, 1050}
	NitrogenRange      = Range{15, 35}
	PhosphorusRange    = Range{10, 25}
	PotassiumRange     = Range{20, 40}
	OrganicMatterRange = Range{2, 4}
	AffectedAreaRange  = Range{10, 40}
)

// Range is a half-open interval [Min, Max).
type Range struct{ Min, Max float64 }

func (r Range) Contains(v float64) bool { return v >= r.Min && v < r.Max }

// SyntheticFields lists output fields that are generated, not measured.
func SyntheticFields() map[string][]string {
	return map[string][]string{
		"weather_data":      {"wind_speed", "pressure"},
		"soil_data":         {"nitrogen_level", "phosphorus_level", "potassium_level", "organic_matter"},
		"pest_disease_data": {"affected_area"},
	}
}

type Aggregator struct {
	store *dataset.Store
	rnd   *source
	now   func() time.Time
}

type Option func(*Aggregator)

// WithSeed makes every synthetic field reproducible.
func WithSeed(seed uint64) Option {
	return func(a *Aggregator) { a.rnd = newSource(seed) }
}

func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// New builds an Aggregator over store. Without WithSeed the synthetic
// fields are seeded from the wall clock.
func New(store *dataset.Store, opts ...Option) *Aggregator {
	if store == nil {
		store = dataset.Empty()
	}
	a := &Aggregator{store: store, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	if a.rnd == nil {
		a.rnd = newSource(uint64(time.Now().UnixNano()))
	}
	return a
}

func (a *Aggregator) Store() *dataset.Store { return a.store }

func (a *Aggregator) today() string { return a.now().Format(time.DateOnly) }

// WeatherSnapshot averages temperature, humidity and rainfall over the
// first window records of location. It returns nil when the location has
// no records.
func (a *Aggregator) WeatherSnapshot(location string, window int) *entities.WeatherData {
	recs := a.store.ForLocation(location)
	if len(recs) == 0 {
		return nil
	}
	return a.weatherOver(resolveLocation(location), a.today(), head(recs, orDefault(window, DefaultWindow)))
}

// WeatherHistory returns one snapshot per day, newest first. Day i covers
// the window starting at record offset i, clamped to stay inside the
// location's records.
func (a *Aggregator) WeatherHistory(location string, days, window int) []entities.WeatherData {
	recs := a.store.ForLocation(location)
	out := []entities.WeatherData{}
	if len(recs) == 0 || days <= 0 {
		return out
	}
	window = orDefault(window, DefaultWindow)
	if window > len(recs) {
		window = len(recs)
	}
	loc := resolveLocation(location)
	base := a.now()
	for i := 0; i < days; i++ {
		start := i % (len(recs) - window + 1)
		date := base.AddDate(0, 0, -i).Format(time.DateOnly)
		out = append(out, *a.weatherOver(loc, date, recs[start:start+window]))
	}
	return out
}

func (a *Aggregator) weatherOver(location, date string, recs []dataset.RawRecord) *entities.WeatherData {
	var temp, hum, rain float64
	for _, r := range recs {
		temp += r.TemperatureC
		hum += r.HumidityPct
		rain += r.RainfallMM
	}
	n := float64(len(recs))
	mean := round(temp/n, 1)
	return &entities.WeatherData{
		Location:       location,
		Date:           date,
		TemperatureMin: round(mean-tempSpread, 1),
		TemperatureMax: round(mean+tempSpread, 1),
		Humidity:       round(hum/n, 1),
		Rainfall:       round(rain/n, 1),
		WindSpeed:      round(a.rnd.between(WindSpeedRange), 1),
		Pressure:       round(a.rnd.between(PressureRange), 1),
	}
}

// SoilSnapshot averages pH and moisture over the first window records of
// location. Nutrient levels and organic matter are synthetic.
func (a *Aggregator) SoilSnapshot(location string, window int) *entities.SoilData {
	recs := a.store.ForLocation(location)
	if len(recs) == 0 {
		return nil
	}
	recs = head(recs, orDefault(window, DefaultWindow))
	var ph, moist float64
	for _, r := range recs {
		ph += r.SoilPH
		moist += r.SoilMoisturePct
	}
	n := float64(len(recs))
	return &entities.SoilData{
		Location:        resolveLocation(location),
		PHLevel:         round(ph/n, 2),
		NitrogenLevel:   round(a.rnd.between(NitrogenRange), 1),
		PhosphorusLevel: round(a.rnd.between(PhosphorusRange), 1),
		PotassiumLevel:  round(a.rnd.between(PotassiumRange), 1),
		OrganicMatter:   round(a.rnd.between(OrganicMatterRange), 1),
		MoistureContent: round(moist/n, 1),
		TestDate:        a.today(),
	}
}

// YieldRecords projects the first limit records without aggregation.
func (a *Aggregator) YieldRecords(limit int) []entities.CropData {
	recs := a.store.Window(orDefault(limit, DefaultLimit))
	out := make([]entities.CropData, 0, len(recs))
	for _, r := range recs {
		out = append(out, toCropData(r))
	}
	return out
}

func toCropData(r dataset.RawRecord) entities.CropData {
	cd := entities.CropData{
		SensorID:          r.SensorID,
		SunlightHours:     r.SunlightHours,
		IrrigationType:    r.IrrigationType,
		FertilizerType:    r.FertilizerType,
		PesticideAmount:   r.PesticideUsageML,
		SowingDate:        r.SowingDate,
		HarvestDate:       r.HarvestDate,
		TotalDays:         r.TotalDays,
		YieldKgPerPlot:    r.YieldKgPerHectare,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		NDVIIndex:         r.NDVIIndex,
		CropDiseaseStatus: string(r.CropDiseaseStatus),
	}
	if ts, ok := parseTimestamp(r.Timestamp); ok {
		cd.Timestamp = ts
	}
	return cd
}

type pestProfile struct {
	pest     string
	disease  *string
	severity string
}

func strPtr(s string) *string { return &s }

// Mild alerts carry severity "Low", not "Mild". Dashboard filters key on
// these labels.
var pestProfiles = map[dataset.DiseaseStatus]pestProfile{
	dataset.DiseaseSevere:   {pest: "Fall Armyworm", disease: strPtr("Rust"), severity: "Severe"},
	dataset.DiseaseModerate: {pest: "Aphids", disease: strPtr("Blight"), severity: "Moderate"},
	dataset.DiseaseMild:     {pest: "Mild Infection", severity: "Low"},
}

var treatments = map[dataset.DiseaseStatus]string{
	dataset.DiseaseSevere:   "Apply fungicide immediately and consider crop rotation. Monitor closely for spread.",
	dataset.DiseaseModerate: "Apply appropriate treatment and improve air circulation. Monitor for improvement.",
	dataset.DiseaseMild:     "Apply preventive measures and maintain proper field hygiene.",
}

const defaultTreatment = "Monitor crop health and apply preventive measures."

// TreatmentFor returns the canned treatment text for a disease status.
func TreatmentFor(status dataset.DiseaseStatus) string {
	if t, ok := treatments[status]; ok {
		return t
	}
	return defaultTreatment
}

// PestAlerts maps diseased records (status != None), in source order, to
// pest alerts. At most limit alerts are returned.
func (a *Aggregator) PestAlerts(limit int) []entities.PestDisease {
	limit = orDefault(limit, DefaultLimit)
	out := []entities.PestDisease{}
	for _, r := range a.store.Records() {
		if len(out) >= limit {
			break
		}
		if !r.Diseased() {
			continue
		}
		p := pestProfiles[r.CropDiseaseStatus]
		out = append(out, entities.PestDisease{
			CropType:             r.CropType,
			PestName:             strPtr(p.pest),
			DiseaseName:          p.disease,
			Severity:             p.severity,
			AffectedArea:         round(a.rnd.between(AffectedAreaRange), 1),
			TreatmentRecommended: TreatmentFor(r.CropDiseaseStatus),
			DateReported:         r.Timestamp,
			Location:             r.Region,
		})
	}
	return out
}

type statRule struct {
	matches func(dataset.RawRecord) bool
	build   func(count int) entities.AdvisoryRecommendation
}

// statRules fire in declaration order: soil, fertilizer, pest, irrigation.
var statRules = []statRule{
	{
		matches: func(r dataset.RawRecord) bool { return r.SoilPH < lowPH },
		build: func(n int) entities.AdvisoryRecommendation {
			return entities.AdvisoryRecommendation{
				FarmerID:           "FARMER001",
				RecommendationType: "soil_management",
				Title:              "Soil pH Adjustment Needed",
				Description:        fmt.Sprintf("%d farms have low soil pH. Apply lime to increase soil pH for better nutrient availability.", n),
				Priority:           "high",
				Status:             entities.StatusPending,
			}
		},
	},
	{
		matches: func(r dataset.RawRecord) bool { return r.YieldKgPerHectare < lowYield },
		build: func(n int) entities.AdvisoryRecommendation {
			return entities.AdvisoryRecommendation{
				FarmerID:           "FARMER002",
				RecommendationType: "fertilizer",
				Title:              "Low Yield Alert",
				Description:        fmt.Sprintf("%d farms showing low yield. Consider increasing fertilizer application and improving irrigation.", n),
				Priority:           "medium",
				Status:             entities.StatusPending,
			}
		},
	},
	{
		matches: func(r dataset.RawRecord) bool { return r.Diseased() },
		build: func(n int) entities.AdvisoryRecommendation {
			return entities.AdvisoryRecommendation{
				FarmerID:           "FARMER003",
				RecommendationType: "pest_control",
				Title:              "Disease Management Required",
				Description:        fmt.Sprintf("%d farms affected by diseases. Implement proper pest control measures and crop rotation.", n),
				Priority:           "high",
				Status:             entities.StatusPending,
			}
		},
	},
	{
		matches: func(r dataset.RawRecord) bool { return r.SoilMoisturePct < lowMoisture },
		build: func(n int) entities.AdvisoryRecommendation {
			return entities.AdvisoryRecommendation{
				FarmerID:           "FARMER004",
				RecommendationType: "irrigation",
				Title:              "Irrigation Optimization",
				Description:        fmt.Sprintf("%d farms have low soil moisture. Increase irrigation frequency and improve water management.", n),
				Priority:           "medium",
				Status:             entities.StatusCompleted,
			}
		},
	},
}

// AdvisoryFromStats counts threshold crossings in the first window records
// and emits one recommendation per rule whose count is non-zero.
func (a *Aggregator) AdvisoryFromStats(window int) []entities.AdvisoryRecommendation {
	recs := a.store.Window(orDefault(window, DefaultWindow))
	out := []entities.AdvisoryRecommendation{}
	for _, rule := range statRules {
		n := 0
		for _, r := range recs {
			if rule.matches(r) {
				n++
			}
		}
		if n == 0 {
			continue
		}
		rec := rule.build(n)
		rec.CropType = "Mixed Crops"
		out = append(out, rec)
	}
	return out
}

func resolveLocation(location string) string {
	if strings.TrimSpace(location) == "" {
		return dataset.DefaultLocation
	}
	return location
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

func head(recs []dataset.RawRecord, n int) []dataset.RawRecord {
	if n < len(recs) {
		return recs[:n]
	}
	return recs
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.DateOnly, time.DateTime, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
