// Package rules turns a weather snapshot and a soil snapshot into advisory
// suggestions.
package rules

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/config"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/metrics"
)

// ErrMissingInput is returned when either snapshot is absent.
var ErrMissingInput = eris.New("Weather or soil data not available")

type Category string

const (
	CategoryTemperature Category = "temperature"
	CategorySoil        Category = "soil"
	CategoryFertilizer  Category = "fertilizer"
	CategoryIrrigation  Category = "irrigation"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Suggestion struct {
	Category       Category `json:"type"`
	Priority       Priority `json:"priority"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// Result echoes the inputs next to the suggestions they produced.
type Result struct {
	Weather     *entities.WeatherData `json:"weather"`
	Soil        *entities.SoilData    `json:"soil"`
	Suggestions []Suggestion          `json:"suggestions"`
	CropType    string                `json:"crop_type,omitempty"`
	GeneratedAt time.Time             `json:"generated_at"`
}

type RulesEngine interface {
	Evaluate(weather *entities.WeatherData, soil *entities.SoilData, cropType string) (*Result, error)
	Thresholds() Thresholds
}

// Thresholds are the trigger points of the rule table. Comparisons are
// strict: a value equal to a threshold never fires.
type Thresholds struct {
	TemperatureMaxHigh float64 `json:"temperature_max_high"`
	PHLow              float64 `json:"ph_low"`
	PHHigh             float64 `json:"ph_high"`
	NitrogenLow        float64 `json:"nitrogen_low"`
	PhosphorusLow      float64 `json:"phosphorus_low"`
	PotassiumLow       float64 `json:"potassium_low"`
	RainfallHeavy      float64 `json:"rainfall_heavy"`
	RainfallLow        float64 `json:"rainfall_low"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		TemperatureMaxHigh: 35,
		PHLow:              6.0,
		PHHigh:             7.5,
		NitrogenLow:        20,
		PhosphorusLow:      15,
		PotassiumLow:       25,
		RainfallHeavy:      50,
		RainfallLow:        5,
	}
}

// ThresholdsFrom applies configured overrides on top of the defaults.
// Zero values keep the default.
func ThresholdsFrom(c config.RulesConfig) Thresholds {
	t := DefaultThresholds()
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&t.TemperatureMaxHigh, c.TemperatureMaxHigh)
	set(&t.PHLow, c.PHLow)
	set(&t.PHHigh, c.PHHigh)
	set(&t.NitrogenLow, c.NitrogenLow)
	set(&t.PhosphorusLow, c.PhosphorusLow)
	set(&t.PotassiumLow, c.PotassiumLow)
	set(&t.RainfallHeavy, c.RainfallHeavy)
	set(&t.RainfallLow, c.RainfallLow)
	return t
}

type rule struct {
	category       Category
	priority       Priority
	title          string
	recommendation string
	describe       func(Thresholds) string
	fires          func(Thresholds, *entities.WeatherData, *entities.SoilData) bool
}

func fixed(s string) func(Thresholds) string { return func(Thresholds) string { return s } }

// table is evaluated top to bottom and every matching rule contributes.
var table = []rule{
	{
		category: CategoryTemperature, priority: PriorityHigh,
		title: "High Temperature Alert",
		describe: func(t Thresholds) string {
			return fmt.Sprintf("Temperatures are above %g°C. Consider providing shade or adjusting irrigation timing.", t.TemperatureMaxHigh)
		},
		recommendation: "Water crops early morning or late evening to reduce heat stress.",
		fires: func(t Thresholds, w *entities.WeatherData, _ *entities.SoilData) bool {
			return w.TemperatureMax > t.TemperatureMaxHigh
		},
	},
	{
		category: CategorySoil, priority: PriorityMedium,
		title:          "Low Soil pH",
		describe:       fixed("Soil pH is below optimal range (6.0-7.0)."),
		recommendation: "Apply lime to increase soil pH for better nutrient availability.",
		fires: func(t Thresholds, _ *entities.WeatherData, s *entities.SoilData) bool {
			return s.PHLevel < t.PHLow
		},
	},
	{
		category: CategorySoil, priority: PriorityMedium,
		title:          "High Soil pH",
		describe:       fixed("Soil pH is above optimal range."),
		recommendation: "Apply sulfur or organic matter to lower soil pH.",
		fires: func(t Thresholds, _ *entities.WeatherData, s *entities.SoilData) bool {
			return s.PHLevel > t.PHHigh
		},
	},
	{
		category: CategoryFertilizer, priority: PriorityHigh,
		title:          "Low Nitrogen Level",
		describe:       fixed("Nitrogen levels are below recommended range."),
		recommendation: "Apply nitrogen-rich fertilizer or organic compost.",
		fires: func(t Thresholds, _ *entities.WeatherData, s *entities.SoilData) bool {
			return s.NitrogenLevel < t.NitrogenLow
		},
	},
	{
		category: CategoryFertilizer, priority: PriorityMedium,
		title:          "Low Phosphorus Level",
		describe:       fixed("Phosphorus levels are below recommended range."),
		recommendation: "Apply phosphorus-rich fertilizer for root development.",
		fires: func(t Thresholds, _ *entities.WeatherData, s *entities.SoilData) bool {
			return s.PhosphorusLevel < t.PhosphorusLow
		},
	},
	{
		category: CategoryFertilizer, priority: PriorityMedium,
		title:          "Low Potassium Level",
		describe:       fixed("Potassium levels are below recommended range."),
		recommendation: "Apply potassium-rich fertilizer for plant health and disease resistance.",
		fires: func(t Thresholds, _ *entities.WeatherData, s *entities.SoilData) bool {
			return s.PotassiumLevel < t.PotassiumLow
		},
	},
	{
		category: CategoryIrrigation, priority: PriorityLow,
		title:          "Heavy Rainfall Expected",
		describe:       fixed("Heavy rainfall is forecasted."),
		recommendation: "Ensure proper drainage and avoid over-irrigation.",
		fires: func(t Thresholds, w *entities.WeatherData, _ *entities.SoilData) bool {
			return w.Rainfall > t.RainfallHeavy
		},
	},
	{
		category: CategoryIrrigation, priority: PriorityHigh,
		title:          "Low Rainfall",
		describe:       fixed("Minimal rainfall expected."),
		recommendation: "Increase irrigation frequency to maintain soil moisture.",
		fires: func(t Thresholds, w *entities.WeatherData, _ *entities.SoilData) bool {
			return w.Rainfall < t.RainfallLow
		},
	},
}

type engine struct {
	th  Thresholds
	now func() time.Time
}

type Option func(*engine)

func WithThresholds(t Thresholds) Option { return func(e *engine) { e.th = t } }

func WithClock(now func() time.Time) Option { return func(e *engine) { e.now = now } }

func New(opts ...Option) RulesEngine {
	e := &engine{th: DefaultThresholds(), now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *engine) Thresholds() Thresholds { return e.th }

// Evaluate runs the whole table against the two snapshots. cropType is
// echoed in the result and does not affect which rules fire.
func (e *engine) Evaluate(weather *entities.WeatherData, soil *entities.SoilData, cropType string) (*Result, error) {
	if weather == nil || soil == nil {
		return nil, ErrMissingInput
	}
	out := make([]Suggestion, 0, len(table))
	for _, r := range table {
		if !r.fires(e.th, weather, soil) {
			continue
		}
		out = append(out, Suggestion{
			Category:       r.category,
			Priority:       r.priority,
			Title:          r.title,
			Description:    r.describe(e.th),
			Recommendation: r.recommendation,
		})
		metrics.SuggestionsTotal.WithLabelValues(string(r.category), string(r.priority)).Inc()
	}
	return &Result{
		Weather:     weather,
		Soil:        soil,
		Suggestions: out,
		CropType:    cropType,
		GeneratedAt: e.now().UTC(),
	}, nil
}
