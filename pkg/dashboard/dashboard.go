// Package dashboard assembles every card of the advisory dashboard into a
// single payload and derives the headline numbers the cards display.
package dashboard

import (
	"math"
	"time"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/rules"
)

type Dashboard struct {
	Location        string                            `json:"location"`
	Weather         *entities.WeatherData             `json:"weather"`
	Forecast        []entities.WeatherData            `json:"forecast"`
	Soil            *entities.SoilData                `json:"soil"`
	Yield           []entities.CropData               `json:"yield"`
	Pests           []entities.PestDisease            `json:"pests"`
	Recommendations []entities.AdvisoryRecommendation `json:"recommendations"`
	Suggestions     []rules.Suggestion                `json:"suggestions"`
	Summary         Summary                           `json:"summary"`
	GeneratedAt     time.Time                         `json:"generated_at"`
}

type Summary struct {
	PHStatus               string  `json:"ph_status,omitempty"`
	AverageYield           float64 `json:"average_yield"`
	YieldRecords           int     `json:"yield_records"`
	DiseaseCount           int     `json:"disease_count"`
	SevereAlerts           int     `json:"severe_alerts"`
	ModerateAlerts         int     `json:"moderate_alerts"`
	TotalAffectedArea      float64 `json:"total_affected_area"`
	PendingRecommendations int     `json:"pending_recommendations"`
}

// PHStatus labels a soil pH against the 6.0 to 7.5 optimal band.
func PHStatus(ph float64) string {
	switch {
	case ph < 6.0:
		return "Low"
	case ph > 7.5:
		return "High"
	}
	return "Optimal"
}

func Summarize(d *Dashboard) Summary {
	var s Summary
	if d.Soil != nil {
		s.PHStatus = PHStatus(d.Soil.PHLevel)
	}

	s.YieldRecords = len(d.Yield)
	var total float64
	for _, y := range d.Yield {
		total += y.YieldKgPerPlot
		if y.CropDiseaseStatus != "" && y.CropDiseaseStatus != "None" {
			s.DiseaseCount++
		}
	}
	if len(d.Yield) > 0 {
		s.AverageYield = math.Round(total/float64(len(d.Yield))*10) / 10
	}

	for _, p := range d.Pests {
		switch p.Severity {
		case "Severe":
			s.SevereAlerts++
		case "Moderate":
			s.ModerateAlerts++
		}
		s.TotalAffectedArea += p.AffectedArea
	}
	s.TotalAffectedArea = math.Round(s.TotalAffectedArea*10) / 10

	for _, r := range d.Recommendations {
		if r.Status == entities.StatusPending {
			s.PendingRecommendations++
		}
	}
	return s
}
