// Package report renders a dashboard snapshot as an Excel workbook.
package report

import (
	"bytes"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dashboard"
)

const (
	SheetSummary         = "Summary"
	SheetForecast        = "Weather"
	SheetYield           = "Yield"
	SheetPests           = "Pests"
	SheetRecommendations = "Recommendations"
)

// Workbook writes one sheet per dashboard card.
func Workbook(d *dashboard.Dashboard) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, eris.Wrap(err, "report: rename sheet")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, eris.Wrap(err, "report: style")
	}

	w := &writer{f: f, header: bold}
	w.summary(d)
	w.table(SheetForecast,
		[]any{"Date", "Location", "Min °C", "Max °C", "Humidity %", "Rainfall mm", "Wind km/h", "Pressure hPa"},
		len(d.Forecast), func(i int) []any {
			r := d.Forecast[i]
			return []any{r.Date, r.Location, r.TemperatureMin, r.TemperatureMax, r.Humidity, r.Rainfall, r.WindSpeed, r.Pressure}
		})
	w.table(SheetYield,
		[]any{"Sensor", "Yield kg", "Disease", "Total days", "Irrigation", "Fertilizer", "NDVI", "Latitude", "Longitude"},
		len(d.Yield), func(i int) []any {
			r := d.Yield[i]
			return []any{r.SensorID, r.YieldKgPerPlot, r.CropDiseaseStatus, r.TotalDays, r.IrrigationType, r.FertilizerType, r.NDVIIndex, r.Latitude, r.Longitude}
		})
	w.table(SheetPests,
		[]any{"Crop", "Pest", "Disease", "Severity", "Affected %", "Treatment", "Reported", "Location"},
		len(d.Pests), func(i int) []any {
			r := d.Pests[i]
			return []any{r.CropType, deref(r.PestName), deref(r.DiseaseName), r.Severity, r.AffectedArea, r.TreatmentRecommended, r.DateReported, r.Location}
		})
	w.table(SheetRecommendations,
		[]any{"Farmer", "Crop", "Type", "Title", "Description", "Priority", "Status"},
		len(d.Recommendations), func(i int) []any {
			r := d.Recommendations[i]
			return []any{r.FarmerID, r.CropType, r.RecommendationType, r.Title, r.Description, r.Priority, r.Status}
		})
	if w.err != nil {
		return nil, w.err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, eris.Wrap(err, "report: write")
	}
	return buf, nil
}

// writer keeps the first excelize error and turns later calls into no-ops.
type writer struct {
	f      *excelize.File
	header int
	err    error
}

func (w *writer) row(sheet string, n int, values []any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		w.err = eris.Wrap(err, "report: cell name")
		return
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		w.err = eris.Wrapf(err, "report: %s row %d", sheet, n)
	}
}

func (w *writer) headerRow(sheet string, values []any) {
	w.row(sheet, 1, values)
	if w.err != nil {
		return
	}
	if err := w.f.SetRowStyle(sheet, 1, 1, w.header); err != nil {
		w.err = eris.Wrapf(err, "report: %s header style", sheet)
	}
}

func (w *writer) table(sheet string, header []any, n int, row func(int) []any) {
	if w.err != nil {
		return
	}
	if _, err := w.f.NewSheet(sheet); err != nil {
		w.err = eris.Wrapf(err, "report: new sheet %s", sheet)
		return
	}
	w.headerRow(sheet, header)
	for i := 0; i < n; i++ {
		w.row(sheet, i+2, row(i))
	}
}

func (w *writer) summary(d *dashboard.Dashboard) {
	s := d.Summary
	rows := [][]any{
		{"Location", d.Location},
		{"Generated at", d.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Soil pH status", s.PHStatus},
		{"Average yield (kg)", s.AverageYield},
		{"Diseased yield records", fmt.Sprintf("%d/%d", s.DiseaseCount, s.YieldRecords)},
		{"Severe alerts", s.SevereAlerts},
		{"Moderate alerts", s.ModerateAlerts},
		{"Total affected area", s.TotalAffectedArea},
		{"Pending recommendations", s.PendingRecommendations},
	}
	if d.Weather != nil {
		rows = append(rows,
			[]any{"Temperature (min/max)", fmt.Sprintf("%.1f / %.1f", d.Weather.TemperatureMin, d.Weather.TemperatureMax)},
			[]any{"Rainfall (mm)", d.Weather.Rainfall},
		)
	}
	if d.Soil != nil {
		rows = append(rows,
			[]any{"Soil pH", d.Soil.PHLevel},
			[]any{"Nitrogen / Phosphorus / Potassium", fmt.Sprintf("%.1f / %.1f / %.1f", d.Soil.NitrogenLevel, d.Soil.PhosphorusLevel, d.Soil.PotassiumLevel)},
		)
	}
	w.headerRow(SheetSummary, []any{"Metric", "Value"})
	for i, r := range rows {
		w.row(SheetSummary, i+2, r)
	}

	start := len(rows) + 3
	w.row(SheetSummary, start, []any{"Suggestion", "Priority", "Recommendation"})
	for i, sg := range d.Suggestions {
		w.row(SheetSummary, start+1+i, []any{sg.Title, string(sg.Priority), sg.Recommendation})
	}
	if w.err == nil {
		if err := w.f.SetColWidth(SheetSummary, "A", "C", 32); err != nil {
			w.err = eris.Wrap(err, "report: column width")
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
