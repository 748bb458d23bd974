package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ErrMissingColumns is returned when the CSV header lacks a required column.
var ErrMissingColumns = eris.New("dataset: missing required columns")

// csvRow is the text form of one CSV line. Headers are lower-cased before
// matching, so NDVI_index and soil_pH map onto these tags.
type csvRow struct {
	FarmID            string `csv:"farm_id"`
	Region            string `csv:"region"`
	CropType          string `csv:"crop_type"`
	SoilMoisture      string `csv:"soil_moisture_%"`
	SoilPH            string `csv:"soil_ph"`
	Temperature       string `csv:"temperature_c"`
	Rainfall          string `csv:"rainfall_mm"`
	Humidity          string `csv:"humidity_%"`
	SunlightHours     string `csv:"sunlight_hours"`
	IrrigationType    string `csv:"irrigation_type"`
	FertilizerType    string `csv:"fertilizer_type"`
	PesticideUsage    string `csv:"pesticide_usage_ml"`
	SowingDate        string `csv:"sowing_date"`
	HarvestDate       string `csv:"harvest_date"`
	TotalDays         string `csv:"total_days"`
	YieldKgPerHectare string `csv:"yield_kg_per_hectare"`
	SensorID          string `csv:"sensor_id"`
	Timestamp         string `csv:"timestamp"`
	Latitude          string `csv:"latitude"`
	Longitude         string `csv:"longitude"`
	NDVIIndex         string `csv:"ndvi_index"`
	CropDiseaseStatus string `csv:"crop_disease_status"`
}

var requiredColumns = []string{
	"sensor_id", "soil_ph", "soil_moisture_%", "temperature_c",
	"rainfall_mm", "humidity_%", "yield_kg_per_hectare", "crop_disease_status",
}

// LoadFile reads a dataset CSV. Malformed rows are quarantined in
// Store.Rejected rather than failing the load.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	st, err := Load(f)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: load %s", path)
	}
	st.source = path
	return st, nil
}

// LoadOrEmpty loads path and degrades to an empty store on any failure.
func LoadOrEmpty(path string) *Store {
	st, err := LoadFile(path)
	if err != nil {
		zap.L().Warn("dataset unavailable, serving empty record set",
			zap.String("path", path),
			zap.Error(err),
		)
		return Empty()
	}
	zap.L().Info("dataset loaded",
		zap.String("path", path),
		zap.Int("records", st.Len()),
		zap.Int("rejected", len(st.rejected)),
	)
	return st
}

// Load decodes CSV from r.
func Load(r io.Reader) (*Store, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read header")
	}
	header := normalizeHeader(head)
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, eris.Wrapf(ErrMissingColumns, "need %s, found %v", strings.Join(missing, ", "), head)
	}

	dec, err := csvutil.NewDecoder(cr, header...)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: new decoder")
	}

	st := &Store{}
	for line := 2; ; line++ {
		var row csvRow
		if err := dec.Decode(&row); err != nil {
			if err == io.EOF {
				break
			}
			st.reject(line, err.Error())
			continue
		}
		rec, err := row.parse()
		if err != nil {
			st.reject(line, err.Error())
			continue
		}
		st.records = append(st.records, rec)
	}
	return st, nil
}

func (s *Store) reject(line int, reason string) {
	s.rejected = append(s.rejected, RowError{Line: line, Reason: reason})
	zap.L().Warn("dataset row quarantined", zap.Int("line", line), zap.String("reason", reason))
}

func normalizeHeader(head []string) []string {
	out := make([]string, len(head))
	for i, h := range head {
		h = strings.TrimPrefix(h, "\uFEFF")
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

func missingColumns(header []string) []string {
	have := make(map[string]struct{}, len(header))
	for _, h := range header {
		have[h] = struct{}{}
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := have[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// fieldParser keeps the first conversion failure of a row.
type fieldParser struct{ err error }

func (p *fieldParser) float(name, v string, required bool) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		if required && p.err == nil {
			p.err = fmt.Errorf("%s: empty value", name)
		}
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: invalid number %q", name, v)
	}
	return f
}

func (p *fieldParser) int(name, v string) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// total_days is sometimes exported as 122.0
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil {
			if p.err == nil {
				p.err = fmt.Errorf("%s: invalid integer %q", name, v)
			}
			return 0
		}
		n = int(f)
	}
	return n
}

func (p *fieldParser) date(name, v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if _, err := time.Parse(time.DateOnly, v); err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: invalid date %q", name, v)
	}
	return v
}

func (row csvRow) parse() (RawRecord, error) {
	sensor := strings.TrimSpace(row.SensorID)
	if sensor == "" {
		return RawRecord{}, fmt.Errorf("sensor_id: empty value")
	}
	status, ok := ParseDiseaseStatus(row.CropDiseaseStatus)
	if !ok {
		return RawRecord{}, fmt.Errorf("crop_disease_status: unknown value %q", row.CropDiseaseStatus)
	}

	var p fieldParser
	rec := RawRecord{
		FarmID:            strings.TrimSpace(row.FarmID),
		Region:            strings.TrimSpace(row.Region),
		CropType:          strings.TrimSpace(row.CropType),
		SoilMoisturePct:   p.float("soil_moisture_%", row.SoilMoisture, true),
		SoilPH:            p.float("soil_pH", row.SoilPH, true),
		TemperatureC:      p.float("temperature_C", row.Temperature, true),
		RainfallMM:        p.float("rainfall_mm", row.Rainfall, true),
		HumidityPct:       p.float("humidity_%", row.Humidity, true),
		SunlightHours:     p.float("sunlight_hours", row.SunlightHours, false),
		IrrigationType:    strings.TrimSpace(row.IrrigationType),
		FertilizerType:    strings.TrimSpace(row.FertilizerType),
		PesticideUsageML:  p.float("pesticide_usage_ml", row.PesticideUsage, false),
		SowingDate:        p.date("sowing_date", row.SowingDate),
		HarvestDate:       p.date("harvest_date", row.HarvestDate),
		TotalDays:         p.int("total_days", row.TotalDays),
		YieldKgPerHectare: p.float("yield_kg_per_hectare", row.YieldKgPerHectare, true),
		SensorID:          sensor,
		Timestamp:         strings.TrimSpace(row.Timestamp),
		Latitude:          p.float("latitude", row.Latitude, false),
		Longitude:         p.float("longitude", row.Longitude, false),
		NDVIIndex:         p.float("NDVI_index", row.NDVIIndex, false),
		CropDiseaseStatus: status,
	}
	if p.err != nil {
		return RawRecord{}, p.err
	}
	if rec.SoilPH < 0 || rec.SoilPH > 14 {
		return RawRecord{}, fmt.Errorf("soil_pH: out of range %v", rec.SoilPH)
	}
	return rec, nil
}
