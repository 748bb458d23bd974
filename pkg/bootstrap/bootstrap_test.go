package bootstrap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/config"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dataset"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		CSVPath:        filepath.Join("..", "dataset", "testdata", "sample.csv"),
		WindowSize:     4,
		AdvisoryWindow: 6,
		ForecastDays:   9,
		PestLimit:      3,
		RandSeed:       11,
		Rules:          config.RulesConfig{PHLow: 5.5},
	}
}

func TestNew_LoadsDataset(t *testing.T) {
	rt := New(testConfig())
	require.NotNil(t, rt.Aggregator)
	assert.Equal(t, 5, rt.Store.Len())
	assert.Same(t, rt.Store, rt.Aggregator.Store())
	assert.InDelta(t, 5.5, rt.Engine.Thresholds().PHLow, 1e-9)
	assert.InDelta(t, 7.5, rt.Engine.Thresholds().PHHigh, 1e-9)
}

func TestNew_MissingDatasetIsEmpty(t *testing.T) {
	cfg := testConfig()
	cfg.CSVPath = filepath.Join(t.TempDir(), "missing.csv")
	rt := New(cfg)
	assert.Zero(t, rt.Store.Len())
	assert.Nil(t, rt.Aggregator.WeatherSnapshot("", 10))
}

func TestFromStore_SeededIsReproducible(t *testing.T) {
	recs := []dataset.RawRecord{{SensorID: "S1", Region: "West", SoilPH: 6.5, TemperatureC: 20}}
	a := FromStore(testConfig(), dataset.NewStore(recs)).Aggregator.SoilSnapshot("", 1)
	b := FromStore(testConfig(), dataset.NewStore(recs)).Aggregator.SoilSnapshot("", 1)
	assert.Equal(t, a.NitrogenLevel, b.NitrogenLevel)
	assert.Equal(t, a.PotassiumLevel, b.PotassiumLevel)
}

func TestOptionsFromConfig(t *testing.T) {
	rt := FromStore(testConfig(), dataset.Empty())

	so := rt.SeedOptions()
	assert.Equal(t, 9, so.HistoryDays)
	assert.Equal(t, 4, so.WindowSize)
	assert.Equal(t, 3, so.PestLimit)
	assert.Equal(t, 6, so.AdvisoryWindow)

	ld := rt.LiveDefaults()
	assert.Equal(t, 4, ld.Window)
	assert.Equal(t, 6, ld.AdvisoryWindow)
	assert.Equal(t, 3, ld.PestLimit)
}
