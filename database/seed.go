package database

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/aggregator"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dataset"
)

type SeedOptions struct {
	HistoryDays    int // weather rows per location
	WindowSize     int
	PestLimit      int
	AdvisoryWindow int
}

func DefaultSeedOptions() SeedOptions {
	return SeedOptions{HistoryDays: 30, WindowSize: 10, PestLimit: 20, AdvisoryWindow: 20}
}

// SeedCounts reports how many rows Seed inserted per table.
type SeedCounts struct {
	Crops      int `json:"crop_data"`
	Weather    int `json:"weather_data"`
	Soil       int `json:"soil_data"`
	Pests      int `json:"pest_disease_data"`
	Advisories int `json:"advisory_recommendations"`
}

// Seed replaces the contents of every table with rows derived from agg.
// It runs in one transaction: a failure leaves the previous rows intact.
func Seed(ctx context.Context, db *gorm.DB, agg *aggregator.Aggregator, opts SeedOptions) (SeedCounts, error) {
	def := DefaultSeedOptions()
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = def.HistoryDays
	}
	if opts.WindowSize <= 0 {
		opts.WindowSize = def.WindowSize
	}
	if opts.PestLimit <= 0 {
		opts.PestLimit = def.PestLimit
	}
	if opts.AdvisoryWindow <= 0 {
		opts.AdvisoryWindow = def.AdvisoryWindow
	}

	locations := append([]string{dataset.DefaultLocation}, agg.Store().Regions()...)

	crops := agg.YieldRecords(agg.Store().Len())
	var weather []entities.WeatherData
	var soil []entities.SoilData
	for _, loc := range locations {
		weather = append(weather, agg.WeatherHistory(loc, opts.HistoryDays, opts.WindowSize)...)
		if s := agg.SoilSnapshot(loc, opts.WindowSize); s != nil {
			soil = append(soil, *s)
		}
	}
	pests := agg.PestAlerts(opts.PestLimit)
	advisories := agg.AdvisoryFromStats(opts.AdvisoryWindow)

	start := time.Now()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range Models() {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return eris.Wrapf(err, "database: clear %T", m)
			}
		}
		if err := insert(tx, crops); err != nil {
			return err
		}
		if err := insert(tx, weather); err != nil {
			return err
		}
		if err := insert(tx, soil); err != nil {
			return err
		}
		if err := insert(tx, pests); err != nil {
			return err
		}
		return insert(tx, advisories)
	})
	if err != nil {
		return SeedCounts{}, eris.Wrap(err, "database: seed")
	}

	counts := SeedCounts{
		Crops:      len(crops),
		Weather:    len(weather),
		Soil:       len(soil),
		Pests:      len(pests),
		Advisories: len(advisories),
	}
	zap.L().Info("database seeded",
		zap.Int("crop_data", counts.Crops),
		zap.Int("weather_data", counts.Weather),
		zap.Int("soil_data", counts.Soil),
		zap.Int("pest_disease_data", counts.Pests),
		zap.Int("advisory_recommendations", counts.Advisories),
		zap.Duration("took", time.Since(start)),
	)
	return counts, nil
}

func insert[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(&rows, 100).Error; err != nil {
		var zero T
		return eris.Wrapf(err, "database: insert %T", zero)
	}
	return nil
}
