// Package bootstrap builds the dataset, aggregator and rule engine from an
// AppConfig. The server and the CLI share it.
package bootstrap

import (
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/config"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/database"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/aggregator"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dataset"
	liveCtrlImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/live/controllerImp"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/metrics"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/rules"
)

type Runtime struct {
	Config     *config.AppConfig
	Store      *dataset.Store
	Aggregator *aggregator.Aggregator
	Engine     rules.RulesEngine
}

// New loads cfg.CSVPath. A missing or unreadable dataset yields an empty
// store so the API can still start.
func New(cfg *config.AppConfig) *Runtime {
	store := dataset.LoadOrEmpty(cfg.CSVPath)
	metrics.SetDataset(store.Len(), len(store.Rejected()))
	return FromStore(cfg, store)
}

func FromStore(cfg *config.AppConfig, store *dataset.Store) *Runtime {
	var opts []aggregator.Option
	if cfg.RandSeed != 0 {
		opts = append(opts, aggregator.WithSeed(cfg.RandSeed))
	}
	return &Runtime{
		Config:     cfg,
		Store:      store,
		Aggregator: aggregator.New(store, opts...),
		Engine:     rules.New(rules.WithThresholds(rules.ThresholdsFrom(cfg.Rules))),
	}
}

func (r *Runtime) SeedOptions() database.SeedOptions {
	return database.SeedOptions{
		HistoryDays:    r.Config.ForecastDays,
		WindowSize:     r.Config.WindowSize,
		PestLimit:      r.Config.PestLimit,
		AdvisoryWindow: r.Config.AdvisoryWindow,
	}
}

func (r *Runtime) LiveDefaults() liveCtrlImp.Defaults {
	return liveCtrlImp.Defaults{
		Window:         r.Config.WindowSize,
		AdvisoryWindow: r.Config.AdvisoryWindow,
		PestLimit:      r.Config.PestLimit,
	}
}
