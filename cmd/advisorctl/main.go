package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/config"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/bootstrap"
)

var (
	rootCSV  string
	rootSeed uint64

	rt *bootstrap.Runtime
)

var rootCmd = &cobra.Command{
	Use:   "advisorctl",
	Short: "Inspect the farm dataset and the advisories derived from it",
	Long: `Runs the aggregation and rule engine against the farm CSV without the API
server. Every command prints JSON to stdout.

Examples:
  advisorctl weather --location "North India"
  advisorctl suggest --crop-type Wheat
  advisorctl validate --csv data/farm.csv
  advisorctl seed --db crop_advisory.db
  advisorctl export --out dashboard.xlsx`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}
		if rootCSV != "" {
			cfg.CSVPath = rootCSV
		}
		if rootSeed != 0 {
			cfg.RandSeed = rootSeed
		}
		rt = bootstrap.New(cfg)
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootCSV, "csv", "", "dataset CSV (default: csv_path from config)")
	rootCmd.PersistentFlags().Uint64Var(&rootSeed, "seed", 0, "seed for synthetic fields (0 = config rand_seed)")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
