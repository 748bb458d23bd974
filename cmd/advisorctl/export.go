package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/database"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dataset"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/report"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/router"
)

var (
	exportDB       string
	exportOut      string
	exportLocation string
	exportSeed     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dashboard for a location as an xlsx workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		loc := exportLocation
		if loc == "" {
			loc = dataset.DefaultLocation
		}
		return withDB(exportDB, func(db *gorm.DB) error {
			if exportSeed {
				if _, err := database.Seed(ctx, db, rt.Aggregator, rt.SeedOptions()); err != nil {
					return err
				}
			}
			d, err := router.NewServices(db, rt.Engine).Dashboard.Build(ctx, loc)
			if err != nil {
				return err
			}
			buf, err := report.Workbook(d)
			if err != nil {
				return err
			}
			if err := os.WriteFile(exportOut, buf.Bytes(), 0o644); err != nil {
				return eris.Wrapf(err, "export: write %s", exportOut)
			}
			zap.L().Info("dashboard exported", zap.String("path", exportOut), zap.String("location", loc))
			return printJSON(cmd.OutOrStdout(), map[string]any{"path": exportOut, "location": loc, "bytes": buf.Len()})
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDB, "db", "", "sqlite path (default: db_path from config)")
	exportCmd.Flags().StringVar(&exportOut, "out", "dashboard.xlsx", "output file")
	exportCmd.Flags().StringVar(&exportLocation, "location", "", "dashboard location")
	exportCmd.Flags().BoolVar(&exportSeed, "seed-db", false, "seed the database from the dataset first")
	rootCmd.AddCommand(exportCmd)
}
