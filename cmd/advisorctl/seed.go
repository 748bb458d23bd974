package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/database"
)

var seedDB string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the stored tables with rows derived from the dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(seedDB, func(db *gorm.DB) error {
			counts, err := database.Seed(cmd.Context(), db, rt.Aggregator, rt.SeedOptions())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), counts)
		})
	},
}

func withDB(path string, fn func(*gorm.DB) error) error {
	if path == "" {
		path = rt.Config.DBPath
	}
	db, err := database.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()
	return fn(db)
}

func init() {
	seedCmd.Flags().StringVar(&seedDB, "db", "", "sqlite path (default: db_path from config)")
	rootCmd.AddCommand(seedCmd)
}
