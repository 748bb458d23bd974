package main

import (
	"github.com/spf13/cobra"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/aggregator"
)

var (
	snapLocation string
	snapWindow   int
	snapDays     int
	snapLimit    int
	snapCropType string

	advisoryWindow int
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Print the weather snapshot, or --days of history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		agg := rt.Aggregator
		if snapDays > 0 {
			return printJSON(cmd.OutOrStdout(), agg.WeatherHistory(snapLocation, snapDays, snapWindow))
		}
		return printJSON(cmd.OutOrStdout(), agg.WeatherSnapshot(snapLocation, snapWindow))
	},
}

var soilCmd = &cobra.Command{
	Use:   "soil",
	Short: "Print the soil health snapshot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), rt.Aggregator.SoilSnapshot(snapLocation, snapWindow))
	},
}

var yieldCmd = &cobra.Command{
	Use:   "yield",
	Short: "Print yield records in dataset order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), rt.Aggregator.YieldRecords(snapLimit))
	},
}

var pestsCmd = &cobra.Command{
	Use:   "pests",
	Short: "Print pest and disease alerts for diseased records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), rt.Aggregator.PestAlerts(snapLimit))
	},
}

var advisoryCmd = &cobra.Command{
	Use:   "advisory",
	Short: "Print recommendations derived from dataset statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), rt.Aggregator.AdvisoryFromStats(advisoryWindow))
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Evaluate the advisory rules against the current snapshots",
	RunE: func(cmd *cobra.Command, _ []string) error {
		agg := rt.Aggregator
		res, err := rt.Engine.Evaluate(
			agg.WeatherSnapshot(snapLocation, snapWindow),
			agg.SoilSnapshot(snapLocation, snapWindow),
			snapCropType,
		)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	for _, c := range []*cobra.Command{weatherCmd, soilCmd, suggestCmd} {
		c.Flags().StringVar(&snapLocation, "location", "", `region to aggregate ("" = all records)`)
		c.Flags().IntVar(&snapWindow, "window", aggregator.DefaultWindow, "records to aggregate")
	}
	weatherCmd.Flags().IntVar(&snapDays, "days", 0, "print this many days of history instead of one snapshot")
	advisoryCmd.Flags().IntVar(&advisoryWindow, "window", 20, "records to derive statistics from")
	for _, c := range []*cobra.Command{yieldCmd, pestsCmd} {
		c.Flags().IntVar(&snapLimit, "limit", aggregator.DefaultLimit, "max rows")
	}
	suggestCmd.Flags().StringVar(&snapCropType, "crop-type", "", "crop type echoed in the result")

	rootCmd.AddCommand(weatherCmd, soilCmd, yieldCmd, pestsCmd, advisoryCmd, suggestCmd)
}
