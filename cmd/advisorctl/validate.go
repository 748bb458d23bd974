package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/aggregator"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dataset"
)

var validateStrict bool

type validateReport struct {
	Source          string              `json:"source"`
	Records         int                 `json:"records"`
	Rejected        []dataset.RowError  `json:"rejected"`
	Regions         []string            `json:"regions"`
	SyntheticFields map[string][]string `json:"synthetic_fields"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the dataset and list quarantined rows",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// LoadOrEmpty hides load errors; validate reports them.
		st, err := dataset.LoadFile(rt.Config.CSVPath)
		if err != nil {
			return err
		}
		rejected := st.Rejected()
		if rejected == nil {
			rejected = []dataset.RowError{}
		}
		if err := printJSON(cmd.OutOrStdout(), validateReport{
			Source:          st.Source(),
			Records:         st.Len(),
			Rejected:        rejected,
			Regions:         st.Regions(),
			SyntheticFields: aggregator.SyntheticFields(),
		}); err != nil {
			return err
		}
		if validateStrict && len(rejected) > 0 {
			return eris.Errorf("validate: %d rows rejected", len(rejected))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "exit non-zero when any row is rejected")
	rootCmd.AddCommand(validateCmd)
}
