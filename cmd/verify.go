package cmd

import (
	"encoding/json"
	"fmt"

	"font-catalog/core/database"
	"font-catalog/core/provider/fontdb"
	"font-catalog/feature/verify"
	"font-catalog/feature/verify/models"

	"github.com/spf13/cobra"
)

var syncFlag bool

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the font registry against the configured source",
	Long: `Scans the configured font source and reports faces that are missing
from the registry, gone from the source, or registered with stale axes.
With --sync, the registry is overwritten with the scan result first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logg, err := setup()
		if err != nil {
			return err
		}

		source, _, err := newProvider(cfg, logg)
		if err != nil {
			return err
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("registry database connection required: %w", err)
		}
		if err := fontdb.Migrate(db); err != nil {
			return fmt.Errorf("migrating font registry: %w", err)
		}

		svc := verify.NewService(source, db, logg)

		var report *models.Report
		if syncFlag {
			report, err = svc.Sync(ctx)
		} else {
			report, err = svc.Check(ctx)
		}
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&syncFlag, "sync", false, "overwrite the registry with a fresh scan before verifying")
	RootCmd.AddCommand(verifyCmd)
}
