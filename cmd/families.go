package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// familiesCmd represents the families command
var familiesCmd = &cobra.Command{
	Use:   "families [name]",
	Short: "List font families or show one family's variants",
	Long: `Without arguments, lists every family in the catalog. With a family
name, shows each variant of that family with its axes and file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}

		collection, err := loadCollection(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}
		logg.Debug("Font catalog built", zap.Int("families", collection.Len()))

		if len(args) == 0 {
			for _, fam := range collection.Families() {
				fmt.Printf("%-40s %d variant(s)\n", fam.Name(), fam.Len())
			}
			return nil
		}

		fam, err := collection.FamilyByName(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", fam.Name())
		for _, v := range fam.Variants() {
			fmt.Printf("  %-24s weight=%-4d style=%-8s stretch=%d  %s\n",
				v.Name(), v.Weight(), v.Style(), v.Stretch(), v.Filename())
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(familiesCmd)
}
