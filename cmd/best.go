package cmd

import (
	"fmt"

	"font-catalog/core/catalog"

	"github.com/spf13/cobra"
)

var (
	bestWeight string
	bestStyle  string
	bestWidth  string
	bestItalic bool
)

// bestCmd represents the best command
var bestCmd = &cobra.Command{
	Use:   "best [family]",
	Short: "Resolve the best matching variant of a family",
	Long: `Resolves the variant of a family that best matches the given weight,
style and width criteria. Weight accepts numbers (1-1000) or names like
'bold'; width accepts numbers (1-9) or names like 'condensed'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var q catalog.MatchQuery

		if bestWeight != "" {
			w, err := catalog.ParseWeight(bestWeight)
			if err != nil {
				return err
			}
			q.Weight = w
		}
		if bestStyle != "" {
			s, err := catalog.ParseStyle(bestStyle)
			if err != nil {
				return err
			}
			q.Style = s
		}
		if bestWidth != "" {
			st, err := catalog.ParseStretch(bestWidth)
			if err != nil {
				return err
			}
			q.Stretch = st
		}
		q.Italic = bestItalic

		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		collection, err := loadCollection(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		fam, err := collection.FamilyByName(args[0])
		if err != nil {
			return err
		}
		v := fam.BestVariant(q)
		fmt.Println(v)
		fmt.Printf("file: %s\n", v.Filename())
		return nil
	},
}

func init() {
	bestCmd.Flags().StringVar(&bestWeight, "weight", "", "desired weight (number or name)")
	bestCmd.Flags().StringVar(&bestStyle, "style", "", "desired style (normal, italic, oblique)")
	bestCmd.Flags().StringVar(&bestWidth, "width", "", "desired width (number or name)")
	bestCmd.Flags().BoolVar(&bestItalic, "italic", false, "shorthand for --style italic")
	RootCmd.AddCommand(bestCmd)
}
