package cmd

import (
	"fmt"
	"strings"

	"font-catalog/core/catalog"

	"github.com/spf13/cobra"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query property=value ...",
	Short: "Find variants matching font properties",
	Long: `Finds every variant whose properties match all of the given filters.
Filters are property=value pairs, e.g. 'query full_name="Arial Bold"'.
Use 'query --list' to see the filterable property names.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listProperties, _ := cmd.Flags().GetBool("list"); listProperties {
			for _, name := range catalog.KnownPropertyNames() {
				fmt.Println(name)
			}
			return nil
		}

		filters := make(map[string]any, len(args))
		for _, arg := range args {
			key, val, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("invalid filter %q, expected property=value", arg)
			}
			filters[key] = val
		}

		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		collection, err := loadCollection(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		variants, err := collection.MatchingVariants(filters)
		if err != nil {
			return err
		}
		if len(variants) == 0 {
			fmt.Println("no matching variants")
			return nil
		}
		for _, v := range variants {
			fmt.Printf("%-32s %-24s %s\n", v.Family().Name(), v.Name(), v.Filename())
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().Bool("list", false, "list the filterable property names")
	RootCmd.AddCommand(queryCmd)
}
