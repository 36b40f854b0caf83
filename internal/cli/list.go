package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zheny5/gopatterns/pkg/patterns/catalog"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered demos by family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			out := cmd.OutOrStdout()

			families := []catalog.Family{
				catalog.FamilyCreational,
				catalog.FamilyStructural,
				catalog.FamilyBehavioral,
			}
			for _, family := range families {
				if _, err := fmt.Fprintf(out, "%s:\n", family); err != nil {
					return err
				}
				for _, d := range cat.ByFamily(family) {
					if _, err := fmt.Fprintf(out, "  %s\n", d.Name); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
