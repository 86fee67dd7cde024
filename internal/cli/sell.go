package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sell <code> <client-id>",
		Short: "Sell a property to a client",
		Long: "Sell a property listed for sale. It must be available for rent or rented by the buyer. " +
			"A sold property is removed from the registry.",
		Args: cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			clientID := args[1]

			l, err := a.reg.Lookup(code)
			if err != nil {
				return fmt.Errorf("selling property: %w", err)
			}
			if err := a.reg.SellProperty(a.emp, code, clientID); err != nil {
				return fmt.Errorf("selling property: %w", err)
			}

			if a.isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"code":    code,
					"address": l.Property.Address,
					"buyer":   clientID,
					"sold":    true,
				})
			}
			printf(cmd.OutOrStdout(), "Property #%d (%s) sold to %s.\n", code, l.Property.Address, clientID)
			return nil
		}),
	}
}
