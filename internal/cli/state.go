package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guimcabral/imobiliaria/internal/registry"
)

// stateSetter is a registry operation that changes one property's state.
type stateSetter func(reg *registry.Registry, caller registry.Caller, code int64) error

func newStateCmd(a *app, use, short, verb string, set stateSetter) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <code>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			if err := set(a.reg, a.emp, code); err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			return a.reportListing(cmd, code, verb)
		}),
	}
}

func newRentableCmd(a *app) *cobra.Command {
	return newStateCmd(a, "rentable", "List a property for rent (vacates any tenant)", "listed for rent",
		(*registry.Registry).SetRentable)
}

func newNotRentableCmd(a *app) *cobra.Command {
	return newStateCmd(a, "not-rentable", "Withdraw a property from rent (vacates any tenant)", "withdrawn from rent",
		(*registry.Registry).SetNotRentable)
}

func newForSaleCmd(a *app) *cobra.Command {
	return newStateCmd(a, "for-sale", "List a property for sale", "listed for sale",
		(*registry.Registry).SetForSale)
}

func newNotForSaleCmd(a *app) *cobra.Command {
	return newStateCmd(a, "not-for-sale", "Withdraw a property from sale", "withdrawn from sale",
		(*registry.Registry).SetNotForSale)
}
