package cli

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/spf13/cobra"

	"github.com/guimcabral/imobiliaria/internal/property"
	"github.com/guimcabral/imobiliaria/internal/registry"
)

func newListCmd(a *app) *cobra.Command {
	var forRent, forSale bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		Long:  "List all registered properties, or only those available for rent or for sale.",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, args []string) error {
			seq := a.reg.Properties()
			switch {
			case forRent && forSale:
				return errors.New("--for-rent and --for-sale are mutually exclusive")
			case forRent:
				seq = a.reg.AvailableForRent()
			case forSale:
				seq = a.reg.AvailableForSale()
			}

			listings, err := collectListings(a.reg, seq)
			if err != nil {
				return err
			}

			if a.isJSON() {
				return printJSON(cmd.OutOrStdout(), listings)
			}
			return printListingTable(cmd.OutOrStdout(), listings)
		}),
	}

	cmd.Flags().BoolVar(&forRent, "for-rent", false, "only properties available for rent")
	cmd.Flags().BoolVar(&forSale, "for-sale", false, "only properties listed for sale")

	return cmd
}

// collectListings pairs each property in seq with its current states.
func collectListings(reg *registry.Registry, seq iter.Seq[property.Property]) ([]registry.Listing, error) {
	listings := []registry.Listing{}
	for p := range seq {
		l, err := reg.Lookup(p.Code)
		if errors.Is(err, registry.ErrPropertyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("looking up property %d: %w", p.Code, err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show a property",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}

			l, err := a.reg.Lookup(code)
			if err != nil {
				return err
			}

			if a.isJSON() {
				return printJSON(cmd.OutOrStdout(), l)
			}
			printListing(cmd.OutOrStdout(), l)
			return nil
		}),
	}
}

func newClientsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List registered clients",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, args []string) error {
			clients := slices.Collect(a.reg.Clients())
			if a.isJSON() {
				if clients == nil {
					return printJSON(cmd.OutOrStdout(), []any{})
				}
				return printJSON(cmd.OutOrStdout(), clients)
			}
			return printClientTable(cmd.OutOrStdout(), clients)
		}),
	}
}
