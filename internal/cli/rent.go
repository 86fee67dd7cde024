package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guimcabral/imobiliaria/internal/property"
)

func newRentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rent <code> <client-id>",
		Short: "Rent a property to a client",
		Long: "Assign a property to a client as tenant. The property does not have to be listed for rent; " +
			"an existing tenant is replaced. Check 'imob list --for-rent' first.",
		Args: cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			clientID := args[1]

			var previous property.RentalState
			if l, err := a.reg.Lookup(code); err == nil {
				previous = l.Rental
			}

			if err := a.reg.RentProperty(a.emp, code, clientID); err != nil {
				return fmt.Errorf("renting property: %w", err)
			}

			if !a.isJSON() {
				switch {
				case previous.Kind == property.KindRentedBy && previous.ClientID != clientID:
					printf(cmd.ErrOrStderr(), "warning: replaced tenant %s\n", previous.ClientID)
				case previous.Kind == property.KindUnavailable:
					printf(cmd.ErrOrStderr(), "warning: property #%d was not listed for rent\n", code)
				}
			}
			return a.reportListing(cmd, code, "rented to "+clientID)
		}),
	}
}

func newReturnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "return <code> <client-id>",
		Short: "Return a rented property",
		Long:  "End a client's rental. The property goes back on the rental list. Fails unless the client is the current tenant.",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			if err := a.reg.ReturnProperty(a.emp, code, args[1]); err != nil {
				return fmt.Errorf("returning property: %w", err)
			}
			return a.reportListing(cmd, code, "returned")
		}),
	}
}
