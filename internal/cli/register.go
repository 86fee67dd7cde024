package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guimcabral/imobiliaria/internal/client"
	"github.com/guimcabral/imobiliaria/internal/property"
)

func newRegisterPropertyCmd(a *app) *cobra.Command {
	var (
		ptype       string
		bedrooms    float64
		bathrooms   float64
		sqft        int64
		yearBuilt   int64
		description string
	)

	cmd := &cobra.Command{
		Use:   "register-property <code> <address>",
		Short: "Register a property",
		Long:  "Register a property under a unique code and address. New properties are neither for rent nor for sale.",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}

			p := property.Property{
				Code:        code,
				Address:     strings.Join(args[1:], " "),
				Description: description,
			}
			flags := cmd.Flags()
			if flags.Changed("type") {
				p.PropertyType = &ptype
			}
			if flags.Changed("bedrooms") {
				p.Bedrooms = &bedrooms
			}
			if flags.Changed("bathrooms") {
				p.Bathrooms = &bathrooms
			}
			if flags.Changed("sqft") {
				p.Sqft = &sqft
			}
			if flags.Changed("year") {
				p.YearBuilt = &yearBuilt
			}
			if err := p.Normalize().Validate(); err != nil {
				return err
			}

			if err := a.reg.RegisterProperty(a.emp, p); err != nil {
				return fmt.Errorf("registering property: %w", err)
			}
			return a.reportListing(cmd, code, "registered")
		}),
	}

	cmd.Flags().StringVar(&ptype, "type", "", "property type (apartment, house, ...)")
	cmd.Flags().Float64Var(&bedrooms, "bedrooms", 0, "number of bedrooms")
	cmd.Flags().Float64Var(&bathrooms, "bathrooms", 0, "number of bathrooms")
	cmd.Flags().Int64Var(&sqft, "sqft", 0, "living area")
	cmd.Flags().Int64Var(&yearBuilt, "year", 0, "year built")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")

	return cmd
}

func newRegisterClientCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register-client <id> <name>",
		Short: "Register a client",
		Long:  "Register a client under a unique tax id.",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			c := client.New(args[0], strings.Join(args[1:], " "))
			if err := c.Validate(); err != nil {
				return err
			}

			if err := a.reg.RegisterClient(a.emp, c.Name, c.ID); err != nil {
				return fmt.Errorf("registering client: %w", err)
			}

			c, err := a.reg.Client(c.ID)
			if err != nil {
				return err
			}
			if a.isJSON() {
				return printJSON(cmd.OutOrStdout(), c)
			}
			printf(cmd.OutOrStdout(), "Client %s (%s) registered.\n", c.ID, c.Name)
			return nil
		}),
	}
}

// reportListing prints the property's current state after a change.
func (a *app) reportListing(cmd *cobra.Command, code int64, verb string) error {
	l, err := a.reg.Lookup(code)
	if err != nil {
		return err
	}
	if a.isJSON() {
		return printJSON(cmd.OutOrStdout(), l)
	}
	printf(cmd.OutOrStdout(), "Property #%d %s.\n", code, verb)
	printListing(cmd.OutOrStdout(), l)
	return nil
}
