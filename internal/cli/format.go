package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guimcabral/imobiliaria/internal/client"
	"github.com/guimcabral/imobiliaria/internal/registry"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printListing prints a single property with its states in text format.
func printListing(w io.Writer, l registry.Listing) {
	p := l.Property
	printf(w, "Property #%d\n", p.Code)
	printf(w, "  Address:  %s\n", p.Address)
	if p.PropertyType != nil {
		printf(w, "  Type:     %s\n", *p.PropertyType)
	}
	if p.Bedrooms != nil {
		printf(w, "  Beds:     %g\n", *p.Bedrooms)
	}
	if p.Bathrooms != nil {
		printf(w, "  Baths:    %g\n", *p.Bathrooms)
	}
	if p.Sqft != nil {
		printf(w, "  Sqft:     %d\n", *p.Sqft)
	}
	if p.YearBuilt != nil {
		printf(w, "  Built:    %d\n", *p.YearBuilt)
	}
	if p.Description != "" {
		printf(w, "  About:    %s\n", p.Description)
	}
	printf(w, "  Rent:     %s\n", l.Rental)
	printf(w, "  Sale:     %s\n", l.Sale)
}

// printListingTable prints listings as a formatted table.
func printListingTable(w io.Writer, listings []registry.Listing) error {
	if len(listings) == 0 {
		printf(w, "No properties found.\n")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "CODE\tADDRESS\tTYPE\tBED\tBATH\tRENT\tSALE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "----\t-------\t----\t---\t----\t----\t----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, l := range listings {
		p := l.Property
		ptype := "-"
		if p.PropertyType != nil {
			ptype = *p.PropertyType
		}
		beds := "-"
		if p.Bedrooms != nil {
			beds = fmt.Sprintf("%g", *p.Bedrooms)
		}
		baths := "-"
		if p.Bathrooms != nil {
			baths = fmt.Sprintf("%g", *p.Bathrooms)
		}

		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Code, truncate(p.Address, 40), ptype, beds, baths, l.Rental, l.Sale); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	printf(w, "\nTotal: %d properties\n", len(listings))
	return nil
}

// printClientTable prints clients as a formatted table.
func printClientTable(w io.Writer, clients []client.Client) error {
	if len(clients) == 0 {
		printf(w, "No clients registered.\n")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, c := range clients {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", c.ID, truncate(c.Name, 40)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	printf(w, "\nTotal: %d clients\n", len(clients))
	return nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
