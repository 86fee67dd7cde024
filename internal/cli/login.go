package cli

import (
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Mark the session as authenticated",
		Long:  "Marks the current employee session as authenticated. No credentials are checked.",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, args []string) error {
			a.emp.Login()
			printf(cmd.OutOrStdout(), "✓ Logged in as %s.\n", a.emp.Name)
			return nil
		}),
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Mark the session as not authenticated",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, args []string) error {
			if !a.emp.IsAuthenticated() {
				printf(cmd.OutOrStdout(), "Not logged in.\n")
				return nil
			}
			a.emp.Logout()
			printf(cmd.OutOrStdout(), "✓ Logged out.\n")
			return nil
		}),
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the session and registry status",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, args []string) error {
			status := map[string]any{
				"employee":      a.emp.Name,
				"session":       a.emp.SessionID,
				"authenticated": a.emp.IsAuthenticated(),
				"auth_policy":   a.reg.Policy().String(),
				"properties":    a.reg.Len(),
				"clients":       a.reg.ClientCount(),
			}
			if a.isJSON() {
				return printJSON(cmd.OutOrStdout(), status)
			}

			w := cmd.OutOrStdout()
			printf(w, "Employee:   %s\n", a.emp.Name)
			printf(w, "Session:    %s\n", a.emp.SessionID)
			if a.emp.IsAuthenticated() {
				printf(w, "Status:     ✓ logged in\n")
			} else {
				printf(w, "Status:     ✗ logged out\n")
			}
			printf(w, "Policy:     %s\n", a.reg.Policy())
			printf(w, "Properties: %d\n", a.reg.Len())
			printf(w, "Clients:    %d\n", a.reg.ClientCount())
			return nil
		}),
	}
}
