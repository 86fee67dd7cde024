package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save the CLI configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, args []string) error {
				if a.isJSON() {
					return printJSON(cmd.OutOrStdout(), a.cfg)
				}
				data, err := yaml.Marshal(a.cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}),
		},
		&cobra.Command{
			Use:   "save",
			Short: "Save the effective configuration to ~/.config/imob/config.yaml",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, args []string) error {
				if err := saveConfig(a.cfg); err != nil {
					return err
				}
				path, err := configPath()
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "✓ Configuration saved to %s\n", path)
				return nil
			}),
		},
	)

	return cmd
}
