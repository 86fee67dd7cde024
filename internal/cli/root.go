// Package cli defines the cobra command tree for imob.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/guimcabral/imobiliaria/internal/employee"
	"github.com/guimcabral/imobiliaria/internal/logging"
	"github.com/guimcabral/imobiliaria/internal/registry"
	"github.com/guimcabral/imobiliaria/internal/seed"
)

// app is the state shared by every command of one process: the in-memory
// registry and the employee session acting on it. The shell re-parses each
// line with a fresh command tree bound to the same app.
type app struct {
	flagFormat   string
	flagConfig   string
	flagSeed     string
	flagEmployee string
	flagLogin    bool

	cfg CLIConfig
	reg *registry.Registry
	emp *employee.Employee
}

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "imob",
		Short: "Run a real-estate agency's property registry",
		Long: "Register properties and clients, list properties for rent or sale, and rent, return or sell them. " +
			"State lives in memory: use 'imob shell' for a working session or --seed to preload data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&a.flagConfig, "config", "", "config file (default: ~/.config/imob/config.yaml)")
	root.PersistentFlags().StringVar(&a.flagSeed, "seed", "", "YAML file of clients and properties to load at startup")
	root.PersistentFlags().StringVar(&a.flagEmployee, "employee", "", "employee name for this session")
	root.PersistentFlags().BoolVar(&a.flagLogin, "login", false, "start the session logged in")

	root.AddCommand(
		newRegisterPropertyCmd(a),
		newRegisterClientCmd(a),
		newRentableCmd(a),
		newNotRentableCmd(a),
		newForSaleCmd(a),
		newNotForSaleCmd(a),
		newRentCmd(a),
		newReturnCmd(a),
		newSellCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newClientsCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newConfigCmd(a),
		newShellCmd(a),
		newVersionCmd(),
	)

	return root
}

// sessionFlags are read once, when the session starts.
var sessionFlags = []string{"config", "seed", "employee", "login"}

// init loads config, sets up logging and builds the registry on first use.
// Later calls (shell lines) reuse the existing session and reject the flags
// that would only have mattered at startup.
func (a *app) init(cmd *cobra.Command) error {
	if a.reg != nil {
		for _, name := range sessionFlags {
			if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
				return fmt.Errorf("--%s only applies when the session starts", name)
			}
		}
		return nil
	}

	cfg, err := loadConfig(a.flagConfig)
	if err != nil {
		return err
	}
	cfg, err = cfg.applyEnv()
	if err != nil {
		return err
	}
	if a.flagEmployee != "" {
		cfg.Employee = a.flagEmployee
	}
	if a.flagSeed != "" {
		cfg.SeedFile = a.flagSeed
	}

	logging.Setup(cfg.DevMode, cmd.ErrOrStderr())

	policy, err := registry.ParseAuthPolicy(cfg.AuthPolicy)
	if err != nil {
		return err
	}

	reg := registry.New(registry.WithAuthPolicy(policy))
	if cfg.SeedFile != "" {
		if err := applySeed(reg, cfg.SeedFile); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.reg = reg
	a.emp = employee.New(cfg.employeeName())
	if a.flagLogin {
		a.emp.Login()
	}

	slog.Debug("session started",
		"employee", a.emp.Name,
		"session", a.emp.SessionID,
		"auth_policy", policy.String(),
		"properties", reg.Len(),
		"clients", reg.ClientCount(),
	)
	return nil
}

// applySeed loads path into reg with a caller the registry's policy admits.
func applySeed(reg *registry.Registry, path string) error {
	f, err := seed.Load(path)
	if err != nil {
		return err
	}

	seeder := employee.New("seed")
	if reg.Policy() == registry.RequireAuthenticated {
		seeder.Login()
	}
	return f.Apply(reg, seeder)
}

// isJSON returns true if the --format flag is set to json.
func (a *app) isJSON() bool {
	return a.flagFormat == "json"
}

// run wraps a command body with command logging.
func run(fn logging.RunE) func(*cobra.Command, []string) error {
	return logging.Command(fn)
}

// parseCode parses a property code argument. The CLI only takes positive
// codes; the registry itself accepts any.
func parseCode(s string) (int64, error) {
	code, err := strconv.ParseInt(s, 10, 64)
	if err != nil || code <= 0 {
		return 0, fmt.Errorf("invalid property code: %s", s)
	}
	return code, nil
}

// printf writes formatted text to the command's output.
func printf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		slog.Warn("writing output", "error", err)
	}
}
