package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	Employee   string `yaml:"employee,omitempty" json:"employee,omitempty"`
	AuthPolicy string `yaml:"auth_policy,omitempty" json:"auth_policy,omitempty"`
	SeedFile   string `yaml:"seed_file,omitempty" json:"seed_file,omitempty"`
	DevMode    bool   `yaml:"dev_mode,omitempty" json:"dev_mode,omitempty"`
}

const defaultEmployee = "employee"

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "imob", "config.yaml"), nil
}

// loadConfig reads the CLI config from path, or from the default location
// when path is empty. Returns a zero-value config if the default file
// doesn't exist; an explicit path must exist.
func loadConfig(path string) (CLIConfig, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = configPath()
		if err != nil {
			return CLIConfig{}, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to the default location.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// applyEnv overrides config values with IMOB_* environment variables.
func (c CLIConfig) applyEnv() (CLIConfig, error) {
	if v := os.Getenv("IMOB_EMPLOYEE"); v != "" {
		c.Employee = v
	}
	if v := os.Getenv("IMOB_AUTH_POLICY"); v != "" {
		c.AuthPolicy = v
	}
	if v := os.Getenv("IMOB_SEED_FILE"); v != "" {
		c.SeedFile = v
	}
	if v := os.Getenv("IMOB_DEV_MODE"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("parsing IMOB_DEV_MODE: %w", err)
		}
		c.DevMode = dev
	}
	return c, nil
}

// employeeName returns the configured employee name or the default.
func (c CLIConfig) employeeName() string {
	if c.Employee != "" {
		return c.Employee
	}
	return defaultEmployee
}
