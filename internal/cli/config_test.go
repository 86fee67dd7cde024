package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg := CLIConfig{
		Employee:   "Bia",
		AuthPolicy: "legacy-inverted",
		SeedFile:   "/tmp/seed.yaml",
		DevMode:    true,
	}

	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	path := filepath.Join(tmp, ".config", "imob", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not found: %v", err)
	}

	loaded, err := loadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg != (CLIConfig{}) {
		t.Error("expected zero-value config for missing file")
	}
}

func TestConfigLoadExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestConfigLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imob.yaml")
	if err := os.WriteFile(path, []byte("employee: Caio\ndev_mode: true\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Employee != "Caio" || !cfg.DevMode {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfigLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imob.yaml")
	if err := os.WriteFile(path, []byte("employee: [\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("IMOB_EMPLOYEE", "Dora")
	t.Setenv("IMOB_AUTH_POLICY", "legacy-inverted")
	t.Setenv("IMOB_SEED_FILE", "/srv/seed.yaml")
	t.Setenv("IMOB_DEV_MODE", "true")

	cfg, err := CLIConfig{Employee: "Bia"}.applyEnv()
	if err != nil {
		t.Fatalf("apply env: %v", err)
	}
	want := CLIConfig{
		Employee:   "Dora",
		AuthPolicy: "legacy-inverted",
		SeedFile:   "/srv/seed.yaml",
		DevMode:    true,
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestApplyEnvKeepsFileValues(t *testing.T) {
	t.Setenv("IMOB_EMPLOYEE", "")
	t.Setenv("IMOB_AUTH_POLICY", "")
	t.Setenv("IMOB_SEED_FILE", "")
	t.Setenv("IMOB_DEV_MODE", "")

	in := CLIConfig{Employee: "Bia", DevMode: true}
	cfg, err := in.applyEnv()
	if err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg != in {
		t.Errorf("cfg = %+v, want %+v", cfg, in)
	}
}

func TestApplyEnvBadDevMode(t *testing.T) {
	t.Setenv("IMOB_DEV_MODE", "sometimes")

	if _, err := (CLIConfig{}).applyEnv(); err == nil {
		t.Fatal("expected error for bad IMOB_DEV_MODE")
	}
}

func TestEmployeeNameDefault(t *testing.T) {
	if got := (CLIConfig{}).employeeName(); got != defaultEmployee {
		t.Errorf("employeeName = %q, want %q", got, defaultEmployee)
	}
	if got := (CLIConfig{Employee: "Bia"}).employeeName(); got != "Bia" {
		t.Errorf("employeeName = %q, want %q", got, "Bia")
	}
}
