package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeCommand runs a command with the given args and captures stdout.
// HOME points at a temp dir so no user config is read.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithInput(t, nil, args...)
	return out, err
}

// executeWithInput runs a command reading from in and returns stdout and
// stderr separately. Logs go to stderr.
func executeWithInput(t *testing.T, in io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IMOB_AUTH_POLICY", "")
	t.Setenv("IMOB_SEED_FILE", "")
	t.Setenv("IMOB_EMPLOYEE", "")
	t.Setenv("IMOB_DEV_MODE", "")

	root := NewRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if in != nil {
		root.SetIn(in)
	}
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const testSeed = `
clients:
  - id: "111"
    name: Ana
  - id: "222"
    name: Bruno
properties:
  - code: 1
    address: Rua A, 10
    type: apartment
    bedrooms: 2
    rentable: true
  - code: 2
    address: Rua B, 20
    for_sale: true
    rented_by: "111"
  - code: 3
    address: Rua C, 30
`

func writeTestSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(testSeed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}

	for _, name := range []string{"config", "seed", "employee", "login"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != Version {
		t.Errorf("version output = %q, want %q", out, Version)
	}
}

func TestBadAuthPolicy(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "imob.yaml")
	if err := os.WriteFile(cfgPath, []byte("auth_policy: everyone\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := executeCommand(t, "list", "--config", cfgPath)
	if err == nil {
		t.Fatal("expected error for unknown auth policy")
	}
}

func TestMissingSeedFile(t *testing.T) {
	_, err := executeCommand(t, "list", "--seed", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
