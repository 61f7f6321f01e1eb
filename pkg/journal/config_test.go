package journal

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"mealog.dev/pkg/env"
	"mealog.dev/pkg/testutil"
	"mealog.dev/pkg/ui"
)

func TestDefaultConfigPath(t *testing.T) {
	testutil.Setenv(t, env.XDG_CONFIG_HOME, "/xdg")
	if got, want := DefaultConfigPath(), filepath.Join("/xdg", "mealog", "config.yaml"); got != want {
		t.Errorf("DefaultConfigPath -> %q, want %q", got, want)
	}

	testutil.Setenv(t, env.XDG_CONFIG_HOME, "")
	testutil.Setenv(t, env.HOME, "/home/user")
	if got, want := DefaultConfigPath(), filepath.Join("/home/user", ".config", "mealog", "config.yaml"); got != want {
		t.Errorf("DefaultConfigPath -> %q, want %q", got, want)
	}
}

func TestLoadConfig_NoFileGivesDefaults(t *testing.T) {
	testutil.Setenv(t, env.XDG_CONFIG_HOME, testutil.TempDir(t))

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig -> %v, want nil", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadConfig -> %v, want defaults", cfg)
	}
}

func TestLoadConfig_MissingExplicitFileIsError(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "no-such-config.yaml")
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("LoadConfig(%q) -> nil error, want non-nil", path)
	}
}

func TestLoadConfig_File(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"config.yaml": testutil.Dedent(`
		maxheight: 10
		theme:
		  error: yellow
		keys:
		  quit: Ctrl-Q
		`)})

	cfg, err := LoadConfig("config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig -> %v, want nil", err)
	}
	if cfg.MaxHeight != 10 {
		t.Errorf("MaxHeight -> %d, want 10", cfg.MaxHeight)
	}
	if got, want := ui.T("x", cfg.Theme.Error), ui.T("x", ui.FgYellow); !reflect.DeepEqual(got, want) {
		t.Errorf("Theme.Error applies as %v, want %v", got, want)
	}
	if got, want := cfg.Keys.Quit, ui.K('Q', ui.Ctrl); got != want {
		t.Errorf("Keys.Quit -> %v, want %v", got, want)
	}
	// Fields not in the file keep their defaults.
	if got, want := cfg.Keys.Submit, ui.K(ui.Enter); got != want {
		t.Errorf("Keys.Submit -> %v, want %v", got, want)
	}
	if got, want := ui.T("x", cfg.Theme.Prompt), ui.T("x", ui.Bold); !reflect.DeepEqual(got, want) {
		t.Errorf("Theme.Prompt applies as %v, want %v", got, want)
	}
}

func TestLoadConfig_EmptyFileGivesDefaults(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"config.yaml": ""})

	cfg, err := LoadConfig("config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig -> %v, want nil", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadConfig -> %v, want defaults", cfg)
	}
}

func TestLoadConfig_UnknownFieldIsError(t *testing.T) {
	testLoadConfigError(t, "themes:\n  error: red\n", "parse")
}

func TestLoadConfig_InvalidStylingIsError(t *testing.T) {
	testLoadConfigError(t,
		"theme:\n  error: unobtainium\n", "invalid styling for theme.error")
}

func TestLoadConfig_InvalidKeyIsError(t *testing.T) {
	testLoadConfigError(t,
		"keys:\n  quit: Bogus-Q\n", "invalid key for keys.quit")
}

func testLoadConfigError(t *testing.T, content, wantErr string) {
	t.Helper()
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"config.yaml": content})

	_, err := LoadConfig("config.yaml")
	if err == nil {
		t.Fatalf("LoadConfig -> nil error, want error containing %q", wantErr)
	}
	if !strings.Contains(err.Error(), wantErr) {
		t.Errorf("LoadConfig -> error %q, want it to contain %q", err, wantErr)
	}
}
