package journal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"mealog.dev/pkg/env"
	"mealog.dev/pkg/ui"
)

// Config is the resolved configuration of the journal.
type Config struct {
	// Maximum height the UI may use, in lines. Non-positive means the full
	// height of the terminal.
	MaxHeight int
	// Stylings of the UI elements.
	Theme Theme
	// Keys bound to the built-in actions.
	Keys Keys
}

// Theme holds the stylings of the UI elements.
type Theme struct {
	Error  ui.Styling
	Title  ui.Styling
	Note   ui.Styling
	Prompt ui.Styling
}

// Keys holds the keys bound to the built-in actions.
type Keys struct {
	Submit, Clear, Quit, Next, Prev ui.Key
}

// DefaultConfig returns the configuration used when there is no config file.
// Fields not set in a config file also default to its values.
func DefaultConfig() *Config {
	return &Config{
		Theme: Theme{
			Error:  ui.FgRed,
			Title:  ui.Stylings(ui.Bold, ui.FgWhite, ui.BgMagenta),
			Note:   ui.FgGreen,
			Prompt: ui.Bold,
		},
		Keys: Keys{
			Submit: ui.K(ui.Enter),
			Clear:  ui.K('K', ui.Ctrl),
			Quit:   ui.K('D', ui.Ctrl),
			Next:   ui.K(ui.Tab),
			Prev:   ui.K(ui.Tab, ui.Shift),
		},
	}
}

// DefaultConfigPath returns the default path of the config file:
// $XDG_CONFIG_HOME/mealog/config.yaml, with the usual fallback of
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath() string {
	if dir := os.Getenv(env.XDG_CONFIG_HOME); dir != "" {
		return filepath.Join(dir, "mealog", "config.yaml")
	}
	return filepath.Join(os.Getenv(env.HOME), ".config", "mealog", "config.yaml")
}

// The YAML shape of the config file. All fields are optional; empty strings
// mean "keep the default".
type rawConfig struct {
	MaxHeight int      `yaml:"maxheight"`
	Theme     rawTheme `yaml:"theme"`
	Keys      rawKeys  `yaml:"keys"`
}

type rawTheme struct {
	Error  string `yaml:"error"`
	Title  string `yaml:"title"`
	Note   string `yaml:"note"`
	Prompt string `yaml:"prompt"`
}

type rawKeys struct {
	Submit string `yaml:"submit"`
	Clear  string `yaml:"clear"`
	Quit   string `yaml:"quit"`
	Next   string `yaml:"next"`
	Prev   string `yaml:"prev"`
}

// LoadConfig loads the configuration from the named file. If path is empty,
// it loads from DefaultConfigPath instead, and a missing file is not an
// error; it just yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return parseConfig(data, path)
}

func parseConfig(data []byte, path string) (*Config, error) {
	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	// Unknown fields are more likely typos than forward compatibility;
	// reject them.
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse %v: %w", path, err)
	}

	cfg := DefaultConfig()
	cfg.MaxHeight = raw.MaxHeight
	stylings := []struct {
		dst  *ui.Styling
		src  string
		name string
	}{
		{&cfg.Theme.Error, raw.Theme.Error, "theme.error"},
		{&cfg.Theme.Title, raw.Theme.Title, "theme.title"},
		{&cfg.Theme.Note, raw.Theme.Note, "theme.note"},
		{&cfg.Theme.Prompt, raw.Theme.Prompt, "theme.prompt"},
	}
	for _, s := range stylings {
		if s.src == "" {
			continue
		}
		styling := ui.ParseStyling(s.src)
		if styling == nil {
			return nil, fmt.Errorf("%v: invalid styling for %v: %q", path, s.name, s.src)
		}
		*s.dst = styling
	}
	keys := []struct {
		dst  *ui.Key
		src  string
		name string
	}{
		{&cfg.Keys.Submit, raw.Keys.Submit, "keys.submit"},
		{&cfg.Keys.Clear, raw.Keys.Clear, "keys.clear"},
		{&cfg.Keys.Quit, raw.Keys.Quit, "keys.quit"},
		{&cfg.Keys.Next, raw.Keys.Next, "keys.next"},
		{&cfg.Keys.Prev, raw.Keys.Prev, "keys.prev"},
	}
	for _, k := range keys {
		if k.src == "" {
			continue
		}
		key, err := ui.ParseKey(k.src)
		if err != nil {
			return nil, fmt.Errorf("%v: invalid key for %v: %q", path, k.name, k.src)
		}
		*k.dst = key
	}
	return cfg, nil
}
