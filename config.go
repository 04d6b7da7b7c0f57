package glint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// UserBindingPriority is where config-file key overrides sit: above the
// built-in defaults, below nothing.
const UserBindingPriority = 100

// UserBindingCategory groups config-file overrides in binding listings.
const UserBindingCategory = "user"

// Config is the optional TOML configuration: theme selection and key
// binding overrides. Invalid entries are rejected at load time, before the
// terminal is touched.
//
//	theme = "dark"
//
//	[keys]
//	"ctrl+q" = "app.back"
//	"f5"     = "files.copy"
type Config struct {
	Theme string            `toml:"theme"`
	Keys  map[string]string `toml:"keys"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{Theme: "dark"}
}

// LoadConfig reads the config file at path. A missing file yields the
// defaults; a present but invalid file is an error. Empty path skips
// loading entirely.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the theme name and every key token.
func (c Config) Validate() error {
	if c.Theme != "" {
		if _, ok := Themes[c.Theme]; !ok {
			return fmt.Errorf("unknown theme %q", c.Theme)
		}
	}
	for token, action := range c.Keys {
		if _, ok := DecodeToken(token); !ok {
			return fmt.Errorf("unrecognized key token %q", token)
		}
		if action == "" {
			return fmt.Errorf("key %q maps to an empty action", token)
		}
	}
	return nil
}

// SelectTheme resolves the configured theme, falling back to dark.
func (c Config) SelectTheme() Theme {
	if t, ok := Themes[c.Theme]; ok {
		return t
	}
	return ThemeDark
}

// Apply registers the key overrides on top of the registry's defaults.
// Overrides win by priority; defaults stay registered as fallbacks.
func (c Config) Apply(reg *Registry) error {
	for token, action := range c.Keys {
		err := reg.BindToken(token, action, "user override", UserBindingCategory, UserBindingPriority)
		if err != nil {
			return err
		}
	}
	return nil
}
