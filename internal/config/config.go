// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/jumble/internal/logger"
)

// ErrUnknownPolicy is returned for swap policy names the arranger does not know.
var ErrUnknownPolicy = errors.New("unknown swap policy")

// ErrUnknownModifier is returned for additive modifier names that cannot be mapped.
var ErrUnknownModifier = errors.New("unknown additive modifier")

// Config holds the application's combined configuration.
type Config struct {
	Logger   logger.Config  `toml:"logger"`
	Arranger ArrangerConfig `toml:"arranger"`

	// Warnings collects problems found while loading, reported once the logger is up.
	Warnings []string `toml:"-"`
}

// ArrangerConfig holds layout and interaction settings.
type ArrangerConfig struct {
	LeftMargin       int    `toml:"left_margin"`
	TopMargin        int    `toml:"top_margin"`
	RightMargin      int    `toml:"right_margin"`
	ColumnStep       int    `toml:"column_step"`
	LineHeight       int    `toml:"line_height"`
	SwapPolicy       string `toml:"swap_policy"`
	AdditiveModifier string `toml:"additive_modifier"`
	ReflowOnInsert   bool   `toml:"reflow_on_insert"`
	SyntaxTint       bool   `toml:"syntax_tint"`
	SystemClipboard  bool   `toml:"system_clipboard"`
	Theme            string `toml:"theme"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Arranger: ArrangerConfig{
			LeftMargin:       DefaultLeftMargin,
			TopMargin:        DefaultTopMargin,
			RightMargin:      DefaultRightMargin,
			ColumnStep:       DefaultColumnStep,
			LineHeight:       DefaultLineHeight,
			SwapPolicy:       PolicyExchange,
			AdditiveModifier: ModifierCtrl,
			ReflowOnInsert:   true,
			SyntaxTint:       true,
			SystemClipboard:  true,
		},
	}
}

// ValidatePolicy checks a swap policy name.
func ValidatePolicy(name string) error {
	switch strings.ToLower(name) {
	case PolicyExchange, PolicyInsert:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// ValidateModifier checks an additive modifier name.
func ValidateModifier(name string) error {
	switch strings.ToLower(name) {
	case ModifierCtrl, ModifierAlt, ModifierShift, ModifierMeta:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownModifier, name)
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName), nil
}

// ThemesDir returns the directory custom themes are loaded from.
func ThemesDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, ThemesDirName)
}

// decodeFile overlays the TOML file at filePath onto cfg. A missing file is not an error.
func decodeFile(filePath string, cfg *Config) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("config file '%s': unrecognized keys: %v", filePath, undecoded))
	}
	return nil
}

// validate resets invalid values to defaults and records why.
func (c *Config) validate() {
	defaults := NewDefaultConfig()
	a := &c.Arranger

	if a.LeftMargin < 0 {
		a.LeftMargin = defaults.Arranger.LeftMargin
	}
	if a.TopMargin < 0 {
		a.TopMargin = defaults.Arranger.TopMargin
	}
	if a.RightMargin < 0 {
		a.RightMargin = defaults.Arranger.RightMargin
	}
	if a.ColumnStep <= 0 {
		a.ColumnStep = defaults.Arranger.ColumnStep
	}
	if a.LineHeight <= 0 {
		a.LineHeight = defaults.Arranger.LineHeight
	}
	if err := ValidatePolicy(a.SwapPolicy); err != nil {
		c.Warnings = append(c.Warnings, err.Error())
		a.SwapPolicy = defaults.Arranger.SwapPolicy
	}
	a.SwapPolicy = strings.ToLower(a.SwapPolicy)
	if err := ValidateModifier(a.AdditiveModifier); err != nil {
		c.Warnings = append(c.Warnings, err.Error())
		a.AdditiveModifier = defaults.Arranger.AdditiveModifier
	}
	a.AdditiveModifier = strings.ToLower(a.AdditiveModifier)

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// load merges defaults, the config file and flag overrides.
func load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path, _ = DefaultPath()
	}

	var err error
	if path != "" {
		err = decodeFile(path, cfg)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig orchestrates loading defaults, file, applying flags, and validation.
// It should be called only once, typically from main, before the logger exists.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
