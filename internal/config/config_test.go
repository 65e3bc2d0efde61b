package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := NewDefaultConfig()
	if cfg.Arranger != want.Arranger {
		t.Errorf("Arranger = %+v, want %+v", cfg.Arranger, want.Arranger)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
disabled_tags = ["event"]

[arranger]
column_step = 3
swap_policy = "Insert"
syntax_tint = false
bogus_key = 1
`)
	cfg, err := load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Arranger.ColumnStep != 3 {
		t.Errorf("ColumnStep = %d, want 3", cfg.Arranger.ColumnStep)
	}
	if cfg.Arranger.LineHeight != DefaultLineHeight {
		t.Errorf("LineHeight = %d, want default %d", cfg.Arranger.LineHeight, DefaultLineHeight)
	}
	if cfg.Arranger.SwapPolicy != PolicyInsert {
		t.Errorf("SwapPolicy = %q, want %q", cfg.Arranger.SwapPolicy, PolicyInsert)
	}
	if cfg.Arranger.SyntaxTint {
		t.Errorf("SyntaxTint should be false")
	}
	if cfg.Logger.LogLevel != "debug" || len(cfg.Logger.DisabledTags) != 1 {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
	if len(cfg.Warnings) != 1 || !strings.Contains(cfg.Warnings[0], "bogus_key") {
		t.Errorf("Warnings = %v, want one about bogus_key", cfg.Warnings)
	}
}

func TestLoadInvalidValuesAreReset(t *testing.T) {
	path := writeConfig(t, `
[arranger]
column_step = 0
line_height = -2
swap_policy = "shuffle"
additive_modifier = "hyper"
`)
	cfg, err := load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := NewDefaultConfig().Arranger
	if cfg.Arranger.ColumnStep != def.ColumnStep || cfg.Arranger.LineHeight != def.LineHeight {
		t.Errorf("step/height = %d/%d, want defaults", cfg.Arranger.ColumnStep, cfg.Arranger.LineHeight)
	}
	if cfg.Arranger.SwapPolicy != PolicyExchange || cfg.Arranger.AdditiveModifier != ModifierCtrl {
		t.Errorf("policy/modifier = %q/%q, want defaults", cfg.Arranger.SwapPolicy, cfg.Arranger.AdditiveModifier)
	}
	if len(cfg.Warnings) != 2 {
		t.Errorf("Warnings = %v, want 2 entries", cfg.Warnings)
	}
}

func TestLoadBrokenFileReturnsError(t *testing.T) {
	path := writeConfig(t, "[arranger\n")
	if _, err := load(path, nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := NewFlags(fs)
	rest, err := flags.Parse([]string{"-policy", "insert", "-modifier", "alt", "-no-tint", "-log-tags", "drag, sweep", "hello"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rest) != 1 || rest[0] != "hello" {
		t.Errorf("rest = %v", rest)
	}

	cfg, err := load(filepath.Join(t.TempDir(), "absent.toml"), flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Arranger.SwapPolicy != PolicyInsert || cfg.Arranger.AdditiveModifier != ModifierAlt || cfg.Arranger.SyntaxTint {
		t.Errorf("Arranger = %+v", cfg.Arranger)
	}
	if got := cfg.Logger.EnabledTags; len(got) != 2 || got[0] != "drag" || got[1] != "sweep" {
		t.Errorf("EnabledTags = %v", got)
	}
	// Unset flags leave defaults alone.
	if !cfg.Arranger.SystemClipboard {
		t.Errorf("SystemClipboard should keep its default")
	}
}

func TestValidatePolicy(t *testing.T) {
	if err := ValidatePolicy("EXCHANGE"); err != nil {
		t.Errorf("ValidatePolicy(EXCHANGE) = %v", err)
	}
	if err := ValidatePolicy("rotate"); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("ValidatePolicy(rotate) = %v, want ErrUnknownPolicy", err)
	}
}
