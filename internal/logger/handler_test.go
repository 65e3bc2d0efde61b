package logger

import (
	"bytes"
	"context"
	"log/slog"
	"runtime"
	"strings"
	"testing"
	"time"
)

func newTestHandler(cfg Config) (*filteringHandler, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg.process()
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return newFilteringHandler(base, &cfg), &buf
}

func record(msg, tag string) slog.Record {
	var pcs [1]uintptr
	runtime.Callers(1, pcs[:]) // this file: package "logger", file "handler_test.go"
	r := slog.NewRecord(time.Now(), slog.LevelDebug, msg, pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	return r
}

func TestFilteringHandlerTags(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		tag  string
		want bool
	}{
		{"no filters", Config{}, "drag", true},
		{"disabled tag", Config{DisabledTags: []string{"Drag"}}, "drag", false},
		{"enabled tag matches", Config{EnabledTags: []string{"sweep"}}, "sweep", true},
		{"enabled tag misses", Config{EnabledTags: []string{"sweep"}}, "drag", false},
		{"untagged with enabled list", Config{EnabledTags: []string{"sweep"}}, "", false},
		{"disabled overrides enabled", Config{EnabledTags: []string{"swap"}, DisabledTags: []string{"swap"}}, "swap", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(tt.cfg)
			if err := h.Handle(context.Background(), record("hello", tt.tag)); err != nil {
				t.Fatalf("Handle: %v", err)
			}
			if got := strings.Contains(buf.String(), "hello"); got != tt.want {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestFilteringHandlerPackagesAndFiles(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"package disabled", Config{DisabledPackages: []string{"logger"}}, false},
		{"package enabled elsewhere", Config{EnabledPackages: []string{"core"}}, false},
		{"package enabled", Config{EnabledPackages: []string{"LOGGER"}}, true},
		{"file disabled", Config{DisabledFiles: []string{"handler_test.go"}}, false},
		{"file enabled", Config{EnabledFiles: []string{"handler_test.go"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(tt.cfg)
			_ = h.Handle(context.Background(), record("payload", ""))
			if got := strings.Contains(buf.String(), "payload"); got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
	}
	for in, want := range tests {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, true", in, got, ok, want)
		}
	}
	if _, ok := ParseLevel("verbose"); ok {
		t.Errorf("ParseLevel(verbose) should report unknown level")
	}
}
