// cmd/jumble/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/jumble/internal/app"
	"github.com/bethropolis/jumble/internal/config"
	"github.com/bethropolis/jumble/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(nil)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	// --- Configuration ---
	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)
	if cfg == nil {
		stlog.Fatalf("Failed to load configuration: %v", cfgErr)
	}

	// --- Logger Initialization ---
	logOutput, closeLog, err := openLog(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()
	logger.SetFilterDebug(*flags.DebugLog)
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Config: %v (continuing with defaults)", cfgErr)
	}
	for _, w := range cfg.Warnings {
		logger.Warnf("Config: %s", w)
	}

	// Positional arguments are the first text to arrange.
	initialText := strings.Join(args, " ")
	if initialText != "" {
		logger.Debugf("Initial text: %d character(s)", len([]rune(initialText)))
	}

	// --- Create and Run App ---
	jumbleApp, err := app.NewApp(cfg, initialText)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	if err := jumbleApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}

// openLog opens the configured log destination. An empty path logs to
// jumble.log in the user cache directory, "-" logs to stderr.
func openLog(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stderr, func() {}, nil
	}
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		dir = filepath.Join(dir, config.AppName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory '%s': %w", dir, err)
		}
		path = filepath.Join(dir, config.DefaultLogFileName)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open '%s': %w", path, err)
	}
	var closed bool
	return f, func() {
		if !closed {
			closed = true
			f.Close()
		}
	}, nil
}
