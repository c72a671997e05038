package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/battleship/internal"
	"github.com/rocketscienceinc/battleship/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. The terminal belongs to the game, so logs go to a file or stderr.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeLog = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeLog
}
