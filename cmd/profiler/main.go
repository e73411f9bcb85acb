package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Its-Frostz/Weather/internal/config"
	"github.com/Its-Frostz/Weather/internal/infrastructure"
	"github.com/Its-Frostz/Weather/internal/profile"
)

// profiler prints a per-column statistical report of a weather csv. It is
// read-only: nothing is cleaned or rewritten.
func main() {
	in := flag.String("in", "", "csv file to profile (required)")
	out := flag.String("out", "", "write the JSON report here instead of stdout")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: profiler -in <file.csv> [-out <report.json>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background())
	logger.InfoContext(ctx, "Profiling weather data", slog.String("input", *in))

	report, err := profile.ProfileFile(ctx, *in)
	if err != nil {
		logger.ErrorContext(ctx, "Profiling failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dst := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.ErrorContext(ctx, "Cannot create report file",
				slog.String("path", *out),
				slog.String("error", err.Error()))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		dst = f
	}

	if err := report.WriteJSON(dst); err != nil {
		logger.ErrorContext(ctx, "Failed to write report", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Profiling completed",
		slog.Int("rows", report.Rows),
		slog.Int("columns", len(report.Columns)))
}
