package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Its-Frostz/Weather/internal/cleaning"
	"github.com/Its-Frostz/Weather/internal/config"
	"github.com/Its-Frostz/Weather/internal/infrastructure"
)

func main() {
	in := flag.String("in", "", "input csv file path (required)")
	out := flag.String("out", "", "output csv file path (defaults to <input>_cleaned.csv)")
	engineName := flag.String("engine", "buffered", "buffered | mapped")
	sample := flag.Int("sample", -1, "lines of cleaned output to print for validation (-1 uses config)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: cleaner -in <file.csv> [-out <file.csv>] [-engine buffered|mapped]")
		os.Exit(2)
	}
	if *out == "" {
		*out = defaultOutputPath(*in)
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
	logger.InfoContext(ctx, "Starting weather data cleaning",
		slog.String("engine", *engineName),
		slog.String("input", *in),
		slog.String("output", *out))

	opts := cleaning.Options{BufferSize: cfg.Cleaning.BufferSizeBytes}
	var engine *cleaning.Engine
	switch *engineName {
	case "buffered":
		engine = cleaning.NewStreamingEngine(opts)
	case "mapped":
		engine = cleaning.NewMappedEngine(opts)
	default:
		fmt.Fprintf(os.Stderr, "unknown engine %q (want buffered or mapped)\n", *engineName)
		os.Exit(2)
	}

	res, err := engine.Run(ctx, *in, *out)
	if err != nil {
		logger.ErrorContext(ctx, "Cleaning failed",
			slog.String("engine", engine.Name()),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Processing completed successfully!\n")
	fmt.Printf("Lines processed: %d\n", res.Lines)
	fmt.Printf("Records written: %d\n", res.Records)
	fmt.Printf("Processing time: %d ms\n", res.Duration.Milliseconds())
	fmt.Printf("Output saved to: %s\n", *out)

	n := *sample
	if n < 0 {
		n = cfg.Cleaning.SampleLines
	}
	if n > 0 {
		printSample(*out, n)
	}
}

// defaultOutputPath derives "<name>_cleaned<ext>" next to the input.
func defaultOutputPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "_cleaned" + ext
}

func printSample(path string, n int) {
	lines, err := cleaning.SampleLines(path, n)
	if err != nil {
		slog.Warn("Validation sample failed", "path", path, "error", err)
		return
	}
	fmt.Println("\nValidation sample from cleaned file:")
	fmt.Println(strings.Repeat("-", 80))
	for i, line := range lines {
		fmt.Printf("Line %2d: %s\n", i+1, line)
	}
}
