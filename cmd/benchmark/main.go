package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/Its-Frostz/Weather/internal/cleaning"
	"github.com/Its-Frostz/Weather/internal/config"
	"github.com/Its-Frostz/Weather/internal/infrastructure"
)

// benchmark runs both cleaning engines against the same input, reports
// per-engine timing, and verifies the two outputs are byte-identical.
func main() {
	in := flag.String("in", "", "input csv file path (required)")
	outDir := flag.String("outdir", "", "directory for the two output files (defaults to the input's directory)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: benchmark -in <file.csv> [-outdir <dir>]")
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

	dir := *outDir
	if dir == "" {
		dir = filepath.Dir(*in)
	}
	base := strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
	outBuffered := filepath.Join(dir, base+"_cleaned_buffered.csv")
	outMapped := filepath.Join(dir, base+"_cleaned_mapped.csv")

	ctx := infrastructure.WithRunID(context.Background())
	logger.InfoContext(ctx, "Starting engine benchmark",
		slog.String("input", *in),
		slog.String("output_buffered", outBuffered),
		slog.String("output_mapped", outMapped))

	fmt.Println("Weather Data Cleaner - Engine Benchmark")
	fmt.Println("=======================================")
	fmt.Printf("Input file: %s\n\n", *in)

	opts := cleaning.Options{BufferSize: cfg.Cleaning.BufferSizeBytes}
	type run struct {
		engine *cleaning.Engine
		out    string
		res    *cleaning.Result
	}
	runs := []*run{
		{engine: cleaning.NewStreamingEngine(opts), out: outBuffered},
		{engine: cleaning.NewMappedEngine(opts), out: outMapped},
	}

	failed := false
	for _, r := range runs {
		fmt.Printf("=== %s engine ===\n", strings.ToUpper(r.engine.Name()))
		res, err := r.engine.Run(ctx, *in, r.out)
		if err != nil {
			logger.ErrorContext(ctx, "Engine run failed",
				slog.String("engine", r.engine.Name()),
				slog.String("error", err.Error()))
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			failed = true
			continue
		}
		r.res = res
		fmt.Printf("Lines processed: %d\n", res.Lines)
		fmt.Printf("Processing time: %d ms\n", res.Duration.Milliseconds())
		fmt.Printf("Processing speed: %.0f lines/second\n\n", res.LinesPerSecond())
	}
	if failed {
		os.Exit(1)
	}

	match, err := outputsIdentical(outBuffered, outMapped)
	if err != nil {
		logger.ErrorContext(ctx, "Output comparison failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !match {
		logger.ErrorContext(ctx, "Engine outputs differ",
			slog.String("output_buffered", outBuffered),
			slog.String("output_mapped", outMapped))
		fmt.Fprintln(os.Stderr, "FAIL: engine outputs are not byte-identical")
		os.Exit(1)
	}
	fmt.Println("Engine outputs are byte-identical.")

	fmt.Println("\n=== VALIDATION SAMPLE ===")
	lines, err := cleaning.SampleLines(outMapped, cfg.Cleaning.SampleLines)
	if err != nil {
		slog.Warn("Validation sample failed", "path", outMapped, "error", err)
	} else {
		fmt.Println(strings.Repeat("-", 80))
		for i, line := range lines {
			fmt.Printf("Line %2d: %s\n", i+1, line)
		}
	}

	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	for _, r := range runs {
		fmt.Printf("%-8s  %6d ms  %s\n", r.engine.Name(), r.res.Duration.Milliseconds(), r.out)
	}
}

// outputsIdentical compares the two output files by size and xxh3 hash.
func outputsIdentical(a, b string) (bool, error) {
	ha, na, err := hashFile(a)
	if err != nil {
		return false, err
	}
	hb, nb, err := hashFile(b)
	if err != nil {
		return false, err
	}
	return na == nb && ha == hb, nil
}

func hashFile(path string) (uint64, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return xxh3.Hash(data), int64(len(data)), nil
}
