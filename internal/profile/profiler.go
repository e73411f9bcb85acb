package profile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// Report is the full profiling result for one file. Columns keep the
// file's column order regardless of how they were computed.
type Report struct {
	Source  string        `json:"source"`
	Rows    int           `json:"rows"`
	Columns []ColumnStats `json:"columns"`
}

// ProfileFile reads a delimited file and computes per-column statistics.
// The first line is taken as the header; short rows are padded with empty
// (missing) values so every column sees the same row count. Columns are
// profiled concurrently, one goroutine per column.
func ProfileFile(ctx context.Context, path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: file has no header line", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	columns := make([][]string, len(header))
	rows := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for i := range header {
			if i < len(rec) {
				columns[i] = append(columns[i], rec[i])
			} else {
				columns[i] = append(columns[i], "")
			}
		}
		rows++
	}

	slog.DebugContext(ctx, "profiling columns",
		slog.String("source", path),
		slog.Int("rows", rows),
		slog.Int("columns", len(header)))

	report := &Report{Source: path, Rows: rows, Columns: make([]ColumnStats, len(header))}
	g, _ := errgroup.WithContext(ctx)
	for i := range header {
		g.Go(func() error {
			report.Columns[i] = profileColumn(header[i], columns[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

// WriteJSON serializes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
