package cleaning

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"
)

// DefaultBufferSize is the size of the buffered reader and writer used by
// an engine run when the configuration does not override it.
const DefaultBufferSize = 512 * 1024

// progressInterval controls how often an engine logs a progress record.
const progressInterval = 10000

// Options tunes an engine run.
type Options struct {
	// BufferSize is the size in bytes of the underlying I/O stream
	// buffers. Zero or negative selects DefaultBufferSize.
	BufferSize int
}

func (o Options) bufferSize() int {
	if o.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return o.BufferSize
}

// Result summarizes a completed engine run.
type Result struct {
	// Lines is the number of input lines seen, blank lines included.
	Lines int64
	// Records is the number of cleaned records written.
	Records int64
	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// LinesPerSecond reports the processing rate of the run.
func (r *Result) LinesPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Lines) / r.Duration.Seconds()
}

// Engine cleans one input file into one output file. The two constructors
// return engines that differ only in how they produce raw lines; for the
// same input they must write byte-identical output.
type Engine struct {
	name string
	open func(path string) (LineSource, *Error)
	opts Options
}

// NewStreamingEngine returns an engine that reads the input sequentially
// through a buffered reader.
func NewStreamingEngine(opts Options) *Engine {
	size := opts.bufferSize()
	return &Engine{
		name: "buffered",
		open: func(path string) (LineSource, *Error) {
			return openStreamSource(path, size)
		},
		opts: opts,
	}
}

// NewMappedEngine returns an engine that scans the whole input as a single
// read-only byte range, memory-mapped where the platform supports it. The
// buffer size option only affects the output side here.
func NewMappedEngine(opts Options) *Engine {
	return &Engine{
		name: "mapped",
		open: func(path string) (LineSource, *Error) {
			return openBufferSource(path)
		},
		opts: opts,
	}
}

// Name identifies the engine in logs and benchmark output.
func (e *Engine) Name() string {
	return e.name
}

// Run cleans inputPath into outputPath. Blank input lines (including CRLF
// only lines) are skipped and emit no output record; every other line is
// parsed, cleaned and written with a single \n terminator. Any returned
// error is a *Error; the run holds no resources after Run returns,
// whichever path it exits through.
func (e *Engine) Run(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	start := time.Now()

	src, cerr := e.open(inputPath)
	if cerr != nil {
		return nil, cerr
	}
	defer src.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, NewOpenError(outputPath, err)
	}
	defer out.Close()
	w := bufio.NewWriterSize(out, e.opts.bufferSize())

	slog.InfoContext(ctx, "cleaning started",
		slog.String("engine", e.name),
		slog.String("input", inputPath),
		slog.String("output", outputPath))

	res := &Result{}
	var scratch []byte
	for {
		line, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, NewOpenError(inputPath, err)
		}
		res.Lines++
		if res.Lines%progressInterval == 0 {
			slog.DebugContext(ctx, "progress",
				slog.String("engine", e.name),
				slog.Int64("lines", res.Lines))
		}
		if len(line) == 0 {
			continue
		}
		scratch = AppendRecord(scratch[:0], ParseRecord(string(line)))
		if _, err := w.Write(scratch); err != nil {
			return nil, NewOpenError(outputPath, err)
		}
		res.Records++
	}

	if err := w.Flush(); err != nil {
		return nil, NewOpenError(outputPath, err)
	}
	if err := out.Close(); err != nil {
		return nil, NewOpenError(outputPath, err)
	}

	res.Duration = time.Since(start)
	slog.InfoContext(ctx, "cleaning completed",
		slog.String("engine", e.name),
		slog.Int64("lines", res.Lines),
		slog.Int64("records", res.Records),
		slog.Duration("duration", res.Duration))
	return res, nil
}
