package cleaning

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
)

// LineSource produces successive raw lines of the input, independent of
// whether the bytes arrive via incremental reads or a fully mapped buffer.
// Next returns the line without its terminating \n and without a trailing
// \r; the returned slice is only valid until the next call. Next returns
// io.EOF once the input is exhausted. A final line without a terminating
// newline is yielded as a complete line.
type LineSource interface {
	Next() ([]byte, error)
	Close() error
}

// streamSource reads the input incrementally through a buffered reader.
type streamSource struct {
	f   *os.File
	r   *bufio.Reader
	buf []byte
}

func openStreamSource(path string, bufSize int) (*streamSource, *Error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewOpenError(path, err)
	}
	return &streamSource{f: f, r: bufio.NewReaderSize(f, bufSize)}, nil
}

func (s *streamSource) Next() ([]byte, error) {
	s.buf = s.buf[:0]
	for {
		chunk, err := s.r.ReadSlice('\n')
		s.buf = append(s.buf, chunk...)
		switch {
		case err == nil:
			return trimLineEnding(s.buf), nil
		case errors.Is(err, bufio.ErrBufferFull):
			// Line longer than the read buffer; keep accumulating.
		case errors.Is(err, io.EOF):
			if len(s.buf) == 0 {
				return nil, io.EOF
			}
			return trimLineEnding(s.buf), nil
		default:
			return nil, err
		}
	}
}

func (s *streamSource) Close() error {
	return s.f.Close()
}

// bufferSource scans a fully materialized read-only byte range for line
// boundaries. The range is never mutated.
type bufferSource struct {
	data    []byte
	off     int
	release func() error
}

var errEmptyFile = errors.New("cannot map empty file")

func openBufferSource(path string) (*bufferSource, *Error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewMapError(path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, NewMapError(path, err)
	}
	if info.Size() == 0 {
		f.Close()
		return nil, NewMapError(path, errEmptyFile)
	}
	data, release, err := mapFile(f, info.Size())
	if err != nil {
		f.Close()
		return nil, NewMapError(path, err)
	}
	return &bufferSource{data: data, release: release}, nil
}

func (b *bufferSource) Next() ([]byte, error) {
	if b.off >= len(b.data) {
		return nil, io.EOF
	}
	rest := b.data[b.off:]
	end := bytes.IndexByte(rest, '\n')
	var line []byte
	if end < 0 {
		line = rest
		b.off = len(b.data)
	} else {
		line = rest[:end]
		b.off += end + 1
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, nil
}

func (b *bufferSource) Close() error {
	b.data = nil
	if b.release == nil {
		return nil
	}
	return b.release()
}

// trimLineEnding strips one trailing \n and, if present before it, one
// trailing \r, matching the boundary rule of the mapped scan.
func trimLineEnding(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
