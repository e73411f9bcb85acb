package cleaning

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// sampleWidth is the display width a sampled line is truncated to.
const sampleWidth = 120

// SampleLines reads back up to n lines of a cleaned file for visual
// confirmation, truncating long lines to a fixed display width. Truncation
// happens while reading, so a line of any length stays a one-line sample
// rather than an error. Purely diagnostic; the file's content is never
// touched.
func SampleLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewOpenError(path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var lines []string
	for len(lines) < n {
		line, err := readSampleLine(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// A final line without a newline still counts.
				if line != "" {
					lines = append(lines, line)
				}
				break
			}
			return nil, NewOpenError(path, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// readSampleLine consumes one full input line but keeps at most
// sampleWidth characters of it, marking anything longer with "...".
func readSampleLine(r *bufio.Reader) (string, error) {
	var kept []byte
	truncated := false
	for {
		chunk, err := r.ReadSlice('\n')
		part := chunk
		if n := len(part); n > 0 && part[n-1] == '\n' {
			part = part[:n-1]
		}
		if room := sampleWidth - len(kept); len(part) > room {
			part = part[:room]
			truncated = true
		}
		kept = append(kept, part...)

		switch {
		case err == nil:
			return sampleString(kept, truncated), nil
		case errors.Is(err, bufio.ErrBufferFull):
			// Line continues past the read buffer; keep draining it.
		case errors.Is(err, io.EOF):
			return sampleString(kept, truncated), io.EOF
		default:
			return "", err
		}
	}
}

func sampleString(kept []byte, truncated bool) string {
	if truncated {
		return string(kept) + "..."
	}
	return string(kept)
}
