//go:build !unix

package cleaning

import (
	"io"
	"os"
)

// mapFile falls back to reading the whole file into an owned buffer on
// platforms without a usable mmap. Observable behavior is identical to the
// mapped variant.
func mapFile(f *os.File, size int64) ([]byte, func() error, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, nil, err
	}
	return data, f.Close, nil
}
