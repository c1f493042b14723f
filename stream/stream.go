package stream

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// Probe reads at most n bytes from the current position of r. A stream
// shorter than n is not an error; the bytes that were available are returned.
func Probe(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	k, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:k], nil
}

// Rewind moves r back to absolute position 0.
func Rewind(r io.Seeker) error {
	_, err := r.Seek(0, io.SeekStart)
	return err
}

// HasExtension reports whether path ends in one of exts, ignoring case.
// Extensions are given without the dot.
func HasExtension(path string, exts ...string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
