package stream

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// LineReader reads logical lines from a seekable stream and tracks the
// absolute position of the next unread byte. A line that turns out to
// belong to the next section is "pushed back" by seeking to the position
// recorded before it was read.
type LineReader struct {
	rs  io.ReadSeeker
	br  *bufio.Reader
	pos int64
	dec *encoding.Decoder
}

type LineOption func(*LineReader)

// Latin1 decodes every line as ISO-8859-1.
func Latin1() LineOption {
	return Decoding(charmap.ISO8859_1)
}

// Decoding decodes every line with enc.
func Decoding(enc encoding.Encoding) LineOption {
	return func(l *LineReader) { l.dec = enc.NewDecoder() }
}

// NewLineReader starts reading at the current position of rs.
func NewLineReader(rs io.ReadSeeker, opts ...LineOption) (*LineReader, error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	l := &LineReader{rs: rs, br: bufio.NewReader(rs), pos: pos}
	for _, o := range opts {
		o(l)
	}
	return l, nil
}

// Pos returns the absolute position of the next unread byte.
func (l *LineReader) Pos() int64 {
	return l.pos
}

// Seek moves to an absolute position, typically one returned by Pos.
func (l *LineReader) Seek(pos int64) error {
	if _, err := l.rs.Seek(pos, io.SeekStart); err != nil {
		return err
	}
	l.br.Reset(l.rs)
	l.pos = pos
	return nil
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator.
// It returns io.EOF once no bytes remain; a final line without terminator
// is returned with a nil error.
func (l *LineReader) ReadLine() (string, error) {
	b, err := l.br.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if len(b) == 0 {
		return "", io.EOF
	}
	l.pos += int64(len(b))
	b = bytes.TrimSuffix(b, []byte{'\n'})
	b = bytes.TrimSuffix(b, []byte{'\r'})
	if l.dec == nil {
		return string(b), nil
	}
	d, err := l.dec.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(d), nil
}
