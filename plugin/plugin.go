package plugin

import (
	"io"

	"github.com/sciformats/go-sciformats/ir"
)

// Recognizer is the cheap probe half of a format plugin.
//
// IsRecognized may read a small bounded prefix of r from wherever r is
// currently positioned, and may look at the extension of path. It never
// reports an error: any I/O failure during the probe means false.
type Recognizer interface {
	IsRecognized(path string, r io.ReadSeeker) bool
}

// Reader answers node queries against a parsed document. path follows the
// npath grammar; "" and "/" address the root.
type Reader interface {
	Read(path string) (*ir.Node, error)
}

// Plugin recognizes, parses and reads one file format.
//
// GetReader performs the full parse and consumes r. Readers may keep r for
// lazy re-reads of bulk sections, so r must stay open while the Reader is
// in use. Concrete plugins also offer a Parse method returning their own
// document type.
type Plugin interface {
	Recognizer
	Name() string
	GetReader(path string, r io.ReadSeeker) (Reader, error)
}
