package andi

import (
	"fmt"

	"github.com/sciformats/go-sciformats/ir"
	"github.com/sciformats/go-sciformats/ir/npath"
)

type Reader struct {
	doc *Document
}

func NewReader(doc *Document) *Reader {
	return &Reader{doc: doc}
}

func (r *Reader) Document() *Document {
	return r.doc
}

func illegalPath(path string, index int) error {
	return fmt.Errorf("%w: index %d in %q", ir.ErrIllegalPath, index, path)
}

// Read resolves "" (root), "/0" and "/1". For mass spectrometry "/1/i" is
// scan i.
func (r *Reader) Read(path string) (*ir.Node, error) {
	idx, err := npath.Decode(path)
	if err != nil {
		return nil, err
	}
	if c := r.doc.Chromatography; c != nil {
		switch {
		case len(idx) == 0:
			return c.rootNode(), nil
		case len(idx) > 1:
			return nil, illegalPath(path, idx[1])
		case idx[0] == 0:
			return c.chromatogramNode(), nil
		case idx[0] == 1:
			return c.peaksNode(), nil
		}
		return nil, illegalPath(path, idx[0])
	}
	m := r.doc.MassSpectrometry
	if len(idx) == 0 {
		return m.rootNode(), nil
	}
	switch idx[0] {
	case 0:
		if len(idx) > 1 {
			return nil, illegalPath(path, idx[1])
		}
		return m.ticNode(), nil
	case 1:
		if len(idx) == 1 {
			return m.scansNode(), nil
		}
		if len(idx) > 2 {
			return nil, illegalPath(path, idx[2])
		}
		if idx[1] < 0 || idx[1] >= len(m.Scans) {
			return nil, illegalPath(path, idx[1])
		}
		return m.scanNode(idx[1]), nil
	}
	return nil, illegalPath(path, idx[0])
}
