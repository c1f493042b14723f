package jdx

import (
	"fmt"

	"github.com/sciformats/go-sciformats/ir"
	"github.com/sciformats/go-sciformats/ir/npath"
)

// Reader answers path queries against a parsed block.
type Reader struct {
	block *Block
}

func NewReader(b *Block) *Reader {
	return &Reader{block: b}
}

// Block returns the parsed root block.
func (r *Reader) Block() *Block {
	return r.block
}

func (r *Reader) Read(path string) (*ir.Node, error) {
	idx, err := npath.Decode(path)
	if err != nil {
		return nil, err
	}
	return readBlock(r.block, idx)
}

func illegalPath(b *Block, index int) error {
	return fmt.Errorf("%w: index %d for block %q", ir.ErrIllegalPath, index, b.Title())
}

func readBlock(b *Block, idx []int) (*ir.Node, error) {
	if len(idx) == 0 {
		return b.Node()
	}
	slot, off, ok := npath.Locate(b.childRanges(), idx[0])
	if !ok {
		return nil, illegalPath(b, idx[0])
	}
	rest := idx[1:]
	switch slot {
	case ntuplesSlot:
		return readNTuples(b, rest)
	case blockSlot:
		return readBlock(b.Blocks[off], rest)
	}
	if len(rest) != 0 {
		return nil, illegalPath(b, rest[0])
	}
	switch slot {
	case relaxSlot:
		return b.BrukerRelaxSections[off].Node(), nil
	case brukerSlot:
		return b.BrukerSpecificParameters[off].Node(), nil
	default:
		return b.AuditTrail.Node(), nil
	}
}

func readNTuples(b *Block, idx []int) (*ir.Node, error) {
	nt := b.NTuples
	if len(idx) == 0 {
		return nt.Node(), nil
	}
	if idx[0] < 0 || idx[0] >= len(nt.Pages) {
		return nil, illegalPath(b, idx[0])
	}
	if len(idx) > 1 {
		return nil, illegalPath(b, idx[1])
	}
	return nt.Pages[idx[0]].Node()
}
