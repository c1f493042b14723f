package jdx

import (
	"fmt"

	"github.com/sciformats/go-sciformats/ir"
)

var (
	ErrBlockStart    = fmt.Errorf("%w: block must start with TITLE", ir.ErrParse)
	ErrUnterminated  = fmt.Errorf("%w: unterminated section", ir.ErrParse)
	ErrUnexpected    = fmt.Errorf("%w: unexpected content", ir.ErrParse)
	ErrIllegalString = fmt.Errorf("%w: illegal string found", ir.ErrParse)
	ErrIllegalEntry  = fmt.Errorf("%w: illegal entry", ir.ErrParse)
	ErrAmbiguous     = fmt.Errorf("%w: ambiguous entry", ir.ErrParse)
	ErrVariableList  = fmt.Errorf("%w: unsupported variable list", ir.ErrParse)
	ErrDuplicate     = fmt.Errorf("%w: duplicate section", ir.ErrParse)
	ErrMissingLDR    = fmt.Errorf("%w: missing required LDR", ir.ErrParse)
	ErrNumber        = fmt.Errorf("%w: illegal number", ir.ErrParse)
	ErrPointCount    = fmt.Errorf("%w: point count mismatch", ir.ErrParse)
)

func ioErr(err error) error {
	return fmt.Errorf("%w: %w", ir.ErrIO, err)
}

func errUnexpectedLine(line, where string) error {
	return fmt.Errorf("%w: %q in %q", ErrUnexpected, line, where)
}
