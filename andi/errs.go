package andi

import (
	"fmt"

	"github.com/sciformats/go-sciformats/ir"
)

var (
	ErrTemplate        = fmt.Errorf("%w: neither %s nor %s attribute present", ir.ErrParse, chromatographyRevision, msRevision)
	ErrMissingVariable = fmt.Errorf("%w: missing variable", ir.ErrParse)
	ErrVariableType    = fmt.Errorf("%w: unsupported variable type", ir.ErrParse)
	ErrInconsistent    = fmt.Errorf("%w: inconsistent variable lengths", ir.ErrParse)
)
