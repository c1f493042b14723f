package export

import (
	"errors"
	"fmt"

	"github.com/sciformats/go-sciformats/ir"
)

var (
	ErrMalformed = fmt.Errorf("%w: malformed export", ir.ErrParse)
	ErrCycle     = errors.New("node tree too deep")
)
