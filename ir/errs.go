package ir

import (
	"errors"
)

var (
	ErrParse       = errors.New("parse error")
	ErrIllegalPath = errors.New("illegal path")
	ErrIO          = errors.New("i/o error")
)
