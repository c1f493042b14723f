package plugin

import (
	"errors"
)

var (
	ErrNoReader = errors.New("no reader found")
)
