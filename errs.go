package sciformats

import "errors"

var ErrConfig = errors.New("bad config")
