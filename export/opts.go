package export

import "github.com/sciformats/go-sciformats/format"

type encState struct {
	format   format.Format
	indent   int
	maxDepth int
	colors   bool
}

type Option func(*encState)

// Format selects the output encoding; JSON is the default.
func Format(f format.Format) Option {
	return func(es *encState) { es.format = f }
}

// Indent sets the number of spaces per nesting level. 0 writes compact
// JSON; YAML always indents, with 2 spaces unless n is positive.
func Indent(n int) Option {
	return func(es *encState) { es.indent = n }
}

// MaxDepth bounds the walk so that a reader serving a cyclic tree fails
// with ErrCycle instead of recursing forever.
func MaxDepth(n int) Option {
	return func(es *encState) { es.maxDepth = n }
}
