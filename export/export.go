package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/sciformats/go-sciformats/debug"
	"github.com/sciformats/go-sciformats/format"
	"github.com/sciformats/go-sciformats/ir"
	"github.com/sciformats/go-sciformats/ir/npath"
	"github.com/sciformats/go-sciformats/plugin"
)

const defaultMaxDepth = 64

// Tree is a Node with its children resolved, in ChildNodeNames order.
type Tree struct {
	ir.Node  `yaml:",inline"`
	Children []*Tree `json:"children,omitempty" yaml:"children,omitempty"`
}

// Export reads the whole tree served by r, starting at the root, and
// writes it to w.
func Export(r plugin.Reader, w io.Writer, opts ...Option) error {
	es := &encState{maxDepth: defaultMaxDepth}
	for _, o := range opts {
		o(es)
	}
	root, err := walk(r, "", 0, es.maxDepth)
	if err != nil {
		return err
	}
	switch {
	case es.format.IsJSON():
		enc := json.NewEncoder(w)
		if es.indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", es.indent))
		}
		return enc.Encode(root)
	case es.format.IsYAML():
		indent := es.indent
		if indent <= 0 {
			indent = 2
		}
		if !es.colors {
			enc := yaml.NewEncoder(w, yaml.Indent(indent))
			if err := enc.Encode(root); err != nil {
				return err
			}
			return enc.Close()
		}
		d, err := yaml.MarshalWithOptions(root, yaml.Indent(indent))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, colorize(d))
		return err
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func walk(r plugin.Reader, path string, depth, maxDepth int) (*Tree, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: %q is deeper than %d", ErrCycle, path, maxDepth)
	}
	n, err := r.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	if debug.Export() {
		debug.Logf("export %q: %v\n", path, n)
	}
	res := &Tree{Node: *n}
	for i, name := range n.ChildNodeNames {
		c, err := walk(r, npath.Join(path, npath.Segment(i, name)), depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		res.Children = append(res.Children, c)
	}
	return res, nil
}

// Walk reads the whole tree served by r into memory.
func Walk(r plugin.Reader) (*Tree, error) {
	return walk(r, "", 0, defaultMaxDepth)
}
