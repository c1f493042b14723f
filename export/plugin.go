package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sciformats/go-sciformats/ir"
	"github.com/sciformats/go-sciformats/ir/npath"
	"github.com/sciformats/go-sciformats/plugin"
	"github.com/sciformats/go-sciformats/stream"
)

const (
	Name      = "json"
	probeSize = 64
)

var extensions = []string{"json"}

// Plugin reads JSON documents written by Export.
type Plugin struct{}

var _ plugin.Plugin = (*Plugin)(nil)

func NewPlugin() *Plugin {
	return &Plugin{}
}

func (*Plugin) Name() string {
	return Name
}

// IsRecognized requires a .json extension and '{' as the first non-blank
// byte.
func (*Plugin) IsRecognized(path string, r io.ReadSeeker) bool {
	if !stream.HasExtension(path, extensions...) {
		return false
	}
	b, err := stream.Probe(r, probeSize)
	if err != nil {
		return false
	}
	b = bytes.TrimLeft(b, " \t\r\n\ufeff")
	return len(b) > 0 && b[0] == '{'
}

// Parse decodes an exported tree and checks that every node lists exactly
// one name per child.
func (*Plugin) Parse(_ string, r io.ReadSeeker) (*Tree, error) {
	root := &Tree{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err := check(root, ""); err != nil {
		return nil, err
	}
	return root, nil
}

func check(n *Tree, path string) error {
	if len(n.ChildNodeNames) != len(n.Children) {
		return fmt.Errorf("%w: node %q names %d children but has %d",
			ErrMalformed, path, len(n.ChildNodeNames), len(n.Children))
	}
	for i, c := range n.Children {
		if c == nil {
			return fmt.Errorf("%w: node %q child %d is null", ErrMalformed, path, i)
		}
		if err := check(c, npath.Join(path, npath.Segment(i, n.ChildNodeNames[i]))); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plugin) GetReader(path string, r io.ReadSeeker) (plugin.Reader, error) {
	root, err := p.Parse(path, r)
	if err != nil {
		return nil, err
	}
	return &Reader{root: root}, nil
}

// Reader serves the nodes of an imported export.
type Reader struct {
	root *Tree
}

func (r *Reader) Read(path string) (*ir.Node, error) {
	idx, err := npath.Decode(path)
	if err != nil {
		return nil, err
	}
	n := r.root
	for _, i := range idx {
		if i >= len(n.Children) {
			return nil, fmt.Errorf("%w: index %d in %q", ir.ErrIllegalPath, i, path)
		}
		n = n.Children[i]
	}
	res := n.Node
	return &res, nil
}
