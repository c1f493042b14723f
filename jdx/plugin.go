package jdx

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/sciformats/go-sciformats/plugin"
	"github.com/sciformats/go-sciformats/stream"
)

const (
	Name      = "jdx"
	probeSize = 128
)

var extensions = []string{"jdx", "dx", "jcm"}

// Plugin recognizes and parses JCAMP-DX files.
type Plugin struct{}

var _ plugin.Plugin = (*Plugin)(nil)

func NewPlugin() *Plugin {
	return &Plugin{}
}

func (*Plugin) Name() string {
	return Name
}

// IsRecognized checks the extension and that the first LDR of the file is
// TITLE.
func (*Plugin) IsRecognized(path string, r io.ReadSeeker) bool {
	if !stream.HasExtension(path, extensions...) {
		return false
	}
	b, err := stream.Probe(r, probeSize)
	if err != nil {
		return false
	}
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return false
	}
	return startsWithTitle(string(text))
}

func startsWithTitle(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		if isBlank(line) {
			continue
		}
		if !isLDRStart(line) {
			return false
		}
		raw, _, found := strings.Cut(strings.TrimLeft(line, " \t"), "=")
		return found && NormalizeLabel(raw) == "TITLE"
	}
	return false
}

// Parse parses the outermost block of r, which is read as Latin-1.
func (*Plugin) Parse(_ string, r io.ReadSeeker) (*Block, error) {
	lr, err := stream.NewLineReader(r, stream.Latin1())
	if err != nil {
		return nil, ioErr(err)
	}
	return ParseBlock(lr)
}

func (p *Plugin) GetReader(path string, r io.ReadSeeker) (plugin.Reader, error) {
	b, err := p.Parse(path, r)
	if err != nil {
		return nil, err
	}
	return NewReader(b), nil
}
