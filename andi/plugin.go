package andi

import (
	"bytes"
	"io"

	"github.com/sciformats/go-sciformats/plugin"
	"github.com/sciformats/go-sciformats/stream"
)

const Name = "andi"

var (
	extensions = []string{"cdf", "nc"}
	magic      = []byte("CDF")
)

// Document is a parsed AnDI file; exactly one of the two fields is set.
type Document struct {
	Chromatography   *Chromatography
	MassSpectrometry *MassSpectrometry
}

type Plugin struct {
	open func(io.ReadSeeker) (Dataset, error)
}

var _ plugin.Plugin = (*Plugin)(nil)

func NewPlugin() *Plugin {
	return &Plugin{open: openNetCDF}
}

func (*Plugin) Name() string {
	return Name
}

// IsRecognized checks the extension and the netCDF classic magic number.
func (*Plugin) IsRecognized(path string, r io.ReadSeeker) bool {
	if !stream.HasExtension(path, extensions...) {
		return false
	}
	b, err := stream.Probe(r, len(magic))
	return err == nil && bytes.Equal(b, magic)
}

// Parse decodes the netCDF dataset and dispatches on its template
// revision attribute.
func (p *Plugin) Parse(_ string, r io.ReadSeeker) (*Document, error) {
	ds, err := p.open(r)
	if err != nil {
		return nil, err
	}
	return parseDataset(ds)
}

func parseDataset(ds Dataset) (*Document, error) {
	attrs := ds.Attributes()
	if _, ok := attrString(attrs, chromatographyRevision); ok {
		c, err := parseChromatography(ds)
		if err != nil {
			return nil, err
		}
		return &Document{Chromatography: c}, nil
	}
	if _, ok := attrString(attrs, msRevision); ok {
		m, err := parseMassSpectrometry(ds)
		if err != nil {
			return nil, err
		}
		return &Document{MassSpectrometry: m}, nil
	}
	return nil, ErrTemplate
}

func (p *Plugin) GetReader(path string, r io.ReadSeeker) (plugin.Reader, error) {
	doc, err := p.Parse(path, r)
	if err != nil {
		return nil, err
	}
	return NewReader(doc), nil
}
