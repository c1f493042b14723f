package andi

import (
	"fmt"

	"github.com/sciformats/go-sciformats/ir"
)

const (
	msRevision = "ms_template_revision"
	msName     = "AnDI Mass Spectrometry"
	ticName    = "Total Ion Current"
	scansName  = "Scans"
)

// Scan is one mass spectrum of an ANDI-MS (ASTM E2077) file.
type Scan struct {
	Time           float64
	TotalIntensity float64
	Data           []ir.Point
}

type MassSpectrometry struct {
	Attributes []ir.Parameter

	TIC           []ir.Point
	TimeUnit      string
	Scans         []Scan
	MassUnit      string
	IntensityUnit string
}

func parseMassSpectrometry(ds Dataset) (*MassSpectrometry, error) {
	m := &MassSpectrometry{Attributes: attrParams(ds.Attributes())}
	times, err := floats(ds, "scan_acquisition_time")
	if err != nil {
		return nil, err
	}
	totals, err := optionalFloats(ds, "total_intensity")
	if err != nil {
		return nil, err
	}
	if totals != nil && len(totals) != len(times) {
		return nil, fmt.Errorf("%w: scan_acquisition_time has %d values, total_intensity %d", ErrInconsistent, len(times), len(totals))
	}
	m.TimeUnit = unitOf(ds, "scan_acquisition_time")
	m.MassUnit = unitOf(ds, "mass_values")
	m.IntensityUnit = unitOf(ds, "intensity_values")
	if totals != nil {
		m.TIC = make([]ir.Point, len(times))
		for i := range times {
			m.TIC[i] = ir.Point{X: times[i], Y: totals[i]}
		}
	}

	index, err := floats(ds, "scan_index")
	if err != nil {
		return nil, err
	}
	counts, err := floats(ds, "point_count")
	if err != nil {
		return nil, err
	}
	if len(index) != len(counts) || len(index) != len(times) {
		return nil, fmt.Errorf("%w: %d scan_index, %d point_count, %d scan_acquisition_time", ErrInconsistent, len(index), len(counts), len(times))
	}
	masses, err := floats(ds, "mass_values")
	if err != nil {
		return nil, err
	}
	intensities, err := floats(ds, "intensity_values")
	if err != nil {
		return nil, err
	}
	if len(masses) != len(intensities) {
		return nil, fmt.Errorf("%w: %d mass_values, %d intensity_values", ErrInconsistent, len(masses), len(intensities))
	}
	m.Scans = make([]Scan, len(index))
	for i := range index {
		start, n := int(index[i]), int(counts[i])
		if start < 0 || n < 0 || start+n > len(masses) {
			return nil, fmt.Errorf("%w: scan %d spans [%d, %d) of %d values", ErrInconsistent, i, start, start+n, len(masses))
		}
		s := Scan{Time: times[i], Data: make([]ir.Point, n)}
		if totals != nil {
			s.TotalIntensity = totals[i]
		}
		for k := 0; k < n; k++ {
			s.Data[k] = ir.Point{X: masses[start+k], Y: intensities[start+k]}
		}
		m.Scans[i] = s
	}
	return m, nil
}

func scanName(i int) string {
	return fmt.Sprintf("Scan %d", i+1)
}

func (m *MassSpectrometry) rootNode() *ir.Node {
	return &ir.Node{
		Name:           msName,
		Parameters:     m.Attributes,
		ChildNodeNames: []string{ticName, scansName},
	}
}

func units(x, y string) []ir.KeyValue {
	var md []ir.KeyValue
	if x != "" {
		md = append(md, ir.KeyValue{Key: "x.unit", Value: x})
	}
	if y != "" {
		md = append(md, ir.KeyValue{Key: "y.unit", Value: y})
	}
	return md
}

func (m *MassSpectrometry) ticNode() *ir.Node {
	return &ir.Node{Name: ticName, Data: m.TIC, Metadata: units(m.TimeUnit, m.IntensityUnit)}
}

func (m *MassSpectrometry) scansNode() *ir.Node {
	names := make([]string, len(m.Scans))
	for i := range m.Scans {
		names[i] = scanName(i)
	}
	return &ir.Node{Name: scansName, ChildNodeNames: names}
}

func (m *MassSpectrometry) scanNode(i int) *ir.Node {
	s := m.Scans[i]
	return &ir.Node{
		Name: scanName(i),
		Parameters: []ir.Parameter{
			ir.Param("scan_acquisition_time", ir.FromFloat(s.Time)),
			ir.Param("total_intensity", ir.FromFloat(s.TotalIntensity)),
		},
		Data:     s.Data,
		Metadata: units(m.MassUnit, m.IntensityUnit),
	}
}
