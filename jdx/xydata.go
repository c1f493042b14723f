package jdx

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sciformats/go-sciformats/debug"
	"github.com/sciformats/go-sciformats/ir"
	"github.com/sciformats/go-sciformats/stream"
)

type dataMode int

const (
	// (X++(Y..Y)): abscissa plus ASDF compressed ordinates per line.
	asdfMode dataMode = iota
	// (XY..XY): explicit x,y tuples.
	tupleMode
)

var (
	asdfListRe  = regexp.MustCompile(`^\((\w)\+\+\((\w)\.\.(\w)\)\)$`)
	tupleListRe = regexp.MustCompile(`^\((\w)(\w)\.\.(\w)(\w)\)$`)
)

// parseVariableList classifies a data variable list and returns the x and y
// symbols.
func parseVariableList(list string) (dataMode, string, string, error) {
	compact := strings.ToUpper(removeSpace(list))
	if m := asdfListRe.FindStringSubmatch(compact); m != nil && m[2] == m[3] {
		return asdfMode, m[1], m[2], nil
	}
	if m := tupleListRe.FindStringSubmatch(compact); m != nil && m[1] == m[3] && m[2] == m[4] {
		return tupleMode, m[1], m[2], nil
	}
	return 0, "", "", fmt.Errorf("%w: %q", ErrVariableList, list)
}

// dataParams scales and places decoded values. First, Last and NPoints are
// required for ASDF data only.
type dataParams struct {
	First, Last      *float64
	XFactor, YFactor float64
	NPoints          int
	XUnits, YUnits   string
}

// DataSection is an XYDATA, RADATA or XYPOINTS section, or an NTUPLES data
// table. Only its stream position is kept at parse time; Points decodes it.
type DataSection struct {
	Label          string
	VariableList   string
	PlotDescriptor string
	XUnits, YUnits string

	mode   dataMode
	params dataParams
	lr     *stream.LineReader
	start  int64
}

// newDataSection records the section body position and skips the body,
// leaving lr at the next LDR.
func newDataSection(lr *stream.LineReader, label, varList, plot string, mode dataMode, p dataParams) (*DataSection, error) {
	if mode == asdfMode {
		switch {
		case p.First == nil || p.Last == nil:
			return nil, fmt.Errorf("%w: first and last abscissa for %s", ErrMissingLDR, label)
		case p.NPoints < 1:
			return nil, fmt.Errorf("%w: NPOINTS for %s", ErrMissingLDR, label)
		}
	}
	s := &DataSection{
		Label:          label,
		VariableList:   varList,
		PlotDescriptor: plot,
		XUnits:         p.XUnits,
		YUnits:         p.YUnits,
		mode:           mode,
		params:         p,
		lr:             lr,
		start:          lr.Pos(),
	}
	if debug.JDX() {
		debug.Logf("jdx: %s %s body at %d\n", label, varList, s.start)
	}
	if err := skipToLDR(lr); err != nil {
		return nil, err
	}
	return s, nil
}

// skipToLDR consumes lines up to, not including, the next LDR start or
// Bruker parameter section.
func skipToLDR(lr *stream.LineReader) error {
	for {
		pos := lr.Pos()
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return ioErr(err)
		}
		if sectionEnd(line) {
			return seek(lr, pos)
		}
	}
}

// seek pushes back to a position recorded with Pos.
func seek(lr *stream.LineReader, pos int64) error {
	if err := lr.Seek(pos); err != nil {
		return ioErr(err)
	}
	return nil
}

// Points decodes the section. Each call re-reads the backing stream.
func (s *DataSection) Points() ([]ir.Point, error) {
	if err := seek(s.lr, s.start); err != nil {
		return nil, err
	}
	if s.mode == tupleMode {
		return s.decodeTuples()
	}
	return s.decodeASDF()
}

func (s *DataSection) decodeASDF() ([]ir.Point, error) {
	var ys []float64
	checkNext := false
	for {
		line, err := s.lr.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ioErr(err)
		}
		if sectionEnd(line) {
			break
		}
		content, _, _ := stripComment(line)
		if isBlank(content) {
			continue
		}
		vals, lastDIF, err := decodeASDFLine(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Label, err)
		}
		if len(vals) == 0 {
			continue
		}
		yv := vals[1:]
		if checkNext && len(yv) > 0 {
			yv = yv[1:]
		}
		ys = append(ys, yv...)
		checkNext = lastDIF
	}
	p := s.params
	if len(ys) != p.NPoints {
		return nil, fmt.Errorf("%w: %s NPOINTS is %d, decoded %d", ErrPointCount, s.Label, p.NPoints, len(ys))
	}
	first, last := *p.First, *p.Last
	step := 0.0
	if p.NPoints > 1 {
		step = (last - first) / float64(p.NPoints-1)
	}
	pts := make([]ir.Point, len(ys))
	for i, y := range ys {
		pts[i] = ir.Point{X: first + float64(i)*step, Y: y * p.YFactor}
	}
	return pts, nil
}

func (s *DataSection) decodeTuples() ([]ir.Point, error) {
	var pts []ir.Point
	for {
		line, err := s.lr.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ioErr(err)
		}
		if sectionEnd(line) {
			break
		}
		content, _, _ := stripComment(line)
		if isBlank(content) {
			continue
		}
		tuples, err := splitTuples(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Label, err)
		}
		for _, t := range tuples {
			fields := splitFields(t)
			if len(fields) != 2 || fields[0] == "" {
				return nil, fmt.Errorf("%w: %q for %s", ErrIllegalEntry, t, s.VariableList)
			}
			x, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrNumber, fields[0])
			}
			y, err := optionalFloat(fields[1])
			if err != nil {
				return nil, err
			}
			pts = append(pts, ir.Point{X: x * s.params.XFactor, Y: y * s.params.YFactor})
		}
	}
	if s.params.NPoints > 0 && len(pts) != s.params.NPoints {
		return nil, fmt.Errorf("%w: %s NPOINTS is %d, decoded %d", ErrPointCount, s.Label, s.params.NPoints, len(pts))
	}
	return pts, nil
}

// optionalFloat parses a field where blank or '?' means NaN.
func optionalFloat(s string) (float64, error) {
	if s == "" || s == "?" {
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	return f, nil
}
