package jdx

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sciformats/go-sciformats/stream"
)

// Peak is one PEAK TABLE tuple. Y is NaN when blank. W is set for
// (XYW..XYW), M for (XYM..XYM).
type Peak struct {
	X, Y float64
	W    *float64
	M    string
}

type PeakTable struct {
	VariableList string
	Peaks        []Peak
}

const (
	xyList  = "(XY..XY)"
	xywList = "(XYW..XYW)"
	xymList = "(XYM..XYM)"
)

// tupleRe matches one comma separated tuple and the separator after it:
// a semicolon, whitespace or end of line.
var tupleRe = regexp.MustCompile(`^\s*([^,;\s]*(?:\s*,\s*[^,;\s]*)*)(\s*;\s*|\s+|$)`)

// splitTuples splits a line into tuples.
func splitTuples(line string) ([]string, error) {
	var tuples []string
	rest := line
	for strings.TrimSpace(rest) != "" {
		m := tupleRe.FindStringSubmatchIndex(rest)
		if m == nil || m[1] == 0 || m[3] == m[2] {
			return nil, fmt.Errorf("%w: %q", ErrUnexpected, rest)
		}
		tuples = append(tuples, rest[m[2]:m[3]])
		rest = rest[m[1]:]
	}
	return tuples, nil
}

func splitFields(tuple string) []string {
	fields := strings.Split(tuple, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// ParsePeakTable reads PEAK TABLE tuples from lr until the next LDR, which
// is left unread.
func ParsePeakTable(lr *stream.LineReader, variableList string) (*PeakTable, error) {
	list := strings.ToUpper(removeSpace(variableList))
	arity := 0
	switch list {
	case xyList:
		arity = 2
	case xywList, xymList:
		arity = 3
	default:
		return nil, fmt.Errorf("%w: PEAK TABLE %q", ErrVariableList, variableList)
	}
	pt := &PeakTable{VariableList: list}
	for {
		pos := lr.Pos()
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return pt, nil
		}
		if err != nil {
			return nil, ioErr(err)
		}
		if sectionEnd(line) {
			return pt, seek(lr, pos)
		}
		content, _, _ := stripComment(line)
		if isBlank(content) {
			continue
		}
		tuples, err := splitTuples(content)
		if err != nil {
			return nil, fmt.Errorf("PEAK TABLE: %w", err)
		}
		for _, t := range tuples {
			p, err := parsePeak(t, list, arity)
			if err != nil {
				return nil, err
			}
			pt.Peaks = append(pt.Peaks, p)
		}
	}
}

func parsePeak(tuple, list string, arity int) (Peak, error) {
	fields := splitFields(tuple)
	if len(fields) != arity {
		return Peak{}, fmt.Errorf("%w: %q for %s", ErrIllegalEntry, tuple, list)
	}
	if fields[0] == "" {
		return Peak{}, fmt.Errorf("%w: missing x in %q for %s", ErrIllegalEntry, tuple, list)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Peak{}, fmt.Errorf("%w: %q in %q", ErrNumber, fields[0], tuple)
	}
	y, err := optionalFloat(fields[1])
	if err != nil {
		return Peak{}, err
	}
	p := Peak{X: x, Y: y}
	if arity == 2 {
		return p, nil
	}
	third := fields[2]
	if third == "" {
		return Peak{}, fmt.Errorf("%w: missing third component in %q for %s", ErrIllegalEntry, tuple, list)
	}
	if list == xymList {
		p.M = third
		return p, nil
	}
	w, err := strconv.ParseFloat(third, 64)
	if err != nil {
		return Peak{}, fmt.Errorf("%w: %q in %q", ErrNumber, third, tuple)
	}
	p.W = &w
	return p, nil
}
