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

// PeakAssignment is one PEAK ASSIGNMENTS tuple. Y and W are NaN when present
// but blank, nil when absent.
type PeakAssignment struct {
	X float64
	Y *float64
	W *float64
	M *string
	A string
}

type PeakAssignments struct {
	VariableList string
	Assignments  []PeakAssignment
}

const (
	xyaList   = "(XYA)"
	xywaList  = "(XYWA)"
	xymaList  = "(XYMA)"
	xymwaList = "(XYMWA)"
)

// assignmentRe captures x, up to three optional middle components and the
// assignment text in angle brackets.
var assignmentRe = regexp.MustCompile(`^\(\s*([^,]*?)\s*(?:,\s*([^,<]*?)\s*)?(?:,\s*([^,<]*?)\s*)?(?:,\s*([^,<]*?)\s*)?,\s*<(.*)>\s*\)$`)

// ParsePeakAssignments reads tuples from lr until the next LDR, which is
// left unread. A tuple may span lines.
func ParsePeakAssignments(lr *stream.LineReader, variableList string) (*PeakAssignments, error) {
	list := strings.ToUpper(removeSpace(variableList))
	switch list {
	case xyaList, xywaList, xymaList, xymwaList:
	default:
		return nil, fmt.Errorf("%w: PEAK ASSIGNMENTS %q", ErrVariableList, variableList)
	}
	pa := &PeakAssignments{VariableList: list}
	for {
		pos := lr.Pos()
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return pa, nil
		}
		if err != nil {
			return nil, ioErr(err)
		}
		if sectionEnd(line) {
			return pa, seek(lr, pos)
		}
		content, _, _ := stripComment(line)
		trimmed := strings.TrimSpace(content)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "(") {
			return nil, fmt.Errorf("%w: %q in PEAK ASSIGNMENTS", ErrIllegalString, trimmed)
		}
		tuple, err := readAssignmentTuple(lr, trimmed)
		if err != nil {
			return nil, err
		}
		a, err := parseAssignment(tuple, list)
		if err != nil {
			return nil, err
		}
		pa.Assignments = append(pa.Assignments, a)
	}
}

// readAssignmentTuple joins lines with a space until the last non-blank
// character is ')'.
func readAssignmentTuple(lr *stream.LineReader, first string) (string, error) {
	tuple := first
	for !strings.HasSuffix(strings.TrimSpace(tuple), ")") {
		pos := lr.Pos()
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: file ended before closing parenthesis in %q", ErrUnterminated, tuple)
		}
		if err != nil {
			return "", ioErr(err)
		}
		if isLDRStart(line) {
			if err := seek(lr, pos); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: no closing parenthesis found for %q", ErrUnterminated, tuple)
		}
		content, _, _ := stripComment(line)
		if isBlank(content) {
			continue
		}
		tuple += " " + strings.TrimSpace(content)
	}
	return tuple, nil
}

func parseAssignment(tuple, list string) (PeakAssignment, error) {
	m := assignmentRe.FindStringSubmatchIndex(tuple)
	if m == nil {
		return PeakAssignment{}, fmt.Errorf("%w: %q for %s", ErrIllegalEntry, tuple, list)
	}
	group := func(i int) (string, bool) {
		if m[2*i] < 0 {
			return "", false
		}
		return tuple[m[2*i]:m[2*i+1]], true
	}
	xs, _ := group(1)
	g2, p2 := group(2)
	g3, p3 := group(3)
	g4, p4 := group(4)
	text, _ := group(5)

	var y, w, mult *string
	switch list {
	case xyaList:
		if p3 || p4 {
			return PeakAssignment{}, fmt.Errorf("%w: %q for %s", ErrIllegalEntry, tuple, list)
		}
		if p2 {
			y = &g2
		}
	case xywaList, xymaList:
		if p4 {
			return PeakAssignment{}, fmt.Errorf("%w: %q for %s", ErrIllegalEntry, tuple, list)
		}
		if p2 != p3 {
			return PeakAssignment{}, fmt.Errorf("%w: %q for %s", ErrAmbiguous, tuple, list)
		}
		if p2 {
			y = &g2
			if list == xywaList {
				w = &g3
			} else {
				mult = &g3
			}
		}
	case xymwaList:
		if p2 != p3 || p3 != p4 {
			return PeakAssignment{}, fmt.Errorf("%w: %q for %s", ErrAmbiguous, tuple, list)
		}
		if p2 {
			y, mult, w = &g2, &g3, &g4
		}
	}

	if xs == "" {
		return PeakAssignment{}, fmt.Errorf("%w: missing x in %q for %s", ErrIllegalEntry, tuple, list)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return PeakAssignment{}, fmt.Errorf("%w: %q in %q", ErrNumber, xs, tuple)
	}
	a := PeakAssignment{X: x, A: text}
	if y != nil {
		f, err := optionalFloat(*y)
		if err != nil {
			return PeakAssignment{}, err
		}
		a.Y = &f
	}
	if w != nil {
		f, err := optionalFloat(*w)
		if err != nil {
			return PeakAssignment{}, err
		}
		a.W = &f
	}
	if mult != nil {
		s := strings.TrimSpace(*mult)
		a.M = &s
	}
	return a, nil
}
