package jdx

import (
	"fmt"
	"strconv"
	"strings"
)

// LDR is a labeled data record. Label is normalized (see NormalizeLabel).
type LDR struct {
	Label string
	Value string
}

type LabelKind int

const (
	StandardLabel LabelKind = iota
	// UserLabel labels start with '$'.
	UserLabel
	// TechniqueLabel labels start with '.'.
	TechniqueLabel
)

func (l LDR) Kind() LabelKind {
	switch {
	case strings.HasPrefix(l.Label, "$"):
		return UserLabel
	case strings.HasPrefix(l.Label, "."):
		return TechniqueLabel
	default:
		return StandardLabel
	}
}

// NormalizeLabel strips the "##" marker and trailing '=', upper-cases and
// removes spaces, '-', '/' and '_', so that "##Peak_Table=" and
// "##PEAK TABLE=" both become "PEAKTABLE".
func NormalizeLabel(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "##")
	s = strings.TrimSuffix(s, "=")
	b := strings.Builder{}
	for _, r := range strings.ToUpper(s) {
		switch r {
		case ' ', '\t', '-', '/', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isLDRStart(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "##")
}

// parseLDRLine splits an LDR start line into normalized label and trimmed
// value.
func parseLDRLine(line string) (string, string, error) {
	s := strings.TrimLeft(line, " \t")
	raw, value, found := strings.Cut(strings.TrimPrefix(s, "##"), "=")
	if !found {
		return "", "", fmt.Errorf("%w: no '=' in LDR %q", ErrUnexpected, line)
	}
	return NormalizeLabel(raw), strings.TrimSpace(value), nil
}

// stripComment splits s at the first "$$".
func stripComment(s string) (content, comment string, hasComment bool) {
	i := strings.Index(s, "$$")
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+2:], true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func findLDR(ldrs []LDR, label string) (string, bool) {
	for _, l := range ldrs {
		if l.Label == label {
			return l.Value, true
		}
	}
	return "", false
}

// numericValue parses an LDR value ignoring a trailing comment.
func numericValue(label, value string) (float64, error) {
	content, _, _ := stripComment(value)
	f, err := strconv.ParseFloat(strings.TrimSpace(content), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrNumber, label, value)
	}
	return f, nil
}

func removeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t':
			return -1
		}
		return r
	}, s)
}
