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

type AuditEntry struct {
	Number  int64
	When    string
	Who     string
	Where   string
	Process string
	Version string
	What    string
}

type AuditTrail struct {
	VariableList string
	// Columns lists the entry fields in variable list order, lower case.
	Columns []string
	Entries []AuditEntry
}

var auditLists = map[string][]string{
	"(NUMBER,WHEN,WHO,WHERE,WHAT)":                 {"number", "when", "who", "where", "what"},
	"(NUMBER,WHEN,WHO,WHERE,VERSION,WHAT)":         {"number", "when", "who", "where", "version", "what"},
	"(NUMBER,WHEN,WHO,WHERE,PROCESS,VERSION,WHAT)": {"number", "when", "who", "where", "process", "version", "what"},
}

var (
	auditEntryRe = regexp.MustCompile(`(?s)^\(\s*(\d+)\s*,\s*<(.*?)>\s*,\s*<(.*?)>\s*,\s*<(.*?)>\s*(?:,\s*<(.*?)>\s*)?(?:,\s*<(.*?)>\s*)?,\s*<(.*)>\s*\)$`)
	auditEndRe   = regexp.MustCompile(`>\s*\)\s*$`)
)

// ParseAuditTrail reads entries until the next LDR, which is left unread.
// The variable list is taken from value, or from its comment when the value
// itself is blank.
func ParseAuditTrail(lr *stream.LineReader, value string) (*AuditTrail, error) {
	content, comment, _ := stripComment(value)
	list := strings.ToUpper(removeSpace(content))
	if list == "" {
		list = strings.ToUpper(removeSpace(comment))
	}
	cols, ok := auditLists[list]
	if !ok {
		return nil, fmt.Errorf("%w: AUDIT TRAIL %q", ErrVariableList, value)
	}
	at := &AuditTrail{VariableList: list, Columns: cols}
	for {
		pos := lr.Pos()
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return at, nil
		}
		if err != nil {
			return nil, ioErr(err)
		}
		if sectionEnd(line) {
			return at, seek(lr, pos)
		}
		trimmed := strings.TrimSpace(line)
		if c, _, _ := stripComment(trimmed); isBlank(c) {
			continue
		}
		if !strings.HasPrefix(trimmed, "(") {
			return nil, fmt.Errorf("%w: %q in AUDIT TRAIL", ErrIllegalString, trimmed)
		}
		entry, err := readAuditEntry(lr, trimmed)
		if err != nil {
			return nil, err
		}
		e, err := parseAuditEntry(entry, list, len(cols))
		if err != nil {
			return nil, err
		}
		at.Entries = append(at.Entries, e)
	}
}

// readAuditEntry joins lines with "\n" until the entry closes.
func readAuditEntry(lr *stream.LineReader, first string) (string, error) {
	entry := first
	for !auditEndRe.MatchString(entry) {
		pos := lr.Pos()
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: file ended before closing parenthesis in audit entry %q", ErrUnterminated, entry)
		}
		if err != nil {
			return "", ioErr(err)
		}
		if isLDRStart(line) {
			if err := seek(lr, pos); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: no closing parenthesis found for audit entry %q", ErrUnterminated, entry)
		}
		entry += "\n" + line
	}
	return strings.TrimSpace(entry), nil
}

func parseAuditEntry(entry, list string, fields int) (AuditEntry, error) {
	m := auditEntryRe.FindStringSubmatchIndex(entry)
	if m == nil {
		return AuditEntry{}, fmt.Errorf("%w: %q for %s", ErrIllegalEntry, entry, list)
	}
	group := func(i int) (string, bool) {
		if m[2*i] < 0 {
			return "", false
		}
		return entry[m[2*i]:m[2*i+1]], true
	}
	g5, p5 := group(5)
	g6, p6 := group(6)
	optional := 0
	if p5 {
		optional++
	}
	if p6 {
		optional++
	}
	if optional != fields-5 {
		return AuditEntry{}, fmt.Errorf("%w: %q has %d fields, want %d for %s", ErrIllegalEntry, entry, 5+optional, fields, list)
	}
	num, _ := group(1)
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return AuditEntry{}, fmt.Errorf("%w: audit entry number %q", ErrNumber, num)
	}
	e := AuditEntry{Number: n}
	e.When, _ = group(2)
	e.Who, _ = group(3)
	e.Where, _ = group(4)
	e.What, _ = group(7)
	switch fields {
	case 6:
		e.Version = g5
	case 7:
		e.Process, e.Version = g5, g6
	}
	return e, nil
}
