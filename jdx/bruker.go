package jdx

import (
	"errors"
	"io"
	"strings"

	"github.com/sciformats/go-sciformats/stream"
)

const (
	brukerParamsStart = "Bruker specific parameters"
	brukerParamsEnd   = "End of Bruker specific parameters"
	brukerRelaxName   = "Bruker RELAX section"
)

// BrukerRelaxSection is a ##$RELAX= section: ##$BRUKER header LDRs followed
// by raw content lines up to the next LDR.
type BrukerRelaxSection struct {
	Name    string
	Header  []LDR
	Content string
}

// BrukerSpecificParameters is the run of '$' LDRs introduced by a
// "$$ Bruker specific parameters" comment line.
type BrukerSpecificParameters struct {
	Title string
	LDRs  []LDR
}

func isBrukerParamsStart(comment string) bool {
	return strings.HasPrefix(strings.TrimSpace(comment), brukerParamsStart)
}

// isDashRule reports whether line is a "$$ -----" separator.
func isDashRule(line string) bool {
	content, comment, ok := stripComment(line)
	if !ok || !isBlank(content) {
		return false
	}
	c := strings.TrimSpace(comment)
	return c != "" && strings.Trim(c, "-") == ""
}

// ParseBrukerRelaxSection reads the section following a ##$RELAX= record.
// The next non header LDR is left unread.
func ParseBrukerRelaxSection(lr *stream.LineReader, value string) (*BrukerRelaxSection, error) {
	sec := &BrukerRelaxSection{Name: strings.TrimSpace(value)}
	var content []string
	for {
		pos := lr.Pos()
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ioErr(err)
		}
		if isBrukerParamsLine(line) {
			if err := seek(lr, pos); err != nil {
				return nil, err
			}
			break
		}
		if isLDRStart(line) {
			label, v, err := parseLDRLine(line)
			if err == nil && content == nil && strings.HasPrefix(label, "$BRUKER") {
				sec.Header = append(sec.Header, LDR{Label: label, Value: v})
				if label == "$BRUKERFILEEXP" && v != "" {
					sec.Name = v
				}
				continue
			}
			if err := seek(lr, pos); err != nil {
				return nil, err
			}
			break
		}
		content = append(content, line)
	}
	if sec.Name == "" {
		sec.Name = brukerRelaxName
	}
	sec.Content = strings.Join(content, "\n")
	return sec, nil
}

// ParseBrukerSpecificParameters reads '$' LDRs after the section start
// comment, whose text becomes the title. The section ends at the
// "End of Bruker specific parameters" comment, at another section start,
// at ##$RELAX= or at a non '$' LDR; the latter three are left unread.
func ParseBrukerSpecificParameters(lr *stream.LineReader, title string) (*BrukerSpecificParameters, error) {
	sec := &BrukerSpecificParameters{Title: strings.TrimSpace(title)}
	if err := skipDashRule(lr); err != nil {
		return nil, err
	}
	var pending *LDR
	flush := func() {
		if pending != nil {
			sec.LDRs = append(sec.LDRs, *pending)
			pending = nil
		}
	}
	for {
		pos := lr.Pos()
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			flush()
			return sec, nil
		}
		if err != nil {
			return nil, ioErr(err)
		}
		if !isLDRStart(line) {
			content, comment, hasComment := stripComment(line)
			if !isBlank(content) {
				if pending == nil {
					return nil, errUnexpectedLine(line, sec.Title)
				}
				pending.Value += "\n" + line
				continue
			}
			if !hasComment {
				continue
			}
			c := strings.TrimSpace(comment)
			switch {
			case strings.HasPrefix(c, brukerParamsEnd):
				flush()
				return sec, skipDashRule(lr)
			case isBrukerParamsStart(c):
				flush()
				return sec, seek(lr, pos)
			}
			continue
		}
		flush()
		label, value, err := parseLDRLine(line)
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(label, "$") || label == "$RELAX" {
			return sec, seek(lr, pos)
		}
		pending = &LDR{Label: label, Value: value}
	}
}

func skipDashRule(lr *stream.LineReader) error {
	pos := lr.Pos()
	line, err := lr.ReadLine()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return ioErr(err)
	}
	if isDashRule(line) {
		return nil
	}
	return seek(lr, pos)
}

// isBrukerParamsLine reports a comment-only line that opens a Bruker
// parameter section.
func isBrukerParamsLine(line string) bool {
	content, comment, ok := stripComment(line)
	return ok && isBlank(content) && isBrukerParamsStart(comment)
}

// sectionEnd reports a line that terminates a section body.
func sectionEnd(line string) bool {
	return isLDRStart(line) || isBrukerParamsLine(line)
}
