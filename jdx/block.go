package jdx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sciformats/go-sciformats/debug"
	"github.com/sciformats/go-sciformats/stream"
)

// Block is a parsed ##TITLE= ... ##END= block. LDRs holds the ordinary
// records in file order; the data sections and nested structures are
// split out.
type Block struct {
	LDRs []LDR

	BrukerRelaxSections      []*BrukerRelaxSection
	BrukerSpecificParameters []*BrukerSpecificParameters
	NTuples                  *NTuples
	AuditTrail               *AuditTrail
	Blocks                   []*Block

	XYData          *DataSection
	RAData          *DataSection
	XYPoints        *DataSection
	PeakTable       *PeakTable
	PeakAssignments *PeakAssignments
}

// Title is the value of the block's TITLE record.
func (b *Block) Title() string {
	v, _ := b.LDR("TITLE")
	return v
}

// LDR looks up a record by label. The label is normalized first.
func (b *Block) LDR(label string) (string, bool) {
	return findLDR(b.LDRs, NormalizeLabel(label))
}

type blockParser struct {
	lr      *stream.LineReader
	block   *Block
	pending *LDR
}

// ParseBlock parses one block starting at the current position of lr, which
// must be at a ##TITLE= record optionally preceded by blank lines. On
// success lr is positioned after the block's ##END= line.
func ParseBlock(lr *stream.LineReader) (*Block, error) {
	title, err := readBlockStart(lr)
	if err != nil {
		return nil, err
	}
	p := &blockParser{
		lr:      lr,
		block:   &Block{},
		pending: &LDR{Label: "TITLE", Value: title},
	}
	return p.parse()
}

func readBlockStart(lr *stream.LineReader) (string, error) {
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: no TITLE found", ErrBlockStart)
		}
		if err != nil {
			return "", ioErr(err)
		}
		if isBlank(line) {
			continue
		}
		if !isLDRStart(line) {
			return "", fmt.Errorf("%w: found %q", ErrBlockStart, line)
		}
		label, value, err := parseLDRLine(line)
		if err != nil {
			return "", err
		}
		if label != "TITLE" {
			return "", fmt.Errorf("%w: found %q", ErrBlockStart, line)
		}
		return value, nil
	}
}

func (p *blockParser) title() string {
	if len(p.block.LDRs) > 0 {
		return p.block.LDRs[0].Value
	}
	if p.pending != nil {
		return p.pending.Value
	}
	return ""
}

func (p *blockParser) flush() {
	if p.pending != nil {
		p.block.LDRs = append(p.block.LDRs, *p.pending)
		p.pending = nil
	}
}

func (p *blockParser) parse() (*Block, error) {
	for {
		pos := p.lr.Pos()
		line, err := p.lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: block %q has no END", ErrUnterminated, p.title())
		}
		if err != nil {
			return nil, ioErr(err)
		}
		if !isLDRStart(line) {
			if err := p.text(line); err != nil {
				return nil, err
			}
			continue
		}
		p.flush()
		label, value, err := parseLDRLine(line)
		if err != nil {
			return nil, err
		}
		done, err := p.record(pos, label, value)
		if err != nil {
			return nil, err
		}
		if done {
			return p.block, nil
		}
	}
}

// text handles a line that does not start an LDR: a continuation of the
// pending record, a comment or a blank line.
func (p *blockParser) text(line string) error {
	content, comment, hasComment := stripComment(line)
	if !isBlank(content) {
		if p.pending == nil {
			return errUnexpectedLine(line, p.title())
		}
		p.pending.Value += "\n" + line
		return nil
	}
	if hasComment && isBrukerParamsStart(comment) {
		p.flush()
		sec, err := ParseBrukerSpecificParameters(p.lr, comment)
		if err != nil {
			return err
		}
		p.block.BrukerSpecificParameters = append(p.block.BrukerSpecificParameters, sec)
	}
	return nil
}

func (p *blockParser) duplicate(label string) error {
	return fmt.Errorf("%w: %s in block %q", ErrDuplicate, label, p.title())
}

// record dispatches an LDR. It reports done at the block's END.
func (p *blockParser) record(pos int64, label, value string) (bool, error) {
	b := p.block
	if debug.JDX() {
		debug.Logf("jdx: %q at %d in block %q\n", label, pos, p.title())
	}
	varList, _, _ := stripComment(value)
	varList = strings.TrimSpace(varList)
	switch label {
	case "END":
		return true, nil
	case "":
		// ##= comment record
	case "TITLE":
		if err := seek(p.lr, pos); err != nil {
			return false, err
		}
		child, err := ParseBlock(p.lr)
		if err != nil {
			return false, err
		}
		b.Blocks = append(b.Blocks, child)
	case "XYDATA", "RADATA", "XYPOINTS":
		sec, err := p.dataSection(label, varList)
		if err != nil {
			return false, err
		}
		switch label {
		case "XYDATA":
			if b.XYData != nil {
				return false, p.duplicate(label)
			}
			b.XYData = sec
		case "RADATA":
			if b.RAData != nil {
				return false, p.duplicate(label)
			}
			b.RAData = sec
		default:
			if b.XYPoints != nil {
				return false, p.duplicate(label)
			}
			b.XYPoints = sec
		}
	case "PEAKTABLE":
		if b.PeakTable != nil {
			return false, p.duplicate("PEAK TABLE")
		}
		pt, err := ParsePeakTable(p.lr, varList)
		if err != nil {
			return false, err
		}
		b.PeakTable = pt
	case "PEAKASSIGNMENTS":
		if b.PeakAssignments != nil {
			return false, p.duplicate("PEAK ASSIGNMENTS")
		}
		pa, err := ParsePeakAssignments(p.lr, varList)
		if err != nil {
			return false, err
		}
		b.PeakAssignments = pa
	case "NTUPLES":
		if b.NTuples != nil {
			return false, p.duplicate("NTUPLES")
		}
		nt, err := ParseNTuples(p.lr, varList)
		if err != nil {
			return false, err
		}
		b.NTuples = nt
	case "AUDITTRAIL":
		if b.AuditTrail != nil {
			return false, p.duplicate("AUDIT TRAIL")
		}
		at, err := ParseAuditTrail(p.lr, value)
		if err != nil {
			return false, err
		}
		b.AuditTrail = at
	case "$RELAX":
		sec, err := ParseBrukerRelaxSection(p.lr, varList)
		if err != nil {
			return false, err
		}
		b.BrukerRelaxSections = append(b.BrukerRelaxSections, sec)
	default:
		p.pending = &LDR{Label: label, Value: value}
	}
	return false, nil
}

// dataSection builds an XYDATA, RADATA or XYPOINTS section from the
// block records seen so far.
func (p *blockParser) dataSection(label, varList string) (*DataSection, error) {
	mode, xs, ys, err := parseVariableList(varList)
	if err != nil {
		return nil, err
	}
	ldrs := p.block.LDRs
	num := func(l string) (*float64, error) {
		v, ok := findLDR(ldrs, l)
		if !ok {
			return nil, nil
		}
		f, err := numericValue(l, v)
		if err != nil {
			return nil, err
		}
		return &f, nil
	}
	params := dataParams{XFactor: 1, YFactor: 1, NPoints: -1}
	params.XUnits, _ = findLDR(ldrs, xs+"UNITS")
	params.YUnits, _ = findLDR(ldrs, ys+"UNITS")
	if params.First, err = num("FIRST" + xs); err != nil {
		return nil, err
	}
	if params.Last, err = num("LAST" + xs); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		label string
		dst   *float64
	}{{xs + "FACTOR", &params.XFactor}, {ys + "FACTOR", &params.YFactor}} {
		v, err := num(f.label)
		if err != nil {
			return nil, err
		}
		if v != nil {
			*f.dst = *v
		}
	}
	n, err := num("NPOINTS")
	if err != nil {
		return nil, err
	}
	if n != nil {
		params.NPoints = int(*n)
	}
	return newDataSection(p.lr, label, varList, "", mode, params)
}
