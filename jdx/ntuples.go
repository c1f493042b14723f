package jdx

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sciformats/go-sciformats/stream"
)

// Variable is one NTUPLES column as declared by the comma separated
// attribute LDRs (VAR_NAME, SYMBOL, ...). Unset attributes are empty or nil.
type Variable struct {
	Name   string
	Symbol string
	Type   string
	Form   string
	Dim    *int
	Units  string
	First  *float64
	Last   *float64
	Min    *float64
	Max    *float64
	Factor *float64
}

// Page is one ##PAGE= of an NTUPLES section.
type Page struct {
	Value     string
	LDRs      []LDR
	DataTable *DataSection
}

type NTuples struct {
	DataForm  string
	LDRs      []LDR
	Variables []Variable
	Pages     []*Page
}

var attributeLabels = map[string]bool{
	"VARNAME": true,
	"SYMBOL":  true,
	"VARTYPE": true,
	"VARFORM": true,
	"VARDIM":  true,
	"UNITS":   true,
	"FIRST":   true,
	"LAST":    true,
	"MIN":     true,
	"MAX":     true,
	"FACTOR":  true,
}

// ParseNTuples reads an NTUPLES section up to and including its
// ##END NTUPLES= record.
func ParseNTuples(lr *stream.LineReader, dataForm string) (*NTuples, error) {
	nt := &NTuples{DataForm: dataForm}
	var (
		page    *Page
		pending *LDR
	)
	flush := func() {
		if pending == nil {
			return
		}
		if page != nil {
			page.LDRs = append(page.LDRs, *pending)
		} else {
			nt.LDRs = append(nt.LDRs, *pending)
		}
		pending = nil
	}
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: NTUPLES %q has no END NTUPLES", ErrUnterminated, dataForm)
		}
		if err != nil {
			return nil, ioErr(err)
		}
		if !isLDRStart(line) {
			content, _, _ := stripComment(line)
			if isBlank(content) {
				continue
			}
			if pending == nil {
				return nil, fmt.Errorf("%w: %q in NTUPLES %q", ErrUnexpected, line, dataForm)
			}
			pending.Value += "\n" + line
			continue
		}
		flush()
		label, value, err := parseLDRLine(line)
		if err != nil {
			return nil, err
		}
		switch label {
		case "ENDNTUPLES":
			if nt.Variables == nil {
				if nt.Variables, err = parseVariables(nt.LDRs); err != nil {
					return nil, err
				}
			}
			return nt, nil
		case "END", "TITLE":
			return nil, fmt.Errorf("%w: NTUPLES %q not closed before %s", ErrUnterminated, dataForm, label)
		case "PAGE":
			if nt.Variables == nil {
				if nt.Variables, err = parseVariables(nt.LDRs); err != nil {
					return nil, err
				}
			}
			page = &Page{Value: value}
			nt.Pages = append(nt.Pages, page)
		case "DATATABLE":
			if page == nil {
				return nil, fmt.Errorf("%w: DATA TABLE outside PAGE in NTUPLES %q", ErrUnexpected, dataForm)
			}
			if page.DataTable != nil {
				return nil, fmt.Errorf("%w: DATA TABLE in page %q", ErrDuplicate, page.Value)
			}
			if page.DataTable, err = parseDataTable(lr, nt, page, value); err != nil {
				return nil, err
			}
		default:
			pending = &LDR{Label: label, Value: value}
		}
	}
}

// parseVariables spreads the attribute LDRs over columns: item i of every
// list belongs to variable i.
func parseVariables(ldrs []LDR) ([]Variable, error) {
	vars := []Variable{}
	for _, l := range ldrs {
		if !attributeLabels[l.Label] {
			continue
		}
		content, _, _ := stripComment(l.Value)
		items := strings.Split(content, ",")
		for len(vars) < len(items) {
			vars = append(vars, Variable{})
		}
		for i, item := range items {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if err := setAttribute(&vars[i], l.Label, item); err != nil {
				return nil, err
			}
		}
	}
	return vars, nil
}

func setAttribute(v *Variable, label, item string) error {
	num := func() (*float64, error) {
		f, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s item %q", ErrNumber, label, item)
		}
		return &f, nil
	}
	var err error
	switch label {
	case "VARNAME":
		v.Name = item
	case "SYMBOL":
		v.Symbol = item
	case "VARTYPE":
		v.Type = item
	case "VARFORM":
		v.Form = item
	case "UNITS":
		v.Units = item
	case "VARDIM":
		n, aerr := strconv.Atoi(item)
		if aerr != nil {
			return fmt.Errorf("%w: %s item %q", ErrNumber, label, item)
		}
		v.Dim = &n
	case "FIRST":
		v.First, err = num()
	case "LAST":
		v.Last, err = num()
	case "MIN":
		v.Min, err = num()
	case "MAX":
		v.Max, err = num()
	case "FACTOR":
		v.Factor, err = num()
	}
	return err
}

func (nt *NTuples) variable(symbol string) *Variable {
	for i := range nt.Variables {
		if strings.EqualFold(nt.Variables[i].Symbol, symbol) {
			return &nt.Variables[i]
		}
	}
	return nil
}

// splitDataTable separates "(X++(R..R)), XYDATA" into variable list and
// plot descriptor.
func splitDataTable(value string) (string, string) {
	content, _, _ := stripComment(value)
	content = strings.TrimSpace(content)
	i := strings.LastIndex(content, ",")
	if i < 0 || i < strings.LastIndex(content, ")") {
		return content, ""
	}
	return strings.TrimSpace(content[:i]), strings.TrimSpace(content[i+1:])
}

func parseDataTable(lr *stream.LineReader, nt *NTuples, page *Page, value string) (*DataSection, error) {
	varList, plot := splitDataTable(value)
	mode, xs, ys, err := parseVariableList(varList)
	if err != nil {
		return nil, err
	}
	xv, yv := nt.variable(xs), nt.variable(ys)
	if xv == nil || yv == nil {
		return nil, fmt.Errorf("%w: no SYMBOL %s and %s for DATA TABLE %q", ErrMissingLDR, xs, ys, varList)
	}
	p := dataParams{
		First:   xv.First,
		Last:    xv.Last,
		XFactor: factor(xv.Factor),
		YFactor: factor(yv.Factor),
		NPoints: -1,
		XUnits:  xv.Units,
		YUnits:  yv.Units,
	}
	switch {
	case mode == tupleMode:
	case yv.Dim != nil:
		p.NPoints = *yv.Dim
	case xv.Dim != nil:
		p.NPoints = *xv.Dim
	}
	for _, l := range page.LDRs {
		var err error
		switch l.Label {
		case "NPOINTS":
			var f float64
			f, err = numericValue(l.Label, l.Value)
			p.NPoints = int(f)
		case "FIRST" + xs:
			var f float64
			f, err = numericValue(l.Label, l.Value)
			p.First = &f
		case "LAST" + xs:
			var f float64
			f, err = numericValue(l.Label, l.Value)
			p.Last = &f
		case xs + "FACTOR":
			p.XFactor, err = numericValue(l.Label, l.Value)
		case ys + "FACTOR":
			p.YFactor, err = numericValue(l.Label, l.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	return newDataSection(lr, "DATATABLE", varList, plot, mode, p)
}

func factor(f *float64) float64 {
	if f == nil {
		return 1
	}
	return *f
}
