package jdx

import (
	"strings"

	"github.com/sciformats/go-sciformats/ir"
	"github.com/sciformats/go-sciformats/ir/npath"
)

const auditTrailName = "Audit Trail"

// child categories of a block, in index order.
const (
	relaxSlot = iota
	brukerSlot
	ntuplesSlot
	auditSlot
	blockSlot
)

func (b *Block) childRanges() []npath.Range {
	return []npath.Range{
		relaxSlot:   {Len: len(b.BrukerRelaxSections)},
		brukerSlot:  {Len: len(b.BrukerSpecificParameters)},
		ntuplesSlot: {Len: boolLen(b.NTuples != nil)},
		auditSlot:   {Len: boolLen(b.AuditTrail != nil)},
		blockSlot:   {Len: len(b.Blocks)},
	}
}

func boolLen(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (b *Block) childNames() []string {
	names := make([]string, 0, npath.Total(b.childRanges()))
	for _, s := range b.BrukerRelaxSections {
		names = append(names, s.Name)
	}
	for _, s := range b.BrukerSpecificParameters {
		names = append(names, s.Title)
	}
	if b.NTuples != nil {
		names = append(names, b.NTuples.DataForm)
	}
	if b.AuditTrail != nil {
		names = append(names, auditTrailName)
	}
	for _, c := range b.Blocks {
		names = append(names, c.Title())
	}
	return names
}

func ldrParams(ldrs []LDR) []ir.Parameter {
	ps := make([]ir.Parameter, len(ldrs))
	for i, l := range ldrs {
		ps[i] = ir.StringParam(l.Label, l.Value)
	}
	return ps
}

func unitMetadata(x, y string) []ir.KeyValue {
	var md []ir.KeyValue
	if x != "" {
		md = append(md, ir.KeyValue{Key: "x.unit", Value: x})
	}
	if y != "" {
		md = append(md, ir.KeyValue{Key: "y.unit", Value: y})
	}
	return md
}

// Node projects the block. Bulk data is decoded here.
func (b *Block) Node() (*ir.Node, error) {
	n := &ir.Node{
		Name:           b.Title(),
		Parameters:     ldrParams(b.LDRs),
		ChildNodeNames: b.childNames(),
	}
	xu, _ := b.LDR("XUNITS")
	yu, _ := b.LDR("YUNITS")
	var sec *DataSection
	switch {
	case b.XYData != nil:
		sec = b.XYData
	case b.RAData != nil:
		sec = b.RAData
	case b.XYPoints != nil:
		sec = b.XYPoints
	}
	switch {
	case sec != nil:
		pts, err := sec.Points()
		if err != nil {
			return nil, err
		}
		n.Data = pts
		xu, yu = sec.XUnits, sec.YUnits
	case b.PeakTable != nil:
		n.Data = make([]ir.Point, len(b.PeakTable.Peaks))
		for i, p := range b.PeakTable.Peaks {
			n.Data[i] = ir.Point{X: p.X, Y: p.Y}
		}
	}
	n.Metadata = unitMetadata(xu, yu)
	switch {
	case b.PeakTable != nil:
		n.Table = b.PeakTable.Table()
	case b.PeakAssignments != nil:
		n.Table = b.PeakAssignments.Table()
	}
	return n, nil
}

// Table has one row per peak, in file order.
func (pt *PeakTable) Table() *ir.Table {
	t := &ir.Table{Columns: []ir.Column{{Key: "x", Name: "Peak Position"}, {Key: "y", Name: "Intensity"}}}
	switch pt.VariableList {
	case xywList:
		t.Columns = append(t.Columns, ir.Column{Key: "w", Name: "Width"})
	case xymList:
		t.Columns = append(t.Columns, ir.Column{Key: "m", Name: "Multiplicity"})
	}
	t.Rows = make([]map[string]ir.Value, len(pt.Peaks))
	for i, p := range pt.Peaks {
		row := map[string]ir.Value{"x": ir.FromFloat(p.X), "y": ir.FromFloat(p.Y)}
		if p.W != nil {
			row["w"] = ir.FromFloat(*p.W)
		}
		if p.M != "" {
			row["m"] = ir.FromString(p.M)
		}
		t.Rows[i] = row
	}
	return t
}

func (pa *PeakAssignments) Table() *ir.Table {
	t := &ir.Table{Columns: []ir.Column{{Key: "x", Name: "Peak Position"}, {Key: "y", Name: "Intensity"}}}
	switch pa.VariableList {
	case xywaList:
		t.Columns = append(t.Columns, ir.Column{Key: "w", Name: "Width"})
	case xymaList:
		t.Columns = append(t.Columns, ir.Column{Key: "m", Name: "Multiplicity"})
	case xymwaList:
		t.Columns = append(t.Columns, ir.Column{Key: "m", Name: "Multiplicity"}, ir.Column{Key: "w", Name: "Width"})
	}
	t.Columns = append(t.Columns, ir.Column{Key: "a", Name: "Assignment"})
	t.Rows = make([]map[string]ir.Value, len(pa.Assignments))
	for i, a := range pa.Assignments {
		row := map[string]ir.Value{"x": ir.FromFloat(a.X), "a": ir.FromString(a.A)}
		if a.Y != nil {
			row["y"] = ir.FromFloat(*a.Y)
		}
		if a.W != nil {
			row["w"] = ir.FromFloat(*a.W)
		}
		if a.M != nil {
			row["m"] = ir.FromString(*a.M)
		}
		t.Rows[i] = row
	}
	return t
}

func (s *BrukerRelaxSection) Node() *ir.Node {
	ps := ldrParams(s.Header)
	ps = append(ps, ir.Parameter{Value: ir.FromString(s.Content)})
	return &ir.Node{Name: s.Name, Parameters: ps}
}

func (s *BrukerSpecificParameters) Node() *ir.Node {
	return &ir.Node{Name: s.Title, Parameters: ldrParams(s.LDRs)}
}

func (at *AuditTrail) Node() *ir.Node {
	t := &ir.Table{}
	for _, c := range at.Columns {
		t.Columns = append(t.Columns, ir.Column{Key: c, Name: strings.ToUpper(c[:1]) + c[1:]})
	}
	t.Rows = make([]map[string]ir.Value, len(at.Entries))
	for i, e := range at.Entries {
		row := map[string]ir.Value{
			"number": ir.FromInt(e.Number),
			"when":   ir.FromString(e.When),
			"who":    ir.FromString(e.Who),
			"where":  ir.FromString(e.Where),
			"what":   ir.FromString(e.What),
		}
		switch len(at.Columns) {
		case 7:
			row["process"] = ir.FromString(e.Process)
			fallthrough
		case 6:
			row["version"] = ir.FromString(e.Version)
		}
		t.Rows[i] = row
	}
	return &ir.Node{
		Name:       auditTrailName,
		Parameters: []ir.Parameter{ir.StringParam("variable list", at.VariableList)},
		Table:      t,
	}
}

var variableColumns = []ir.Column{
	{Key: "name", Name: "Name"},
	{Key: "symbol", Name: "Symbol"},
	{Key: "type", Name: "Type"},
	{Key: "form", Name: "Form"},
	{Key: "dim", Name: "Dimension"},
	{Key: "units", Name: "Units"},
	{Key: "first", Name: "First"},
	{Key: "last", Name: "Last"},
	{Key: "min", Name: "Min"},
	{Key: "max", Name: "Max"},
	{Key: "factor", Name: "Factor"},
}

func (nt *NTuples) Node() *ir.Node {
	t := &ir.Table{Columns: variableColumns, Rows: make([]map[string]ir.Value, len(nt.Variables))}
	for i, v := range nt.Variables {
		row := map[string]ir.Value{}
		for k, s := range map[string]string{"name": v.Name, "symbol": v.Symbol, "type": v.Type, "form": v.Form, "units": v.Units} {
			if s != "" {
				row[k] = ir.FromString(s)
			}
		}
		if v.Dim != nil {
			row["dim"] = ir.FromInt(int64(*v.Dim))
		}
		for k, f := range map[string]*float64{"first": v.First, "last": v.Last, "min": v.Min, "max": v.Max, "factor": v.Factor} {
			if f != nil {
				row[k] = ir.FromFloat(*f)
			}
		}
		t.Rows[i] = row
	}
	names := make([]string, len(nt.Pages))
	for i, p := range nt.Pages {
		names[i] = p.Value
	}
	return &ir.Node{
		Name:           nt.DataForm,
		Parameters:     ldrParams(nt.LDRs),
		Table:          t,
		ChildNodeNames: names,
	}
}

func (p *Page) Node() (*ir.Node, error) {
	n := &ir.Node{Name: p.Value, Parameters: ldrParams(p.LDRs)}
	if p.DataTable == nil {
		return n, nil
	}
	n.Parameters = append(n.Parameters, ir.StringParam("DATATABLE", p.DataTable.VariableList))
	if p.DataTable.PlotDescriptor != "" {
		n.Parameters = append(n.Parameters, ir.StringParam("PLOTDESCRIPTOR", p.DataTable.PlotDescriptor))
	}
	pts, err := p.DataTable.Points()
	if err != nil {
		return nil, err
	}
	n.Data = pts
	n.Metadata = unitMetadata(p.DataTable.XUnits, p.DataTable.YUnits)
	return n, nil
}
