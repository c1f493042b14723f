package andi

import (
	"fmt"

	"github.com/sciformats/go-sciformats/ir"
)

const (
	chromatographyRevision = "aia_template_revision"
	chromatographyName     = "AnDI Chromatography"
	chromatogramName       = "Chromatogram"
	peaksName              = "Peaks"
)

// peakColumns are the optional per-peak variables, in table column order.
var peakColumns = []ir.Column{
	{Key: "peak_retention_time", Name: "Retention Time"},
	{Key: "peak_name", Name: "Name"},
	{Key: "peak_amount", Name: "Amount"},
	{Key: "peak_start_time", Name: "Start Time"},
	{Key: "peak_end_time", Name: "End Time"},
	{Key: "peak_width", Name: "Width"},
	{Key: "peak_area", Name: "Area"},
	{Key: "peak_area_percent", Name: "Area Percent"},
	{Key: "peak_height", Name: "Height"},
	{Key: "peak_height_percent", Name: "Height Percent"},
	{Key: "baseline_start_time", Name: "Baseline Start Time"},
	{Key: "baseline_start_value", Name: "Baseline Start Value"},
	{Key: "baseline_stop_time", Name: "Baseline Stop Time"},
	{Key: "baseline_stop_value", Name: "Baseline Stop Value"},
}

// chromatogramParams are scalar variables copied to the chromatogram node.
var chromatogramParams = []string{
	"actual_sampling_interval",
	"actual_delay_time",
	"actual_run_time_length",
	"detector_maximum_value",
	"detector_minimum_value",
}

// Chromatography is a parsed AIA (ASTM E1947) file.
type Chromatography struct {
	Attributes []ir.Parameter

	Parameters []ir.Parameter
	Data       []ir.Point
	XUnit      string
	YUnit      string

	Peaks *ir.Table
}

func parseChromatography(ds Dataset) (*Chromatography, error) {
	c := &Chromatography{Attributes: attrParams(ds.Attributes())}
	ys, err := floats(ds, "ordinate_values")
	if err != nil {
		return nil, err
	}
	interval, ok, err := scalar(ds, "actual_sampling_interval")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: actual_sampling_interval", ErrMissingVariable)
	}
	delay, _, err := scalar(ds, "actual_delay_time")
	if err != nil {
		return nil, err
	}
	c.Data = make([]ir.Point, len(ys))
	for i, y := range ys {
		c.Data[i] = ir.Point{X: delay + float64(i)*interval, Y: y}
	}
	for _, name := range chromatogramParams {
		v, ok, err := scalar(ds, name)
		if err != nil {
			return nil, err
		}
		if ok {
			c.Parameters = append(c.Parameters, ir.Param(name, ir.FromFloat(v)))
		}
	}
	c.XUnit, _ = attrString(ds.Attributes(), "retention_unit")
	c.YUnit, _ = attrString(ds.Attributes(), "detector_unit")

	if c.Peaks, err = parsePeaks(ds); err != nil {
		return nil, err
	}
	return c, nil
}

func parsePeaks(ds Dataset) (*ir.Table, error) {
	t := &ir.Table{Rows: []map[string]ir.Value{}}
	for _, col := range peakColumns {
		if !hasVariable(ds, col.Key) {
			continue
		}
		v, err := variable(ds, col.Key)
		if err != nil {
			return nil, err
		}
		var cells []ir.Value
		if names, err := toStrings(v.Values); err == nil {
			for _, n := range names {
				cells = append(cells, ir.FromString(n))
			}
		} else {
			fs, err := toFloats(v.Values)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", col.Key, err)
			}
			for _, f := range fs {
				cells = append(cells, ir.FromFloat(f))
			}
		}
		t.Columns = append(t.Columns, col)
		for len(t.Rows) < len(cells) {
			t.Rows = append(t.Rows, map[string]ir.Value{})
		}
		for i, cell := range cells {
			t.Rows[i][col.Key] = cell
		}
	}
	return t, nil
}

func (c *Chromatography) rootNode() *ir.Node {
	return &ir.Node{
		Name:           chromatographyName,
		Parameters:     c.Attributes,
		ChildNodeNames: []string{chromatogramName, peaksName},
	}
}

func (c *Chromatography) chromatogramNode() *ir.Node {
	return &ir.Node{
		Name:       chromatogramName,
		Parameters: c.Parameters,
		Data:       c.Data,
		Metadata:   units(c.XUnit, c.YUnit),
	}
}

func (c *Chromatography) peaksNode() *ir.Node {
	return &ir.Node{Name: peaksName, Table: c.Peaks}
}
