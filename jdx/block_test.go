package jdx

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sciformats/go-sciformats/ir"
)

const xyDataFile = `##TITLE= Test Spectrum
##JCAMP-DX= 4.24 $$ version
##DATA TYPE= INFRARED SPECTRUM
##ORIGIN= multi
line origin
##XUNITS= 1/CM
##YUNITS= ABSORBANCE
##XFACTOR= 1.0
##YFACTOR= 0.5
##FIRSTX= 450
##LASTX= 454
##NPOINTS= 5
##XYDATA= (X++(Y..Y))
450 10 20 30
453 40 50
##END=
`

func parse(t *testing.T, s string) *Block {
	t.Helper()
	b, err := ParseBlock(lineReader(t, s))
	require.NoError(t, err)
	return b
}

func TestParseBlockXYData(t *testing.T) {
	b := parse(t, xyDataFile)
	assert.Equal(t, "Test Spectrum", b.Title())
	labels := make([]string, len(b.LDRs))
	for i, l := range b.LDRs {
		labels[i] = l.Label
	}
	assert.Equal(t, []string{"TITLE", "JCAMPDX", "DATATYPE", "ORIGIN", "XUNITS", "YUNITS", "XFACTOR", "YFACTOR", "FIRSTX", "LASTX", "NPOINTS"}, labels)
	origin, ok := b.LDR("origin")
	require.True(t, ok)
	assert.Equal(t, "multi\nline origin", origin)
	require.NotNil(t, b.XYData)

	n, err := NewReader(b).Read("")
	require.NoError(t, err)
	want := &ir.Node{
		Name:       "Test Spectrum",
		Parameters: ldrParams(b.LDRs),
		Data: []ir.Point{
			{X: 450, Y: 5}, {X: 451, Y: 10}, {X: 452, Y: 15}, {X: 453, Y: 20}, {X: 454, Y: 25},
		},
		Metadata:       []ir.KeyValue{{Key: "x.unit", Value: "1/CM"}, {Key: "y.unit", Value: "ABSORBANCE"}},
		ChildNodeNames: []string{},
	}
	if diff := cmp.Diff(want, n); diff != "" {
		t.Errorf("node (-want +got):\n%s", diff)
	}

	// data is decoded from the stream on every read
	n2, err := NewReader(b).Read("/")
	require.NoError(t, err)
	assert.Equal(t, n.Data, n2.Data)
}

func TestXYDataCheckValue(t *testing.T) {
	b := parse(t, `##TITLE= DIF
##FIRSTX= 1
##LASTX= 4
##NPOINTS= 4
##XYDATA= (X++(Y..Y))
1A0JJ
3A2J
##END=
`)
	pts, err := b.XYData.Points()
	require.NoError(t, err)
	assert.Equal(t, []ir.Point{{X: 1, Y: 10}, {X: 2, Y: 11}, {X: 3, Y: 12}, {X: 4, Y: 13}}, pts)
}

func TestXYDataErrors(t *testing.T) {
	b := parse(t, `##TITLE= Count
##FIRSTX= 1
##LASTX= 4
##NPOINTS= 5
##XYDATA= (X++(Y..Y))
1 1 2 3 4
##END=
`)
	_, err := b.XYData.Points()
	assert.ErrorIs(t, err, ErrPointCount)
	assert.ErrorIs(t, err, ir.ErrParse)

	_, err = ParseBlock(lineReader(t, "##TITLE= t\n##XYDATA= (X++(Y..Y))\n1 2\n##END=\n"))
	assert.ErrorIs(t, err, ErrMissingLDR)
}

func TestRADataAndXYPoints(t *testing.T) {
	b := parse(t, `##TITLE= RA
##RUNITS= MICROMETERS
##AUNITS= ARBITRARY UNITS
##FIRSTR= 0
##LASTR= 2
##AFACTOR= 2
##NPOINTS= 3
##RADATA= (R++(A..A))
0 1 2 3
##END=
`)
	n, err := NewReader(b).Read("")
	require.NoError(t, err)
	assert.Equal(t, []ir.Point{{X: 0, Y: 2}, {X: 1, Y: 4}, {X: 2, Y: 6}}, n.Data)
	assert.Equal(t, []ir.KeyValue{{Key: "x.unit", Value: "MICROMETERS"}, {Key: "y.unit", Value: "ARBITRARY UNITS"}}, n.Metadata)

	b = parse(t, `##TITLE= Points
##XFACTOR= 10
##YFACTOR= 0.1
##XYPOINTS= (XY..XY)
1, 10; 2, ?
3, 30 $$ last
##END=
`)
	pts, err := b.XYPoints.Points()
	require.NoError(t, err)
	want := []ir.Point{{X: 10, Y: 1}, {X: 20, Y: math.NaN()}, {X: 30, Y: 3}}
	if diff := cmp.Diff(want, pts, cmpopts.EquateNaNs(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("points (-want +got):\n%s", diff)
	}
}

const linkFile = `##TITLE= Root
##JCAMP-DX= 5.01
##DATA TYPE= LINK
##BLOCKS= 2
##TITLE= Child A
##JCAMP-DX= 5.01
##DATA TYPE= INFRARED PEAK TABLE
##XUNITS= 1/CM
##YUNITS= ABSORBANCE
##PEAK TABLE= (XY..XY)
450.0, 10.0; 451.0, 11.0
452.0,
##END=
##TITLE= Child B
##PEAK ASSIGNMENTS= (XYMA)
(1.0, 2.0, S, <H1>)
(3.0, <multi
line>)
##END=
##END=
`

func TestNestedBlocks(t *testing.T) {
	b := parse(t, linkFile)
	require.Len(t, b.Blocks, 2)
	r := NewReader(b)

	root, err := r.Read("")
	require.NoError(t, err)
	assert.Equal(t, "Root", root.Name)
	assert.Equal(t, []string{"Child A", "Child B"}, root.ChildNodeNames)
	assert.Empty(t, root.Data)

	a, err := r.Read("/0-Child A")
	require.NoError(t, err)
	assert.Equal(t, "Child A", a.Name)
	wantData := []ir.Point{{X: 450, Y: 10}, {X: 451, Y: 11}, {X: 452, Y: math.NaN()}}
	if diff := cmp.Diff(wantData, a.Data, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("peak data (-want +got):\n%s", diff)
	}
	require.NotNil(t, a.Table)
	require.Len(t, a.Table.Rows, 3)
	assert.Equal(t, ir.FromFloat(451), a.Table.Rows[1]["x"])
	assert.Equal(t, []ir.KeyValue{{Key: "x.unit", Value: "1/CM"}, {Key: "y.unit", Value: "ABSORBANCE"}}, a.Metadata)

	bb, err := r.Read("/1")
	require.NoError(t, err)
	assert.Equal(t, "Child B", bb.Name)
	require.NotNil(t, bb.Table)
	assert.Equal(t, []ir.Column{
		{Key: "x", Name: "Peak Position"},
		{Key: "y", Name: "Intensity"},
		{Key: "m", Name: "Multiplicity"},
		{Key: "a", Name: "Assignment"},
	}, bb.Table.Columns)
	assert.Equal(t, []map[string]ir.Value{
		{"x": ir.FromFloat(1), "y": ir.FromFloat(2), "m": ir.FromString("S"), "a": ir.FromString("H1")},
		{"x": ir.FromFloat(3), "a": ir.FromString("multi line")},
	}, bb.Table.Rows)

	_, err = r.Read("/2")
	require.ErrorIs(t, err, ir.ErrIllegalPath)
	assert.Contains(t, err.Error(), `"Root"`)
	assert.Contains(t, err.Error(), "2")

	_, err = r.Read("/0/0")
	require.ErrorIs(t, err, ir.ErrIllegalPath)
	assert.Contains(t, err.Error(), `"Child A"`)

	_, err = r.Read("/x")
	assert.Error(t, err)
}

const nmrFile = `##TITLE= NMR
##JCAMP-DX= 6.00
##DATA TYPE= NMR SPECTRUM
##$RELAX=
##$BRUKER FILE EXP= acqus
##$BRUKER FILE INFO= info
$$ line one
$$ line two
$$ Bruker specific parameters
$$ --------------------------
##$NS= 16
##$SW= 12.5
$$ End of Bruker specific parameters
$$ ---------------------------------
##NTUPLES= NMR SPECTRUM
##VAR_NAME= MASS, INTENSITY
##SYMBOL= X, Y
##VAR_TYPE= INDEPENDENT, DEPENDENT
##VAR_DIM= 3, 3
##UNITS= HZ, ARBITRARY UNITS
##FIRST= 10,
##LAST= 30,
##FACTOR= 1, 2
##PAGE= N=1
##DATA TABLE= (X++(Y..Y)), XYDATA
10 1 2 3
##PAGE= N=2
##NPOINTS= 2
##DATA TABLE= (XY..XY), PEAKS
10, 5; 20, 6
##END NTUPLES= NMR SPECTRUM
##AUDIT TRAIL= $$ (NUMBER, WHEN, WHO, WHERE, WHAT)
(1, <2024-01-01>, <alice>, <lab>, <acquired
twice>)
(2, <2024-01-02>, <bob>, <lab>, <processed>)
##END=
`

func TestComposedAddressing(t *testing.T) {
	b := parse(t, nmrFile)
	r := NewReader(b)

	root, err := r.Read("")
	require.NoError(t, err)
	assert.Equal(t, []string{"acqus", "Bruker specific parameters", "NMR SPECTRUM", "Audit Trail"}, root.ChildNodeNames)
	assert.Equal(t, []ir.Parameter{
		ir.StringParam("TITLE", "NMR"),
		ir.StringParam("JCAMPDX", "6.00"),
		ir.StringParam("DATATYPE", "NMR SPECTRUM"),
	}, root.Parameters)

	relax, err := r.Read("/0")
	require.NoError(t, err)
	assert.Equal(t, &ir.Node{
		Name: "acqus",
		Parameters: []ir.Parameter{
			ir.StringParam("$BRUKERFILEEXP", "acqus"),
			ir.StringParam("$BRUKERFILEINFO", "info"),
			{Value: ir.FromString("$$ line one\n$$ line two")},
		},
	}, relax)

	params, err := r.Read("/1")
	require.NoError(t, err)
	assert.Equal(t, &ir.Node{
		Name: "Bruker specific parameters",
		Parameters: []ir.Parameter{
			ir.StringParam("$NS", "16"),
			ir.StringParam("$SW", "12.5"),
		},
	}, params)

	nt, err := r.Read("/2")
	require.NoError(t, err)
	assert.Equal(t, "NMR SPECTRUM", nt.Name)
	assert.Equal(t, []string{"N=1", "N=2"}, nt.ChildNodeNames)
	require.Len(t, nt.Table.Rows, 2)
	assert.Equal(t, map[string]ir.Value{
		"name":   ir.FromString("MASS"),
		"symbol": ir.FromString("X"),
		"type":   ir.FromString("INDEPENDENT"),
		"dim":    ir.FromInt(3),
		"units":  ir.FromString("HZ"),
		"first":  ir.FromFloat(10),
		"last":   ir.FromFloat(30),
		"factor": ir.FromFloat(1),
	}, nt.Table.Rows[0])

	p1, err := r.Read("/2/0")
	require.NoError(t, err)
	assert.Equal(t, "N=1", p1.Name)
	assert.Equal(t, []ir.Point{{X: 10, Y: 2}, {X: 20, Y: 4}, {X: 30, Y: 6}}, p1.Data)
	assert.Equal(t, []ir.KeyValue{{Key: "x.unit", Value: "HZ"}, {Key: "y.unit", Value: "ARBITRARY UNITS"}}, p1.Metadata)
	v, ok := p1.Parameter("PLOTDESCRIPTOR")
	require.True(t, ok)
	assert.Equal(t, "XYDATA", v.String)

	p2, err := r.Read("/2/1")
	require.NoError(t, err)
	assert.Equal(t, []ir.Point{{X: 10, Y: 10}, {X: 20, Y: 12}}, p2.Data)

	audit, err := r.Read("/3")
	require.NoError(t, err)
	assert.Equal(t, "Audit Trail", audit.Name)
	require.Len(t, audit.Table.Rows, 2)
	assert.Equal(t, ir.FromString("acquired\ntwice"), audit.Table.Rows[0]["what"])
	assert.Equal(t, ir.FromInt(2), audit.Table.Rows[1]["number"])

	for _, p := range []string{"/4", "/3/0", "/2/2", "/0/0", "/2/0/0"} {
		_, err := r.Read(p)
		if !errors.Is(err, ir.ErrIllegalPath) {
			t.Errorf("%s: want ErrIllegalPath, got %v", p, err)
		} else if !strings.Contains(err.Error(), `"NMR"`) {
			t.Errorf("%s: error does not name the block: %v", p, err)
		}
	}
}

func TestParseBlockErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"not title", "##JCAMP-DX= 5\n##TITLE= t\n##END=\n", ErrBlockStart},
		{"text first", "hello\n##TITLE= t\n##END=\n", ErrBlockStart},
		{"empty", "", ErrBlockStart},
		{"no end", "##TITLE= t\n##JCAMP-DX= 5\n", ErrUnterminated},
		{"nested no end", "##TITLE= t\n##TITLE= u\n##END=\n", ErrUnterminated},
		{"stray text", "##TITLE= t\n##XYDATA= (XY..XY)\n1,2\n##=\nstray\n##END=\n", ErrUnexpected},
		{"duplicate peak table", "##TITLE= t\n##PEAK TABLE= (XY..XY)\n1,2\n##PEAK TABLE= (XY..XY)\n##END=\n", ErrDuplicate},
		{"duplicate ntuples", "##TITLE= t\n##NTUPLES= A\n##END NTUPLES= A\n##NTUPLES= B\n##END NTUPLES= B\n##END=\n", ErrDuplicate},
		{"unterminated ntuples", "##TITLE= t\n##NTUPLES= A\n##PAGE= 1\n##END=\n", ErrUnterminated},
		{"bad audit list", "##TITLE= t\n##AUDIT TRAIL= (A, B)\n##END=\n", ErrVariableList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlock(lineReader(t, tt.in))
			require.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, ir.ErrParse)
		})
	}
}

func TestCommentsDropped(t *testing.T) {
	b := parse(t, "##TITLE= t\n$$ just a comment\n##= comment record\n##ORIGIN= o\n\n##END=\n")
	assert.Equal(t, []LDR{{Label: "TITLE", Value: "t"}, {Label: "ORIGIN", Value: "o"}}, b.LDRs)
}
