package jdx

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeakAssignments(t *testing.T) {
	tests := []struct {
		name string
		list string
		body string
		want []PeakAssignment
	}{
		{
			name: "xya",
			list: "(XYA)",
			body: "(1.0, 2.0, <a1>)\n(3.0, <a2>)\n",
			want: []PeakAssignment{
				{X: 1, Y: ptr(2.0), A: "a1"},
				{X: 3, A: "a2"},
			},
		},
		{
			name: "xya blank y",
			list: "(XYA)",
			body: "(1.0, , <a1>)\n",
			want: []PeakAssignment{{X: 1, Y: ptr(math.NaN()), A: "a1"}},
		},
		{
			name: "xywa",
			list: "(XYWA)",
			body: "(1.0, 2.0, 0.5, <a1>)\n(3.0, <a2>)\n",
			want: []PeakAssignment{
				{X: 1, Y: ptr(2.0), W: ptr(0.5), A: "a1"},
				{X: 3, A: "a2"},
			},
		},
		{
			name: "xyma",
			list: "(XYMA)",
			body: "(1.0, 2.0, S, <H1>)\n",
			want: []PeakAssignment{{X: 1, Y: ptr(2.0), M: ptr("S"), A: "H1"}},
		},
		{
			name: "xymwa",
			list: "(XYMWA)",
			body: "(1.0, 2.0, D, 0.5, <H2, H3>)\n(4.0, <H4>)\n",
			want: []PeakAssignment{
				{X: 1, Y: ptr(2.0), M: ptr("D"), W: ptr(0.5), A: "H2, H3"},
				{X: 4, A: "H4"},
			},
		},
		{
			name: "multi line",
			list: "(XYA)",
			body: "(1.0,\n 2.0,\n<multi\nline>)\n",
			want: []PeakAssignment{{X: 1, Y: ptr(2.0), A: "multi line"}},
		},
		{
			name: "comments and blank lines",
			list: "(XYA)",
			body: "$$ header\n\n(1.0, <a>) $$ trailing\n",
			want: []PeakAssignment{{X: 1, A: "a"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := lineReader(t, tt.body+"##END=\n")
			pa, err := ParsePeakAssignments(lr, tt.list)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, pa.Assignments, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("assignments (-want +got):\n%s", diff)
			}
			line, err := lr.ReadLine()
			require.NoError(t, err)
			assert.Equal(t, "##END=", line)
		})
	}
}

func TestParsePeakAssignmentsErrors(t *testing.T) {
	tests := []struct {
		name string
		list string
		body string
		err  error
		msg  string
	}{
		{"xya too many", "(XYA)", "(1.0, 2.0, 3.0, <a>)\n", ErrIllegalEntry, "(XYA)"},
		{"xywa too many", "(XYWA)", "(1.0, 2.0, 3.0, 4.0, <a>)\n", ErrIllegalEntry, "(XYWA)"},
		{"xywa ambiguous", "(XYWA)", "(1.0, 2.0, <a>)\n", ErrAmbiguous, "(1.0, 2.0, <a>)"},
		{"xyma ambiguous", "(XYMA)", "(1.0, 2.0, <a>)\n", ErrAmbiguous, "(XYMA)"},
		{"xymwa ambiguous", "(XYMWA)", "(1.0, 2.0, S, <a>)\n", ErrAmbiguous, "(XYMWA)"},
		{"blank x", "(XYA)", "(, 2.0, <a>)\n", ErrIllegalEntry, "missing x"},
		{"no closing at ldr", "(XYA)", "(1.0, <a>\n##END=\n", ErrUnterminated, "no closing parenthesis found"},
		{"no closing at eof", "(XYA)", "(1.0, <a>\n", ErrUnterminated, "file ended before closing parenthesis"},
		{"closed without assignment", "(XYA)", "(1.0, a)\n##END=\n", ErrIllegalEntry, `"(1.0, a)" for (XYA)`},
		{"closed line not joined", "(XYA)", "(1.0, 2.0)\n(3.0, <a>)\n##END=\n", ErrIllegalEntry, `"(1.0, 2.0)"`},
		{"illegal string", "(XYA)", "junk (1.0, <a>)\n", ErrIllegalString, "junk"},
		{"unknown list", "(XYZA)", "", ErrVariableList, "(XYZA)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePeakAssignments(lineReader(t, tt.body), tt.list)
			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
