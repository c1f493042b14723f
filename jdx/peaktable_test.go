package jdx

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSplitTuples(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"450.0, 10.0", []string{"450.0, 10.0"}},
		{"450.0, 10.0; 451.0, 11.0", []string{"450.0, 10.0", "451.0, 11.0"}},
		{"1,2 3,4  5,6", []string{"1,2", "3,4", "5,6"}},
		{" 1 , 2 ;3,4;", []string{"1 , 2", "3,4"}},
		{"1, ,3", []string{"1, ,3"}},
	}
	for _, tt := range tests {
		got, err := splitTuples(tt.line)
		require.NoError(t, err, tt.line)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.line, diff)
		}
	}
	_, err := splitTuples("1,2 ;; 3,4")
	assert.ErrorIs(t, err, ErrUnexpected)
}

func TestParsePeakTable(t *testing.T) {
	tests := []struct {
		name  string
		list  string
		body  string
		peaks []Peak
	}{
		{
			name: "xy",
			list: "(XY..XY)",
			body: "450.0, 10.0; 451.0, 11.0\n$$ comment only\n452.0, 12.0\n",
			peaks: []Peak{
				{X: 450, Y: 10},
				{X: 451, Y: 11},
				{X: 452, Y: 12},
			},
		},
		{
			name: "xyw",
			list: "(XYW..XYW)",
			body: "1.0, 2.0, 0.5 3.0, 4.0, 1.5\n",
			peaks: []Peak{
				{X: 1, Y: 2, W: ptr(0.5)},
				{X: 3, Y: 4, W: ptr(1.5)},
			},
		},
		{
			name: "xym",
			list: "(XYM..XYM)",
			body: "7.26, 100, S\n",
			peaks: []Peak{
				{X: 7.26, Y: 100, M: "S"},
			},
		},
		{
			name:  "blank y",
			list:  "(XY..XY)",
			body:  "450.0,\n",
			peaks: []Peak{{X: 450, Y: math.NaN()}},
		},
		{
			name:  "comment after tuple",
			list:  "(XY..XY)",
			body:  "1,2 $$ first\n",
			peaks: []Peak{{X: 1, Y: 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := lineReader(t, tt.body+"##END=\n")
			pt, err := ParsePeakTable(lr, tt.list)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.peaks, pt.Peaks, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("peaks (-want +got):\n%s", diff)
			}
			line, err := lr.ReadLine()
			require.NoError(t, err)
			assert.Equal(t, "##END=", line, "next LDR is left unread")
		})
	}
}

func TestParsePeakTableErrors(t *testing.T) {
	tests := []struct {
		name string
		list string
		body string
		err  error
		msg  string
	}{
		{"missing w", "(XYW..XYW)", "1.0, 2.0\n", ErrIllegalEntry, "(XYW..XYW)"},
		{"blank w is absent", "(XYW..XYW)", "1.0, 2.0,\n", ErrIllegalEntry, "1.0, 2.0,"},
		{"extra field", "(XY..XY)", "1.0, 2.0, 3.0\n", ErrIllegalEntry, "1.0, 2.0, 3.0"},
		{"missing x", "(XY..XY)", ", 2.0\n", ErrIllegalEntry, "missing x"},
		{"bad number", "(XY..XY)", "abc, 2.0\n", ErrNumber, "abc"},
		{"unknown list", "(XYZ..XYZ)", "", ErrVariableList, "(XYZ..XYZ)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePeakTable(lineReader(t, tt.body), tt.list)
			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
