package jdx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAuditTrail(t *testing.T) {
	lr := lineReader(t, `(1, <2022-09-01 09:10:11.123 -0200>, <user1 <user1@example.com>>, <location01>,
<SOFTWARE 1.0>, <acquisition>)
$$ between entries
(2, <2022-09-01 19:10:12.123 -0200>, <user2>, <location02>, <SOFTWARE 1.1>, <processing
line 2>)
##END=
`)
	at, err := ParseAuditTrail(lr, "(NUMBER, WHEN, WHO, WHERE, VERSION, WHAT)")
	require.NoError(t, err)
	assert.Equal(t, []string{"number", "when", "who", "where", "version", "what"}, at.Columns)
	assert.Equal(t, []AuditEntry{
		{
			Number:  1,
			When:    "2022-09-01 09:10:11.123 -0200",
			Who:     "user1 <user1@example.com>",
			Where:   "location01",
			Version: "SOFTWARE 1.0",
			What:    "acquisition",
		},
		{
			Number:  2,
			When:    "2022-09-01 19:10:12.123 -0200",
			Who:     "user2",
			Where:   "location02",
			Version: "SOFTWARE 1.1",
			What:    "processing\nline 2",
		},
	}, at.Entries)
	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "##END=", line)
}

func TestParseAuditTrailSevenFields(t *testing.T) {
	lr := lineReader(t, "(1, <when>, <who>, <where>, <proc>, <ver>, <what>)\n")
	at, err := ParseAuditTrail(lr, "(NUMBER, WHEN, WHO, WHERE, PROCESS, VERSION, WHAT)")
	require.NoError(t, err)
	require.Len(t, at.Entries, 1)
	assert.Equal(t, "proc", at.Entries[0].Process)
	assert.Equal(t, "ver", at.Entries[0].Version)

	n := at.Node()
	assert.Equal(t, "Audit Trail", n.Name)
	assert.Len(t, n.Table.Columns, 7)
	assert.Equal(t, "Process", n.Table.Columns[4].Name)
}

func TestParseAuditTrailErrors(t *testing.T) {
	_, err := ParseAuditTrail(lineReader(t, "(1, <a>, <b>, <c>, <d>, <e>)\n"), "(NUMBER, WHEN, WHO, WHERE, WHAT)")
	assert.ErrorIs(t, err, ErrIllegalEntry)

	_, err = ParseAuditTrail(lineReader(t, "(1, <a>, <b>\n##END=\n"), "(NUMBER, WHEN, WHO, WHERE, WHAT)")
	assert.ErrorIs(t, err, ErrUnterminated)

	_, err = ParseAuditTrail(lineReader(t, "text\n"), "(NUMBER, WHEN, WHO, WHERE, WHAT)")
	assert.ErrorIs(t, err, ErrIllegalString)
}

func TestBrukerSpecificParametersEnd(t *testing.T) {
	tests := []struct {
		name string
		body string
		ldrs []LDR
		next string
	}{
		{
			name: "end comment",
			body: "$$ ----\n##$NS= 16\n##$D= (0..1)\n1 2\n$$ End of Bruker specific parameters\n$$ ----\n##END=\n",
			ldrs: []LDR{{Label: "$NS", Value: "16"}, {Label: "$D", Value: "(0..1)\n1 2"}},
			next: "##END=",
		},
		{
			name: "standard ldr",
			body: "##$NS= 16\n##ORIGIN= o\n",
			ldrs: []LDR{{Label: "$NS", Value: "16"}},
			next: "##ORIGIN= o",
		},
		{
			name: "relax",
			body: "##$NS= 16\n##$RELAX=\n",
			ldrs: []LDR{{Label: "$NS", Value: "16"}},
			next: "##$RELAX=",
		},
		{
			name: "next section",
			body: "##$NS= 16\n$$ Bruker specific parameters for F1\n",
			ldrs: []LDR{{Label: "$NS", Value: "16"}},
			next: "$$ Bruker specific parameters for F1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := lineReader(t, tt.body)
			sec, err := ParseBrukerSpecificParameters(lr, " Bruker specific parameters")
			require.NoError(t, err)
			assert.Equal(t, "Bruker specific parameters", sec.Title)
			assert.Equal(t, tt.ldrs, sec.LDRs)
			line, err := lr.ReadLine()
			require.NoError(t, err)
			assert.Equal(t, tt.next, line)
		})
	}
}

func TestBrukerRelaxDefaultName(t *testing.T) {
	lr := lineReader(t, "raw 1\nraw 2\n##END=\n")
	sec, err := ParseBrukerRelaxSection(lr, "")
	require.NoError(t, err)
	assert.Equal(t, "Bruker RELAX section", sec.Name)
	assert.Empty(t, sec.Header)
	assert.Equal(t, "raw 1\nraw 2", sec.Content)
}

func TestTwoBrukerParameterSections(t *testing.T) {
	b := parse(t, `##TITLE= two
$$ Bruker specific parameters
##$A= 1
$$ Bruker specific parameters for F1
##$B= 2
$$ End of Bruker specific parameters
##END=
`)
	require.Len(t, b.BrukerSpecificParameters, 2)
	assert.Equal(t, "Bruker specific parameters for F1", b.BrukerSpecificParameters[1].Title)
	n, err := NewReader(b).Read("")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bruker specific parameters", "Bruker specific parameters for F1"}, n.ChildNodeNames)
}
