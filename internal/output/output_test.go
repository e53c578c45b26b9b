// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primercalc-core/primer"
	"primercalc/pkg/api"
)

func TestWriteInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInfo(&buf, primer.Parse("test", "acgtacgtacgt"), Options{}))

	want := "\n" +
		"============================== test ==============================\n" +
		"Sequence:           5'-ACG-TAC-GTA-CGT-3'\n" +
		"Length:             12 nucleotides\n" +
		"Molecular Weight:   3643.44 daltons (g/M)\n" +
		"GC Content:         50.0 % GC\n" +
		"Standard Tm:        36.0 ºC\n" +
		"==================================================================\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteInfoRevCompAndInvalid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInfo(&buf, primer.Parse("rc", "AACCG"), Options{RevComp: true}))
	assert.Contains(t, buf.String(), "Reverse Comp:       5'-CGG-TT-3'\n")

	buf.Reset()
	require.NoError(t, WriteInfo(&buf, primer.Parse("none", "xyz"), Options{}))
	assert.Contains(t, buf.String(), "Molecular Weight:   Invalid daltons (g/M)\n")
	assert.Contains(t, buf.String(), "Standard Tm:        Invalid ºC\n")
	assert.Contains(t, buf.String(), "Length:             0 nucleotides\n")
}

func TestMetricLines(t *testing.T) {
	p := primer.Parse("test", "acgtacgtacgt")
	assert.Equal(t, "3643.44 daltons (g/M)", MWLine(p.MolecularWeight()))
	assert.Equal(t, "50.0 % GC", GCLine(p.GCContent()))
	assert.Equal(t, "36.0 ºC", TmLine(p.MeltingTemp()))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, primer.Parse("test", "acgtacgtacgt"), Options{RevComp: true}))

	var got api.PrimerV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "acgtacgtacgt", got.Sequence)
	assert.Equal(t, api.BaseCountV1{A: 3, C: 3, G: 3, T: 3}, got.Counts)
	require.NotNil(t, got.MolecularWeight)
	assert.InDelta(t, 3643.44, *got.MolecularWeight, 1e-9)
	assert.Equal(t, "acgtacgtacgt", got.ReverseComplement)
	assert.True(t, got.Valid)
}

func TestWriteJSONInvalidIsNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, primer.New("num", 7), Options{}))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Nil(t, raw["molecular_weight"])
	assert.Nil(t, raw["gc_content"])
	assert.Nil(t, raw["melting_temp"])
	assert.Equal(t, primer.InvalidSequence, raw["sequence"])
	assert.Equal(t, false, raw["valid"])
	assert.NotContains(t, raw, "reverse_complement")
}
