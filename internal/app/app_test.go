package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(stdin string, argv ...string) (int, string, string) {
	var out, errBuf bytes.Buffer
	code := Run(argv, strings.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestHelp(t *testing.T) {
	code, out, _ := run("", "-h")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "DNA primer calculator")
	assert.Contains(t, out, "--sequence")
}

func TestVersion(t *testing.T) {
	code, out, _ := run("", "--version")
	assert.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(out, "primer-calc version "))
}

func TestUsageError(t *testing.T) {
	code, out, errOut := run("", "--name", "x")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "--name needs a sequence")
	assert.Contains(t, out, "Usage:")
}

func TestOneShotText(t *testing.T) {
	code, out, errOut := run("", "-n", "test", "-s", "acgtacgtacgt")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, "============================== test ==============================\n")
	assert.Contains(t, out, "Molecular Weight:   3643.44 daltons (g/M)\n")
	assert.Empty(t, errOut)
}

func TestOneShotWarnsAndQuiet(t *testing.T) {
	_, _, errOut := run("", "-n", "dirty", "-s", "AC GT")
	assert.Contains(t, errOut, "WARN: primer \"dirty\": dropped 1 non-ACGT character(s)")

	_, _, errOut = run("", "-n", "dirty", "-s", "AC GT", "-q")
	assert.Empty(t, errOut)
}

func TestOneShotJSON(t *testing.T) {
	code, out, _ := run("", "-n", "none", "-o", "json", "xyz")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, `"molecular_weight": null`)
	assert.Contains(t, out, `"valid": false`)
}

func TestInteractiveText(t *testing.T) {
	code, out, _ := run("test\nacgtacgtacgt\nq\n")
	require.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(out, "Enter your primer name, 'exit' or 'q' to quit.\nName > "))
	assert.Contains(t, out, "Sequence > \n===")
	assert.Contains(t, out, "Standard Tm:        36.0 ºC\n")
	assert.True(t, strings.HasSuffix(out, "Name > Exiting...\n"))
}

func TestInteractiveJSONLPromptsOnStderr(t *testing.T) {
	code, out, errOut := run("a\nacgt\nb\n\nexit\n", "-o", "jsonl")
	require.Equal(t, ExitOK, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"sequence":"acgt"`)
	assert.Contains(t, lines[1], `"gc_content":null`)
	assert.Contains(t, errOut, "Name > ")
	assert.Contains(t, errOut, "Exiting...")
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := RunContext(ctx, nil, strings.NewReader("a\nacgt\n"), &out, &errBuf)
	assert.Equal(t, ExitInterrupted, code)
}
