package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDimensionParse(t *testing.T) {
	out, err := runCLI(t, "dimension", "parse", "48 1/2")
	require.NoError(t, err)
	assert.Equal(t, "48.5\n", out)

	out, err = runCLI(t, "dimension", "parse", "48", "3/4")
	require.NoError(t, err)
	assert.Equal(t, "48.75\n", out)
}

func TestDimensionParseRejectsGarbage(t *testing.T) {
	_, err := runCLI(t, "dimension", "parse", "1/0")
	assert.Error(t, err)
}

func TestDimensionFormat(t *testing.T) {
	out, err := runCLI(t, "dimension", "format", "1.25")
	require.NoError(t, err)
	assert.Equal(t, "1 1/4\n", out)

	_, err = runCLI(t, "dimension", "format", "abc")
	assert.Error(t, err)
}
