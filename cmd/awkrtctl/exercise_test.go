package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), fnErr
}

func TestFieldsCommandSplitsOnDefaultFS(t *testing.T) {
	cmd := newFieldsCmd()
	cmd.SetArgs([]string{"the quick fox", "1", "3"})
	out, err := captureStdout(t, cmd.Execute)
	require.NoError(t, err)
	assert.Contains(t, out, "NF=3")
	assert.Contains(t, out, `$1="the"`)
	assert.Contains(t, out, `$3="fox"`)
}

func TestFieldsCommandHonorsCustomFS(t *testing.T) {
	cmd := newFieldsCmd()
	cmd.SetArgs([]string{"a,b,,c", "--fs", ",", "3"})
	out, err := captureStdout(t, cmd.Execute)
	require.NoError(t, err)
	assert.Contains(t, out, "NF=4")
	assert.Contains(t, out, `$3=""`)
}

func TestSplitCommandPrintsTokensInOrder(t *testing.T) {
	cmd := newSplitCmd()
	cmd.SetArgs([]string{"1,2,,3", ","})
	out, err := captureStdout(t, cmd.Execute)
	require.NoError(t, err)
	assert.Contains(t, out, `[1]="1"`)
	assert.Contains(t, out, `[2]="2"`)
	assert.Contains(t, out, `[3]=""`)
	assert.Contains(t, out, `[4]="3"`)
}

func TestCatalogDumpListsRefStr(t *testing.T) {
	cmd := newCatalogDumpCmd()
	cmd.SetArgs([]string{})
	out, err := captureStdout(t, cmd.Execute)
	require.NoError(t, err)
	assert.Contains(t, out, "ref_str")
	assert.Contains(t, out, "alloc_strstr")
}
