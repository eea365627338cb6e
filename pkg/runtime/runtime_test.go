package runtime

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkrt/pkg/value"
)

func TestGetSetColUpdatesNFInVars(t *testing.T) {
	var out bytes.Buffer
	rt := New(strings.NewReader(""), &out)
	defer rt.Close()

	require.NoError(t, rt.SetCol(0, value.FromString("a b c")))
	require.NoError(t, rt.EnsureNF())
	assert.EqualValues(t, 3, rt.Vars.NFVal)

	got, err := rt.GetCol(2)
	require.NoError(t, err)
	assert.Equal(t, "b", got.String())

	require.NoError(t, rt.SetCol(5, value.FromString("z")))
	assert.EqualValues(t, 5, rt.Vars.NFVal)
}

func TestNextLineAdvancesNRAndFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	var out bytes.Buffer
	rt := New(strings.NewReader(""), &out)
	defer rt.Close()

	name := value.FromString(path)
	l1 := rt.NextLine(name)
	assert.Equal(t, "one", l1.String())
	assert.EqualValues(t, 1, rt.Vars.NRVal)
	assert.Equal(t, path, rt.Vars.FilenameVal.String())

	l2 := rt.NextLine(name)
	assert.Equal(t, "two", l2.String())
	assert.EqualValues(t, 2, rt.Vars.NRVal)
}

func TestNextLineStdinAdvancesNR(t *testing.T) {
	var out bytes.Buffer
	rt := New(strings.NewReader("x\ny\n"), &out)
	defer rt.Close()

	l1, err := rt.NextLineStdin()
	require.NoError(t, err)
	assert.Equal(t, "x", l1.String())
	assert.EqualValues(t, 1, rt.Vars.NRVal)
}

func TestMatchAndSplitGoThroughSharedCache(t *testing.T) {
	var out bytes.Buffer
	rt := New(strings.NewReader(""), &out)
	defer rt.Close()

	ok, err := rt.MatchPat(value.FromString("hello world"), value.FromString("wor"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, rt.Patterns.CompileCount())

	ok, err = rt.MatchPat(value.FromString("hello world"), value.FromString("wor"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, rt.Patterns.CompileCount())
}

func TestPrintStdoutAndPrintToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	var out bytes.Buffer
	rt := New(strings.NewReader(""), &out)
	defer rt.Close()

	require.NoError(t, rt.PrintStdout(value.FromString("hi")))
	assert.Equal(t, "hi\n", out.String())

	require.NoError(t, rt.Print(value.FromString("payload"), value.FromString(path), false))
	rt.Writes.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload\n", string(data))
}

func TestReadErrReflectsMissingFile(t *testing.T) {
	var out bytes.Buffer
	rt := New(strings.NewReader(""), &out)
	defer rt.Close()

	got := rt.NextLine(value.FromString("/no/such/file-xyz"))
	assert.Equal(t, "", got.String())
	assert.EqualValues(t, 1, rt.ReadErr(value.FromString("/no/such/file-xyz")))
}
