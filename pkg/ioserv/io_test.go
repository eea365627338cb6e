package ioserv

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

func TestNextLineStdinReadsRecords(t *testing.T) {
	rt := NewReadTable(strings.NewReader("one\ntwo\nthree"))
	rs := value.FromString("\n")

	l1, err := rt.NextLineStdin(rs)
	require.NoError(t, err)
	assert.Equal(t, "one", l1.String())

	l2, err := rt.NextLineStdin(rs)
	require.NoError(t, err)
	assert.Equal(t, "two", l2.String())

	l3, err := rt.NextLineStdin(rs)
	require.NoError(t, err)
	assert.Equal(t, "three", l3.String())

	l4, err := rt.NextLineStdin(rs)
	require.NoError(t, err)
	assert.Equal(t, "", l4.String())
}

func TestNextLineNamedFileReadsRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0644))

	rt := NewReadTable(strings.NewReader(""))
	defer rt.Close()
	rs := value.FromString("\n")

	l1 := rt.NextLine(path, rs)
	assert.Equal(t, "alpha", l1.String())
	l2 := rt.NextLine(path, rs)
	assert.Equal(t, "beta", l2.String())
	l3 := rt.NextLine(path, rs)
	assert.Equal(t, "", l3.String())
	assert.EqualValues(t, 0, rt.ReadErr(path))
}

func TestNextLineMissingFileConvertsToEmptyNotFatal(t *testing.T) {
	rt := NewReadTable(strings.NewReader(""))
	defer rt.Close()

	got := rt.NextLine("/no/such/file-xyz", value.FromString("\n"))
	assert.Equal(t, "", got.String())
	assert.EqualValues(t, 1, rt.ReadErr("/no/such/file-xyz"))
}

func TestPrintStdoutWritesRecordThenNewline(t *testing.T) {
	var buf bytes.Buffer
	wt := NewWriteTable(&buf)
	require.NoError(t, wt.PrintStdout(value.FromString("hello")))
	assert.Equal(t, "hello\n", buf.String())
}

func TestPrintTruncateThenAppendAreIndependent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	wt := NewWriteTable(&bytes.Buffer{})
	require.NoError(t, wt.Print(value.FromString("first"), value.FromString(path), false))
	wt.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(data))

	// A fresh table reopening the same path in append mode must not
	// clobber what's already there.
	wt2 := NewWriteTable(&bytes.Buffer{})
	require.NoError(t, wt2.Print(value.FromString("second"), value.FromString(path), true))
	wt2.Close()

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestDistinctNamedFilesAreIndependentWriters(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")

	wt := NewWriteTable(&bytes.Buffer{})
	require.NoError(t, wt.Print(value.FromString("to-a"), value.FromString(pathA), false))
	require.NoError(t, wt.Print(value.FromString("to-b"), value.FromString(pathB), false))
	wt.Close()

	dataA, _ := os.ReadFile(pathA)
	dataB, _ := os.ReadFile(pathB)
	assert.Equal(t, "to-a\n", string(dataA))
	assert.Equal(t, "to-b\n", string(dataB))
}
