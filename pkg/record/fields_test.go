package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkrt/pkg/regexcache"
	"awkrt/pkg/value"
)

func TestFieldReadScenario(t *testing.T) {
	cache := regexcache.New()
	fs := value.FromString(" ")
	f := New()
	f.line = value.FromString("a b c")

	got, err := f.GetCol(cache, fs, 2)
	require.NoError(t, err)
	assert.Equal(t, "b", got.String())

	nf, err := f.EnsureSplit(cache, fs)
	require.NoError(t, err)
	assert.EqualValues(t, 3, nf)
}

func TestFieldWriteExtendsWithEmptyFields(t *testing.T) {
	cache := regexcache.New()
	fs := value.FromString(" ")
	f := New()

	_, err := f.SetCol(cache, fs, 3, value.FromString("x"))
	require.NoError(t, err)

	c1, _ := f.GetCol(cache, fs, 1)
	c2, _ := f.GetCol(cache, fs, 2)
	c3, _ := f.GetCol(cache, fs, 3)
	assert.Equal(t, "", c1.String())
	assert.Equal(t, "", c2.String())
	assert.Equal(t, "x", c3.String())
}

func TestGetColPastNFReturnsEmpty(t *testing.T) {
	cache := regexcache.New()
	fs := value.FromString(" ")
	f := New()
	f.line = value.FromString("a b")

	got, err := f.GetCol(cache, fs, 5)
	require.NoError(t, err)
	assert.Equal(t, "", got.String())
}

func TestNegativeColumnIsAnError(t *testing.T) {
	cache := regexcache.New()
	fs := value.FromString(" ")
	f := New()

	_, err := f.GetCol(cache, fs, -1)
	assert.Error(t, err)

	_, err = f.SetCol(cache, fs, -1, value.FromString("x"))
	assert.Error(t, err)
}

func TestSetColZeroReplacesLineAndStalesNF(t *testing.T) {
	cache := regexcache.New()
	fs := value.FromString(" ")
	f := New()
	f.line = value.FromString("old line")
	_, _ = f.EnsureSplit(cache, fs) // force a realized split before overwrite

	nf, err := f.SetCol(cache, fs, 0, value.FromString("new line"))
	require.NoError(t, err)
	assert.Equal(t, NFStale, nf)

	got, err := f.GetCol(cache, fs, 0)
	require.NoError(t, err)
	assert.Equal(t, "new line", got.String())

	// NF sentinel must trigger a fresh realize on the next NF-driven read.
	realized, err := f.EnsureSplit(cache, fs)
	require.NoError(t, err)
	assert.EqualValues(t, 2, realized)
}
