package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkrt/pkg/value"
)

func TestDefaultFSIsSingleSpace(t *testing.T) {
	s := New()
	v, err := s.LoadStr(int(FS))
	require.NoError(t, err)
	assert.Equal(t, " ", v.String())
}

func TestStoreAndLoadStr(t *testing.T) {
	s := New()
	require.NoError(t, s.StoreStr(int(FILENAME), value.FromString("input.txt")))
	v, err := s.LoadStr(int(FILENAME))
	require.NoError(t, err)
	assert.Equal(t, "input.txt", v.String())
}

func TestStrCategoryMismatchIsError(t *testing.T) {
	s := New()
	_, err := s.LoadStr(int(NF))
	assert.Error(t, err)
}

func TestIntCategoryMismatchIsError(t *testing.T) {
	s := New()
	_, err := s.LoadInt(int(FS))
	assert.Error(t, err)
}

func TestUnknownCodeIsError(t *testing.T) {
	s := New()
	_, err := s.LoadInt(999)
	assert.Error(t, err)
	var unknown *UnknownCodeError
	assert.ErrorAs(t, err, &unknown)
}

func TestArgvRoundTrip(t *testing.T) {
	s := New()
	m, err := s.LoadIntMap(int(ARGV))
	require.NoError(t, err)
	require.NoError(t, s.StoreIntMap(int(ARGV), m))
}
