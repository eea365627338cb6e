package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntStrRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 7, 123456789, -123456789} {
		s := IntToStr(n)
		assert.EqualValues(t, n, StrToInt(s), "round trip of %d", n)
	}
}

func TestStrToIntEdgeCases(t *testing.T) {
	cases := map[string]int64{
		"":        0,
		"abc":     0,
		"42":      42,
		"-42":     -42,
		"+42":     42,
		"42abc":   42,
		"  42":    42,
		"3.14":    3,
		"   ":     0,
	}
	for in, want := range cases {
		assert.EqualValues(t, want, StrToInt(FromString(in)), "input %q", in)
	}
}

func TestStrToFloatEdgeCases(t *testing.T) {
	cases := map[string]float64{
		"":        0.0,
		"abc":     0.0,
		"3.14":    3.14,
		"-3.14":   -3.14,
		"1e3":     1000,
		"1e3abc":  1000,
		"  2.5xx": 2.5,
	}
	for in, want := range cases {
		assert.InDelta(t, want, StrToFloat(FromString(in)), 1e-9, "input %q", in)
	}
}

func TestFloatToStrIsStable(t *testing.T) {
	assert.Equal(t, "3.14", FloatToStr(3.14).String())
	assert.Equal(t, "100000", FloatToStr(100000).String())
	assert.Equal(t, "1e+06", FloatToStr(1000000).String())
}
