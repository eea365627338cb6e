package value

import (
	"strconv"
	"strings"
)

// IntToStr formats i as plain decimal — no thousands separators, no
// leading zeros beyond the sign — the `int_to_str` intrinsic.
func IntToStr(i int64) Str {
	return FromString(strconv.FormatInt(i, 10))
}

// FloatToStr formats f the way AWK prints a float with no OFMT override:
// pinned to a %.6g-equivalent, matching the conventional default choice.
// This is an observable format and must stay stable across
// whatever backend eventually consumes this catalog.
func FloatToStr(f float64) Str {
	return FromString(strconv.FormatFloat(f, 'g', 6, 64))
}

// StrToInt parses a leading optional sign followed by a maximal run of
// decimal digits; anything else (empty, non-numeric, or a numeric prefix
// followed by garbage) yields 0 for the non-numeric case and the parsed
// prefix otherwise, per AWK's numeric-string coercion rules.
func StrToInt(s Str) int64 {
	b := s.Bytes()
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	start := i
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return 0
	}
	n, err := strconv.ParseInt(string(b[start:i]), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// StrToFloat parses a leading numeric prefix in standard floating
// notation (optional sign, digits, optional fractional part, optional
// exponent); empty/invalid yields 0.0.
func StrToFloat(s Str) float64 {
	str := s.String()
	trimmed := strings.TrimLeft(str, " \t")
	end := 0
	n := len(trimmed)
	if end < n && (trimmed[end] == '+' || trimmed[end] == '-') {
		end++
	}
	sawDigit := false
	for end < n && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
		sawDigit = true
	}
	if end < n && trimmed[end] == '.' {
		end++
		for end < n && trimmed[end] >= '0' && trimmed[end] <= '9' {
			end++
			sawDigit = true
		}
	}
	if !sawDigit {
		return 0.0
	}
	if end < n && (trimmed[end] == 'e' || trimmed[end] == 'E') {
		expEnd := end + 1
		if expEnd < n && (trimmed[expEnd] == '+' || trimmed[expEnd] == '-') {
			expEnd++
		}
		digitsFromExp := expEnd
		for expEnd < n && trimmed[expEnd] >= '0' && trimmed[expEnd] <= '9' {
			expEnd++
		}
		if expEnd > digitsFromExp {
			end = expEnd
		}
	}
	f, err := strconv.ParseFloat(trimmed[:end], 64)
	if err != nil {
		return 0.0
	}
	return f
}
