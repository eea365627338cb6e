// Package record implements the current input record ($0) and its lazy
// decomposition into fields ($1..$NF) described in spec §4.6.
package record

import (
	"awkrt/pkg/regexcache"
	"awkrt/pkg/value"
)

// NFStale is the sentinel spec §4.6/§9 prescribes: after $0 is
// reassigned, NF reads as "stale until next read" rather than being
// eagerly recomputed.
const NFStale int64 = -1

// Fields holds $0 and its lazily-realized split. Splitting only happens
// the first time a field is read after $0 last changed; NF uses NFStale
// to signal that the split hasn't happened yet for the current line, so
// a program that only inspects NF without ever reading a field still
// observes the correct count.
type Fields struct {
	line     value.Str
	split    []value.Str
	realized bool
}

// New returns an empty record.
func New() *Fields {
	return &Fields{line: value.Empty}
}

// Line returns the current $0.
func (f *Fields) Line() value.Str { return f.line }

// realize splits line by fs if it hasn't been split since the last
// change to line, and reports the resulting field count.
func (f *Fields) realize(cache *regexcache.Cache, fs value.Str) (int64, error) {
	if f.realized {
		return int64(len(f.split)), nil
	}
	fields, err := cache.SplitField(f.line, fs)
	if err != nil {
		return 0, err
	}
	f.split = fields
	f.realized = true
	return int64(len(f.split)), nil
}

// EnsureSplit realizes the split if needed and returns the current field
// count, for NF reads that don't go through GetCol (spec §4.8's
// "reading NF while split_line is empty triggers a realize-and-set").
func (f *Fields) EnsureSplit(cache *regexcache.Cache, fs value.Str) (int64, error) {
	return f.realize(cache, fs)
}

// GetCol implements `get_col`. Negative columns are a programming
// contract violation and must be turned into a fatal abort by the
// caller (pkg/rtfatal); this function reports the error instead of
// aborting so it stays testable.
func (f *Fields) GetCol(cache *regexcache.Cache, fs value.Str, col int64) (value.Str, error) {
	if col < 0 {
		return value.Empty, errNegativeColumn(col)
	}
	if col == 0 {
		return value.Ref(f.line), nil
	}
	if _, err := f.realize(cache, fs); err != nil {
		return value.Empty, err
	}
	idx := int(col) - 1
	if idx >= len(f.split) {
		return value.Empty, nil
	}
	return value.Ref(f.split[idx]), nil
}

// SetCol implements `set_col`. col == 0 replaces $0 wholesale and marks
// NF stale; otherwise the split is realized first (if not already) and
// then extended with empty fields as needed before writing at col-1.
func (f *Fields) SetCol(cache *regexcache.Cache, fs value.Str, col int64, s value.Str) (nf int64, err error) {
	if col < 0 {
		return 0, errNegativeColumn(col)
	}
	if col == 0 {
		f.split = nil
		f.realized = false
		f.line = value.Ref(s)
		return NFStale, nil
	}
	n, err := f.realize(cache, fs)
	if err != nil {
		return 0, err
	}
	idx := int(col) - 1
	for idx >= len(f.split) {
		f.split = append(f.split, value.Empty)
	}
	f.split[idx] = value.Ref(s)
	if idx+1 > len(f.split) {
		n = int64(idx + 1)
	} else if int64(len(f.split)) > n {
		n = int64(len(f.split))
	}
	return n, nil
}

type columnError struct {
	col int64
	msg string
}

func (e *columnError) Error() string { return e.msg }

func errNegativeColumn(col int64) error {
	return &columnError{col: col, msg: "attempt to access negative column"}
}
