package value

import "bytes"

// Eq reports bytewise equality — the `str_eq` intrinsic.
func Eq(a, b Str) bool { return bytes.Equal(a.Bytes(), b.Bytes()) }

// Lt reports whether a sorts strictly before b, bytewise — `str_lt`.
func Lt(a, b Str) bool { return bytes.Compare(a.Bytes(), b.Bytes()) < 0 }

// Gt reports whether a sorts strictly after b, bytewise — `str_gt`.
func Gt(a, b Str) bool { return bytes.Compare(a.Bytes(), b.Bytes()) > 0 }

// Lte is the non-strict complement of Gt — `str_lte`.
func Lte(a, b Str) bool { return bytes.Compare(a.Bytes(), b.Bytes()) <= 0 }

// Gte is the non-strict complement of Lt — `str_gte`.
func Gte(a, b Str) bool { return bytes.Compare(a.Bytes(), b.Bytes()) >= 0 }
