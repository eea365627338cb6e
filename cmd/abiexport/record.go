package main

// #include "abi.h"
import "C"

import (
	"awkrt/pkg/rtfatal"
	"awkrt/pkg/sharedmap"
	"awkrt/pkg/value"
)

//export awk_match_pat
func awk_match_pat(rtH C.uint64_t, text, pat *C.AwkStr) C.int {
	rt := resolveRuntime(rtH)
	ok, err := rt.MatchPat(value.PeekCarrier(carrierFromC(*text)), value.PeekCarrier(carrierFromC(*pat)))
	if err != nil {
		rtfatal.AbortErr("match_pat", err)
	}
	return boolToC(ok)
}

//export awk_get_col
func awk_get_col(rtH C.uint64_t, col C.int64_t) C.AwkStr {
	rt := resolveRuntime(rtH)
	s, err := rt.GetCol(int64(col))
	if err != nil {
		rtfatal.AbortErr("get_col", err)
	}
	return carrierToC(value.ToCarrier(s))
}

//export awk_set_col
func awk_set_col(rtH C.uint64_t, col C.int64_t, s *C.AwkStr) {
	rt := resolveRuntime(rtH)
	if err := rt.SetCol(int64(col), value.PeekCarrier(carrierFromC(*s))); err != nil {
		rtfatal.AbortErr("set_col", err)
	}
}

//export awk_split_int
func awk_split_int(rtH C.uint64_t, text, pat *C.AwkStr, destH C.uint64_t) C.int64_t {
	rt := resolveRuntime(rtH)
	dest := sharedmap.Resolve[int64, value.Str](sharedmap.Handle(destH))
	n, err := rt.SplitInt(value.PeekCarrier(carrierFromC(*text)), value.PeekCarrier(carrierFromC(*pat)), dest)
	if err != nil {
		rtfatal.AbortErr("split_int", err)
	}
	return C.int64_t(n)
}

//export awk_split_str
func awk_split_str(rtH C.uint64_t, text, pat *C.AwkStr, destH C.uint64_t) C.int64_t {
	rt := resolveRuntime(rtH)
	dest := sharedmap.Resolve[value.Str, value.Str](sharedmap.Handle(destH))
	n, err := rt.SplitStr(value.PeekCarrier(carrierFromC(*text)), value.PeekCarrier(carrierFromC(*pat)), dest)
	if err != nil {
		rtfatal.AbortErr("split_str", err)
	}
	return C.int64_t(n)
}
