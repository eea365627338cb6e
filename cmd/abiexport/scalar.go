package main

// #include "abi.h"
import "C"

import (
	"awkrt/pkg/value"
)

// awk_ref_str implements `ref_str`: increments the refcount of the
// borrowed string s points at. s is a pass-by-reference parameter, so
// the carrier it names is not retired.
//
//export awk_ref_str
func awk_ref_str(s *C.AwkStr) {
	value.Ref(value.PeekCarrier(carrierFromC(*s)))
}

// awk_drop_str implements `drop_str`.
//
//export awk_drop_str
func awk_drop_str(s *C.AwkStr) {
	value.Drop(value.PeekCarrier(carrierFromC(*s)))
}

//export awk_int_to_str
func awk_int_to_str(i C.int64_t) C.AwkStr {
	return carrierToC(value.ToCarrier(value.IntToStr(int64(i))))
}

//export awk_float_to_str
func awk_float_to_str(f C.double) C.AwkStr {
	return carrierToC(value.ToCarrier(value.FloatToStr(float64(f))))
}

//export awk_str_to_int
func awk_str_to_int(s *C.AwkStr) C.int64_t {
	return C.int64_t(value.StrToInt(value.PeekCarrier(carrierFromC(*s))))
}

//export awk_str_to_float
func awk_str_to_float(s *C.AwkStr) C.double {
	return C.double(value.StrToFloat(value.PeekCarrier(carrierFromC(*s))))
}

//export awk_str_len
func awk_str_len(s *C.AwkStr) C.size_t {
	return C.size_t(value.Len(value.PeekCarrier(carrierFromC(*s))))
}

//export awk_concat
func awk_concat(a, b *C.AwkStr) C.AwkStr {
	av := value.PeekCarrier(carrierFromC(*a))
	bv := value.PeekCarrier(carrierFromC(*b))
	return carrierToC(value.ToCarrier(value.Concat(av, bv)))
}

func boolToC(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

//export awk_str_lt
func awk_str_lt(a, b *C.AwkStr) C.int {
	return boolToC(value.Lt(value.PeekCarrier(carrierFromC(*a)), value.PeekCarrier(carrierFromC(*b))))
}

//export awk_str_gt
func awk_str_gt(a, b *C.AwkStr) C.int {
	return boolToC(value.Gt(value.PeekCarrier(carrierFromC(*a)), value.PeekCarrier(carrierFromC(*b))))
}

//export awk_str_lte
func awk_str_lte(a, b *C.AwkStr) C.int {
	return boolToC(value.Lte(value.PeekCarrier(carrierFromC(*a)), value.PeekCarrier(carrierFromC(*b))))
}

//export awk_str_gte
func awk_str_gte(a, b *C.AwkStr) C.int {
	return boolToC(value.Gte(value.PeekCarrier(carrierFromC(*a)), value.PeekCarrier(carrierFromC(*b))))
}

//export awk_str_eq
func awk_str_eq(a, b *C.AwkStr) C.int {
	return boolToC(value.Eq(value.PeekCarrier(carrierFromC(*a)), value.PeekCarrier(carrierFromC(*b))))
}
