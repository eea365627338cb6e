package main

// #include "abi.h"
import "C"

import (
	"awkrt/pkg/sharedmap"
	"awkrt/pkg/value"
)

// The six SharedMap<K,V> variants below are generated by hand from the
// same (key, value) cross product pkg/sharedmap and pkg/catalog use —
// cgo export functions must be literal named declarations, so this file
// has no generic helper underneath it the way pkg/sharedmap does.

//export awk_alloc_intint
func awk_alloc_intint() C.uint64_t {
	return C.uint64_t(sharedmap.Publish(sharedmap.New[int64, int64]()))
}

//export awk_len_intint
func awk_len_intint(h C.uint64_t) C.int64_t {
	m := sharedmap.Resolve[int64, int64](sharedmap.Handle(h))
	return C.int64_t(sharedmap.Len(m))
}

//export awk_lookup_intint
func awk_lookup_intint(h C.uint64_t, key C.int64_t) C.int64_t {
	m := sharedmap.Resolve[int64, int64](sharedmap.Handle(h))
	v := sharedmap.Lookup(m, int64(key))
	return C.int64_t(v)
}

//export awk_contains_intint
func awk_contains_intint(h C.uint64_t, key C.int64_t) C.int {
	m := sharedmap.Resolve[int64, int64](sharedmap.Handle(h))
	if sharedmap.Contains(m, int64(key)) {
		return 1
	}
	return 0
}

//export awk_insert_intint
func awk_insert_intint(h C.uint64_t, key C.int64_t, val C.int64_t) {
	m := sharedmap.Resolve[int64, int64](sharedmap.Handle(h))
	sharedmap.Insert(m, int64(key), int64(val))
}

//export awk_delete_intint
func awk_delete_intint(h C.uint64_t, key C.int64_t) {
	m := sharedmap.Resolve[int64, int64](sharedmap.Handle(h))
	sharedmap.Delete(m, int64(key))
}

//export awk_alloc_intfloat
func awk_alloc_intfloat() C.uint64_t {
	return C.uint64_t(sharedmap.Publish(sharedmap.New[int64, float64]()))
}

//export awk_len_intfloat
func awk_len_intfloat(h C.uint64_t) C.int64_t {
	m := sharedmap.Resolve[int64, float64](sharedmap.Handle(h))
	return C.int64_t(sharedmap.Len(m))
}

//export awk_lookup_intfloat
func awk_lookup_intfloat(h C.uint64_t, key C.int64_t) C.double {
	m := sharedmap.Resolve[int64, float64](sharedmap.Handle(h))
	v := sharedmap.Lookup(m, int64(key))
	return C.double(v)
}

//export awk_contains_intfloat
func awk_contains_intfloat(h C.uint64_t, key C.int64_t) C.int {
	m := sharedmap.Resolve[int64, float64](sharedmap.Handle(h))
	if sharedmap.Contains(m, int64(key)) {
		return 1
	}
	return 0
}

//export awk_insert_intfloat
func awk_insert_intfloat(h C.uint64_t, key C.int64_t, val C.double) {
	m := sharedmap.Resolve[int64, float64](sharedmap.Handle(h))
	sharedmap.Insert(m, int64(key), float64(val))
}

//export awk_delete_intfloat
func awk_delete_intfloat(h C.uint64_t, key C.int64_t) {
	m := sharedmap.Resolve[int64, float64](sharedmap.Handle(h))
	sharedmap.Delete(m, int64(key))
}

//export awk_alloc_intstr
func awk_alloc_intstr() C.uint64_t {
	return C.uint64_t(sharedmap.Publish(sharedmap.New[int64, value.Str]()))
}

//export awk_len_intstr
func awk_len_intstr(h C.uint64_t) C.int64_t {
	m := sharedmap.Resolve[int64, value.Str](sharedmap.Handle(h))
	return C.int64_t(sharedmap.Len(m))
}

//export awk_lookup_intstr
func awk_lookup_intstr(h C.uint64_t, key C.int64_t) C.AwkStr {
	m := sharedmap.Resolve[int64, value.Str](sharedmap.Handle(h))
	v := sharedmap.Lookup(m, int64(key))
	return carrierToC(value.ToCarrier(v))
}

//export awk_contains_intstr
func awk_contains_intstr(h C.uint64_t, key C.int64_t) C.int {
	m := sharedmap.Resolve[int64, value.Str](sharedmap.Handle(h))
	if sharedmap.Contains(m, int64(key)) {
		return 1
	}
	return 0
}

//export awk_insert_intstr
func awk_insert_intstr(h C.uint64_t, key C.int64_t, val *C.AwkStr) {
	m := sharedmap.Resolve[int64, value.Str](sharedmap.Handle(h))
	sharedmap.Insert(m, int64(key), value.PeekCarrier(carrierFromC(*val)))
}

//export awk_delete_intstr
func awk_delete_intstr(h C.uint64_t, key C.int64_t) {
	m := sharedmap.Resolve[int64, value.Str](sharedmap.Handle(h))
	sharedmap.Delete(m, int64(key))
}

//export awk_alloc_strint
func awk_alloc_strint() C.uint64_t {
	return C.uint64_t(sharedmap.Publish(sharedmap.New[value.Str, int64]()))
}

//export awk_len_strint
func awk_len_strint(h C.uint64_t) C.int64_t {
	m := sharedmap.Resolve[value.Str, int64](sharedmap.Handle(h))
	return C.int64_t(sharedmap.Len(m))
}

//export awk_lookup_strint
func awk_lookup_strint(h C.uint64_t, key *C.AwkStr) C.int64_t {
	m := sharedmap.Resolve[value.Str, int64](sharedmap.Handle(h))
	v := sharedmap.Lookup(m, value.PeekCarrier(carrierFromC(*key)))
	return C.int64_t(v)
}

//export awk_contains_strint
func awk_contains_strint(h C.uint64_t, key *C.AwkStr) C.int {
	m := sharedmap.Resolve[value.Str, int64](sharedmap.Handle(h))
	if sharedmap.Contains(m, value.PeekCarrier(carrierFromC(*key))) {
		return 1
	}
	return 0
}

//export awk_insert_strint
func awk_insert_strint(h C.uint64_t, key *C.AwkStr, val C.int64_t) {
	m := sharedmap.Resolve[value.Str, int64](sharedmap.Handle(h))
	sharedmap.Insert(m, value.PeekCarrier(carrierFromC(*key)), int64(val))
}

//export awk_delete_strint
func awk_delete_strint(h C.uint64_t, key *C.AwkStr) {
	m := sharedmap.Resolve[value.Str, int64](sharedmap.Handle(h))
	sharedmap.Delete(m, value.PeekCarrier(carrierFromC(*key)))
}

//export awk_alloc_strfloat
func awk_alloc_strfloat() C.uint64_t {
	return C.uint64_t(sharedmap.Publish(sharedmap.New[value.Str, float64]()))
}

//export awk_len_strfloat
func awk_len_strfloat(h C.uint64_t) C.int64_t {
	m := sharedmap.Resolve[value.Str, float64](sharedmap.Handle(h))
	return C.int64_t(sharedmap.Len(m))
}

//export awk_lookup_strfloat
func awk_lookup_strfloat(h C.uint64_t, key *C.AwkStr) C.double {
	m := sharedmap.Resolve[value.Str, float64](sharedmap.Handle(h))
	v := sharedmap.Lookup(m, value.PeekCarrier(carrierFromC(*key)))
	return C.double(v)
}

//export awk_contains_strfloat
func awk_contains_strfloat(h C.uint64_t, key *C.AwkStr) C.int {
	m := sharedmap.Resolve[value.Str, float64](sharedmap.Handle(h))
	if sharedmap.Contains(m, value.PeekCarrier(carrierFromC(*key))) {
		return 1
	}
	return 0
}

//export awk_insert_strfloat
func awk_insert_strfloat(h C.uint64_t, key *C.AwkStr, val C.double) {
	m := sharedmap.Resolve[value.Str, float64](sharedmap.Handle(h))
	sharedmap.Insert(m, value.PeekCarrier(carrierFromC(*key)), float64(val))
}

//export awk_delete_strfloat
func awk_delete_strfloat(h C.uint64_t, key *C.AwkStr) {
	m := sharedmap.Resolve[value.Str, float64](sharedmap.Handle(h))
	sharedmap.Delete(m, value.PeekCarrier(carrierFromC(*key)))
}

//export awk_alloc_strstr
func awk_alloc_strstr() C.uint64_t {
	return C.uint64_t(sharedmap.Publish(sharedmap.New[value.Str, value.Str]()))
}

//export awk_len_strstr
func awk_len_strstr(h C.uint64_t) C.int64_t {
	m := sharedmap.Resolve[value.Str, value.Str](sharedmap.Handle(h))
	return C.int64_t(sharedmap.Len(m))
}

//export awk_lookup_strstr
func awk_lookup_strstr(h C.uint64_t, key *C.AwkStr) C.AwkStr {
	m := sharedmap.Resolve[value.Str, value.Str](sharedmap.Handle(h))
	v := sharedmap.Lookup(m, value.PeekCarrier(carrierFromC(*key)))
	return carrierToC(value.ToCarrier(v))
}

//export awk_contains_strstr
func awk_contains_strstr(h C.uint64_t, key *C.AwkStr) C.int {
	m := sharedmap.Resolve[value.Str, value.Str](sharedmap.Handle(h))
	if sharedmap.Contains(m, value.PeekCarrier(carrierFromC(*key))) {
		return 1
	}
	return 0
}

//export awk_insert_strstr
func awk_insert_strstr(h C.uint64_t, key *C.AwkStr, val *C.AwkStr) {
	m := sharedmap.Resolve[value.Str, value.Str](sharedmap.Handle(h))
	sharedmap.Insert(m, value.PeekCarrier(carrierFromC(*key)), value.PeekCarrier(carrierFromC(*val)))
}

//export awk_delete_strstr
func awk_delete_strstr(h C.uint64_t, key *C.AwkStr) {
	m := sharedmap.Resolve[value.Str, value.Str](sharedmap.Handle(h))
	sharedmap.Delete(m, value.PeekCarrier(carrierFromC(*key)))
}

