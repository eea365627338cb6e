package main

// #include "abi.h"
import "C"

import (
	"awkrt/pkg/rtfatal"
	"awkrt/pkg/sharedmap"
	"awkrt/pkg/value"
	"awkrt/pkg/vars"
)

//export awk_load_var_str
func awk_load_var_str(rtH C.uint64_t, code C.size_t) C.AwkStr {
	rt := resolveRuntime(rtH)
	s, err := rt.Vars.LoadStr(int(code))
	if err != nil {
		rtfatal.AbortErr("load_var_str", err)
	}
	return carrierToC(value.ToCarrier(s))
}

//export awk_store_var_str
func awk_store_var_str(rtH C.uint64_t, code C.size_t, s *C.AwkStr) {
	rt := resolveRuntime(rtH)
	if err := rt.Vars.StoreStr(int(code), value.PeekCarrier(carrierFromC(*s))); err != nil {
		rtfatal.AbortErr("store_var_str", err)
	}
}

//export awk_load_var_int
func awk_load_var_int(rtH C.uint64_t, code C.size_t) C.int64_t {
	rt := resolveRuntime(rtH)
	if vars.Code(code) == vars.NF {
		if err := rt.EnsureNF(); err != nil {
			rtfatal.AbortErr("load_var_int", err)
		}
	}
	v, err := rt.Vars.LoadInt(int(code))
	if err != nil {
		rtfatal.AbortErr("load_var_int", err)
	}
	return C.int64_t(v)
}

//export awk_store_var_int
func awk_store_var_int(rtH C.uint64_t, code C.size_t, v C.int64_t) {
	rt := resolveRuntime(rtH)
	if err := rt.Vars.StoreInt(int(code), int64(v)); err != nil {
		rtfatal.AbortErr("store_var_int", err)
	}
}

//export awk_load_var_intmap
func awk_load_var_intmap(rtH C.uint64_t, code C.size_t) C.uint64_t {
	rt := resolveRuntime(rtH)
	m, err := rt.Vars.LoadIntMap(int(code))
	if err != nil {
		rtfatal.AbortErr("load_var_intmap", err)
	}
	return C.uint64_t(sharedmap.Publish(m))
}

//export awk_store_var_intmap
func awk_store_var_intmap(rtH C.uint64_t, code C.size_t, h C.uint64_t) {
	rt := resolveRuntime(rtH)
	m := sharedmap.Resolve[int64, value.Str](sharedmap.Handle(h))
	if err := rt.Vars.StoreIntMap(int(code), m); err != nil {
		rtfatal.AbortErr("store_var_intmap", err)
	}
}
