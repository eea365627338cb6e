package main

// #include "abi.h"
import "C"

import "awkrt/pkg/sharedmap"

// awk_ref_map and awk_drop_map are the single pair of ABI functions
// valid across all six SharedMap<K,V> variants (spec §4.2, §4.9): the
// handle slab stores the concrete Map[K,V], and sharedmap.RefCounted
// reaches its shared header without either side needing to know which
// variant is behind a given handle.
//
//export awk_ref_map
func awk_ref_map(h C.uint64_t) {
	sharedmap.ResolveRefCounted(sharedmap.Handle(h)).IncRef()
}

//export awk_drop_map
func awk_drop_map(h C.uint64_t) {
	sharedmap.ResolveRefCounted(sharedmap.Handle(h)).DecRef()
}
