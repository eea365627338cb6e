package main

// #include "abi.h"
import "C"

import (
	"os"
	"sync"

	"awkrt/pkg/runtime"
)

// runtimeSlab publishes *runtime.Runtime instances behind an opaque
// handle, the same GC-safety rationale as value.Carrier and
// sharedmap.Handle: a raw Go pointer handed to native code is invisible
// to the garbage collector, so native code only ever holds an index.
var (
	runtimeMu   sync.Mutex
	runtimeSlab []*runtime.Runtime
)

func publishRuntime(rt *runtime.Runtime) C.uint64_t {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()
	h := C.uint64_t(len(runtimeSlab))
	runtimeSlab = append(runtimeSlab, rt)
	return h
}

func resolveRuntime(h C.uint64_t) *runtime.Runtime {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()
	i := int(h)
	if i < 0 || i >= len(runtimeSlab) {
		panic("abiexport: runtime handle out of range")
	}
	return runtimeSlab[i]
}

// awk_runtime_new constructs a Runtime wired to the process's real
// stdin/stdout and returns its handle. Not part of the intrinsic
// catalog proper (it has no AWK-level caller) — it's the lifecycle
// bracket a generated program's entry/exit thunks call once each.
//
//export awk_runtime_new
func awk_runtime_new() C.uint64_t {
	rt := runtime.New(os.Stdin, os.Stdout)
	return publishRuntime(rt)
}

//export awk_runtime_close
func awk_runtime_close(h C.uint64_t) {
	resolveRuntime(h).Close()
}
