// Command abiexport is the cgo C-ABI boundary described in spec §6: it
// compiles (via `go build -buildmode=c-archive` or `c-shared`) into a
// static or shared library exposing one `//export`ed C function per
// pkg/catalog intrinsic, callable directly from JIT-emitted machine
// code calls into a generated runtime support object.
//
// Every exported function here is a thin marshalling shim: convert the
// C-ABI argument types (AwkStr carriers, map/runtime handles, plain
// machine scalars) to and from the corresponding pkg/value,
// pkg/sharedmap, and pkg/runtime Go types, call straight through to the
// Go implementation, and convert the result back. No AWK semantics
// live in this package — they live in the packages it calls.
package main

// #include "abi.h"
import "C"

import (
	"awkrt/pkg/value"
)

// carrierFromC converts a wire-format AwkStr to its Go-side Carrier.
func carrierFromC(s C.AwkStr) value.Carrier {
	return value.Carrier{Slot: uint64(s.slot), Gen: uint64(s.gen)}
}

// carrierToC converts a Go-side Carrier to its wire format.
func carrierToC(c value.Carrier) C.AwkStr {
	return C.AwkStr{slot: C.uint64_t(c.Slot), gen: C.uint64_t(c.Gen)}
}

// main is required for package main but never runs: this binary is
// only ever built as a C archive or shared library, never executed as
// a standalone process. cmd/awkrtctl's selftest subcommand is what
// actually links and exercises the built archive.
func main() {}
