// Package rtfatal implements the abort path every non-recoverable
// intrinsic failure goes through (spec §7): programming contract
// violations, regex compile/split failures, stdin read failures, and
// write failures all terminate the process after a diagnostic, matching
// frawk's own `fail!` macro (_examples/original_source/src/llvm/intrinsics.rs).
package rtfatal

import (
	"fmt"
	"os"
)

// exit is a package-level indirection so tests can observe an abort
// without actually tearing down the test binary.
var exit = os.Exit

// Abort writes a structured diagnostic to stderr and terminates the
// process. component names the subsystem that hit the fatal condition
// (e.g. "get_col", "regexcache") the way a real ABI caller would want to
// know which symbol aborted.
func Abort(component string, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "awkrt: fatal in %s: %s\n", component, msg)
	exit(2)
}

// AbortErr is a convenience wrapper for the common case of aborting on a
// non-nil error.
func AbortErr(component string, err error) {
	if err == nil {
		return
	}
	Abort(component, "%s", err)
}
