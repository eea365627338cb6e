package main

// #include "abi.h"
import "C"

import (
	"awkrt/pkg/rtfatal"
	"awkrt/pkg/value"
)

//export awk_print_stdout
func awk_print_stdout(rtH C.uint64_t, s *C.AwkStr) {
	rt := resolveRuntime(rtH)
	if err := rt.PrintStdout(value.PeekCarrier(carrierFromC(*s))); err != nil {
		rtfatal.AbortErr("print_stdout", err)
	}
}

// awk_print implements `print`: appendMode is nonzero to append, zero
// to truncate-on-first-open (spec §4.7).
//
//export awk_print
func awk_print(rtH C.uint64_t, txt, out *C.AwkStr, appendMode C.int64_t) {
	rt := resolveRuntime(rtH)
	err := rt.Print(value.PeekCarrier(carrierFromC(*txt)), value.PeekCarrier(carrierFromC(*out)), appendMode != 0)
	if err != nil {
		rtfatal.AbortErr("print", err)
	}
}

//export awk_read_err
func awk_read_err(rtH C.uint64_t, name *C.AwkStr) C.int64_t {
	rt := resolveRuntime(rtH)
	return C.int64_t(rt.ReadErr(value.PeekCarrier(carrierFromC(*name))))
}

//export awk_read_err_stdin
func awk_read_err_stdin(rtH C.uint64_t) C.int64_t {
	return C.int64_t(resolveRuntime(rtH).ReadErrStdin())
}

// awk_next_line implements `next_line`: a read failure on a named file
// is swallowed into an empty record (spec §7 item 4), never fatal here.
//
//export awk_next_line
func awk_next_line(rtH C.uint64_t, name *C.AwkStr) C.AwkStr {
	rt := resolveRuntime(rtH)
	line := rt.NextLine(value.PeekCarrier(carrierFromC(*name)))
	return carrierToC(value.ToCarrier(line))
}

// awk_next_line_stdin implements `next_line_stdin`: unlike awk_next_line,
// a stdin read failure is fatal (spec §7 item 3, §9).
//
//export awk_next_line_stdin
func awk_next_line_stdin(rtH C.uint64_t) C.AwkStr {
	rt := resolveRuntime(rtH)
	line, err := rt.NextLineStdin()
	if err != nil {
		rtfatal.AbortErr("next_line_stdin", err)
	}
	return carrierToC(value.ToCarrier(line))
}
