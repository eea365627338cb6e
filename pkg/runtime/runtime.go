// Package runtime assembles the host-side state a single AWK program
// instance needs — built-in variables, the current record and its
// fields, the compiled-pattern cache, and the read/write file tables —
// behind the single opaque pointer (spec §6's TRuntimePtr) every
// record-, regex-, and I/O-touching intrinsic threads through. This is
// the concrete type cmd/abiexport's `//export` functions resolve their
// runtime_ptr argument to.
package runtime

import (
	"io"

	"awkrt/pkg/ioserv"
	"awkrt/pkg/record"
	"awkrt/pkg/regexcache"
	"awkrt/pkg/sharedmap"
	"awkrt/pkg/value"
	"awkrt/pkg/vars"
)

// Runtime is one program instance's full intrinsic-facing state.
type Runtime struct {
	Vars     *vars.Store
	Fields   *record.Fields
	Patterns *regexcache.Cache
	Reads    *ioserv.ReadTable
	Writes   *ioserv.WriteTable
}

// New wires a fresh Runtime reading from stdinR and writing its
// distinguished stdout stream to stdoutW.
func New(stdinR io.Reader, stdoutW io.Writer) *Runtime {
	return &Runtime{
		Vars:     vars.New(),
		Fields:   record.New(),
		Patterns: regexcache.New(),
		Reads:    ioserv.NewReadTable(stdinR),
		Writes:   ioserv.NewWriteTable(stdoutW),
	}
}

// Close releases every open file handle the Runtime is holding.
func (rt *Runtime) Close() {
	rt.Reads.Close()
	rt.Writes.Close()
}

// GetCol implements `get_col` against the Runtime's current record and
// the FS currently stored in Vars.
func (rt *Runtime) GetCol(col int64) (value.Str, error) {
	return rt.Fields.GetCol(rt.Patterns, rt.Vars.FSVal, col)
}

// SetCol implements `set_col`, updating NF in Vars to match the result.
func (rt *Runtime) SetCol(col int64, s value.Str) error {
	nf, err := rt.Fields.SetCol(rt.Patterns, rt.Vars.FSVal, col, s)
	if err != nil {
		return err
	}
	rt.Vars.NFVal = nf
	return nil
}

// EnsureNF realizes the field split if needed and syncs NF in Vars —
// the behavior `load_var_int(NF)` depends on per spec §4.8.
func (rt *Runtime) EnsureNF() error {
	n, err := rt.Fields.EnsureSplit(rt.Patterns, rt.Vars.FSVal)
	if err != nil {
		return err
	}
	rt.Vars.NFVal = n
	return nil
}

// NextLine implements `next_line`: reads the next record from the named
// file, advances NR, and updates FILENAME.
func (rt *Runtime) NextLine(name value.Str) value.Str {
	line := rt.Reads.NextLine(name.String(), rt.Vars.RSVal)
	rt.Vars.NRVal++
	rt.Vars.FilenameVal = value.Ref(name)
	return line
}

// NextLineStdin implements `next_line_stdin`.
func (rt *Runtime) NextLineStdin() (value.Str, error) {
	line, err := rt.Reads.NextLineStdin(rt.Vars.RSVal)
	if err != nil {
		return value.Empty, err
	}
	rt.Vars.NRVal++
	return line, nil
}

// MatchPat implements `match_pat`.
func (rt *Runtime) MatchPat(text, pat value.Str) (bool, error) {
	return rt.Patterns.MatchPat(text, pat)
}

// SplitInt implements `split_int` against a map handle resolved by the
// caller (cmd/abiexport) from a sharedmap.Handle.
func (rt *Runtime) SplitInt(text, pat value.Str, dest sharedmap.Map[int64, value.Str]) (int64, error) {
	return rt.Patterns.SplitToIntMap(text, pat, dest)
}

// SplitStr implements `split_str`.
func (rt *Runtime) SplitStr(text, pat value.Str, dest sharedmap.Map[value.Str, value.Str]) (int64, error) {
	return rt.Patterns.SplitToStrMap(text, pat, dest)
}

// PrintStdout implements `print_stdout`.
func (rt *Runtime) PrintStdout(txt value.Str) error {
	return rt.Writes.PrintStdout(txt)
}

// Print implements `print`.
func (rt *Runtime) Print(txt, out value.Str, appendMode bool) error {
	return rt.Writes.Print(txt, out, appendMode)
}

// ReadErr implements `read_err`.
func (rt *Runtime) ReadErr(name value.Str) int64 { return rt.Reads.ReadErr(name.String()) }

// ReadErrStdin implements `read_err_stdin`.
func (rt *Runtime) ReadErrStdin() int64 { return rt.Reads.ReadErrStdin() }
