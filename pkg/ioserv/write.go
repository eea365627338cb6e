package ioserv

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"awkrt/pkg/value"
)

// writeEntry is one open named output file and its buffered writer.
type writeEntry struct {
	file   *os.File
	w      *bufio.Writer
	append bool
}

// WriteTable is the write-side file table owned by Runtime: one
// independent buffered writer per named output file, plus stdout.
type WriteTable struct {
	named  map[string]*writeEntry
	stdout *bufio.Writer
}

// NewWriteTable returns an empty table writing to stdoutW for the
// distinguished stdout destination.
func NewWriteTable(stdoutW io.Writer) *WriteTable {
	return &WriteTable{
		named:  make(map[string]*writeEntry),
		stdout: bufio.NewWriter(stdoutW),
	}
}

// openMode pins the exact O_* flags for a named output file's mode, set
// once on first open per spec §4.7 ("a mode (truncate or append) chosen
// on first open"). golang.org/x/sys/unix is used here (rather than
// relying solely on os.OpenFile's portable flag translation) so the
// truncate-vs-append decision is made with the same explicit descriptor
// flags a runtime embedded in JIT-emitted native code would reach for.
func openMode(name string, appendMode bool) (*os.File, error) {
	flags := unix.O_WRONLY | unix.O_CREAT
	if appendMode {
		flags |= unix.O_APPEND
	} else {
		flags |= unix.O_TRUNC
	}
	return os.OpenFile(name, flags, 0644)
}

func (wt *WriteTable) open(name string, appendMode bool) (*writeEntry, error) {
	if e, ok := wt.named[name]; ok {
		return e, nil
	}
	f, err := openMode(name, appendMode)
	if err != nil {
		return nil, err
	}
	e := &writeEntry{file: f, w: bufio.NewWriter(f), append: appendMode}
	wt.named[name] = e
	return e, nil
}

// PrintStdout implements `print_stdout`: writes txt then a newline.
// Write failure is fatal (spec §7 item 5) — reported here as an error
// for the caller to route to pkg/rtfatal.Abort.
func (wt *WriteTable) PrintStdout(txt value.Str) error {
	if _, err := wt.stdout.Write(txt.Bytes()); err != nil {
		return err
	}
	if _, err := wt.stdout.WriteString("\n"); err != nil {
		return err
	}
	return wt.stdout.Flush()
}

// Print implements `print`: ensures out is open with the requested mode
// and writes txt followed by the current record terminator (pinned to
// "\n" per spec §4.7's simplification note).
func (wt *WriteTable) Print(txt, out value.Str, appendMode bool) error {
	e, err := wt.open(out.String(), appendMode)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(txt.Bytes()); err != nil {
		return err
	}
	if _, err := e.w.WriteString("\n"); err != nil {
		return err
	}
	return e.w.Flush()
}

// Close flushes and releases every open named writer and stdout.
func (wt *WriteTable) Close() {
	wt.stdout.Flush()
	for _, e := range wt.named {
		e.w.Flush()
		e.file.Close()
	}
}
