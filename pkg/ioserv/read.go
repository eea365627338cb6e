// Package ioserv implements the line-oriented read and write tables
// described in spec §4.7: named-input and stdin readers honoring the
// current record separator, and named-output writers honoring
// truncate/append mode, each independent of the others per spec §5's
// per-file ordering guarantee.
package ioserv

import (
	"bufio"
	"fmt"
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"awkrt/pkg/value"
)

// lineSource abstracts over a buffered-file reader and an mmap-backed
// reader so ReadTable doesn't care which one is backing a given name.
type lineSource interface {
	// nextLine returns the next record split on rs, io.EOF when
	// exhausted, or another error on a genuine read failure.
	nextLine(rs string) (string, error)
	close() error
}

// bufioSource wraps a *bufio.Reader, used for stdin, pipes, and
// zero-length or irregular named files where mmap doesn't apply.
type bufioSource struct {
	r      *bufio.Reader
	closer io.Closer
}

func (b *bufioSource) nextLine(rs string) (string, error) {
	if rs == "\n" || rs == "" {
		line, err := b.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		if line == "" && err == io.EOF {
			return "", io.EOF
		}
		return trimTrailing(line, "\n"), nil
	}
	return readUntilDelim(b.r, rs)
}

func (b *bufioSource) close() error {
	if b.closer != nil {
		return b.closer.Close()
	}
	return nil
}

func readUntilDelim(r *bufio.Reader, delim string) (string, error) {
	var buf []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				if len(buf) == 0 {
					return "", io.EOF
				}
				return string(buf), nil
			}
			return "", err
		}
		buf = append(buf, b)
		if len(buf) >= len(delim) && string(buf[len(buf)-len(delim):]) == delim {
			return string(buf[:len(buf)-len(delim)]), nil
		}
	}
}

func trimTrailing(s, suffix string) string {
	if len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix {
		return s[:len(s)-len(suffix)]
	}
	return s
}

// mmapSource scans directly over a memory-mapped file's bytes, avoiding
// a buffered copy per record — worthwhile for the large named inputs an
// AWK program is typically pointed at (spec §4.7 domain-stack addition).
type mmapSource struct {
	data mmap.MMap
	file *os.File
	pos  int
}

func newMmapSource(f *os.File) (*mmapSource, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("ioserv: cannot mmap empty file")
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return &mmapSource{data: m, file: f}, nil
}

func (m *mmapSource) nextLine(rs string) (string, error) {
	if m.pos >= len(m.data) {
		return "", io.EOF
	}
	if rs == "" {
		rs = "\n"
	}
	rest := m.data[m.pos:]
	idx := indexDelim(rest, rs)
	if idx < 0 {
		line := string(rest)
		m.pos = len(m.data)
		return line, nil
	}
	line := string(rest[:idx])
	m.pos += idx + len(rs)
	return line, nil
}

func indexDelim(b []byte, delim string) int {
	if len(delim) == 1 {
		for i, c := range b {
			if c == delim[0] {
				return i
			}
		}
		return -1
	}
	n := len(delim)
	for i := 0; i+n <= len(b); i++ {
		if string(b[i:i+n]) == delim {
			return i
		}
	}
	return -1
}

func (m *mmapSource) close() error {
	if err := m.data.Unmap(); err != nil {
		return err
	}
	return m.file.Close()
}

// readEntry tracks one open named (or stdin) input stream and its most
// recent error status.
type readEntry struct {
	src     lineSource
	lastErr error
}

// ReadTable is the read-side file table owned by Runtime.
type ReadTable struct {
	named map[string]*readEntry
	stdin *readEntry
}

// NewReadTable returns an empty table backed by stdinR for the
// distinguished stdin source.
func NewReadTable(stdinR io.Reader) *ReadTable {
	return &ReadTable{
		named: make(map[string]*readEntry),
		stdin: &readEntry{src: &bufioSource{r: bufio.NewReader(stdinR)}},
	}
}

func (rt *ReadTable) open(name string) (*readEntry, error) {
	if e, ok := rt.named[name]; ok {
		return e, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	src, err := newMmapSource(f)
	if err != nil {
		// Not regular/non-empty (or mmap unsupported on this platform
		// for this file) — fall back to a buffered reader over the
		// same open file rather than reopening it.
		if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
			f.Close()
			return nil, seekErr
		}
		e := &readEntry{src: &bufioSource{r: bufio.NewReader(f), closer: f}}
		rt.named[name] = e
		return e, nil
	}
	e := &readEntry{src: src}
	rt.named[name] = e
	return e, nil
}

// NextLine implements `next_line`: a read failure on a named file is
// converted to an empty-string record (spec §7 item 4), not a fatal
// abort. The caller should separately consult ReadErr to learn whether
// the empty string was a real record or a swallowed failure.
func (rt *ReadTable) NextLine(name string, rs value.Str) value.Str {
	e, err := rt.open(name)
	if err != nil {
		rt.recordErr(name, err)
		return value.Empty
	}
	if e.src == nil {
		// A prior open for this name failed; keep reporting the same
		// failure rather than re-attempting the open on every call.
		return value.Empty
	}
	line, err := e.src.nextLine(rs.String())
	if err != nil {
		if err != io.EOF {
			e.lastErr = err
		} else {
			e.lastErr = nil
		}
		return value.Empty
	}
	e.lastErr = nil
	return value.FromString(line)
}

func (rt *ReadTable) recordErr(name string, err error) {
	rt.named[name] = &readEntry{lastErr: err}
}

// NextLineStdin implements `next_line_stdin`. Unlike NextLine, an error
// reading stdin is fatal — this asymmetry is inherited unchanged from
// the original runtime (spec §4.7, §9) and is surfaced here as a
// returned error for the caller (cmd/abiexport) to route to
// pkg/rtfatal.Abort.
func (rt *ReadTable) NextLineStdin(rs value.Str) (value.Str, error) {
	line, err := rt.stdin.src.nextLine(rs.String())
	if err != nil {
		if err == io.EOF {
			return value.Empty, nil
		}
		return value.Empty, err
	}
	return value.FromString(line), nil
}

// ReadErr implements `read_err`: 0 if the stream's last operation
// succeeded (or the stream was never opened), nonzero otherwise.
func (rt *ReadTable) ReadErr(name string) int64 {
	e, ok := rt.named[name]
	if !ok || e.lastErr == nil {
		return 0
	}
	return 1
}

// ReadErrStdin implements `read_err_stdin`.
func (rt *ReadTable) ReadErrStdin() int64 {
	if rt.stdin.lastErr == nil {
		return 0
	}
	return 1
}

// Close releases every open named reader. Not an ABI intrinsic (spec §5
// says explicit close intrinsics may be added later without affecting
// the catalog); used by tests and by Runtime's own teardown.
func (rt *ReadTable) Close() {
	for _, e := range rt.named {
		if e.src != nil {
			e.src.close()
		}
	}
}
