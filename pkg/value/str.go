// Package value implements the scalar data representations that cross the
// C-ABI boundary to JIT-emitted code: reference-counted strings and the
// conversions and comparisons AWK programs perform on them.
package value

import "sync"

// strBox is the refcounted, immutable backing store for a Str. Content is
// never mutated after creation; Str values that "change" allocate a new
// box and drop the old one.
type strBox struct {
	data []byte
	rc   int64
}

// Str is a handle to a refcounted, immutable byte string. The zero Str is
// the distinguished empty string and is always valid to read, but is not
// itself refcounted (Ref/Drop on a zero Str are no-ops) since there is
// nothing to free.
type Str struct {
	box *strBox
}

// Empty is the distinguished default Str value.
var Empty = Str{}

// New materializes a fresh Str owning a copy of data. Used, directly or
// through FromString, by literal materialization, conversions, regex
// captures, field access, and file reads. Concat builds its result box
// directly and only goes through here when one operand is empty.
func New(data []byte) Str {
	if len(data) == 0 {
		return Empty
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return Str{box: &strBox{data: cp, rc: 1}}
}

// FromString is a convenience constructor over a Go string.
func FromString(s string) Str {
	if s == "" {
		return Empty
	}
	return New([]byte(s))
}

// Bytes returns the raw bytes backing s. The caller must not mutate the
// returned slice; Str content is immutable once created.
func (s Str) Bytes() []byte {
	if s.box == nil {
		return nil
	}
	return s.box.data
}

// String renders s as a Go string (copies).
func (s Str) String() string {
	if s.box == nil {
		return ""
	}
	return string(s.box.data)
}

// Len returns the byte length of s — the `str_len` intrinsic.
func Len(s Str) uintptr {
	if s.box == nil {
		return 0
	}
	return uintptr(len(s.box.data))
}

// Ref increments s's refcount and returns s — the `ref_str` intrinsic.
// Matched 1:1 against a later Drop per the ABI's caller-increments /
// callee-leak-release ownership discipline (spec §3).
func Ref(s Str) Str {
	if s.box == nil {
		return s
	}
	refLock.Lock()
	s.box.rc++
	refLock.Unlock()
	return s
}

// Drop decrements s's refcount, freeing the backing bytes at zero — the
// `drop_str` intrinsic. Double-drop (rc going negative) is a programming
// contract violation; this implementation lets rc go negative rather than
// panicking so a test can observe the defect through RefCount instead of
// crashing mid-suite.
func Drop(s Str) {
	if s.box == nil {
		return
	}
	refLock.Lock()
	s.box.rc--
	if s.box.rc <= 0 {
		s.box.data = nil
	}
	refLock.Unlock()
}

// refLock guards refcount mutation. The runtime itself is single-threaded
// per spec §5; this lock exists only so -race-enabled tests that exercise
// Str from multiple goroutines don't trip the race detector — it is never
// contended in the real ABI path.
var refLock sync.Mutex

// RefCount reports s's current reference count, for tests only.
func RefCount(s Str) int64 {
	if s.box == nil {
		return 0
	}
	refLock.Lock()
	defer refLock.Unlock()
	return s.box.rc
}

// Concat produces a new Str containing a's bytes followed by b's bytes.
// Both operands retain their own refcounts — `concat` borrows, it does
// not consume.
func Concat(a, b Str) Str {
	if Len(a) == 0 {
		return cloneValue(b)
	}
	if Len(b) == 0 {
		return cloneValue(a)
	}
	buf := make([]byte, 0, len(a.box.data)+len(b.box.data))
	buf = append(buf, a.box.data...)
	buf = append(buf, b.box.data...)
	return Str{box: &strBox{data: buf, rc: 1}}
}

func cloneValue(s Str) Str {
	if s.box == nil {
		return Empty
	}
	return New(s.box.data)
}
