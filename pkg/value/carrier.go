package value

import (
	"crypto/rand"
	"encoding/binary"
)

// Carrier is the 128-bit opaque cell a Str is transported as when it
// crosses the real C-ABI boundary (spec §6's "str-by-value carrier").
//
// Rather than smuggling a raw Go pointer into generated native code — the
// Go garbage collector does not know a JIT-emitted stack slot is holding
// a live reference, and could free or move the backing array out from
// under it — a Carrier is a (slot, generation) pair into a process-wide
// slab of live boxes. This is the same generational-handle technique a
// use-after-free detector would use, repurposed here to make the ABI
// crossing safe rather than to detect bugs in it: a Carrier whose
// generation no longer matches the slot's current occupant is a clear
// double-use or use-after-drop rather than a dangling native pointer.
type Carrier struct {
	Slot uint64
	Gen  uint64
}

type slabEntry struct {
	box *strBox
	gen uint64
}

var strSlab struct {
	entries []slabEntry
	free    []uint64
}

func randomGen() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0xA5A5A5A5A5A5A5A5
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// ToCarrier publishes s into the slab and returns its ABI carrier. Call
// sites that hand a carrier to native code are expected to treat it as an
// owned reference matching one eventual FromCarrier + Drop (or a
// ref_str/drop_str pair if the native side duplicates it).
func ToCarrier(s Str) Carrier {
	gen := randomGen()
	entry := slabEntry{box: s.box, gen: gen}
	if n := len(strSlab.free); n > 0 {
		slot := strSlab.free[n-1]
		strSlab.free = strSlab.free[:n-1]
		strSlab.entries[slot] = entry
		return Carrier{Slot: slot, Gen: gen}
	}
	slot := uint64(len(strSlab.entries))
	strSlab.entries = append(strSlab.entries, entry)
	return Carrier{Slot: slot, Gen: gen}
}

// FromCarrier reconstitutes the Str a Carrier refers to and retires the
// slab slot. It is the callee's job to leak-release (never call Drop
// twice): FromCarrier hands back ownership exactly once per ToCarrier.
func FromCarrier(c Carrier) Str {
	if c.Slot >= uint64(len(strSlab.entries)) {
		return Empty
	}
	entry := strSlab.entries[c.Slot]
	if entry.gen != c.Gen {
		// Stale carrier: slot was reused by a later ToCarrier. Treat as
		// the distinguished empty value rather than returning the wrong
		// live string.
		return Empty
	}
	strSlab.entries[c.Slot] = slabEntry{}
	strSlab.free = append(strSlab.free, c.Slot)
	return Str{box: entry.box}
}

// PeekCarrier is like FromCarrier but does not retire the slot — used by
// pass-by-reference ABI parameters, which borrow without a refcount
// change (spec §3).
func PeekCarrier(c Carrier) Str {
	if c.Slot >= uint64(len(strSlab.entries)) {
		return Empty
	}
	entry := strSlab.entries[c.Slot]
	if entry.gen != c.Gen {
		return Empty
	}
	return Str{box: entry.box}
}
