package catalog

import "fmt"

// Decl is the handle a Module hands back once a symbol is declared in
// its current emitted module — the real code generator's analog of
// frawk's LLVMValueRef (_examples/original_source/src/llvm/intrinsics.rs).
// It is opaque here because the generator that would produce a
// meaningful one is explicitly out of scope (spec §1); the catalog's
// contract only requires that Get is idempotent per catalog instance.
type Decl struct {
	Name string
}

// Module is the seam an external code generator implements: given a
// symbol name and signature, declare it as an externally-linked function
// in whatever module it is currently emitting and hand back a Decl.
// This repo does not implement a real Module — cmd/abiexport's
// cgo-exported functions are the actual linker-visible symbols a real
// generator would declare against.
type Module interface {
	DeclareExternal(name string, sig Signature) Decl
}

// declState models spec §3's "sum-typed cell holding either the
// as-yet-undeclared signature type or the already-declared function
// handle", with the one-way, idempotent transition spec §4.1 requires.
type declState struct {
	sig     Signature
	decl    *Decl // nil until declared
	implPtr interface{}
}

// Intrinsic is one catalog entry.
type Intrinsic struct {
	Name string
	Sig  Signature
	// Impl is the concrete host implementation, stored as an untyped
	// pointer-ish value; Default registers nil for every entry, and
	// awkrtctl's `catalog dump` prints only names and signatures. The
	// real call target for a given symbol is cmd/abiexport's
	// matching //export function, resolved by the linker, not by this
	// field.
	Impl interface{}
}

// Catalog is the name → (signature, implementation) registry.
type Catalog struct {
	entries map[string]*declState
	order   []string // registration order, for stable dump output
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]*declState)}
}

// Register inserts an entry. A duplicate name is a programming error in
// the catalog's construction (spec §4.1) and panics immediately rather
// than failing at some later runtime call.
func (c *Catalog) Register(name string, sig Signature, impl interface{}) {
	if _, exists := c.entries[name]; exists {
		panic(fmt.Sprintf("catalog: duplicate intrinsic registration %q", name))
	}
	c.entries[name] = &declState{sig: sig, implPtr: impl}
	c.order = append(c.order, name)
}

// Get returns a handle to a declared external function in module m. The
// first call per (catalog, name) transitions the entry from "signature"
// to "declared" and caches the result; subsequent calls return the
// cached Decl without calling back into m (spec §4.1: "idempotent per
// catalog instance").
func (c *Catalog) Get(m Module, name string) Decl {
	st, ok := c.entries[name]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown intrinsic %q", name))
	}
	if st.decl != nil {
		return *st.decl
	}
	d := m.DeclareExternal(name, st.sig)
	st.decl = &d
	return d
}

// Lookup returns the registered Intrinsic for name, for introspection
// tooling (awkrtctl) that doesn't need a real Module.
func (c *Catalog) Lookup(name string) (Intrinsic, bool) {
	st, ok := c.entries[name]
	if !ok {
		return Intrinsic{}, false
	}
	return Intrinsic{Name: name, Sig: st.sig, Impl: st.implPtr}, true
}

// Names returns every registered symbol name in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
