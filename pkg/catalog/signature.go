// Package catalog implements the intrinsic catalog (spec §4.1): the
// name → (signature, implementation) table the out-of-scope code
// generator queries lazily to materialize external declarations in its
// emitted module.
package catalog

// MachineType enumerates the fixed machine-level types spec §6's ABI
// table names.
type MachineType int

const (
	// TUsize is a pointer-width unsigned integer.
	TUsize MachineType = iota
	// TInt is AWK's integer width (64-bit).
	TInt
	// TFloat is a 64-bit IEEE double.
	TFloat
	// TStrByValue is the 128-bit opaque string carrier (spec §6,
	// value.Carrier).
	TStrByValue
	// TStrRef is a pointer to a 128-bit string cell, used for
	// pass-by-reference string parameters.
	TStrRef
	// TMapHandle is a pointer-width map handle (sharedmap.Handle).
	TMapHandle
	// TRuntimePtr is the opaque Runtime pointer threaded through every
	// call.
	TRuntimePtr
	// TVoid marks an intrinsic with no return value.
	TVoid
)

func (t MachineType) String() string {
	switch t {
	case TUsize:
		return "usize"
	case TInt:
		return "int64"
	case TFloat:
		return "float64"
	case TStrByValue:
		return "str128"
	case TStrRef:
		return "str_ref"
	case TMapHandle:
		return "map_handle"
	case TRuntimePtr:
		return "runtime_ptr"
	case TVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Signature is an intrinsic's parameter and return machine types.
type Signature struct {
	Params []MachineType
	Return MachineType
}
