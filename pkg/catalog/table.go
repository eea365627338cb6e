package catalog

// Default builds the catalog for the full intrinsic set spec §6
// enumerates, grouped exactly as that section groups them. Impl values
// are nil here — this catalog is metadata for introspection and for the
// Module-declaration contract; the actual call targets are
// cmd/abiexport's cgo `//export` functions.
func Default() *Catalog {
	c := New()

	// Refcount bridge (spec §4.2, §6).
	c.Register("ref_str", Signature{Params: []MachineType{TStrRef}, Return: TVoid}, nil)
	c.Register("drop_str", Signature{Params: []MachineType{TStrRef}, Return: TVoid}, nil)
	c.Register("ref_map", Signature{Params: []MachineType{TMapHandle}, Return: TVoid}, nil)
	c.Register("drop_map", Signature{Params: []MachineType{TMapHandle}, Return: TVoid}, nil)

	// Scalar conversions (spec §4.3).
	c.Register("int_to_str", Signature{Params: []MachineType{TInt}, Return: TStrByValue}, nil)
	c.Register("float_to_str", Signature{Params: []MachineType{TFloat}, Return: TStrByValue}, nil)
	c.Register("str_to_int", Signature{Params: []MachineType{TStrRef}, Return: TInt}, nil)
	c.Register("str_to_float", Signature{Params: []MachineType{TStrRef}, Return: TFloat}, nil)

	// String primitives (spec §4.4).
	c.Register("str_len", Signature{Params: []MachineType{TStrRef}, Return: TUsize}, nil)
	c.Register("concat", Signature{Params: []MachineType{TStrRef, TStrRef}, Return: TStrByValue}, nil)
	c.Register("str_lt", Signature{Params: []MachineType{TStrRef, TStrRef}, Return: TInt}, nil)
	c.Register("str_gt", Signature{Params: []MachineType{TStrRef, TStrRef}, Return: TInt}, nil)
	c.Register("str_lte", Signature{Params: []MachineType{TStrRef, TStrRef}, Return: TInt}, nil)
	c.Register("str_gte", Signature{Params: []MachineType{TStrRef, TStrRef}, Return: TInt}, nil)
	c.Register("str_eq", Signature{Params: []MachineType{TStrRef, TStrRef}, Return: TInt}, nil)

	// Regex / fields (spec §4.5, §4.6).
	c.Register("match_pat", Signature{Params: []MachineType{TRuntimePtr, TStrRef, TStrRef}, Return: TInt}, nil)
	c.Register("get_col", Signature{Params: []MachineType{TRuntimePtr, TInt}, Return: TStrByValue}, nil)
	c.Register("set_col", Signature{Params: []MachineType{TRuntimePtr, TInt, TStrRef}, Return: TVoid}, nil)
	c.Register("split_int", Signature{Params: []MachineType{TRuntimePtr, TStrRef, TStrRef, TMapHandle}, Return: TInt}, nil)
	c.Register("split_str", Signature{Params: []MachineType{TRuntimePtr, TStrRef, TStrRef, TMapHandle}, Return: TInt}, nil)

	// I/O (spec §4.7).
	c.Register("print_stdout", Signature{Params: []MachineType{TRuntimePtr, TStrRef}, Return: TVoid}, nil)
	c.Register("print", Signature{Params: []MachineType{TRuntimePtr, TStrRef, TStrRef, TInt}, Return: TVoid}, nil)
	c.Register("read_err", Signature{Params: []MachineType{TRuntimePtr, TStrRef}, Return: TInt}, nil)
	c.Register("read_err_stdin", Signature{Params: []MachineType{TRuntimePtr}, Return: TInt}, nil)
	c.Register("next_line", Signature{Params: []MachineType{TRuntimePtr, TStrRef}, Return: TStrByValue}, nil)
	c.Register("next_line_stdin", Signature{Params: []MachineType{TRuntimePtr}, Return: TStrByValue}, nil)

	// Built-in variables (spec §4.8).
	c.Register("load_var_str", Signature{Params: []MachineType{TRuntimePtr, TUsize}, Return: TStrByValue}, nil)
	c.Register("store_var_str", Signature{Params: []MachineType{TRuntimePtr, TUsize, TStrRef}, Return: TVoid}, nil)
	c.Register("load_var_int", Signature{Params: []MachineType{TRuntimePtr, TUsize}, Return: TInt}, nil)
	c.Register("store_var_int", Signature{Params: []MachineType{TRuntimePtr, TUsize, TInt}, Return: TVoid}, nil)
	c.Register("load_var_intmap", Signature{Params: []MachineType{TRuntimePtr, TUsize}, Return: TMapHandle}, nil)
	c.Register("store_var_intmap", Signature{Params: []MachineType{TRuntimePtr, TUsize, TMapHandle}, Return: TVoid}, nil)

	// Typed map family: six (K,V) pairs × six operations (spec §4.9).
	for _, kv := range mapVariants {
		registerMapVariant(c, kv)
	}

	return c
}

type mapKV struct {
	name    string // e.g. "intint"
	keyTy   MachineType
	valTy   MachineType
}

var mapVariants = []mapKV{
	{"intint", TInt, TInt},
	{"intfloat", TInt, TFloat},
	{"intstr", TInt, TStrByValue},
	{"strint", TStrRef, TInt},
	{"strfloat", TStrRef, TFloat},
	{"strstr", TStrRef, TStrByValue},
}

func registerMapVariant(c *Catalog, kv mapKV) {
	// insert/lookup/contains/delete take keys by the "in" type: Int and
	// Float pass by value, Str passes by reference, matching the machine
	// ABI table's by-value/by-reference split for scalar carriers.
	keyParamTy := kv.keyTy
	if keyParamTy == TStrByValue {
		keyParamTy = TStrRef
	}
	valParamTy := kv.valTy
	if valParamTy == TStrByValue {
		valParamTy = TStrRef
	}

	c.Register("alloc_"+kv.name, Signature{Params: nil, Return: TMapHandle}, nil)
	c.Register("len_"+kv.name, Signature{Params: []MachineType{TMapHandle}, Return: TInt}, nil)
	c.Register("lookup_"+kv.name, Signature{Params: []MachineType{TMapHandle, keyParamTy}, Return: kv.valTy}, nil)
	c.Register("contains_"+kv.name, Signature{Params: []MachineType{TMapHandle, keyParamTy}, Return: TInt}, nil)
	c.Register("insert_"+kv.name, Signature{Params: []MachineType{TMapHandle, keyParamTy, valParamTy}, Return: TVoid}, nil)
	c.Register("delete_"+kv.name, Signature{Params: []MachineType{TMapHandle, keyParamTy}, Return: TVoid}, nil)
}
