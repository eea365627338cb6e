// Package vars implements the built-in variable store (spec §3, §4.8):
// a fixed record of AWK globals with strictly typed load/store
// intrinsics keyed by a stable integer code.
package vars

import (
	"fmt"

	"awkrt/pkg/sharedmap"
	"awkrt/pkg/value"
)

// Code is the stable integer enumeration spec §6 calls for.
type Code int

const (
	ARGC Code = iota
	ARGV
	FS
	NF
	NR
	OFS
	RS
	FILENAME
)

func (c Code) String() string {
	switch c {
	case ARGC:
		return "ARGC"
	case ARGV:
		return "ARGV"
	case FS:
		return "FS"
	case NF:
		return "NF"
	case NR:
		return "NR"
	case OFS:
		return "OFS"
	case RS:
		return "RS"
	case FILENAME:
		return "FILENAME"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Store holds the Variables record from spec §3. FS defaults to a
// single space (AWK's whitespace-run splitting mode); RS defaults to a
// newline.
type Store struct {
	FSVal       value.Str
	OFSVal      value.Str
	RSVal       value.Str
	FilenameVal value.Str
	ARGCVal     int64
	NRVal       int64
	NFVal       int64
	ARGVVal     sharedmap.Map[int64, value.Str]
}

// New returns a Store with AWK's default FS/OFS/RS and a fresh, empty
// ARGV map.
func New() *Store {
	return &Store{
		FSVal:   value.FromString(" "),
		OFSVal:  value.FromString(" "),
		RSVal:   value.FromString("\n"),
		ARGCVal: 0,
		ARGVVal: sharedmap.New[int64, value.Str](),
	}
}

// CategoryError reports a variable code used with the wrong load/store
// category (a programming contract violation per spec §7 item 1).
type CategoryError struct {
	Code     Code
	Category string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("variable %s is not a %s variable", e.Code, e.Category)
}

// UnknownCodeError reports a variable code outside the stable
// enumeration.
type UnknownCodeError struct{ Code int }

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("invalid variable code %d", e.Code)
}

func validCode(raw int) (Code, error) {
	c := Code(raw)
	switch c {
	case ARGC, ARGV, FS, NF, NR, OFS, RS, FILENAME:
		return c, nil
	default:
		return 0, &UnknownCodeError{Code: raw}
	}
}

// LoadStr implements `load_var_str`. Permitted: FS, OFS, RS, FILENAME.
func (s *Store) LoadStr(raw int) (value.Str, error) {
	c, err := validCode(raw)
	if err != nil {
		return value.Empty, err
	}
	switch c {
	case FS:
		return value.Ref(s.FSVal), nil
	case OFS:
		return value.Ref(s.OFSVal), nil
	case RS:
		return value.Ref(s.RSVal), nil
	case FILENAME:
		return value.Ref(s.FilenameVal), nil
	default:
		return value.Empty, &CategoryError{Code: c, Category: "string"}
	}
}

// StoreStr implements `store_var_str`.
func (s *Store) StoreStr(raw int, v value.Str) error {
	c, err := validCode(raw)
	if err != nil {
		return err
	}
	owned := value.Ref(v)
	switch c {
	case FS:
		s.FSVal = owned
	case OFS:
		s.OFSVal = owned
	case RS:
		s.RSVal = owned
	case FILENAME:
		s.FilenameVal = owned
	default:
		return &CategoryError{Code: c, Category: "string"}
	}
	return nil
}

// LoadInt implements `load_var_int`. Permitted: ARGC, NR, NF. Callers
// that need NF's realize-on-read behavior (spec §4.8) should call
// EnsureNF before LoadInt(NF) — kept as a separate seam so this package
// doesn't need to depend on pkg/record/pkg/regexcache.
func (s *Store) LoadInt(raw int) (int64, error) {
	c, err := validCode(raw)
	if err != nil {
		return 0, err
	}
	switch c {
	case ARGC:
		return s.ARGCVal, nil
	case NF:
		return s.NFVal, nil
	case NR:
		return s.NRVal, nil
	default:
		return 0, &CategoryError{Code: c, Category: "int"}
	}
}

// StoreInt implements `store_var_int`.
func (s *Store) StoreInt(raw int, v int64) error {
	c, err := validCode(raw)
	if err != nil {
		return err
	}
	switch c {
	case ARGC:
		s.ARGCVal = v
	case NF:
		s.NFVal = v
	case NR:
		s.NRVal = v
	default:
		return &CategoryError{Code: c, Category: "int"}
	}
	return nil
}

// LoadIntMap implements `load_var_intmap`. Permitted: ARGV.
func (s *Store) LoadIntMap(raw int) (sharedmap.Map[int64, value.Str], error) {
	c, err := validCode(raw)
	if err != nil {
		return sharedmap.Map[int64, value.Str]{}, err
	}
	if c != ARGV {
		return sharedmap.Map[int64, value.Str]{}, &CategoryError{Code: c, Category: "intmap"}
	}
	return sharedmap.Ref(s.ARGVVal), nil
}

// StoreIntMap implements `store_var_intmap`.
func (s *Store) StoreIntMap(raw int, m sharedmap.Map[int64, value.Str]) error {
	c, err := validCode(raw)
	if err != nil {
		return err
	}
	if c != ARGV {
		return &CategoryError{Code: c, Category: "intmap"}
	}
	s.ARGVVal = sharedmap.Ref(m)
	return nil
}
