package sharedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"awkrt/pkg/value"
)

func TestLookupMissReturnsDefaultAndDoesNotInsert(t *testing.T) {
	m := New[int64, int64]()
	assert.EqualValues(t, 0, Lookup(m, int64(42)))
	assert.EqualValues(t, 0, Len(m))
	assert.False(t, Contains(m, int64(42)))
}

func TestContainsReflectsInsertAndDelete(t *testing.T) {
	m := New[int64, value.Str]()
	Insert(m, int64(1), value.FromString("one"))
	assert.True(t, Contains(m, int64(1)))
	assert.EqualValues(t, 1, Len(m))

	Delete(m, int64(1))
	assert.False(t, Contains(m, int64(1)))
	assert.EqualValues(t, 0, Len(m))

	// Delete on a missing key is a no-op, not an error.
	Delete(m, int64(99))
}

func TestInsertReplacesPriorMapping(t *testing.T) {
	m := New[value.Str, int64]()
	k := value.FromString("count")
	Insert(m, k, 1)
	Insert(m, k, 2)
	assert.EqualValues(t, 2, Lookup(m, k))
	assert.EqualValues(t, 1, Len(m))
}

func TestRefDropAreRepresentationPolymorphic(t *testing.T) {
	// Exercise all six (K,V) pairs through the same generic Ref/Drop —
	// this is the property the uniform header makes possible.
	mii := New[int64, int64]()
	mif := New[int64, float64]()
	mis := New[int64, value.Str]()
	msi := New[value.Str, int64]()
	msf := New[value.Str, float64]()
	mss := New[value.Str, value.Str]()

	for _, rc := range []int64{
		func() int64 { Ref(mii); return RefCount(mii) }(),
		func() int64 { Ref(mif); return RefCount(mif) }(),
		func() int64 { Ref(mis); return RefCount(mis) }(),
		func() int64 { Ref(msi); return RefCount(msi) }(),
		func() int64 { Ref(msf); return RefCount(msf) }(),
		func() int64 { Ref(mss); return RefCount(mss) }(),
	} {
		assert.EqualValues(t, 2, rc)
	}

	Drop(mii)
	assert.EqualValues(t, 1, RefCount(mii))
}

func TestHandlePublishResolveRoundTrip(t *testing.T) {
	m := New[int64, value.Str]()
	Insert(m, 7, value.FromString("seven"))

	h := Publish(m)
	got := Resolve[int64, value.Str](h)
	assert.True(t, value.Eq(value.FromString("seven"), Lookup(got, int64(7))))
}

func TestHandleTypeMismatchPanics(t *testing.T) {
	m := New[int64, int64]()
	h := Publish(m)
	assert.Panics(t, func() {
		Resolve[value.Str, value.Str](h)
	})
}

func TestResolveRefCountedWorksAcrossAllVariants(t *testing.T) {
	variants := []Handle{
		Publish(New[int64, int64]()),
		Publish(New[int64, float64]()),
		Publish(New[int64, value.Str]()),
		Publish(New[value.Str, int64]()),
		Publish(New[value.Str, float64]()),
		Publish(New[value.Str, value.Str]()),
	}
	for _, h := range variants {
		rc := ResolveRefCounted(h)
		rc.IncRef()
		rc.IncRef()
		rc.DecRef()
	}
	assert.EqualValues(t, 2, RefCount(Resolve[int64, int64](variants[0])))
}

func TestResolveRefCountedPanicsOnNonRefCountedHandle(t *testing.T) {
	handleSlab = append(handleSlab, "not a map")
	h := Handle(len(handleSlab) - 1)
	assert.Panics(t, func() { ResolveRefCounted(h) })
}

// TestStrKeyedLookupMatchesByContentNotIdentity guards against keying the
// internal map on value.Str's pointer-identity struct equality: a key
// inserted through one Str instance must be found by a distinct Str
// instance holding identical bytes, exactly as split_str and split_int
// are required to agree on tokens.
func TestStrKeyedLookupMatchesByContentNotIdentity(t *testing.T) {
	m := New[value.Str, value.Str]()
	Insert(m, value.IntToStr(1), value.FromString("one"))

	got := Lookup(m, value.FromString("1"))
	assert.Equal(t, "one", got.String())
	assert.True(t, Contains(m, value.FromString("1")))
}

// TestInsertAndLookupOwnCloneOfStrKeyAndValue guards the ABI ownership
// contract: insert must take its own ref-incremented copy of a Str key
// and value rather than the caller's borrowed reference, and lookup must
// hand back a fresh ref-incremented clone rather than the map's own
// stored copy — otherwise the caller dropping its own reference (or the
// caller dropping what lookup returned) tears down the map's entry out
// from under it.
func TestInsertAndLookupOwnCloneOfStrKeyAndValue(t *testing.T) {
	m := New[value.Str, value.Str]()
	key := value.FromString("k")
	val := value.FromString("v")

	Insert(m, key, val)
	// The caller drops its own references right after inserting, as
	// generated code does once a binding goes out of scope.
	value.Drop(key)
	value.Drop(val)

	got := Lookup(m, value.FromString("k"))
	assert.Equal(t, "v", got.String())

	// Dropping the clone lookup handed back must not disturb the map's
	// own stored copy.
	value.Drop(got)
	assert.Equal(t, "v", Lookup(m, value.FromString("k")).String())
}
