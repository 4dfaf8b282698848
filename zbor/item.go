package zbor

import (
	"math"
	"math/big"

	"github.com/x448/float16"
)

// Kind identifies which of the eight CBOR major-type variants an Item
// holds. It is the Go-idiomatic stand-in for spec's "tagged sum" — one
// concrete type implements Item per Kind, the way go/ast has one node
// type per grammar production.
type Kind uint8

const (
	KindInt Kind = iota
	KindBytes
	KindText
	KindArray
	KindMap
	KindTag
	KindFloat
	KindSimple
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindTag:
		return "tag"
	case KindFloat:
		return "float"
	case KindSimple:
		return "simple"
	default:
		return "invalid"
	}
}

// Item is a single node in the CBOR value tree. It is implemented by
// *IntItem, *BytesItem, *TextItem, *ArrayItem, *MapItem, *TagItem,
// *FloatItem, and *SimpleItem — no other types satisfy it.
type Item interface {
	Kind() Kind

	// Equal reports structural equality with other per the §3 rule:
	// variants must match, and payloads must match recursively.
	Equal(other Item) bool

	// release recursively frees any Allocator-owned storage this item
	// holds (Bytes buffers), then its children's.
	release(alloc Allocator)

	isItem()
}

// Release recursively destroys item, freeing every Bytes buffer it
// owns (directly or through Array/Map/Tag descendants) back to alloc. A
// nil Allocator releases through [DefaultAllocator], which is a no-op.
func Release(item Item, alloc Allocator) {
	if item == nil {
		return
	}
	if alloc == nil {
		alloc = DefaultAllocator
	}
	item.release(alloc)
}

// Equal reports whether a and b are structurally equal per spec §3. A nil
// Item is equal only to another nil Item.
func Equal(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// --- IntItem ---------------------------------------------------------------

// IntItem holds a CBOR integer (major type 0 or 1). The value is carried
// as a sign flag plus a 64-bit magnitude rather than a native 128-bit
// integer — Go has none — so that the full [-2^64, 2^64-1] range spec.md
// §3 requires (including the -2^64 minimum) is representable without a
// wraparound.
type IntItem struct {
	Negative  bool
	Magnitude uint64 // if Negative, the represented value is -1-Magnitude
}

// NewUint constructs a non-negative IntItem.
func NewUint(v uint64) *IntItem { return &IntItem{Magnitude: v} }

// NewInt constructs an IntItem from a Go int64.
func NewInt(v int64) *IntItem {
	if v >= 0 {
		return &IntItem{Magnitude: uint64(v)}
	}
	return &IntItem{Negative: true, Magnitude: uint64(-1 - v)}
}

func (i *IntItem) Kind() Kind { return KindInt }
func (i *IntItem) isItem()    {}

func (i *IntItem) Equal(other Item) bool {
	o, ok := other.(*IntItem)
	return ok && o.Negative == i.Negative && o.Magnitude == i.Magnitude
}

func (i *IntItem) release(Allocator) {}

// Int64 returns the value as an int64 and reports whether it fits without
// truncation.
func (i *IntItem) Int64() (int64, bool) {
	if !i.Negative {
		if i.Magnitude > math.MaxInt64 {
			return 0, false
		}
		return int64(i.Magnitude), true
	}
	v := int64(-1) - int64(i.Magnitude)
	if i.Magnitude > math.MaxInt64 {
		return 0, false
	}
	return v, true
}

// BigInt returns the exact value, which always fits since big.Int is
// arbitrary precision.
func (i *IntItem) BigInt() *big.Int {
	mag := new(big.Int).SetUint64(i.Magnitude)
	if !i.Negative {
		return mag
	}
	// value = -1 - Magnitude
	return mag.Neg(mag.Add(mag, big.NewInt(1)))
}

// --- BytesItem ---------------------------------------------------------------

// BytesItem holds a CBOR byte string (major type 2).
type BytesItem struct {
	Data []byte
}

// NewBytes constructs a BytesItem that copies data.
func NewBytes(data []byte) *BytesItem {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &BytesItem{Data: cp}
}

func (b *BytesItem) Kind() Kind { return KindBytes }
func (b *BytesItem) isItem()    {}

func (b *BytesItem) Equal(other Item) bool {
	o, ok := other.(*BytesItem)
	if !ok || len(o.Data) != len(b.Data) {
		return false
	}
	for i := range b.Data {
		if b.Data[i] != o.Data[i] {
			return false
		}
	}
	return true
}

func (b *BytesItem) release(alloc Allocator) {
	if b.Data != nil {
		alloc.Free(b.Data)
		b.Data = nil
	}
}

// --- TextItem ---------------------------------------------------------------

// TextItem holds a CBOR text string (major type 3). Content is not
// validated as UTF-8 by this package.
type TextItem struct {
	Data string
}

// NewText constructs a TextItem.
func NewText(s string) *TextItem { return &TextItem{Data: s} }

func (t *TextItem) Kind() Kind { return KindText }
func (t *TextItem) isItem()    {}

func (t *TextItem) Equal(other Item) bool {
	o, ok := other.(*TextItem)
	return ok && o.Data == t.Data
}

func (t *TextItem) release(Allocator) {}

// --- ArrayItem ---------------------------------------------------------------

// ArrayItem holds a CBOR array (major type 4). Element order is semantic.
type ArrayItem struct {
	Elems []Item
}

// NewArray constructs an ArrayItem over elems (not copied).
func NewArray(elems ...Item) *ArrayItem { return &ArrayItem{Elems: elems} }

func (a *ArrayItem) Kind() Kind { return KindArray }
func (a *ArrayItem) isItem()    {}

func (a *ArrayItem) Equal(other Item) bool {
	o, ok := other.(*ArrayItem)
	if !ok || len(o.Elems) != len(a.Elems) {
		return false
	}
	for i := range a.Elems {
		if !Equal(a.Elems[i], o.Elems[i]) {
			return false
		}
	}
	return true
}

func (a *ArrayItem) release(alloc Allocator) {
	for _, e := range a.Elems {
		Release(e, alloc)
	}
	a.Elems = nil
}

// At returns the i'th element and true if i is in range, or (nil, false)
// otherwise. It is a read-only, O(1) navigation helper.
func (a *ArrayItem) At(i int) (Item, bool) {
	if i < 0 || i >= len(a.Elems) {
		return nil, false
	}
	return a.Elems[i], true
}

// --- MapItem ---------------------------------------------------------------

// Pair is one (key, value) entry of a MapItem, in wire order.
type Pair struct {
	Key   Item
	Value Item
}

// MapItem holds a CBOR map (major type 5) as an ordered list of pairs, not
// a hash table: this preserves wire order (significant to some CBOR
// consumers, e.g. COSE) and lets duplicate keys round-trip rather than
// being silently merged. Lookup is therefore O(n) by design.
type MapItem struct {
	Pairs []Pair
}

// NewMap constructs a MapItem over pairs (not copied).
func NewMap(pairs ...Pair) *MapItem { return &MapItem{Pairs: pairs} }

func (m *MapItem) Kind() Kind { return KindMap }
func (m *MapItem) isItem()    {}

func (m *MapItem) Equal(other Item) bool {
	o, ok := other.(*MapItem)
	if !ok || len(o.Pairs) != len(m.Pairs) {
		return false
	}
	for i := range m.Pairs {
		if !Equal(m.Pairs[i].Key, o.Pairs[i].Key) || !Equal(m.Pairs[i].Value, o.Pairs[i].Value) {
			return false
		}
	}
	return true
}

func (m *MapItem) release(alloc Allocator) {
	for _, p := range m.Pairs {
		Release(p.Key, alloc)
		Release(p.Value, alloc)
	}
	m.Pairs = nil
}

// Lookup scans pairs in wire order and returns the value of the first
// pair whose key is Equal to key, per spec §3 equality. Maps are not
// deduplicated, so this always resolves duplicate keys to the first
// occurrence.
func (m *MapItem) Lookup(key Item) (Item, bool) {
	for _, p := range m.Pairs {
		if Equal(p.Key, key) {
			return p.Value, true
		}
	}
	return nil, false
}

// LookupText is the common-case convenience for Lookup(NewText(s)):
// a linear scan for the first pair whose key is a TextItem with
// byte-equal contents.
func (m *MapItem) LookupText(s string) (Item, bool) {
	for _, p := range m.Pairs {
		if t, ok := p.Key.(*TextItem); ok && t.Data == s {
			return p.Value, true
		}
	}
	return nil, false
}

// --- TagItem ---------------------------------------------------------------

// TagItem holds a CBOR semantic tag (major type 6): a tag number plus
// exactly one child item. Tag numbers are preserved verbatim; this
// package does not interpret what a given tag number means.
type TagItem struct {
	Number uint64
	Child  Item
}

// NewTag constructs a TagItem.
func NewTag(number uint64, child Item) *TagItem { return &TagItem{Number: number, Child: child} }

func (t *TagItem) Kind() Kind { return KindTag }
func (t *TagItem) isItem()    {}

func (t *TagItem) Equal(other Item) bool {
	o, ok := other.(*TagItem)
	return ok && o.Number == t.Number && Equal(t.Child, o.Child)
}

func (t *TagItem) release(alloc Allocator) {
	Release(t.Child, alloc)
	t.Child = nil
}

// --- FloatItem ---------------------------------------------------------------

// FloatWidth identifies which of the three IEEE 754 binary widths a
// FloatItem was encoded at. Width is part of an Item's identity: a
// half-precision 0.0 and a single-precision 0.0 are distinct values under
// spec §3 equality, because the wire width is semantically meaningful
// (the inverse of the usual numeric-equality convention).
type FloatWidth uint8

const (
	Float16 FloatWidth = iota
	Float32Width
	Float64Width
)

// FloatItem holds a CBOR float (major type 7, additional info 25/26/27).
// Bits carries the raw IEEE 754 bit pattern for Width, widened into a
// uint64, so that NaN payloads and signed zero are preserved bit-exactly
// across a decode/encode round-trip.
type FloatItem struct {
	Width FloatWidth
	Bits  uint64
}

// NewFloat16 constructs a FloatItem carrying the raw IEEE 754 binary16
// bit pattern.
func NewFloat16(bits uint16) *FloatItem { return &FloatItem{Width: Float16, Bits: uint64(bits)} }

// NewFloat32 constructs a FloatItem carrying the raw IEEE 754 binary32
// bit pattern.
func NewFloat32(bits uint32) *FloatItem { return &FloatItem{Width: Float32Width, Bits: uint64(bits)} }

// NewFloat64 constructs a FloatItem carrying the raw IEEE 754 binary64
// bit pattern.
func NewFloat64(bits uint64) *FloatItem { return &FloatItem{Width: Float64Width, Bits: bits} }

// NewFloat32FromValue constructs a single-precision FloatItem from a Go
// float32.
func NewFloat32FromValue(f float32) *FloatItem { return NewFloat32(math.Float32bits(f)) }

// NewFloat64FromValue constructs a double-precision FloatItem from a Go
// float64.
func NewFloat64FromValue(f float64) *FloatItem { return NewFloat64(math.Float64bits(f)) }

// NewFloat16FromValue constructs a half-precision FloatItem from a Go
// float32, using github.com/x448/float16 for the narrowing conversion.
func NewFloat16FromValue(f float32) *FloatItem {
	return NewFloat16(uint16(float16.Fromfloat32(f)))
}

func (f *FloatItem) Kind() Kind { return KindFloat }
func (f *FloatItem) isItem()    {}

func (f *FloatItem) Equal(other Item) bool {
	o, ok := other.(*FloatItem)
	return ok && o.Width == f.Width && o.Bits == f.Bits
}

func (f *FloatItem) release(Allocator) {}

// Float64 widens the stored bit pattern to a float64, preserving value
// (not necessarily bit pattern, since float64 has more precision than
// float16/float32). Half-precision widening goes through
// github.com/x448/float16; single/double widening uses the standard
// library's IEEE bit reinterpretation, for which there is no ecosystem
// substitute.
func (f *FloatItem) Float64() float64 {
	switch f.Width {
	case Float16:
		return float64(float16.Float16(uint16(f.Bits)).Float32())
	case Float32Width:
		return float64(math.Float32frombits(uint32(f.Bits)))
	default:
		return math.Float64frombits(f.Bits)
	}
}

// --- SimpleItem ---------------------------------------------------------------

// SimpleValue enumerates the four simple values this package models.
// Other major-type-7 simple values (additional info 24 with argument
// outside this set, or argument >= 32) are not representable as an Item;
// decoding them fails with KindUnsupported or KindMalformed per spec §4.2.
type SimpleValue uint8

const (
	SimpleFalse SimpleValue = iota
	SimpleTrue
	SimpleNull
	SimpleUndefined
)

// SimpleItem holds one of the four modeled simple values.
type SimpleItem struct {
	Value SimpleValue
}

// NewSimple constructs a SimpleItem.
func NewSimple(v SimpleValue) *SimpleItem { return &SimpleItem{Value: v} }

func (s *SimpleItem) Kind() Kind { return KindSimple }
func (s *SimpleItem) isItem()    {}

func (s *SimpleItem) Equal(other Item) bool {
	o, ok := other.(*SimpleItem)
	return ok && o.Value == s.Value
}

func (s *SimpleItem) release(Allocator) {}
