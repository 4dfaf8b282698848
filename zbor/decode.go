package zbor

// Option configures a Decode/DecodeAt or Encode call. Options are applied
// left to right; a later option overrides an earlier conflicting one.
// This is the idiomatic-Go rendering of the teacher Reader's
// SetStrictDecode/SetDeterministicDecode/SetMaxContainerLen setters,
// reshaped as functional options because Decode is a free function with
// no receiver to hang setters off.
type Option func(*config)

type config struct {
	alloc    Allocator
	maxDepth int // 0 means unbounded
}

// WithAllocator supplies the Allocator used for every Bytes/Text payload
// decoded during this call. Defaults to [DefaultAllocator].
func WithAllocator(alloc Allocator) Option {
	return func(c *config) { c.alloc = alloc }
}

// WithMaxDepth caps recursion depth (Array/Map/Tag nesting) during
// decode, returning KindUnsupported once exceeded. Spec §4.2 leaves the
// decoder unbounded by design; this is an explicit, off-by-default opt-in
// for embedders facing adversarial input, grounded in the teacher's
// SetMaxContainerLen/recursionLimit guards. A depth of 0 (the default)
// disables the check.
func WithMaxDepth(depth int) Option {
	return func(c *config) { c.maxDepth = depth }
}

func newConfig(opts []Option) *config {
	c := &config{alloc: DefaultAllocator}
	for _, o := range opts {
		o(c)
	}
	if c.alloc == nil {
		c.alloc = DefaultAllocator
	}
	return c
}

// Decode parses exactly one CBOR item from the start of data and returns
// it. It is equivalent to DecodeAt with a cursor initialized to zero,
// except that it additionally reports an error if data contains trailing
// bytes after the item — Decode is for "this buffer is exactly one
// item", DecodeAt is for consuming a sequence.
func Decode(data []byte, opts ...Option) (Item, error) {
	cursor := 0
	item, err := DecodeAt(data, &cursor, opts...)
	if err != nil {
		return nil, err
	}
	if cursor != len(data) {
		Release(item, newConfig(opts).alloc)
		return nil, errMalformedf("decode: %d trailing byte(s) after item", len(data)-cursor)
	}
	return item, nil
}

// DecodeAt parses exactly one CBOR item from data starting at *cursor,
// advances *cursor to one byte past the end of the consumed item on
// success, and returns the item. On failure *cursor's value is
// unspecified and any storage partially allocated for this call's
// subtree has already been released.
func DecodeAt(data []byte, cursor *int, opts ...Option) (Item, error) {
	c := newConfig(opts)
	item, next, err := decodeOne(data, *cursor, c, 0)
	if err != nil {
		return nil, err
	}
	*cursor = next
	return item, nil
}

func decodeOne(data []byte, pos int, c *config, depth int) (Item, int, error) {
	if c.maxDepth > 0 && depth > c.maxDepth {
		return nil, pos, errUnsupported("max decode depth exceeded")
	}

	h, next, err := readHead(data, pos)
	if err != nil {
		return nil, pos, err
	}

	switch h.major {
	case majorUint:
		return &IntItem{Negative: false, Magnitude: h.arg}, next, nil

	case majorNegInt:
		return &IntItem{Negative: true, Magnitude: h.arg}, next, nil

	case majorBytes:
		buf, end, err := decodePayload(data, next, h.arg, c)
		if err != nil {
			return nil, pos, err
		}
		return &BytesItem{Data: buf}, end, nil

	case majorText:
		buf, end, err := decodePayload(data, next, h.arg, c)
		if err != nil {
			return nil, pos, err
		}
		text := string(buf)
		c.alloc.Free(buf) // the string holds its own copy
		return &TextItem{Data: text}, end, nil

	case majorArray:
		return decodeArray(data, next, h.arg, c, depth)

	case majorMap:
		return decodeMap(data, next, h.arg, c, depth)

	case majorTag:
		child, end, err := decodeOne(data, next, c, depth+1)
		if err != nil {
			return nil, pos, err
		}
		return &TagItem{Number: h.arg, Child: child}, end, nil

	case majorSimple:
		return decodeSimpleOrFloat(h, next, pos)

	default:
		return nil, pos, errMalformedf("unreachable major type %d", h.major)
	}
}

// decodePayload copies n bytes from data[pos:] using c's Allocator,
// bounds-checking so that an over-long advertised length reports
// KindMalformed instead of slicing past the end of data — spec §9's
// open hardening point, resolved here defensively per §4.1's allowance.
func decodePayload(data []byte, pos int, n uint64, c *config) ([]byte, int, error) {
	if n > uint64(len(data)-pos) {
		return nil, pos, errMalformed("payload length exceeds remaining input")
	}
	end := pos + int(n)
	buf, err := c.alloc.NewBytes(int(n))
	if err != nil {
		return nil, pos, errOutOfMemory(err)
	}
	copy(buf, data[pos:end])
	return buf, end, nil
}

func decodeArray(data []byte, pos int, count uint64, c *config, depth int) (Item, int, error) {
	elems := make([]Item, 0, clampPreallocate(count))
	cur := pos
	for idx := uint64(0); idx < count; idx++ {
		elem, next, err := decodeOne(data, cur, c, depth+1)
		if err != nil {
			for _, e := range elems {
				Release(e, c.alloc)
			}
			return nil, pos, err
		}
		elems = append(elems, elem)
		cur = next
	}
	return &ArrayItem{Elems: elems}, cur, nil
}

func decodeMap(data []byte, pos int, count uint64, c *config, depth int) (Item, int, error) {
	pairs := make([]Pair, 0, clampPreallocate(count))
	cur := pos
	release := func() {
		for _, p := range pairs {
			Release(p.Key, c.alloc)
			Release(p.Value, c.alloc)
		}
	}
	for idx := uint64(0); idx < count; idx++ {
		key, next, err := decodeOne(data, cur, c, depth+1)
		if err != nil {
			release()
			return nil, pos, err
		}
		cur = next
		val, next2, err := decodeOne(data, cur, c, depth+1)
		if err != nil {
			Release(key, c.alloc)
			release()
			return nil, pos, err
		}
		cur = next2
		pairs = append(pairs, Pair{Key: key, Value: val})
	}
	return &MapItem{Pairs: pairs}, cur, nil
}

// clampPreallocate bounds how eagerly decodeArray/decodeMap preallocate
// backing storage from an attacker-controlled count, so a single small
// header claiming billions of elements cannot itself exhaust memory
// before the truncated input is even read.
func clampPreallocate(count uint64) int {
	const maxPrealloc = 4096
	if count > maxPrealloc {
		return maxPrealloc
	}
	return int(count)
}

func decodeSimpleOrFloat(h head, next int, pos int) (Item, int, error) {
	switch h.addInfo {
	case simpleFalse:
		return &SimpleItem{Value: SimpleFalse}, next, nil
	case simpleTrue:
		return &SimpleItem{Value: SimpleTrue}, next, nil
	case simpleNull:
		return &SimpleItem{Value: SimpleNull}, next, nil
	case simpleUndef:
		return &SimpleItem{Value: SimpleUndefined}, next, nil
	case addInfoUint8: // one-byte simple value; h.arg holds it
		if h.arg < 32 {
			return nil, pos, errMalformedf("one-byte simple value %d overlaps the direct range", h.arg)
		}
		return nil, pos, errUnsupported("one-byte simple values are not modeled")
	case simpleFloat16:
		return &FloatItem{Width: Float16, Bits: h.arg}, next, nil
	case simpleFloat32:
		return &FloatItem{Width: Float32Width, Bits: h.arg}, next, nil
	case simpleFloat64:
		return &FloatItem{Width: Float64Width, Bits: h.arg}, next, nil
	default:
		return nil, pos, errMalformedf("additional information %d is invalid for major type 7", h.addInfo)
	}
}
