package zbor

import "sync"

// Allocator is the allocation capability the decoder threads through every
// recursive call. It is the collaborator spec.md calls out as external to
// the core: byte-buffer acquisition policy lives here, not in the decoder.
//
// NewBytes must return a slice of exactly n bytes, ready to be filled by
// the caller. Free is called exactly once for every slice NewBytes
// returned: when the [Item] owning it is released, on the decoder's
// error-unwind path for partially built subtrees, or, for a text
// payload, as soon as it has been copied into the TextItem's string. A
// nil Allocator is
// equivalent to [DefaultAllocator].
type Allocator interface {
	NewBytes(n int) ([]byte, error)
	Free(b []byte)
}

// defaultAllocator allocates directly from the Go heap and never fails.
// It is the zero-configuration Allocator used when callers pass nil.
type defaultAllocator struct{}

// DefaultAllocator is the Allocator used by [Decode] and [DecodeAt] when
// no allocator option is supplied.
var DefaultAllocator Allocator = defaultAllocator{}

func (defaultAllocator) NewBytes(n int) ([]byte, error) { return make([]byte, n), nil }
func (defaultAllocator) Free([]byte)                    {}

// CountingAllocator wraps another Allocator and tracks the number of
// live bytes it has handed out but not yet had freed. It exists to make
// the ownership-balance property (construct a tree, destroy it, live
// bytes returns to zero) directly observable in tests, the way the
// teacher's pooled ByteBuffer tracks buffer lifetime via sync.Pool.
type CountingAllocator struct {
	Underlying Allocator

	mu   sync.Mutex
	live int64
}

// NewCountingAllocator wraps underlying (or [DefaultAllocator] if nil).
func NewCountingAllocator(underlying Allocator) *CountingAllocator {
	if underlying == nil {
		underlying = DefaultAllocator
	}
	return &CountingAllocator{Underlying: underlying}
}

func (c *CountingAllocator) NewBytes(n int) ([]byte, error) {
	b, err := c.Underlying.NewBytes(n)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.live += int64(len(b))
	c.mu.Unlock()
	return b, nil
}

func (c *CountingAllocator) Free(b []byte) {
	c.mu.Lock()
	c.live -= int64(len(b))
	c.mu.Unlock()
	c.Underlying.Free(b)
}

// LiveBytes returns the number of bytes currently allocated and not yet
// freed.
func (c *CountingAllocator) LiveBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

// PooledAllocator recycles byte slices through a sync.Pool, following the
// teacher's ByteBuffer pool (bytebufferpool.go) for the same reason: CBOR
// decode of adversarial or high-volume input allocates many short-lived
// buffers, and a pool avoids handing each one to the garbage collector
// individually. Every slice NewBytes hands out is owned by the caller
// until passed back to Free; Free is what returns it to the pool, never
// NewBytes itself.
type PooledAllocator struct {
	pool sync.Pool
}

// NewPooledAllocator constructs a PooledAllocator.
func NewPooledAllocator() *PooledAllocator {
	return &PooledAllocator{pool: sync.Pool{New: func() any { return make([]byte, 0, 256) }}}
}

func (p *PooledAllocator) NewBytes(n int) ([]byte, error) {
	b := p.pool.Get().([]byte)
	if cap(b) < n {
		return make([]byte, n), nil
	}
	return b[:n], nil
}

func (p *PooledAllocator) Free(b []byte) {
	p.pool.Put(b[:0]) //nolint:staticcheck // intentionally retaining capacity for reuse
}
