package zbor

import "testing"

func TestCountingAllocatorTracksLiveBytes(t *testing.T) {
	c := NewCountingAllocator(nil)
	b1, err := c.NewBytes(10)
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	if got := c.LiveBytes(); got != 10 {
		t.Fatalf("LiveBytes() = %d, want 10", got)
	}

	b2, err := c.NewBytes(5)
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	if got := c.LiveBytes(); got != 15 {
		t.Fatalf("LiveBytes() = %d, want 15", got)
	}

	c.Free(b1)
	if got := c.LiveBytes(); got != 5 {
		t.Fatalf("LiveBytes() after one Free = %d, want 5", got)
	}
	c.Free(b2)
	if got := c.LiveBytes(); got != 0 {
		t.Fatalf("LiveBytes() after both Free = %d, want 0", got)
	}
}

func TestPooledAllocatorReturnsRequestedLength(t *testing.T) {
	p := NewPooledAllocator()
	for _, n := range []int{0, 1, 256, 257, 4096} {
		b, err := p.NewBytes(n)
		if err != nil {
			t.Fatalf("NewBytes(%d): %v", n, err)
		}
		if len(b) != n {
			t.Fatalf("NewBytes(%d) returned length %d", n, len(b))
		}
		p.Free(b)
	}
}

func TestPooledAllocatorDoesNotAliasConcurrentAllocations(t *testing.T) {
	p := NewPooledAllocator()
	a, err := p.NewBytes(64)
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	b, err := p.NewBytes(64)
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	// Writing through one slice must never be observable through the
	// other: NewBytes must not hand out a slice that is still sitting in
	// the pool for another caller to receive.
	for i := range a {
		a[i] = 0xff
	}
	for i := range b {
		if b[i] == 0xff {
			t.Fatal("second allocation aliases the first allocation's backing array")
		}
	}
}
