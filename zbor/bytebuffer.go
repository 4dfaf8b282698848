package zbor

import "sync"

// byteBuffer is a growable output buffer recycled through a sync.Pool,
// adapted from the teacher's bytebufferpool.go: Encode allocates one of
// these per call instead of letting append grow a throwaway slice from
// scratch, since encoding is frequently called in a tight loop (e.g. one
// CBOR item per message in a broker).
type byteBuffer struct {
	buf []byte
}

var byteBufferPool = sync.Pool{
	New: func() any { return &byteBuffer{buf: make([]byte, 0, 64)} },
}

func getByteBuffer() *byteBuffer {
	return byteBufferPool.Get().(*byteBuffer)
}

func putByteBuffer(b *byteBuffer) {
	b.buf = b.buf[:0]
	byteBufferPool.Put(b)
}

func (b *byteBuffer) writeByte(c byte) {
	b.buf = append(b.buf, c)
}

func (b *byteBuffer) write(p []byte) {
	b.buf = append(b.buf, p...)
}

// bytes returns a fresh copy of the buffer's contents, safe to hand to a
// caller after the byteBuffer itself has been returned to the pool.
func (b *byteBuffer) bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}
