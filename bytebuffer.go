package bytebuffer

import (
	"io"

	"go.uber.org/zap"
)

// DefaultSize is the capacity hint used by New, it can be changed through the
// DEFAULT_SIZE configuration key
var DefaultSize uint32 = 0x1000

// ByteBuffer is a growable byte slice with a read and a write cursor.
//
// The length of the underlying slice is always the logical size of the buffer,
// appending past the end grows it to exactly the required length.
type ByteBuffer struct {
	rpos   uint32
	wpos   uint32
	buffer []byte
	err    error // first anomaly since the last reset
}

// New creates an empty ByteBuffer with DefaultSize bytes preallocated
func New() *ByteBuffer {
	return NewByteBuffer(DefaultSize)
}

// NewByteBuffer creates an empty ByteBuffer with capacity for n bytes
func NewByteBuffer(n uint32) *ByteBuffer {
	return &ByteBuffer{
		buffer: make([]byte, 0, n),
	}
}

// NewByteBufferSlice creates a ByteBuffer holding a copy of the passed bytes,
// with the write cursor placed right after them. A nil or empty slice gives an
// empty buffer.
func NewByteBufferSlice(data []byte) *ByteBuffer {
	b := NewByteBuffer(uint32(len(data)))
	if len(data) > 0 {
		b.AppendBytes(data)
	}
	return b
}

// Size returns the number of bytes held by the buffer
func (b *ByteBuffer) Size() uint32 { return uint32(len(b.buffer)) }

// Len is Size as an int
func (b *ByteBuffer) Len() int { return len(b.buffer) }

// BytesRemaining returns the number of bytes between the read cursor and the end
// of the buffer.
//
// NOTE: the subtraction is not guarded, if the read cursor was moved past the end
// the result wraps around.
func (b *ByteBuffer) BytesRemaining() uint32 { return b.Size() - b.rpos }

// ReadPos returns the current read position
func (b *ByteBuffer) ReadPos() uint32 { return b.rpos }

// SetReadPos moves the read cursor, any position is accepted
func (b *ByteBuffer) SetReadPos(r uint32) { b.rpos = r }

// WritePos returns the current write position
func (b *ByteBuffer) WritePos() uint32 { return b.wpos }

// SetWritePos moves the write cursor, any position is accepted. Writing at a
// position past the end grows the buffer and zero fills the gap.
func (b *ByteBuffer) SetWritePos(w uint32) { b.wpos = w }

// Clear empties the buffer and resets both cursors and the recorded error.
// The capacity is kept.
func (b *ByteBuffer) Clear() {
	b.rpos = 0
	b.wpos = 0
	b.err = nil
	b.buffer = b.buffer[:0]
}

// Resize sets the size of the buffer to exactly n bytes, zero extending or
// truncating as needed. Both cursors and the recorded error are reset.
func (b *ByteBuffer) Resize(n uint32) {
	if int(n) <= len(b.buffer) {
		b.buffer = b.buffer[:n]
	} else {
		b.grow(uint64(n))
	}

	b.rpos = 0
	b.wpos = 0
	b.err = nil
}

// Equals reports whether both buffers hold the same bytes, cursors are not
// compared
func (b *ByteBuffer) Equals(other *ByteBuffer) bool {
	if other == nil || b.Size() != other.Size() {
		return false
	}

	for i := range b.buffer {
		if b.buffer[i] != other.buffer[i] {
			return false
		}
	}

	return true
}

// At returns the byte at pos, or 0 if pos is out of range
func (b *ByteBuffer) At(pos uint32) uint8 {
	return ReadAt[uint8](b, pos)
}

// Bytes returns a copy of the contents of the buffer
func (b *ByteBuffer) Bytes() []byte {
	ans := make([]byte, len(b.buffer))
	copy(ans, b.buffer)
	return ans
}

// Drain hands over the underlying storage to the caller.
//
// This is destructive, the buffer is left without storage and the cursors are
// not adjusted, it should be cleared or resized before being used again.
func (b *ByteBuffer) Drain() []byte {
	data := b.buffer
	b.buffer = nil

	if l := logFor("drain"); l != nil {
		l.Info("drained buffer",
			zap.Int("size", len(data)),
		)
	}

	return data
}

// ReplaceWith discards the contents of the buffer and copies every byte of other
// into it. The read cursor ends up at 0 and the write cursor right after the
// copied bytes. other is left untouched.
func (b *ByteBuffer) ReplaceWith(other *ByteBuffer) {
	if other == b {
		b.rpos, b.wpos, b.err = 0, b.Size(), nil
		return
	}

	b.Clear()
	if other != nil {
		b.AppendBytes(other.buffer)
	}
}

// grow makes sure the buffer is at least n bytes long, zero filling the new bytes
func (b *ByteBuffer) grow(n uint64) {
	l := uint64(len(b.buffer))
	if n <= l {
		return
	}

	if n <= uint64(cap(b.buffer)) {
		b.buffer = b.buffer[:n]
		clear(b.buffer[l:])
		return
	}

	b.buffer = append(b.buffer, make([]byte, n-l)...)
}

// Write appends p at the write cursor, it never fails
func (b *ByteBuffer) Write(p []byte) (int, error) {
	b.AppendBytes(p)
	return len(p), nil
}

// WriteByte appends a single byte at the write cursor
func (b *ByteBuffer) WriteByte(c byte) error {
	Append(b, c)
	return nil
}

// Read consumes up to len(p) bytes from the read cursor. Unlike the typed reads it
// follows the io.Reader contract and returns io.EOF once nothing is left.
func (b *ByteBuffer) Read(p []byte) (int, error) {
	if b.rpos >= b.Size() {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	n := copy(p, b.buffer[b.rpos:])
	b.rpos += uint32(n)
	return n, nil
}

// ReadByte consumes a single byte, returning io.EOF at the end of the buffer
func (b *ByteBuffer) ReadByte() (byte, error) {
	if b.rpos >= b.Size() {
		return 0, io.EOF
	}

	c := b.buffer[b.rpos]
	b.rpos++
	return c, nil
}
