// Package bytebuffer implements a growable byte buffer with independent read and
// write cursors, that can pack fixed width values, strings and containers into a
// contiguous byte sequence and unpack them back in the same order.
//
// bytes.Buffer was not enough here, it does not allow moving around in the buffer
// and the read side always consumes what it returns. A ByteBuffer keeps the bytes
// until they are cleared, and either cursor can be moved to any position.
//
// Values are stored in the native in-memory layout of the platform, there is no
// byte order or alignment normalization. A buffer written on one architecture is
// only guaranteed to read back correctly on the same architecture.
//
// The default policy on malformed input is to never fail: reading past the end
// yields zero values, and an Insert that does not fit is dropped. Every such
// event is recorded, and can be checked through Err once a sequence of reads is
// done.
//
// A ByteBuffer is not safe for concurrent use.
package bytebuffer

import "io"

// Buffer defines an abstraction for an object that holds binary values and allows
// reading and writing them through two separate cursors
type Buffer interface {
	io.Reader
	io.Writer
	io.ByteReader
	io.ByteWriter
	Bytes() []byte
	Len() int
	Size() uint32
	BytesRemaining() uint32
	ReadPos() uint32
	SetReadPos(uint32)
	WritePos() uint32
	SetWritePos(uint32)
	Clear()
	Resize(uint32)
	Err() error
}

var _ Buffer = (*ByteBuffer)(nil)
