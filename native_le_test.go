//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package bytebuffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// only tests that depend on a little endian memory layout go here

func TestNativeLayout(t *testing.T) {
	cases := []struct {
		write    func(*ByteBuffer)
		expected []byte
	}{
		{func(b *ByteBuffer) { Append(b, uint16(0x0102)) }, []byte{0x02, 0x01}},
		{func(b *ByteBuffer) { Append(b, uint32(0x01020304)) }, []byte{0x04, 0x03, 0x02, 0x01}},
		{func(b *ByteBuffer) { Append(b, int32(-2)) }, []byte{0xfe, 0xff, 0xff, 0xff}},
		{func(b *ByteBuffer) { Append(b, uint64(1)) }, []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{func(b *ByteBuffer) { Append(b, float32(1)) }, []byte{0x00, 0x00, 0x80, 0x3f}},
		{func(b *ByteBuffer) { Append(b, math.Float64frombits(0x0102030405060708)) }, []byte{8, 7, 6, 5, 4, 3, 2, 1}},
		{func(b *ByteBuffer) { Append(b, true) }, []byte{1}},
		{func(b *ByteBuffer) { b.AppendString("hi") }, []byte{2, 0, 0, 0, 'h', 'i'}},
	}

	for _, c := range cases {
		b := NewByteBuffer(0)
		c.write(b)
		assert.Equal(t, c.expected, b.Bytes())
	}
}

func TestInsertLayout(t *testing.T) {
	b := NewByteBufferSlice(make([]byte, 6))

	Insert(b, uint32(0x0a0b0c0d), 1)

	assert.Equal(t, []byte{0, 0x0d, 0x0c, 0x0b, 0x0a, 0}, b.Bytes())
}
