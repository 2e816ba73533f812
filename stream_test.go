package bytebuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChaining(t *testing.T) {
	b := NewByteBuffer(0)

	b.WriteBool(true).
		WriteInt8(-8).
		WriteInt16(-16).
		WriteInt32(-32).
		WriteInt64(-64).
		WriteUint8(8).
		WriteUint16(16).
		WriteUint32(32).
		WriteUint64(64).
		WriteFloat32(0.5).
		WriteFloat64(0.25).
		WriteString("speed")

	require.Equal(t, uint32(1+1+2+4+8+1+2+4+8+4+8+4+5), b.Size())

	var (
		bl  bool
		i8  int8
		i16 int16
		i32 int32
		i64 int64
		u8  uint8
		u16 uint16
		u32 uint32
		u64 uint64
		f32 float32
		f64 float64
		s   string
	)

	b.ReadBool(&bl).
		ReadInt8(&i8).
		ReadInt16(&i16).
		ReadInt32(&i32).
		ReadInt64(&i64).
		ReadUint8(&u8).
		ReadUint16(&u16).
		ReadUint32(&u32).
		ReadUint64(&u64).
		ReadFloat32(&f32).
		ReadFloat64(&f64).
		ReadString(&s)

	assert.True(t, bl)
	assert.Equal(t, int8(-8), i8)
	assert.Equal(t, int16(-16), i16)
	assert.Equal(t, int32(-32), i32)
	assert.Equal(t, int64(-64), i64)
	assert.Equal(t, uint8(8), u8)
	assert.Equal(t, uint16(16), u16)
	assert.Equal(t, uint32(32), u32)
	assert.Equal(t, uint64(64), u64)
	assert.Equal(t, float32(0.5), f32)
	assert.Equal(t, 0.25, f64)
	assert.Equal(t, "speed", s)
	assert.Equal(t, uint32(0), b.BytesRemaining())
	assert.NoError(t, b.Err())
}

func TestChainingOrder(t *testing.T) {
	b := NewByteBuffer(0)
	b.WriteUint8(1).WriteUint8(2).WriteUint8(3)

	assert.Equal(t, []byte{1, 2, 3}, b.Bytes())

	var x, y, z uint8
	b.ReadUint8(&x).ReadUint8(&y).ReadUint8(&z)
	assert.Equal(t, []uint8{1, 2, 3}, []uint8{x, y, z})
}

func TestWriteCString(t *testing.T) {
	cases := []struct {
		val      []byte
		expected string
	}{
		{[]byte("mmv\x00"), "mmv"},
		{[]byte("mmv\x00garbage"), "mmv"},
		{[]byte("mmv"), "mmv"},
		{[]byte("\x00"), ""},
		{nil, ""},
	}

	for _, c := range cases {
		b := NewByteBuffer(0)
		b.WriteCString(c.val)

		assert.Equal(t, uint32(4+len(c.expected)), b.Size())

		var s string
		b.ReadString(&s)
		assert.Equal(t, c.expected, s)
	}
}

func TestReadChar(t *testing.T) {
	b := NewByteBufferSlice([]byte("ab"))

	var c1, c2, c3 byte
	b.ReadChar(&c1).ReadChar(&c2).ReadChar(&c3)

	assert.Equal(t, byte('a'), c1)
	assert.Equal(t, byte('b'), c2)
	assert.Equal(t, byte(0), c3)
	assert.Equal(t, uint32(3), b.ReadPos())
}
