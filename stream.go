package bytebuffer

import "bytes"

// The Write* and Read* methods below are the chaining counterparts of Append and
// Read. Each returns the buffer, so a sequence like
//
//	b.WriteUint32(1).WriteString("a").WriteFloat64(0.5)
//
// is executed left to right, every call seeing the cursors left by the one
// before it.

// WriteBool appends a bool
func (b *ByteBuffer) WriteBool(val bool) *ByteBuffer { Append(b, val); return b }

// WriteInt8 appends an int8
func (b *ByteBuffer) WriteInt8(val int8) *ByteBuffer { Append(b, val); return b }

// WriteInt16 appends an int16
func (b *ByteBuffer) WriteInt16(val int16) *ByteBuffer { Append(b, val); return b }

// WriteInt32 appends an int32
func (b *ByteBuffer) WriteInt32(val int32) *ByteBuffer { Append(b, val); return b }

// WriteInt64 appends an int64
func (b *ByteBuffer) WriteInt64(val int64) *ByteBuffer { Append(b, val); return b }

// WriteUint8 appends a uint8
func (b *ByteBuffer) WriteUint8(val uint8) *ByteBuffer { Append(b, val); return b }

// WriteUint16 appends a uint16
func (b *ByteBuffer) WriteUint16(val uint16) *ByteBuffer { Append(b, val); return b }

// WriteUint32 appends a uint32
func (b *ByteBuffer) WriteUint32(val uint32) *ByteBuffer { Append(b, val); return b }

// WriteUint64 appends a uint64
func (b *ByteBuffer) WriteUint64(val uint64) *ByteBuffer { Append(b, val); return b }

// WriteFloat32 appends a float32
func (b *ByteBuffer) WriteFloat32(val float32) *ByteBuffer { Append(b, val); return b }

// WriteFloat64 appends a float64
func (b *ByteBuffer) WriteFloat64(val float64) *ByteBuffer { Append(b, val); return b }

// WriteString appends a length prefixed string
func (b *ByteBuffer) WriteString(val string) *ByteBuffer {
	b.AppendString(val)
	return b
}

// WriteCString appends the bytes of a NUL terminated string, up to and excluding
// the first NUL, as a length prefixed string. A slice with no NUL is written whole.
func (b *ByteBuffer) WriteCString(val []byte) *ByteBuffer {
	if i := bytes.IndexByte(val, 0); i >= 0 {
		val = val[:i]
	}

	Append(b, uint32(len(val)))
	appendRaw(b, val)
	return b
}

// ReadBool reads a bool into val
func (b *ByteBuffer) ReadBool(val *bool) *ByteBuffer { *val = Read[bool](b); return b }

// ReadInt8 reads an int8 into val
func (b *ByteBuffer) ReadInt8(val *int8) *ByteBuffer { *val = Read[int8](b); return b }

// ReadInt16 reads an int16 into val
func (b *ByteBuffer) ReadInt16(val *int16) *ByteBuffer { *val = Read[int16](b); return b }

// ReadInt32 reads an int32 into val
func (b *ByteBuffer) ReadInt32(val *int32) *ByteBuffer { *val = Read[int32](b); return b }

// ReadInt64 reads an int64 into val
func (b *ByteBuffer) ReadInt64(val *int64) *ByteBuffer { *val = Read[int64](b); return b }

// ReadUint8 reads a uint8 into val
func (b *ByteBuffer) ReadUint8(val *uint8) *ByteBuffer { *val = Read[uint8](b); return b }

// ReadChar is ReadUint8 for single characters
func (b *ByteBuffer) ReadChar(val *byte) *ByteBuffer { return b.ReadUint8(val) }

// ReadUint16 reads a uint16 into val
func (b *ByteBuffer) ReadUint16(val *uint16) *ByteBuffer { *val = Read[uint16](b); return b }

// ReadUint32 reads a uint32 into val
func (b *ByteBuffer) ReadUint32(val *uint32) *ByteBuffer { *val = Read[uint32](b); return b }

// ReadUint64 reads a uint64 into val
func (b *ByteBuffer) ReadUint64(val *uint64) *ByteBuffer { *val = Read[uint64](b); return b }

// ReadFloat32 reads a float32 into val
func (b *ByteBuffer) ReadFloat32(val *float32) *ByteBuffer { *val = Read[float32](b); return b }

// ReadFloat64 reads a float64 into val
func (b *ByteBuffer) ReadFloat64(val *float64) *ByteBuffer { *val = Read[float64](b); return b }

// ReadString reads a length prefixed string into val. Bytes past the end of the
// buffer read as 0, so a truncated buffer gives a zero padded string of the
// announced length rather than a shorter one.
func (b *ByteBuffer) ReadString(val *string) *ByteBuffer {
	*val = b.readString()
	return b
}
