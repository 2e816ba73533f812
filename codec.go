package bytebuffer

// fits reports whether width bytes starting at index are inside the buffer
func (b *ByteBuffer) fits(index, width uint32) bool {
	return uint64(index)+uint64(width) <= uint64(len(b.buffer))
}

// Append writes val at the write cursor and advances it by the size of T. The
// buffer grows as needed, so Append never fails.
func Append[T Scalar](b *ByteBuffer, val T) {
	s := sizeOf[T]()
	end := uint64(b.wpos) + uint64(s)
	b.grow(end)
	storeNative(b.buffer[b.wpos:end], val)
	b.wpos = uint32(end)
}

// Put is an alias for Append
func Put[T Scalar](b *ByteBuffer, val T) { Append(b, val) }

func readAt[T Scalar](b *ByteBuffer, index uint32) (T, bool) {
	var val T
	if !b.fits(index, sizeOf[T]()) {
		return val, false
	}

	val = loadNative[T](b.buffer[index:])

	// any non zero byte is true, a bool holding anything but 0 or 1 is invalid in go
	if p, ok := any(&val).(*bool); ok {
		*p = b.buffer[index] != 0
	}

	return val, true
}

// ReadAt returns the value of type T stored at index, without touching the
// cursors. If the value does not fit in the buffer the zero value of T is
// returned and the access is recorded in Err.
func ReadAt[T Scalar](b *ByteBuffer, index uint32) T {
	val, ok := readAt[T](b, index)
	if !ok {
		b.fail(readError(index, sizeOf[T](), b.Size()))
	}
	return val
}

// Read returns the value of type T at the read cursor and advances the cursor by
// the size of T. The cursor advances even when the read falls outside the
// buffer and a zero value is returned.
func Read[T Scalar](b *ByteBuffer) T {
	val := ReadAt[T](b, b.rpos)
	b.rpos += sizeOf[T]()
	return val
}

// Get is an alias for Read
func Get[T Scalar](b *ByteBuffer) T { return Read[T](b) }

// Insert overwrites the bytes at index with val and moves the write cursor right
// after them. Unlike Append, Insert never grows the buffer: if the value does not
// fit, nothing is written and the drop is recorded in Err.
func Insert[T Scalar](b *ByteBuffer, val T, index uint32) {
	s := sizeOf[T]()
	if !b.fits(index, s) {
		b.fail(insertError(index, s, b.Size()))
		return
	}

	storeNative(b.buffer[index:index+s], val)
	b.wpos = index + s
}

// TryReadAt is ReadAt returning an error instead of a zero value. Err is not
// affected.
func TryReadAt[T Scalar](b *ByteBuffer, index uint32) (T, error) {
	val, ok := readAt[T](b, index)
	if !ok {
		return val, readError(index, sizeOf[T](), b.Size())
	}
	return val, nil
}

// TryRead is Read returning an error instead of a zero value. The read cursor
// only advances on success.
func TryRead[T Scalar](b *ByteBuffer) (T, error) {
	val, err := TryReadAt[T](b, b.rpos)
	if err != nil {
		return val, err
	}

	b.rpos += sizeOf[T]()
	return val, nil
}

// TryInsert is Insert returning an error when the value does not fit
func TryInsert[T Scalar](b *ByteBuffer, val T, index uint32) error {
	s := sizeOf[T]()
	if !b.fits(index, s) {
		return insertError(index, s, b.Size())
	}

	storeNative(b.buffer[index:index+s], val)
	b.wpos = index + s
	return nil
}

// appendRaw writes the bytes of p at the write cursor without any framing
func appendRaw[S ~string | ~[]byte](b *ByteBuffer, p S) {
	end := uint64(b.wpos) + uint64(len(p))
	b.grow(end)
	copy(b.buffer[b.wpos:end], p)
	b.wpos = uint32(end)
}

// AppendBytes writes p at the write cursor with no length prefix, framing is up
// to the caller
func (b *ByteBuffer) AppendBytes(p []byte) { appendRaw(b, p) }

// AppendString writes the length of s as a uint32 followed by its bytes
func (b *ByteBuffer) AppendString(s string) {
	Append(b, uint32(len(s)))
	appendRaw(b, s)
}

// readString reads a length prefix followed by that many bytes, one at a time.
// The prefix is not checked against the bytes left, every byte past the end
// reads as 0.
func (b *ByteBuffer) readString() string {
	n := Read[uint32](b)
	if n == 0 {
		return ""
	}

	s := make([]byte, 0, min(n, b.BytesRemaining()))
	for i := uint32(0); i < n; i++ {
		s = append(s, Read[uint8](b))
	}

	return string(s)
}
