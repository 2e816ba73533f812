package bytebuffer

import "unsafe"

// Scalar is the set of fixed width types that can be written to and read from a
// ByteBuffer as raw memory.
type Scalar interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// sizeOf returns the in-memory width of T in bytes
func sizeOf[T Scalar]() uint32 {
	var v T
	return uint32(unsafe.Sizeof(v))
}

// storeNative copies the in-memory representation of val into dst.
//
// NOTE: this is the only place where values are reinterpreted as bytes, the
// layout is whatever the running platform uses, so the output is only meaningful
// to a reader built for the same GOARCH
func storeNative[T Scalar](dst []byte, val T) {
	src := unsafe.Slice((*byte)(unsafe.Pointer(&val)), unsafe.Sizeof(val))
	copy(dst, src)
}

// loadNative is the inverse of storeNative, src must hold at least sizeOf[T] bytes
func loadNative[T Scalar](src []byte) T {
	var val T
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&val)), unsafe.Sizeof(val))
	copy(dst, src)
	return val
}
