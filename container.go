package bytebuffer

import "reflect"

// WriteSlice appends the number of elements of s as a uint32, followed by every
// element in order, each encoded as Encode would. Containers of containers and
// of Packable types compose.
func WriteSlice[T any](b *ByteBuffer, s []T) error {
	if err := encodeChecks.check(reflect.TypeOf(s), packableType); err != nil {
		return err
	}

	Append(b, uint32(len(s)))
	for i := range s {
		if err := encodeValue(b, reflect.ValueOf(&s[i]).Elem()); err != nil {
			return err
		}
	}

	return nil
}

// ReadSlice reads a sequence written by WriteSlice. dst is emptied first, then
// exactly as many elements as the count announces are read and appended.
func ReadSlice[T any](b *ByteBuffer, dst *[]T) error {
	if err := decodeChecks.check(reflect.TypeOf(*dst), unpackableType); err != nil {
		return err
	}

	n := Read[uint32](b)
	*dst = (*dst)[:0]
	for i := uint32(0); i < n; i++ {
		var e T
		if err := decodeValue(b, reflect.ValueOf(&e).Elem()); err != nil {
			return err
		}
		*dst = append(*dst, e)
	}

	return nil
}

// WriteMap appends the number of entries of m as a uint32, followed by every key
// and its value. Keys are written in ascending order when they are numbers,
// strings or bools.
func WriteMap[K comparable, V any](b *ByteBuffer, m map[K]V) error {
	return Encode(b, m)
}

// ReadMap reads a mapping written by WriteMap into a fresh map stored in dst. A
// key that shows up more than once keeps its first value.
func ReadMap[K comparable, V any](b *ByteBuffer, dst *map[K]V) error {
	return Decode(b, dst)
}
