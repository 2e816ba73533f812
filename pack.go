package bytebuffer

import "github.com/pkg/errors"

// Pack encodes every value in vals, in order, as Encode would. It stops at the
// first value that cannot be encoded, the values before it stay written.
func (b *ByteBuffer) Pack(vals ...interface{}) error {
	for i, v := range vals {
		if err := Encode(b, v); err != nil {
			return errors.Wrapf(err, "packing value %d", i)
		}
	}

	return nil
}

// MustPack is Pack that panics on error
func (b *ByteBuffer) MustPack(vals ...interface{}) *ByteBuffer {
	if err := b.Pack(vals...); err != nil {
		panic(err)
	}
	return b
}

// Unpack decodes into every pointer in ptrs, in order, as Decode would.
//
// Like every other read, running out of bytes is not an error here, check Err
// afterwards to know whether all the values were actually present.
func (b *ByteBuffer) Unpack(ptrs ...interface{}) error {
	for i, p := range ptrs {
		if err := Decode(b, p); err != nil {
			return errors.Wrapf(err, "unpacking value %d", i)
		}
	}

	return nil
}

// MustUnpack is Unpack that panics on error
func (b *ByteBuffer) MustUnpack(ptrs ...interface{}) *ByteBuffer {
	if err := b.Unpack(ptrs...); err != nil {
		panic(err)
	}
	return b
}

// UnpackStrict is Unpack that also fails when any of the reads ran past the end
// of the buffer. The recorded error is reset before reading.
func (b *ByteBuffer) UnpackStrict(ptrs ...interface{}) error {
	b.ResetErr()

	if err := b.Unpack(ptrs...); err != nil {
		return err
	}

	return b.Err()
}
