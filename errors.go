package bytebuffer

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrOutOfRange is the cause of every error produced by a read past the end
	// of a buffer or an Insert that does not fit in it
	ErrOutOfRange = errors.New("out of range")

	// ErrUnsupportedType is returned by Encode and Decode for values that have no
	// known binary representation
	ErrUnsupportedType = errors.New("unsupported type")
)

// Err returns the first out of range access recorded since the buffer was last
// cleared, resized or reset, or nil.
//
// Reads past the end and dropped inserts never fail on their own, so a sequence
// of reads can be checked once at the end:
//
//	b.ReadUint32(&n).ReadString(&s)
//	if err := b.Err(); err != nil {
//		...
//	}
func (b *ByteBuffer) Err() error { return b.err }

// ResetErr forgets the recorded error
func (b *ByteBuffer) ResetErr() { b.err = nil }

func (b *ByteBuffer) fail(err error) {
	if b.err != nil {
		return
	}

	b.err = err

	if l := logFor("access"); l != nil {
		l.Warn(err.Error(),
			zap.Uint32("size", b.Size()),
			zap.Uint32("rpos", b.rpos),
			zap.Uint32("wpos", b.wpos),
		)
	}
}

func readError(index, width, size uint32) error {
	return errors.Wrapf(ErrOutOfRange, "read of %d bytes at %d, buffer size %d", width, index, size)
}

func insertError(index, width, size uint32) error {
	return errors.Wrapf(ErrOutOfRange, "insert of %d bytes at %d dropped, buffer size %d", width, index, size)
}
