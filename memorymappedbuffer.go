package bytebuffer

import (
	"os"
	"path/filepath"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SaveMapped writes the contents of the buffer to the file at loc through a
// shared memory mapping, creating the file and its directory as needed and
// replacing any previous contents. The cursors are not affected.
//
// The file holds the raw bytes only, it is meant to hand a buffer over to another
// process on the same machine, which reads it back with LoadMapped.
func (b *ByteBuffer) SaveMapped(loc string) error {
	if err := os.MkdirAll(filepath.Dir(loc), 0700); err != nil {
		return errors.Wrap(err, "cannot create destination directory")
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "cannot open mapped file")
	}
	defer f.Close()

	// an empty region cannot be mapped, the truncated file is all there is to write
	if len(b.buffer) == 0 {
		return nil
	}

	if err = f.Truncate(int64(len(b.buffer))); err != nil {
		return errors.Wrapf(err, "cannot size mapped file to %d bytes", len(b.buffer))
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return errors.Wrap(err, "cannot map file")
	}

	copy(m, b.buffer)

	if err = m.Flush(); err != nil {
		m.Unmap()
		return errors.Wrap(err, "cannot flush mapping")
	}

	if err = m.Unmap(); err != nil {
		return errors.Wrap(err, "cannot unmap file")
	}

	if l := logFor("mmap"); l != nil {
		l.Info("saved buffer",
			zap.String("location", loc),
			zap.Int("size", len(b.buffer)),
		)
	}

	return nil
}

// LoadMapped maps the file at loc and returns a new buffer holding a copy of its
// contents, as NewByteBufferSlice would.
func LoadMapped(loc string) (*ByteBuffer, error) {
	f, err := os.Open(loc)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open mapped file")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "cannot stat mapped file")
	}

	if fi.Size() == 0 {
		return NewByteBuffer(0), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrap(err, "cannot map file")
	}

	b := NewByteBufferSlice(m)

	if err = m.Unmap(); err != nil {
		return nil, errors.Wrap(err, "cannot unmap file")
	}

	if l := logFor("mmap"); l != nil {
		l.Info("loaded buffer",
			zap.String("location", loc),
			zap.Int("size", len(b.buffer)),
		)
	}

	return b, nil
}
