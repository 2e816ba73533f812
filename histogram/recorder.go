package histogram

import (
	"math"

	"github.com/performancecopilot/bytebuffer"
	"github.com/pkg/errors"
)

// SizeRecorder tracks the sizes reached by buffers, so that new buffers can be
// created with a capacity that fits most of them
type SizeRecorder struct {
	h *Histogram
}

// NewSizeRecorder creates a SizeRecorder for buffers of up to limit bytes, which
// cannot exceed the largest buffer size
func NewSizeRecorder(limit int64) (*SizeRecorder, error) {
	if limit < 2 {
		return nil, errors.Errorf("size limit %d is too small", limit)
	}

	if limit > math.MaxUint32 {
		return nil, errors.Errorf("size limit %d is larger than a buffer can be", limit)
	}

	return &SizeRecorder{New(1, limit, 3)}, nil
}

// Record adds the current size of b, empty buffers are ignored
func (r *SizeRecorder) Record(b *bytebuffer.ByteBuffer) error {
	if b.Size() == 0 {
		return nil
	}

	return errors.Wrap(r.h.RecordValue(int64(b.Size())), "cannot record buffer size")
}

// Hint returns the size at quantile q (0-100) of the recorded sizes, to be used
// as a capacity hint. It is never below the smallest recorded size, and it is
// bytebuffer.DefaultSize until something is recorded.
func (r *SizeRecorder) Hint(q float64) uint32 {
	if r.h.TotalCount() == 0 {
		return bytebuffer.DefaultSize
	}

	// ValueAtQuantile(0) is 0 whatever was recorded
	return uint32(max(r.h.ValueAtQuantile(q), r.h.Min()))
}

// NewBuffer creates an empty buffer with Hint(q) bytes preallocated
func (r *SizeRecorder) NewBuffer(q float64) *bytebuffer.ByteBuffer {
	return bytebuffer.NewByteBuffer(r.Hint(q))
}

// Histogram returns the underlying histogram, to be packed or inspected
func (r *SizeRecorder) Histogram() *Histogram { return r.h }
