package histogram

import (
	"math"
	"testing"

	"github.com/performancecopilot/bytebuffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, h *Histogram, vals ...int64) {
	for _, v := range vals {
		require.NoError(t, h.RecordValue(v))
	}
}

func TestHistogramRoundTrip(t *testing.T) {
	h := New(1, 1000, 3)
	record(t, h, 1, 5, 5, 100, 999)

	b := bytebuffer.NewByteBuffer(0)
	b.MustPack(h)

	h2 := &Histogram{}
	y := bytebuffer.NewByteBufferSlice(b.Bytes())
	require.NoError(t, y.UnpackStrict(h2))

	require.NotNil(t, h2.Histogram)
	assert.Equal(t, h.Export(), h2.Export())
	assert.Equal(t, int64(5), h2.TotalCount())
	assert.Equal(t, h.ValueAtQuantile(50), h2.ValueAtQuantile(50))
	assert.Equal(t, uint32(0), y.BytesRemaining())
}

func TestHistogramEmpty(t *testing.T) {
	// left without a histogram by a short read
	h := &Histogram{}
	h.UnmarshalBuffer(bytebuffer.NewByteBuffer(0))
	require.Nil(t, h.Histogram)

	b := bytebuffer.NewByteBuffer(0)
	require.NoError(t, b.Pack(h, &Histogram{}))
	assert.Equal(t, uint32(2*(3*8+4)), b.Size())

	out := []*Histogram{New(1, 10, 1)}
	require.NoError(t, bytebuffer.WriteSlice(b, []*Histogram{h}))

	y := bytebuffer.NewByteBufferSlice(b.Bytes())
	h2, h3 := New(1, 10, 1), New(1, 10, 1)
	require.NoError(t, y.UnpackStrict(h2, h3))
	require.NoError(t, bytebuffer.ReadSlice(y, &out))

	assert.Nil(t, h2.Histogram)
	assert.Nil(t, h3.Histogram)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Histogram)
	assert.NoError(t, y.Err())
	assert.Equal(t, uint32(0), y.BytesRemaining())
}

func TestHistogramLayout(t *testing.T) {
	h := New(1, 100, 2)
	s := h.Export()

	b := bytebuffer.NewByteBuffer(0)
	h.MarshalBuffer(b)

	assert.Equal(t, uint32(3*8+4+8*len(s.Counts)), b.Size())
	assert.Equal(t, int64(1), bytebuffer.ReadAt[int64](b, 0))
	assert.Equal(t, int64(100), bytebuffer.ReadAt[int64](b, 8))
	assert.Equal(t, int64(2), bytebuffer.ReadAt[int64](b, 16))
	assert.Equal(t, uint32(len(s.Counts)), bytebuffer.ReadAt[uint32](b, 24))
}

func TestHistogramSlice(t *testing.T) {
	a, c := New(1, 100, 2), New(1, 10000, 3)
	record(t, a, 10, 20)
	record(t, c, 5000)

	b := bytebuffer.NewByteBuffer(0)
	require.NoError(t, bytebuffer.WriteSlice(b, []*Histogram{a, c}))

	var out []*Histogram
	require.NoError(t, bytebuffer.ReadSlice(b, &out))

	require.Len(t, out, 2)
	assert.Equal(t, a.Export(), out[0].Export())
	assert.Equal(t, c.Export(), out[1].Export())
}

func TestHistogramTruncated(t *testing.T) {
	h := New(1, 1000, 3)
	record(t, h, 10)

	b := bytebuffer.NewByteBuffer(0)
	h.MarshalBuffer(b)

	cases := []uint32{0, 8, 24, 28, b.Size() - 1}
	for _, n := range cases {
		data := b.Bytes()[:n]
		h2 := New(1, 10, 1)

		y := bytebuffer.NewByteBufferSlice(data)
		h2.UnmarshalBuffer(y)

		assert.Nil(t, h2.Histogram, "truncated to %d bytes", n)
		assert.Error(t, y.Err())
	}
}

func TestSizeRecorder(t *testing.T) {
	_, err := NewSizeRecorder(1)
	assert.Error(t, err)

	_, err = NewSizeRecorder(math.MaxUint32 + 1)
	assert.Error(t, err)

	_, err = NewSizeRecorder(math.MaxUint32)
	assert.NoError(t, err)

	r, err := NewSizeRecorder(1 << 20)
	require.NoError(t, err)

	assert.Equal(t, bytebuffer.DefaultSize, r.Hint(99))

	for _, n := range []int{0, 100, 200, 300} {
		b := bytebuffer.NewByteBuffer(0)
		b.AppendBytes(make([]byte, n))
		require.NoError(t, r.Record(b))
	}

	assert.Equal(t, int64(3), r.Histogram().TotalCount())
	assert.GreaterOrEqual(t, r.Hint(100), uint32(300))
	assert.GreaterOrEqual(t, r.Hint(0), uint32(100))

	b := r.NewBuffer(100)
	assert.Equal(t, uint32(0), b.Size())
	assert.GreaterOrEqual(t, cap(b.Drain()), 300)
}
