// Package histogram packs HDR histograms into a bytebuffer.ByteBuffer, and uses
// them to pick capacity hints from the sizes buffers actually reach.
package histogram

import (
	"github.com/codahale/hdrhistogram"
	"github.com/performancecopilot/bytebuffer"
)

// Histogram wraps an hdrhistogram.Histogram so that it can be written to and read
// from a ByteBuffer, on its own or inside containers and Pack calls.
//
// It is written as its lowest and highest trackable values and significant
// figures, as int64, followed by its counts as a sequence of int64.
type Histogram struct {
	*hdrhistogram.Histogram
}

var (
	_ bytebuffer.Packable   = (*Histogram)(nil)
	_ bytebuffer.Unpackable = (*Histogram)(nil)
)

// New creates a Histogram tracking values between low and high, with sigfigs
// significant figures
func New(low, high int64, sigfigs int) *Histogram {
	return &Histogram{hdrhistogram.New(low, high, sigfigs)}
}

// MarshalBuffer implements bytebuffer.Packable. A Histogram wrapping nothing is
// written as an empty snapshot, which reads back as a nil histogram.
func (h *Histogram) MarshalBuffer(b *bytebuffer.ByteBuffer) {
	s := &hdrhistogram.Snapshot{}
	if h.Histogram != nil {
		s = h.Export()
	}

	b.WriteInt64(s.LowestTrackableValue).
		WriteInt64(s.HighestTrackableValue).
		WriteInt64(s.SignificantFigures)

	// []int64 is always supported
	_ = bytebuffer.WriteSlice(b, s.Counts)
}

// UnmarshalBuffer implements bytebuffer.Unpackable.
//
// When the buffer runs out while reading, or the bytes read do not describe a
// valid histogram, the wrapped histogram is set to nil.
func (h *Histogram) UnmarshalBuffer(b *bytebuffer.ByteBuffer) {
	s := &hdrhistogram.Snapshot{}

	b.ReadInt64(&s.LowestTrackableValue).
		ReadInt64(&s.HighestTrackableValue).
		ReadInt64(&s.SignificantFigures)
	_ = bytebuffer.ReadSlice(b, &s.Counts)

	h.Histogram = nil

	// cursors advance past the end on every short read
	if b.ReadPos() > b.Size() || !valid(s) {
		return
	}

	h.Histogram = hdrhistogram.Import(s)
}

// valid reports whether s can be imported, hdrhistogram panics or misbehaves on
// anything else
func valid(s *hdrhistogram.Snapshot) bool {
	if s.LowestTrackableValue < 1 || s.HighestTrackableValue < 2*s.LowestTrackableValue {
		return false
	}

	if s.SignificantFigures < 1 || s.SignificantFigures > 5 {
		return false
	}

	empty := hdrhistogram.New(s.LowestTrackableValue, s.HighestTrackableValue, int(s.SignificantFigures))
	return len(empty.Export().Counts) == len(s.Counts)
}
