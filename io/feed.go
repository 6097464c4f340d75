package io

import (
	"github.com/techrabbit58/madnick/lmc"
)

// Feed is a bounded FIFO of input values pushed by the caller, for
// interactive front-ends that provide input while a program runs. The
// buffer wraps around at the capacity boundary.
type Feed struct {
	Capacity int // Capacity in values.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []uint16
}

var _ lmc.InputSource = (*Feed)(nil)

// Reset empties the feed, resetting indices and reinitializing the
// buffer to the configured capacity.
func (fd *Feed) Reset() {
	fd.ReadIndex = 0
	fd.WriteIndex = 0
	fd.Size = 0
	fd.Data = make([]uint16, fd.Capacity)
}

// Push appends one signed value, converted tens-complement. Returns
// ErrFeedFull when the buffer has reached capacity.
func (fd *Feed) Push(value int) (err error) {
	if fd.Data == nil {
		fd.Reset()
	}
	if fd.Size >= fd.Capacity {
		err = ErrFeedFull
		return
	}

	fd.Data[fd.WriteIndex] = uint16(lmc.ToUnsigned(value))

	fd.WriteIndex++
	if fd.WriteIndex == fd.Capacity {
		fd.WriteIndex = 0
	}
	fd.Size++

	return
}

// Next pops the oldest value, or not ok when the feed is empty.
func (fd *Feed) Next() (value uint16, ok bool) {
	if fd.Size == 0 {
		return
	}

	value = fd.Data[fd.ReadIndex]
	fd.ReadIndex++
	if fd.ReadIndex == fd.Capacity {
		fd.ReadIndex = 0
	}
	fd.Size--
	ok = true

	return
}
