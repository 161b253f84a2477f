package zfp

import "encoding/binary"

// wordBits is the bitstream granularity. The serialized stream is a sequence
// of little-endian 64-bit words filled LSB first, so a reader can seek to any
// block boundary by bit offset alone.
const wordBits = 64

// Bitstream is a write cursor over a caller-owned byte buffer.
//
// The codec never allocates output storage itself: callers size a buffer from
// Stream.MaximumSize, wrap it with NewBitstream, and bind it to the stream.
type Bitstream struct {
	buf    []byte
	accum  uint64
	nbits  uint
	offset int // bytes of completed words written to buf
}

// NewBitstream wraps buf as an empty write cursor. The usable capacity is
// len(buf) rounded down to a whole word.
func NewBitstream(buf []byte) *Bitstream {
	return &Bitstream{buf: buf}
}

// Rewind discards everything written so far and restarts at the first bit.
func (b *Bitstream) Rewind() {
	b.accum = 0
	b.nbits = 0
	b.offset = 0
}

// WriteBit appends the low bit of v.
func (b *Bitstream) WriteBit(v uint) error {
	b.accum |= uint64(v&1) << b.nbits
	b.nbits++
	if b.nbits == wordBits {
		return b.spill()
	}
	return nil
}

// WriteBits appends the low n bits of v, LSB first. n must be ≤ 64.
func (b *Bitstream) WriteBits(v uint64, n uint) error {
	if n == 0 {
		return nil
	}
	if n > wordBits {
		return newError(ErrBadParam, "zfp: bitstream write wider than one word")
	}
	if n < wordBits {
		v &= (1 << n) - 1
	}

	b.accum |= v << b.nbits
	free := wordBits - b.nbits
	if n < free {
		b.nbits += n
		return nil
	}

	// The accumulator is full; spill it and keep the bits that did not fit.
	rem := n - free
	if err := b.spill(); err != nil {
		return err
	}
	if free < wordBits {
		b.accum = v >> free
	}
	b.nbits = rem
	return nil
}

// Flush pads the current word with zero bits and returns the total number of
// bytes written since the last Rewind.
func (b *Bitstream) Flush() (int, error) {
	if b.nbits > 0 {
		if err := b.spill(); err != nil {
			return 0, err
		}
		b.nbits = 0
	}
	return b.offset, nil
}

func (b *Bitstream) spill() error {
	if b.offset+8 > len(b.buf) {
		return newError(ErrBufferTooSmall, "zfp: bitstream buffer exhausted")
	}
	binary.LittleEndian.PutUint64(b.buf[b.offset:], b.accum)
	b.offset += 8
	b.accum = 0
	b.nbits = 0
	return nil
}
