package zfp

import "math"

// Stream holds the fixed-rate coding parameters for a compression pass and
// the output bitstream binding.
//
// The zero value is not usable; obtain streams from OpenStream and configure
// them with SetRate before compressing.
type Stream struct {
	minbits int // minimum bits per block
	maxbits int // maximum bits per block
	bs      *Bitstream
}

// OpenStream returns a new, unconfigured compressed stream handle.
func OpenStream() *Stream {
	return &Stream{}
}

// Close releases the stream handle.
//
// The pure-Go codec holds no external resources; Close exists for parity with
// the native stream API and so callers can pair every open with a close.
func (s *Stream) Close() error {
	if s == nil {
		return nil
	}
	s.bs = nil
	return nil
}

// SetRate configures fixed-rate mode: every 4^dims-sample block is coded into
// the same number of bits.
//
// The bit budget is rate bits per sample rounded to a whole number of bits
// per block, clamped to the representable range for the scalar type, and
// optionally rounded up to whole stream words (align) so blocks stay word
// addressable. The return value is the rate actually configured, which may
// differ from the request; callers that need an exact rate must check it.
func (s *Stream) SetRate(rate float64, t Type, dims uint, align bool) float64 {
	if dims < 1 || dims > 3 {
		return 0
	}
	n := 1 << (2 * dims) // samples per block
	bits := int(math.Floor(rate*float64(n) + 0.5))
	if bits < 1 {
		bits = 1
	}
	if prec := t.precision(); prec > 0 && bits > n*prec {
		bits = n * prec
	}
	if align {
		bits = (bits + wordBits - 1) / wordBits * wordBits
	}
	s.minbits = bits
	s.maxbits = bits
	return float64(bits) / float64(n)
}

// SetBitStream binds the output bitstream the next Compress call writes to.
func (s *Stream) SetBitStream(bs *Bitstream) {
	s.bs = bs
}

// Rewind repositions the bound bitstream at its first bit.
func (s *Stream) Rewind() {
	if s.bs != nil {
		s.bs.Rewind()
	}
}

// MaximumSize returns a conservative upper bound, in bytes, on the serialized
// size of f compressed with the stream's current parameters.
func (s *Stream) MaximumSize(f *Field) (int, error) {
	_, _, _, blocks, err := f.blockCount()
	if err != nil {
		return 0, err
	}
	if s.maxbits <= 0 {
		return 0, newError(ErrBadStream, "zfp: stream rate not configured")
	}
	if blocks > (math.MaxInt-wordBits)/s.maxbits {
		return 0, newError(ErrBadField, "zfp: stream size overflow")
	}
	words := (blocks*s.maxbits + wordBits - 1) / wordBits
	return words * (wordBits / 8), nil
}

// Compress encodes the whole field as a single 3D stream of 4x4x4 blocks and
// returns the number of bytes written to the bound bitstream.
//
// Blocks are visited x fastest, then y, then z; partial edge blocks are
// padded by sample replication. Compression is sequential: fixed-rate blocks
// land at deterministic bit offsets, so two passes over identical input
// produce identical bytes.
func (s *Stream) Compress(f *Field) (int, error) {
	blocksX, blocksY, blocksZ, _, err := f.blockCount()
	if err != nil {
		return 0, err
	}
	if s.bs == nil {
		return 0, newError(ErrBadStream, "zfp: no bitstream bound")
	}
	if s.maxbits < ebits+1 {
		return 0, newError(ErrBadStream, "zfp: block bit budget below exponent width")
	}

	var blk [blockValues]float32
	for bz := 0; bz < blocksZ; bz++ {
		for by := 0; by < blocksY; by++ {
			for bx := 0; bx < blocksX; bx++ {
				gatherBlockFloat32(f, bx*blockDim, by*blockDim, bz*blockDim, &blk)
				if err := s.encodeBlockFloat32(&blk); err != nil {
					return 0, err
				}
			}
		}
	}
	return s.bs.Flush()
}
