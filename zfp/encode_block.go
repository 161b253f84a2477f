package zfp

import "math"

const (
	// blockDim is the block footprint along each axis; blocks always hold
	// blockDim^3 samples regardless of the field shape.
	blockDim    = 4
	blockValues = blockDim * blockDim * blockDim

	// ebits/ebias describe the common block exponent written ahead of the
	// coefficient bit planes.
	ebits = 8
	ebias = 127

	// nbmask converts two's complement to negabinary and back.
	nbmask = 0xaaaaaaaa
)

// seqOrder visits coefficients in order of increasing total sequency (i+j+k),
// lowest frequencies first, so truncating trailing bit planes drops the
// highest-frequency detail.
var seqOrder = func() [blockValues]uint8 {
	var order [blockValues]uint8
	idx := 0
	for sum := 0; sum <= 3*(blockDim-1); sum++ {
		for k := 0; k < blockDim; k++ {
			for j := 0; j < blockDim; j++ {
				for i := 0; i < blockDim; i++ {
					if i+j+k == sum {
						order[idx] = uint8(i + blockDim*(j+blockDim*k))
						idx++
					}
				}
			}
		}
	}
	return order
}()

// gatherBlockFloat32 copies the block at sample origin (x0,y0,z0) out of f,
// replicating edge samples where the block hangs past the field bounds.
func gatherBlockFloat32(f *Field, x0, y0, z0 int, dst *[blockValues]float32) {
	for bz := 0; bz < blockDim; bz++ {
		z := z0 + bz
		if z >= f.nz {
			z = f.nz - 1
		}
		zBase := z * f.ny * f.nx
		for by := 0; by < blockDim; by++ {
			y := y0 + by
			if y >= f.ny {
				y = f.ny - 1
			}
			yBase := zBase + y*f.nx
			for bx := 0; bx < blockDim; bx++ {
				x := x0 + bx
				if x >= f.nx {
					x = f.nx - 1
				}
				dst[(bz*blockDim+by)*blockDim+bx] = f.data[yBase+x]
			}
		}
	}
}

// encodeBlockFloat32 codes one block into exactly s.maxbits bits: the biased
// common exponent, then MSB-first coefficient bit planes until the budget is
// spent, then zero padding for any budget the planes did not fill.
func (s *Stream) encodeBlockFloat32(blk *[blockValues]float32) error {
	budget := s.maxbits

	emax := blockExponent(blk)
	if err := s.bs.WriteBits(uint64(uint32(emax+ebias)), ebits); err != nil {
		return err
	}
	budget -= ebits

	var q [blockValues]int32
	blockToInts(blk, emax, &q)
	fwdXform(&q)

	var u [blockValues]uint32
	for i := range u {
		u[i] = negabinary(q[seqOrder[i]])
	}

	for plane := 31; plane >= 0 && budget > 0; plane-- {
		for i := 0; i < blockValues && budget > 0; i++ {
			if err := s.bs.WriteBit(uint(u[i] >> uint(plane))); err != nil {
				return err
			}
			budget--
		}
	}
	for budget > 0 {
		n := budget
		if n > wordBits {
			n = wordBits
		}
		if err := s.bs.WriteBits(0, uint(n)); err != nil {
			return err
		}
		budget -= n
	}
	return nil
}

// blockExponent returns the binary exponent of the largest finite magnitude
// in the block, clamped so the biased value fits in ebits bits. An all-zero
// block gets the minimum exponent (biased value 0).
func blockExponent(blk *[blockValues]float32) int {
	maxAbs := 0.0
	for _, v := range blk {
		a := math.Abs(float64(v))
		if a > maxAbs && !math.IsInf(a, 0) {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return -ebias
	}
	_, e := math.Frexp(maxAbs)
	if e < -ebias {
		e = -ebias
	}
	return e
}

// blockToInts converts the block to a common fixed-point representation:
// q = v * 2^(30 - emax), so every finite sample fits in 31 signed bits with
// two bits of transform headroom.
func blockToInts(blk *[blockValues]float32, emax int, q *[blockValues]int32) {
	scale := math.Ldexp(1, 30-emax)
	for i, v := range blk {
		q[i] = clampInt30(float64(v) * scale)
	}
}

// clampInt30 converts to int32, saturating at ±(2^30-1).
//
// Go leaves float-to-int conversion implementation-defined on overflow, and
// raw volume bytes can decode to NaN or infinity; the clamp keeps the output
// deterministic for any input.
func clampInt30(v float64) int32 {
	const lim = 1 << 30
	if math.IsNaN(v) {
		return 0
	}
	if v >= lim {
		return lim - 1
	}
	if v <= -lim {
		return -(lim - 1)
	}
	return int32(v)
}

// fwdXform applies the separable forward decorrelating transform: one lifting
// pass over every 4-sample span along x, then y, then z.
func fwdXform(q *[blockValues]int32) {
	for z := 0; z < blockDim; z++ {
		for y := 0; y < blockDim; y++ {
			fwdLift(q[:], (z*blockDim+y)*blockDim, 1)
		}
	}
	for z := 0; z < blockDim; z++ {
		for x := 0; x < blockDim; x++ {
			fwdLift(q[:], z*blockDim*blockDim+x, blockDim)
		}
	}
	for y := 0; y < blockDim; y++ {
		for x := 0; x < blockDim; x++ {
			fwdLift(q[:], y*blockDim+x, blockDim*blockDim)
		}
	}
}

// fwdLift decorrelates one 4-sample span in place. A constant span lifts to a
// single nonzero coefficient in the first slot.
func fwdLift(p []int32, base, stride int) {
	x := p[base]
	y := p[base+stride]
	z := p[base+2*stride]
	w := p[base+3*stride]

	x += w
	x >>= 1
	w -= x
	z += y
	z >>= 1
	y -= z
	x += z
	x >>= 1
	z -= x
	w += y
	w >>= 1
	y -= w
	w += y >> 1
	y -= w >> 1

	p[base] = x
	p[base+stride] = y
	p[base+2*stride] = z
	p[base+3*stride] = w
}

// negabinary maps a signed coefficient to an unsigned code whose high bit
// planes go to zero as the magnitude shrinks, which is what makes MSB-first
// plane truncation an embedded coding.
func negabinary(q int32) uint32 {
	return (uint32(q) + nbmask) ^ nbmask
}
