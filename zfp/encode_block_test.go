package zfp

import (
	"math"
	"testing"
)

func TestFwdLiftConstantSpan(t *testing.T) {
	p := []int32{7, 7, 7, 7}
	fwdLift(p, 0, 1)
	want := []int32{7, 0, 0, 0}
	for i := range want {
		if p[i] != want[i] {
			t.Fatalf("fwdLift constant: got %v, want %v", p, want)
		}
	}
}

func TestFwdLiftStride(t *testing.T) {
	// The same span laid out at stride 4 must lift identically.
	flat := []int32{1, -2, 3, -4}
	fwdLift(flat, 0, 1)

	strided := []int32{
		1, 0, 0, 0,
		-2, 0, 0, 0,
		3, 0, 0, 0,
		-4, 0, 0, 0,
	}
	fwdLift(strided, 0, 4)

	for i := 0; i < 4; i++ {
		if strided[4*i] != flat[i] {
			t.Fatalf("strided lift diverges at %d: got %d, want %d", i, strided[4*i], flat[i])
		}
	}
}

func TestNegabinary(t *testing.T) {
	cases := []struct {
		q    int32
		want uint32
	}{
		{0, 0},
		{1, 1},
		{-1, 3},
		{2, 6},
		{-2, 2},
		{3, 7},
	}
	for _, c := range cases {
		if got := negabinary(c.q); got != c.want {
			t.Errorf("negabinary(%d): got %d, want %d", c.q, got, c.want)
		}
	}
}

func TestBlockExponent(t *testing.T) {
	var blk [blockValues]float32
	if got := blockExponent(&blk); got != -ebias {
		t.Fatalf("all-zero exponent: got %d, want %d", got, -ebias)
	}

	blk[13] = 1.0
	if got := blockExponent(&blk); got != 1 {
		t.Fatalf("exponent of 1.0: got %d, want 1", got)
	}

	blk[13] = 0.5
	if got := blockExponent(&blk); got != 0 {
		t.Fatalf("exponent of 0.5: got %d, want 0", got)
	}

	// Infinities must not poison the common exponent.
	blk[13] = 0.5
	blk[14] = float32(math.Inf(1))
	if got := blockExponent(&blk); got != 0 {
		t.Fatalf("exponent with +Inf present: got %d, want 0", got)
	}
}

func TestClampInt30(t *testing.T) {
	const lim = 1 << 30
	cases := []struct {
		v    float64
		want int32
	}{
		{0, 0},
		{123.9, 123},
		{-123.9, -123},
		{math.NaN(), 0},
		{math.Inf(1), lim - 1},
		{math.Inf(-1), -(lim - 1)},
		{1e300, lim - 1},
		{-1e300, -(lim - 1)},
	}
	for _, c := range cases {
		if got := clampInt30(c.v); got != c.want {
			t.Errorf("clampInt30(%v): got %d, want %d", c.v, got, c.want)
		}
	}
}

func TestSeqOrderIsAPermutationBySequency(t *testing.T) {
	var seen [blockValues]bool
	prevSum := -1
	for _, idx := range seqOrder {
		if seen[idx] {
			t.Fatalf("index %d visited twice", idx)
		}
		seen[idx] = true

		i := int(idx) % blockDim
		j := int(idx) / blockDim % blockDim
		k := int(idx) / (blockDim * blockDim)
		if sum := i + j + k; sum < prevSum {
			t.Fatalf("sequency not nondecreasing at index %d: %d after %d", idx, sum, prevSum)
		} else {
			prevSum = sum
		}
	}
	for idx, ok := range seen {
		if !ok {
			t.Fatalf("index %d never visited", idx)
		}
	}
}

func TestGatherBlockReplicatesEdges(t *testing.T) {
	// A 2x2x2 field gathered into a 4x4x4 block must clamp to the last
	// sample along each axis.
	data := []float32{
		1, 2,
		3, 4,
		5, 6,
		7, 8,
	}
	f := Field3D(data, TypeFloat, 2, 2, 2)

	var blk [blockValues]float32
	gatherBlockFloat32(f, 0, 0, 0, &blk)

	at := func(x, y, z int) float32 {
		return blk[(z*blockDim+y)*blockDim+x]
	}
	if at(0, 0, 0) != 1 || at(1, 1, 1) != 8 {
		t.Fatalf("in-range samples misplaced: %v %v", at(0, 0, 0), at(1, 1, 1))
	}
	if at(3, 0, 0) != 2 {
		t.Fatalf("x replication: got %v, want 2", at(3, 0, 0))
	}
	if at(0, 3, 0) != 3 {
		t.Fatalf("y replication: got %v, want 3", at(0, 3, 0))
	}
	if at(0, 0, 3) != 5 {
		t.Fatalf("z replication: got %v, want 5", at(0, 0, 3))
	}
	if at(3, 3, 3) != 8 {
		t.Fatalf("corner replication: got %v, want 8", at(3, 3, 3))
	}
}

func TestEncodeBlockAllZero(t *testing.T) {
	s := OpenStream()
	s.SetRate(8, TypeFloat, 3, false)

	buf := make([]byte, 512)
	bs := NewBitstream(buf)
	s.SetBitStream(bs)

	var blk [blockValues]float32
	if err := s.encodeBlockFloat32(&blk); err != nil {
		t.Fatalf("encodeBlockFloat32: %v", err)
	}
	n, err := bs.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if n != 64 {
		t.Fatalf("fixed-rate block size: got %d bytes, want 64", n)
	}
	for i, b := range buf[:n] {
		if b != 0 {
			t.Fatalf("all-zero block produced nonzero byte %#x at %d", b, i)
		}
	}
}
