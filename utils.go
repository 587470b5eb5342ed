package hyperloglog

import (
	"math"
	"math/bits"
)

// alpha returns the bias correction constant for m registers. The breakpoints
// are half-open, so m == 32 takes 0.697. Sketches below 32 registers fall in
// the 0.673 range, which extends the paper's m == 16 entry down to any
// smaller m.
func alpha(m float64) float64 {
	switch {
	case m < 32:
		return 0.673
	case m < 64:
		return 0.697
	case m < 128:
		return 0.709
	}
	return 0.7213 / (1 + 1.079/m)
}

// topBits returns the n most significant bits of v, in [0, 2^n).
func topBits(v uint32, n uint8) uint32 {
	if n == 0 {
		return 0
	}
	if n >= 32 {
		return v
	}
	return v >> (32 - n)
}

// bottomBits returns the n least significant bits of v. For n >= 32 the
// whole word is returned; the mask (1<<32)-1 is never built.
func bottomBits(v uint32, n uint8) uint32 {
	if n >= 32 {
		return v
	}
	return v & (uint32(1)<<n - 1)
}

// rank is one plus the number of trailing zeros in the width-bit remainder
// w. An all-zero remainder ranks width+1.
func rank(w uint32, width uint8) uint8 {
	if w == 0 {
		return width + 1
	}
	return uint8(bits.TrailingZeros32(w)) + 1
}

// getPosVal splits hash x into a register index and its rank.
func getPosVal(x uint32, p uint8) (uint32, uint8) {
	i := topBits(x, p)       // {x31,...,x32-p}
	w := bottomBits(x, 32-p) // {x31-p,...,x0}
	return i, rank(w, 32-p)
}

func linearCount(m uint32, v uint32) float64 {
	fm := float64(m)
	return fm * math.Log(fm/float64(v))
}

// RegisterCount returns 2^precision, the number of registers a sketch of
// that precision holds.
func RegisterCount(precision uint8) (int, error) {
	if int(precision) >= bits.UintSize-1 {
		return 0, ErrOverflow
	}
	return 1 << precision, nil
}
