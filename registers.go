package hyperloglog

import (
	"math"
)

type registers []uint8

func newRegisters(size int) registers {
	return make(registers, size)
}

// setMax raises register i to val and reports whether it changed. Registers
// never decrease.
func (rs registers) setMax(i uint32, val uint8) bool {
	if val > rs[i] {
		rs[i] = val
		return true
	}
	return false
}

// sum returns the sum of 2^-r over all registers.
func (rs registers) sum() (res float64) {
	for _, r := range rs {
		res += 1.0 / math.Pow(2.0, float64(r))
	}
	return res
}

// indicator is the harmonic mean indicator Z = 1/sum(2^-r).
func (rs registers) indicator() float64 {
	return 1 / rs.sum()
}

func (rs registers) zeros() (res uint32) {
	for _, r := range rs {
		if r == 0 {
			res++
		}
	}
	return res
}

func (rs registers) clone() registers {
	c := make(registers, len(rs))
	copy(c, rs)
	return c
}
