// Package hyperloglog estimates the number of distinct elements in a stream
// with the HyperLogLog algorithm of Flajolet, Fusy, Gandouet and Meunier,
// using 2^p byte registers fed by a pluggable 32-bit hash.
//
// https://algo.inria.fr/flajolet/Publications/FlFuGaMe07.pdf
package hyperloglog

import (
	"math"
)

const (
	// MinPrecision is the smallest supported number of index bits.
	MinPrecision = uint8(4)
	// MaxPrecision is the largest supported number of index bits. At least
	// 16 bits of every 32-bit hash remain for the rank.
	MaxPrecision = uint8(16)
	// DefaultPrecision is the precision used by Default.
	DefaultPrecision = uint8(4)

	two32 = float64(1 << 32)
)

// Sketch is a HyperLogLog data-structure for the count-distinct problem,
// approximating the number of distinct elements in a multiset of T.
//
// A Sketch is not safe for concurrent use: Insert must not run alongside any
// other method. Concurrent Estimate calls are fine. See Concurrent.
type Sketch[T any] struct {
	p     uint8
	m     uint32
	alpha float64
	regs  registers
	hash  HashFunc[T]
}

// NewSketch returns a Sketch with 2^precision registers that hashes its
// elements with hash.
func NewSketch[T any](precision uint8, hash HashFunc[T]) (*Sketch[T], error) {
	if precision < MinPrecision || precision > MaxPrecision {
		return nil, &PrecisionError{Value: precision}
	}
	if hash == nil {
		return nil, ErrNilHash
	}
	m, err := RegisterCount(precision)
	if err != nil {
		return nil, err
	}
	return &Sketch[T]{
		p:     precision,
		m:     uint32(m),
		alpha: alpha(float64(m)),
		regs:  newRegisters(m),
		hash:  hash,
	}, nil
}

// New returns a byte Sketch with 2^precision registers using Murmur3.
func New(precision uint8) (*Sketch[[]byte], error) {
	return NewSketch[[]byte](precision, Murmur3)
}

// NewString returns a string Sketch with 2^precision registers using Murmur3.
func NewString(precision uint8) (*Sketch[string], error) {
	return NewSketch(precision, StringHash(Murmur3))
}

// NewUint64 returns a uint64 Sketch with 2^precision registers using Murmur3.
func NewUint64(precision uint8) (*Sketch[uint64], error) {
	return NewSketch(precision, Uint64Hash(Murmur3))
}

// Default returns a byte Sketch with 2^4 registers (precision 4).
func Default() *Sketch[[]byte] {
	return Must(New(DefaultPrecision))
}

// Must panics if err is non-nil and returns sk otherwise.
//
//	sk := hyperloglog.Must(hyperloglog.NewString(8))
func Must[T any](sk *Sketch[T], err error) *Sketch[T] {
	if err != nil {
		panic(err)
	}
	return sk
}

// Clone returns a deep copy of sk.
func (sk *Sketch[T]) Clone() *Sketch[T] {
	return &Sketch[T]{
		p:     sk.p,
		m:     sk.m,
		alpha: sk.alpha,
		regs:  sk.regs.clone(),
		hash:  sk.hash,
	}
}

// Insert adds element e to sketch and reports whether a register changed.
// Inserting an element a second time never changes the sketch.
func (sk *Sketch[T]) Insert(e T) bool {
	return sk.InsertHash(sk.hash(e))
}

// InsertHash adds hash x to sketch.
func (sk *Sketch[T]) InsertHash(x uint32) bool {
	i, r := getPosVal(x, sk.p)
	return sk.regs.setMax(i, r)
}

// Estimate returns the raw HyperLogLog estimate alpha * m^2 * Z.
//
// No small or large range correction is applied, so an empty sketch
// estimates alpha*m rather than 0, and sketches far from the mid range are
// biased. Use CorrectedEstimate for the range corrected value.
func (sk *Sketch[T]) Estimate() float64 {
	m := float64(sk.m)
	return sk.alpha * m * m * sk.regs.indicator()
}

// CorrectedEstimate returns the estimate with the small range (linear
// counting) and large range (32-bit hash space) corrections from the
// HyperLogLog paper applied.
func (sk *Sketch[T]) CorrectedEstimate() float64 {
	est := sk.Estimate()
	m := float64(sk.m)
	switch {
	case est <= 2.5*m:
		if v := sk.regs.zeros(); v != 0 {
			return linearCount(sk.m, v)
		}
	case est > two32/30 && est < two32:
		return -two32 * math.Log(1-est/two32)
	}
	return est
}

// RegisterCount returns the number of registers, 2^precision.
func (sk *Sketch[T]) RegisterCount() int {
	return len(sk.regs)
}

// Precision returns the number of hash bits used as register index.
func (sk *Sketch[T]) Precision() uint8 {
	return sk.p
}

// Registers returns a copy of the register array.
func (sk *Sketch[T]) Registers() []uint8 {
	return sk.regs.clone()
}

// Accuracy returns the relative standard error 1.04/sqrt(m).
func (sk *Sketch[T]) Accuracy() float64 {
	return 1.04 / math.Sqrt(float64(sk.m))
}
