package hyperloglog

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	farm "github.com/dgryski/go-farm"
	metro "github.com/dgryski/go-metro"
	"github.com/spaolacci/murmur3"
)

// HashFunc maps a value to a uniformly distributed 32-bit digest. It must be
// deterministic and must not panic.
type HashFunc[T any] func(T) uint32

const metroSeed = 1337

// Murmur3 is MurmurHash3 x86_32 with seed 0. It is the default hash.
func Murmur3(e []byte) uint32 {
	return murmur3.Sum32(e)
}

// XXHash folds the 64-bit xxHash digest into 32 bits.
func XXHash(e []byte) uint32 {
	return fold(xxhash.Sum64(e))
}

// Metro folds the 64-bit metro hash digest into 32 bits.
func Metro(e []byte) uint32 {
	return fold(metro.Hash64(e, metroSeed))
}

// Farm is the 32-bit farmhash fingerprint.
func Farm(e []byte) uint32 {
	return farm.Hash32(e)
}

func fold(x uint64) uint32 {
	return uint32(x>>32) ^ uint32(x)
}

// stringTerminator ends every hashed string so that no string's encoding
// is a prefix of another's.
const stringTerminator = 0xff

// StringHash adapts a byte hash to strings. The string bytes are hashed
// followed by a single 0xff terminator, so StringHash(Murmur3)("moros") is
// 2766284370.
func StringHash(h HashFunc[[]byte]) HashFunc[string] {
	return func(s string) uint32 {
		buf := make([]byte, 0, len(s)+1)
		buf = append(buf, s...)
		return h(append(buf, stringTerminator))
	}
}

// Uint64Hash adapts a byte hash to uint64 values, hashing their big-endian
// encoding.
func Uint64Hash(h HashFunc[[]byte]) HashFunc[uint64] {
	return func(v uint64) uint32 {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], v)
		return h(buf[:])
	}
}

// HashByName returns the byte hash registered under name: "murmur3",
// "xxhash", "metro" or "farm".
func HashByName(name string) (HashFunc[[]byte], bool) {
	switch name {
	case "murmur3":
		return Murmur3, true
	case "xxhash":
		return XXHash, true
	case "metro":
		return Metro, true
	case "farm":
		return Farm, true
	}
	return nil, false
}
