package hyperloglog

import (
	"encoding/binary"
	"testing"

	"github.com/cespare/xxhash/v2"
	metro "github.com/dgryski/go-metro"
	"github.com/stretchr/testify/require"
)

func TestMurmur3(t *testing.T) {
	require.EqualValues(t, 0, Murmur3(nil))
	require.EqualValues(t, 613153351, Murmur3([]byte("hello")))
	require.EqualValues(t, 3017643002, Murmur3([]byte("abc")))
	require.EqualValues(t, 774430218, Murmur3([]byte("moros")))
}

func TestFold(t *testing.T) {
	require.EqualValues(t, 0, fold(0))
	require.EqualValues(t, 0xffffffff, fold(0xffffffff00000000))
	require.EqualValues(t, 0x0f0f0f0f, fold(0xffffffff_f0f0f0f0))

	b := []byte("flow-1")
	require.Equal(t, fold(xxhash.Sum64(b)), XXHash(b))
	require.Equal(t, fold(metro.Hash64(b, metroSeed)), Metro(b))
}

func TestHashDeterministic(t *testing.T) {
	for _, name := range []string{"murmur3", "xxhash", "metro", "farm"} {
		h, ok := HashByName(name)
		require.True(t, ok, name)
		require.Equal(t, h([]byte("moros")), h([]byte("moros")), name)
		require.NotEqual(t, h([]byte("moros")), h([]byte("moros!")), name)
	}

	_, ok := HashByName("sha1")
	require.False(t, ok)
}

func TestAdapters(t *testing.T) {
	s := StringHash(Murmur3)
	require.Equal(t, Murmur3([]byte("moros\xff")), s("moros"))
	require.EqualValues(t, 2766284370, s("moros"))
	require.EqualValues(t, Murmur3([]byte{0xff}), s(""))
	require.NotEqual(t, s("moros"), Murmur3([]byte("moros")))

	u := Uint64Hash(Murmur3)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], 1)
	require.Equal(t, Murmur3(buf[:]), u(1))
	require.EqualValues(t, 1669671676, u(0))
	require.EqualValues(t, 1759100286, u(1))
}
