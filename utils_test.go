package hyperloglog

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopBits(t *testing.T) {
	testCases := []struct {
		v      uint32
		n      uint8
		expect uint32
	}{
		{0b1010_0100_0000_0000_0000_0000_0000_0000, 6, 0b101001},
		{0xffffffff, 0, 0},
		{0xdeadbeef, 32, 0xdeadbeef},
		{0xdeadbeef, 4, 0xd},
		{0x80000000, 1, 1},
		{2766284370, 4, 10},
	}

	for i, tc := range testCases {
		require.Equal(t, tc.expect, topBits(tc.v, tc.n), "case %d", i)
	}
}

func TestBottomBits(t *testing.T) {
	testCases := []struct {
		v      uint32
		n      uint8
		expect uint32
	}{
		{0b1010_0100, 3, 0b100},
		{0xffffffff, 0, 0},
		{0xdeadbeef, 32, 0xdeadbeef},
		{0xdeadbeef, 31, 0x5eadbeef},
		{0xdeadbeef, 8, 0xef},
	}

	for i, tc := range testCases {
		require.Equal(t, tc.expect, bottomBits(tc.v, tc.n), "case %d", i)
	}
}

func TestRank(t *testing.T) {
	require.EqualValues(t, 1, rank(1, 28))
	require.EqualValues(t, 2, rank(0b10010, 28))
	require.EqualValues(t, 28, rank(1<<27, 28))
	require.EqualValues(t, 29, rank(0, 28), "all-zero remainder ranks width+1")
	require.EqualValues(t, 17, rank(0, 16))
}

func TestGetPosVal(t *testing.T) {
	i, r := getPosVal(2766284370, 4)
	require.EqualValues(t, 10, i)
	require.EqualValues(t, 2, r)

	i, r = getPosVal(0xffff0000, 16)
	require.EqualValues(t, 0xffff, i)
	require.EqualValues(t, 17, r)

	i, r = getPosVal(0x0000ffff, 16)
	require.EqualValues(t, 0, i)
	require.EqualValues(t, 1, r)
}

func TestAlpha(t *testing.T) {
	require.Equal(t, 0.673, alpha(16))
	require.Equal(t, 0.673, alpha(31))
	require.Equal(t, 0.697, alpha(32), "breakpoints are half-open")
	require.Equal(t, 0.697, alpha(63))
	require.Equal(t, 0.709, alpha(64))
	require.Equal(t, 0.709, alpha(127))
	require.InDelta(t, 0.7213/(1+1.079/128), alpha(128), 1e-15)
	require.InDelta(t, 0.7213/(1+1.079/65536), alpha(65536), 1e-15)

	m := 65536.0
	require.Equal(t, 0.7213/(1+1.079/m), alpha(m))
}

func TestRegisterCount(t *testing.T) {
	n, err := RegisterCount(3)
	require.NoError(t, err)
	require.Equal(t, 8, n)

	n, err = RegisterCount(16)
	require.NoError(t, err)
	require.Equal(t, 65536, n)

	_, err = RegisterCount(uint8(bits.UintSize - 1))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = RegisterCount(255)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestLinearCount(t *testing.T) {
	require.Zero(t, linearCount(16, 16))
	require.InDelta(t, 16*0.0645385211375712, linearCount(16, 15), 1e-9)
}
