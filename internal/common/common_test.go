package common

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestBytesForBits(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 7: 1, 8: 1, 9: 2, 16: 2, 17: 3, 64: 8}
	for bits, want := range cases {
		require.Equal(t, want, BytesForBits(bits), "bits %d", bits)
	}
}

func TestBitIsSetLSBFirst(t *testing.T) {
	b := []byte{0x0E} // 00001110
	require.Equal(t, []bool{false, true, true, true, false, false, false, false},
		UnpackBits(b, 0, 8))
	require.Equal(t, []bool{true, true, true}, UnpackBits(b, 1, 3))

	b = []byte{0x00, 0x01} // bit 8 set
	require.False(t, BitIsSet(b, 7))
	require.True(t, BitIsSet(b, 8))
}

func TestPackUnpackRoundTrip(t *testing.T) {
	condition := func(bits []bool) bool {
		packed := PackBits(bits)
		if len(packed) != BytesForBits(len(bits)) {
			return false
		}
		got := UnpackBits(packed, 0, len(bits))
		if len(got) != len(bits) {
			return false
		}
		for i := range bits {
			if got[i] != bits[i] {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestSetBit(t *testing.T) {
	b := make([]byte, 2)
	SetBit(b, 0)
	SetBit(b, 9)
	require.Equal(t, []byte{0x01, 0x02}, b)
}

func TestVarUintRoundTrip(t *testing.T) {
	condition := func(x uint64) bool {
		buf := WriteVarUint(nil, x)
		got, n := ReadVarUint(buf)
		return got == x && n == len(buf)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))

	_, n := ReadVarUint(nil)
	require.Zero(t, n)
}
