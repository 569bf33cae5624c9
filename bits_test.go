package ldpc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSetBit(t *testing.T) {
	buf := make([]byte, 2)
	setBit(buf, 0, 1)
	setBit(buf, 7, 1)
	setBit(buf, 8, 1)
	require.Equal(t, []byte{0x81, 0x80}, buf)

	require.Equal(t, 1, getBit(buf, 0))
	require.Equal(t, 0, getBit(buf, 1))
	require.Equal(t, 1, getBit(buf, 7))

	setBit(buf, 0, 0)
	require.Equal(t, 0, getBit(buf, 0))
}

func TestXorBit(t *testing.T) {
	buf := make([]byte, 1)
	xorBit(buf, 3)
	require.Equal(t, 1, getBit(buf, 3))
	xorBit(buf, 3)
	require.Equal(t, 0, getBit(buf, 3))
}

func TestRotr32(t *testing.T) {
	require.Equal(t, uint32(0x00000001), rotr32(0x00000002, 1))
	require.Equal(t, uint32(0x80000000), rotr32(0x00000001, 1))
	require.Equal(t, uint32(0x12345678), rotr32(0x12345678, 0))
	require.Equal(t, rotr32(0xABCD1234, 5), rotr32(0xABCD1234, 37))
}

func TestWordBit(t *testing.T) {
	require.Equal(t, 1, wordBit(0x80000000, 0))
	require.Equal(t, 0, wordBit(0x80000000, 1))
	require.Equal(t, 1, wordBit(0x00000001, 31))
}

func TestPopcountWord(t *testing.T) {
	require.Equal(t, 0, popcountWord(0))
	require.Equal(t, 32, popcountWord(0xFFFFFFFF))
	require.Equal(t, 1, popcountWord(0x00000001))
}
