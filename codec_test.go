package ldpc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecMatchesFreeFunctions(t *testing.T) {
	for _, code := range Codes {
		t.Run(code.String(), func(t *testing.T) {
			p := GetParams(code)
			data := testData(p.K)

			c := NewCodec(code)
			require.Equal(t, code, c.Code())
			require.Equal(t, p, c.Params())

			require.Equal(t, EncodeSmall(code, data), c.EncodeSmall(data))

			g := make([]uint32, SizeGenerator(code)/4)
			InitGenerator(code, g)
			require.Equal(t, EncodeFast(code, g, data), c.EncodeFast(data))

			tx := c.EncodeFast(data)
			tx[0] ^= 0x80

			llrs := make([]float32, p.N)
			HardToLLRs(code, tx[:p.N/8], llrs)
			output, ok := c.DecodeMP(llrs)
			require.True(t, ok)
			require.Equal(t, data, output[:p.K/8])

			if p.P == 0 {
				bfOutput, bfOK := c.DecodeBF(tx[:p.N/8])
				require.True(t, bfOK)
				require.Equal(t, data, bfOutput[:p.K/8])
			}
		})
	}
}

func TestCodecNoneIsNoOp(t *testing.T) {
	c := NewCodec(CodeNone)
	require.Equal(t, CodeNone, c.Code())
	require.Equal(t, Params{}, c.Params())

	output, ok := c.DecodeBF(nil)
	require.Nil(t, output)
	require.False(t, ok)
}
