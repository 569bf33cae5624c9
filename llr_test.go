package ldpc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLLRRoundTrip(t *testing.T) {
	for _, code := range Codes {
		t.Run(code.String(), func(t *testing.T) {
			p := GetParams(code)
			x := testData(p.N)

			llrs := make([]float32, p.N)
			HardToLLRs(code, x, llrs)

			output := make([]byte, p.N/8)
			LLRsToHard(code, llrs, output)

			require.Equal(t, x, output)
		})
	}
}

func TestHardToLLRsSign(t *testing.T) {
	p := GetParams(CodeN128K64)
	input := make([]byte, p.N/8)
	setBit(input, 0, 1)
	setBit(input, 1, 0)

	llrs := make([]float32, p.N)
	HardToLLRsBER(CodeN128K64, input, llrs, 0.05)

	require.Less(t, llrs[0], float32(0), "bit 1 should give a negative LLR")
	require.Greater(t, llrs[1], float32(0), "bit 0 should give a positive LLR")
}
