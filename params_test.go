package ldpc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetParamsNone(t *testing.T) {
	require.Equal(t, Params{}, GetParams(CodeNone))
}

func TestSizesZeroForNone(t *testing.T) {
	require.Equal(t, 0, SizeGenerator(CodeNone))
	require.Equal(t, 0, SizeParityCheck(CodeNone))
	require.Equal(t, SparseSizes{}, SizeSparseParityCheck(CodeNone))
	require.Equal(t, 0, SizeOutput(CodeNone))
}

func TestSizeFormulas(t *testing.T) {
	for _, code := range Codes {
		t.Run(code.String(), func(t *testing.T) {
			p := GetParams(code)
			np := p.N - p.K + p.P

			require.Equal(t, p.K*np/8, SizeGenerator(code))
			require.Equal(t, (p.N+p.P)*np/8, SizeParityCheck(code))

			sizes := SizeSparseParityCheck(code)
			require.Equal(t, 2*p.S, sizes.CI)
			require.Equal(t, 2*(np+1), sizes.CS)
			require.Equal(t, 2*p.S, sizes.VI)
			require.Equal(t, 2*(p.N+p.P+1), sizes.VS)

			require.Equal(t, p.N+p.P, SizeBFWorkingArea(code))
			require.Equal(t, 2*p.S*4, SizeMPWorkingArea(code))
			require.Equal(t, (p.N+p.P)/8, SizeOutput(code))
			require.Equal(t, p.N*4, SizeLLRs(code))
		})
	}
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "NONE", CodeNone.String())
	require.Equal(t, "N128_K64", CodeN128K64.String())
	require.Equal(t, "N2048_K1024", CodeN2048K1024.String())
}
