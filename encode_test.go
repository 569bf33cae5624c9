package ldpc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testData returns data[i] = ~i, the reference implementation's standard
// test input.
func testData(k int) []byte {
	data := make([]byte, k/8)
	for i := range data {
		data[i] = ^byte(i)
	}
	return data
}

func TestEncoderEquivalence(t *testing.T) {
	for _, code := range Codes {
		t.Run(code.String(), func(t *testing.T) {
			p := GetParams(code)
			data := testData(p.K)

			small := EncodeSmall(code, data)

			g := make([]uint32, SizeGenerator(code)/4)
			InitGenerator(code, g)
			fast := EncodeFast(code, g, data)

			require.Equal(t, small, fast)
		})
	}
}

func TestSystematicProperty(t *testing.T) {
	for _, code := range Codes {
		t.Run(code.String(), func(t *testing.T) {
			p := GetParams(code)
			data := testData(p.K)
			codeword := EncodeSmall(code, data)
			require.Equal(t, data, codeword[:p.K/8])
		})
	}
}

func TestCodewordValidity(t *testing.T) {
	for _, code := range Codes {
		t.Run(code.String(), func(t *testing.T) {
			p := GetParams(code)
			data := testData(p.K)
			codeword := EncodeSmall(code, data)

			sizes := SizeSparseParityCheck(code)
			ci := make([]uint16, sizes.CI/2)
			cs := make([]uint16, sizes.CS/2)
			vi := make([]uint16, sizes.VI/2)
			vs := make([]uint16, sizes.VS/2)
			InitSparseParityCheck(code, ci, cs, vi, vs)

			for i := 0; i < npk(p); i++ {
				parity := 0
				for e := int(cs[i]); e < int(cs[i+1]); e++ {
					parity ^= getBit(codeword, int(ci[e]))
				}
				require.Zerof(t, parity, "check %d unsatisfied", i)
			}
		})
	}
}
