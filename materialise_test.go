package ldpc

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

// denseHBit reads H's bit at check row i, variable column j from the
// word-packed buffer InitParityCheck produces.
func denseHBit(h []uint32, cols, i, j int) int {
	words := cols / 32
	return wordBit(h[i*words+j/32], j%32)
}

func TestSparseDenseAgreement(t *testing.T) {
	for _, code := range Codes {
		t.Run(code.String(), func(t *testing.T) {
			p := GetParams(code)
			cols := p.N + p.P

			h := make([]uint32, SizeParityCheck(code)/4)
			InitParityCheck(code, h)

			sizes := SizeSparseParityCheck(code)
			ci := make([]uint16, sizes.CI/2)
			cs := make([]uint16, sizes.CS/2)
			vi := make([]uint16, sizes.VI/2)
			vs := make([]uint16, sizes.VS/2)
			InitSparseParityCheck(code, ci, cs, vi, vs)

			edges := 0
			for i := 0; i < npk(p); i++ {
				for e := int(cs[i]); e < int(cs[i+1]); e++ {
					a := int(ci[e])
					require.Equalf(t, 1, denseHBit(h, cols, i, a),
						"H[%d][%d] should be 1 for every sparse edge", i, a)
					edges++
				}
			}
			require.Equal(t, p.S, edges, "s must equal total sparse edge count")

			ones := 0
			for _, w := range h {
				ones += bits.OnesCount32(w)
			}
			require.Equal(t, p.S, ones, "total 1-bits in H must equal s")
		})
	}
}

func TestGraphSymmetry(t *testing.T) {
	for _, code := range Codes {
		t.Run(code.String(), func(t *testing.T) {
			p := GetParams(code)
			sizes := SizeSparseParityCheck(code)
			ci := make([]uint16, sizes.CI/2)
			cs := make([]uint16, sizes.CS/2)
			vi := make([]uint16, sizes.VI/2)
			vs := make([]uint16, sizes.VS/2)
			InitSparseParityCheck(code, ci, cs, vi, vs)

			require.EqualValues(t, p.S, cs[npk(p)])
			require.EqualValues(t, p.S, vs[p.N+p.P])

			// Every row-side edge (i, a) must appear column-side.
			for i := 0; i < npk(p); i++ {
				for e := int(cs[i]); e < int(cs[i+1]); e++ {
					a := int(ci[e])
					found := false
					for ve := int(vs[a]); ve < int(vs[a+1]); ve++ {
						if int(vi[ve]) == i {
							found = true
							break
						}
					}
					require.Truef(t, found, "edge (%d,%d) missing from column side", i, a)
				}
			}

			// Ordering invariant: strictly increasing within each slice.
			for i := 0; i < npk(p); i++ {
				for e := int(cs[i]) + 1; e < int(cs[i+1]); e++ {
					require.Less(t, ci[e-1], ci[e])
				}
			}
			for a := 0; a < p.N+p.P; a++ {
				for e := int(vs[a]) + 1; e < int(vs[a+1]); e++ {
					require.Less(t, vi[e-1], vi[e])
				}
			}
		})
	}
}

func TestInitSparseParityCheckRowsMatchesFull(t *testing.T) {
	for _, code := range Codes {
		t.Run(code.String(), func(t *testing.T) {
			sizes := SizeSparseParityCheck(code)
			ci := make([]uint16, sizes.CI/2)
			cs := make([]uint16, sizes.CS/2)
			vi := make([]uint16, sizes.VI/2)
			vs := make([]uint16, sizes.VS/2)
			InitSparseParityCheck(code, ci, cs, vi, vs)

			ci2 := make([]uint16, sizes.CI/2)
			cs2 := make([]uint16, sizes.CS/2)
			InitSparseParityCheckRows(code, ci2, cs2)

			require.Equal(t, ci, ci2)
			require.Equal(t, cs, cs2)
		})
	}
}
