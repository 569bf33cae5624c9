// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ldpc

// decodeErasures resolves the p punctured variable nodes [n, n+p) of output
// by majority vote, up to 16 rounds, as a BF pre-pass. output's first n/8
// bytes must already hold the received bits; decodeErasures fills the
// remaining p bits. erased is caller-owned scratch of length p (reused from
// DecodeBFInto's working area, since the erasure pre-pass runs before BF's
// own use of that buffer begins). Returns the number of rounds it actually
// ran.
func decodeErasures(p Params, ci, cs, vi, vs []uint16, output []byte, erased []byte) int {
	if p.P == 0 {
		return 0
	}
	for a := 0; a < p.P; a++ {
		erased[a] = 1
		setBit(output, p.N+a, 0)
	}
	remaining := p.P
	rounds := 0
	for rounds < 16 && remaining > 0 {
		rounds++
		for a := 0; a < p.P; a++ {
			if erased[a] == 0 {
				continue
			}
			varIdx := p.N + a
			tally := 0
			for vidx := int(vs[varIdx]); vidx < int(vs[varIdx+1]); vidx++ {
				i := int(vi[vidx])
				skip := false
				parity := 0
				for cidx := int(cs[i]); cidx < int(cs[i+1]); cidx++ {
					other := int(ci[cidx])
					if other == varIdx {
						continue
					}
					if other >= p.N && erased[other-p.N] != 0 {
						skip = true
						break
					}
					parity ^= getBit(output, other)
				}
				if skip {
					continue
				}
				if parity&1 == 1 {
					tally++
				} else {
					tally--
				}
			}
			if tally != 0 {
				val := 0
				if tally > 0 {
					val = 1
				}
				setBit(output, varIdx, val)
				erased[a] = 0
				remaining--
			}
		}
	}
	return rounds
}
