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

// DecodeBF runs the hard-decision bit-flipping decoder against input, a
// received n/8-byte hard-bit buffer. For punctured codes it first runs the
// erasure pre-decoder to fill in the p punctured bits, then runs up to 20
// bit-flipping iterations: each iteration flips every variable node tied for
// the iteration's maximum parity-violation count (not merely one), matching
// the reference decoder's behaviour. Returns the decoded (n+p)/8-byte
// buffer, the total number of iterations run (erasure rounds plus BF
// iterations), and whether a valid codeword was reached.
func DecodeBF(code Code, ci, cs, vi, vs []uint16, input []byte) ([]byte, int, bool) {
	p := GetParams(code)
	if p.N == 0 {
		return nil, 0, false
	}
	output := make([]byte, SizeOutput(code))
	working := make([]byte, SizeBFWorkingArea(code))
	itersRun, ok := DecodeBFInto(code, ci, cs, vi, vs, input, output, working)
	return output, itersRun, ok
}

// DecodeBFInto is the zero-allocation primitive DecodeBF wraps: output must
// hold SizeOutput(code) bytes and working SizeBFWorkingArea(code) (n+p)
// bytes — one per-variable violation counter, reused during the erasure
// pre-pass (for punctured codes) as the per-bit erased flag before any
// violation counting begins. Both are caller-owned and uninitialised on
// entry.
func DecodeBFInto(code Code, ci, cs, vi, vs []uint16, input, output, working []byte) (int, bool) {
	p := GetParams(code)
	if p.N == 0 {
		return 0, false
	}
	copy(output[:p.N/8], input[:p.N/8])

	itersRun := 0
	if p.P > 0 {
		itersRun = decodeErasures(p, ci, cs, vi, vs, output, working[:p.P])
	}

	nvars := p.N + p.P
	nchecks := npk(p)
	violations := working[:nvars]

	for iter := 0; iter < 20; iter++ {
		itersRun++
		for i := range violations {
			violations[i] = 0
		}
		for i := 0; i < nchecks; i++ {
			parity := 0
			for cidx := int(cs[i]); cidx < int(cs[i+1]); cidx++ {
				parity ^= getBit(output, int(ci[cidx]))
			}
			if parity&1 == 1 {
				for cidx := int(cs[i]); cidx < int(cs[i+1]); cidx++ {
					violations[ci[cidx]]++
				}
			}
		}
		var maxViolations byte
		for _, v := range violations {
			if v > maxViolations {
				maxViolations = v
			}
		}
		if maxViolations == 0 {
			return itersRun, true
		}
		for a := 0; a < nvars; a++ {
			if violations[a] == maxViolations {
				xorBit(output, a)
			}
		}
	}
	return itersRun, false
}
