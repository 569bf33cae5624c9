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

import "math"

// buildEdgeTwin returns, for the Tanner graph described by ci/cs/vi/vs, two
// tables of length s mapping between an edge's row-order position (its
// index in ci) and its column-order position (its index in vi). The
// naive decoder locates this correspondence with a per-edge O(degree) scan;
// this table turns that into an O(1) lookup. It is rebuilt on every call
// rather than cached, since no state is retained across calls.
func buildEdgeTwin(p Params, ci, cs, vi, vs []uint16) (ciToVi, viToCi []int32) {
	ciToVi = make([]int32, p.S)
	viToCi = make([]int32, p.S)
	rowCursor := make([]int, npk(p))
	for i := range rowCursor {
		rowCursor[i] = int(cs[i])
	}
	cols := p.N + p.P
	for a := 0; a < cols; a++ {
		for vidx := int(vs[a]); vidx < int(vs[a+1]); vidx++ {
			i := int(vi[vidx])
			e := rowCursor[i]
			ciToVi[e] = int32(vidx)
			viToCi[vidx] = int32(e)
			rowCursor[i]++
		}
	}
	return
}

// sign32 is the three-valued sign used throughout the min-sum update:
// sign(0) = 0.
func sign32(f float32) float32 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// DecodeMP runs the log-domain min-sum message-passing decoder with Savin's
// sign-flip-to-zero correction against llrs (n entries; punctured variables
// carry no intrinsic information and are treated as 0 internally). Runs up
// to 20 iterations, hard-deciding every variable each iteration and
// checking every parity equation; returns as soon as a full iteration
// leaves every check satisfied. Returns the decoded (n+p)/8-byte buffer,
// the number of iterations run, and whether decoding converged.
func DecodeMP(code Code, ci, cs, vi, vs []uint16, llrs []float32) ([]byte, int, bool) {
	p := GetParams(code)
	if p.N == 0 {
		return nil, 0, false
	}
	output := make([]byte, SizeOutput(code))
	working := make([]float32, 2*p.S)
	itersRun, ok := DecodeMPInto(code, ci, cs, vi, vs, llrs, output, working)
	return output, itersRun, ok
}

// DecodeMPInto is the caller-buffered primitive DecodeMP wraps: output must
// hold SizeOutput(code) bytes and working 2*s float32 entries
// (SizeMPWorkingArea(code) bytes) — the edge-indexed u and v message
// arrays, each of length s, packed back to back. Both are caller-owned and
// uninitialised on entry; DecodeMPInto zeroes what it needs. The edge-twin
// lookup tables (see buildEdgeTwin) are allocated inside every call and are
// not retained.
func DecodeMPInto(code Code, ci, cs, vi, vs []uint16, llrs []float32, output []byte, working []float32) (int, bool) {
	p := GetParams(code)
	if p.N == 0 {
		return 0, false
	}

	ciToVi, viToCi := buildEdgeTwin(p, ci, cs, vi, vs)

	s := p.S
	u := working[:s]      // check -> variable, ci-order
	v := working[s : 2*s] // variable -> check, vi-order
	for i := range u {
		u[i] = 0
		v[i] = 0
	}

	nvars := p.N + p.P
	nchecks := npk(p)

	for iter := 0; iter < 20; iter++ {
		// Variable update.
		for i := range output {
			output[i] = 0
		}
		for a := 0; a < nvars; a++ {
			var intrinsic float32
			if a < p.N {
				intrinsic = llrs[a]
			}

			degree := int(vs[a+1]) - int(vs[a])
			var sumU float32
			for aiPos := int(vs[a]); aiPos < int(vs[a+1]); aiPos++ {
				sumU += u[viToCi[aiPos]]
			}
			// llr_a accumulates the incident-edge sum once per incident
			// check (not once total): the reference decoder recomputes it
			// from scratch on every pass over a's edges, so the u
			// contribution ends up added degree(a) times.
			llrA := intrinsic + float32(degree)*sumU
			if llrA <= 0 {
				setBit(output, a, 1)
			}

			for aiPos := int(vs[a]); aiPos < int(vs[a+1]); aiPos++ {
				ownEdge := viToCi[aiPos]
				prev := v[aiPos]
				next := intrinsic + sumU - u[ownEdge]
				if prev != 0 && sign32(next) != sign32(prev) {
					next = 0
				}
				v[aiPos] = next
			}
		}

		// Check update.
		allSatisfied := true
		for i := 0; i < nchecks; i++ {
			parity := 0
			for iaPos := int(cs[i]); iaPos < int(cs[i+1]); iaPos++ {
				sgnProd := float32(1)
				minAcc := float32(math.MaxFloat32)
				for ibPos := int(cs[i]); ibPos < int(cs[i+1]); ibPos++ {
					if ibPos == iaPos {
						continue
					}
					bj := ciToVi[ibPos]
					val := v[bj]
					sgnProd *= sign32(val)
					if m := abs32(val); m < minAcc {
						minAcc = m
					}
				}
				u[iaPos] = sgnProd * minAcc
				parity ^= getBit(output, int(ci[iaPos]))
			}
			if parity&1 == 1 {
				allSatisfied = false
			}
		}

		if allSatisfied {
			return iter + 1, true
		}
	}
	return 20, false
}
