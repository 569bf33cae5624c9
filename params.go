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

// Package ldpc implements encoding and decoding for a fixed family of binary
// LDPC block codes intended for constrained telemetry and packet links, such
// as small-satellite downlinks.
//
// The family has six members, indexed by (n, k): the block length and the
// data length. Three are unpunctured (CodeN128K64, CodeN256K128,
// CodeN512K256); three are punctured, meaning a tail of parity bits exists
// logically but is never transmitted (CodeN1280K1024, CodeN1536K1024,
// CodeN2048K1024). All codes are systematic: the first k bits of every
// codeword are the user message.
//
// The package exposes the code's materialiser (dense and sparse parity-check
// and generator matrices), its two encoders (a memory-minimal one working
// directly from the compact tables, and a fast one working from an expanded
// generator), and its two decoders (bit-flipping, and log-domain min-sum
// message passing). None of these allocate internally except where the
// return signature is a freshly-owned slice, and DecodeMPInto, which builds
// its edge-twin lookup tables on every call; every operation is a single
// synchronous call with no retained state across calls.
package ldpc

// Code identifies one of the six supported LDPC codes, or CodeNone.
type Code int

const (
	// CodeNone makes every operation a no-op: it returns without touching
	// any buffer, and decoders report failure.
	CodeNone Code = iota
	CodeN128K64
	CodeN256K128
	CodeN512K256
	CodeN1280K1024
	CodeN1536K1024
	CodeN2048K1024
)

// String returns the conventional name of the code, e.g. "N128_K64".
func (c Code) String() string {
	switch c {
	case CodeN128K64:
		return "N128_K64"
	case CodeN256K128:
		return "N256_K128"
	case CodeN512K256:
		return "N512_K256"
	case CodeN1280K1024:
		return "N1280_K1024"
	case CodeN1536K1024:
		return "N1536_K1024"
	case CodeN2048K1024:
		return "N2048_K1024"
	default:
		return "NONE"
	}
}

// Codes lists every supported code in ascending block-length order, omitting
// CodeNone. Convenient for table-driven tests that check a property holds
// across the whole family.
var Codes = []Code{
	CodeN128K64, CodeN256K128, CodeN512K256,
	CodeN1280K1024, CodeN1536K1024, CodeN2048K1024,
}

// Params holds the six integer parameters that describe a code:
//
//	N: block length (bits transmitted over the air)
//	K: data length (number of user bits encoded)
//	P: punctured parity bits; logical positions [N, N+P) exist but are never
//	   transmitted
//	M: sub-matrix size used in the code's definition
//	B: circulant block size used by the compact generator table
//	S: total number of 1-bits in H, i.e. the Tanner-graph edge count
type Params struct {
	N, K, P, M, B, S int
}

var codeParams = map[Code]Params{
	CodeN128K64:    {N: 128, K: 64, P: 0, M: 32, B: 32, S: 512},
	CodeN256K128:   {N: 256, K: 128, P: 0, M: 32, B: 32, S: 1024},
	CodeN512K256:   {N: 512, K: 256, P: 0, M: 32, B: 32, S: 2048},
	CodeN1280K1024: {N: 1280, K: 1024, P: 128, M: 128, B: 32, S: 4992},
	CodeN1536K1024: {N: 1536, K: 1024, P: 256, M: 128, B: 32, S: 5888},
	CodeN2048K1024: {N: 2048, K: 1024, P: 512, M: 128, B: 32, S: 7680},
}

// GetParams returns the code's (n, k, p, m, b, s) parameter set. For
// CodeNone, every field is zero.
func GetParams(code Code) Params {
	return codeParams[code]
}

// npk is the number of parity-check equations, n - k + p: the row count of
// H and the column count of the generator's parity portion.
func npk(p Params) int { return p.N - p.K + p.P }

// SizeGenerator returns the byte size of the compact-expanded generator
// parity matrix: k*(n-k+p)/8.
func SizeGenerator(code Code) int {
	p := GetParams(code)
	if p.N == 0 {
		return 0
	}
	return p.K * npk(p) / 8
}

// SizeParityCheck returns the byte size of the dense parity-check matrix H:
// (n+p)*(n-k+p)/8.
func SizeParityCheck(code Code) int {
	p := GetParams(code)
	if p.N == 0 {
		return 0
	}
	return (p.N + p.P) * npk(p) / 8
}

// SparseSizes holds the byte counts of the four sparse parity-check arrays.
type SparseSizes struct {
	CI, CS, VI, VS int
}

// SizeSparseParityCheck returns the byte sizes required for ci, cs, vi, and
// vs: 2*s, 2*(n-k+p+1), 2*s, 2*(n+p+1).
func SizeSparseParityCheck(code Code) SparseSizes {
	p := GetParams(code)
	if p.N == 0 {
		return SparseSizes{}
	}
	return SparseSizes{
		CI: 2 * p.S,
		CS: 2 * (npk(p) + 1),
		VI: 2 * p.S,
		VS: 2 * (p.N + p.P + 1),
	}
}

// SizeBFWorkingArea returns the byte size of the bit-flipping decoder's
// scratch working area: n+p.
func SizeBFWorkingArea(code Code) int {
	p := GetParams(code)
	return p.N + p.P
}

// SizeMPWorkingArea returns the byte size of the message-passing decoder's
// scratch working area: 2*s*sizeof(float32).
func SizeMPWorkingArea(code Code) int {
	p := GetParams(code)
	return 2 * p.S * 4
}

// SizeOutput returns the byte size of a decoder's output buffer: (n+p)/8.
func SizeOutput(code Code) int {
	p := GetParams(code)
	if p.N == 0 {
		return 0
	}
	return (p.N + p.P) / 8
}

// SizeLLRs returns the byte size of an LLR buffer: n*sizeof(float32).
func SizeLLRs(code Code) int {
	p := GetParams(code)
	return p.N * 4
}
