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

// EncodeSmallInto computes the (n+p)/8-byte codeword for data directly from
// the compact circulant table, expanding generator bits on demand instead of
// from a materialised G. This is the memory-minimal encoder: it needs no
// buffer beyond its output.
func EncodeSmallInto(code Code, data, codeword []byte) {
	p := GetParams(code)
	if p.N == 0 {
		return
	}
	copy(codeword[:p.K/8], data[:p.K/8])
	np := npk(p)
	for j := 0; j < np; j++ {
		parity := 0
		for r := 0; r < p.K; r++ {
			if getBit(data, r) == 1 && generatorBit(code, p.B, r, j) == 1 {
				parity ^= 1
			}
		}
		setBit(codeword, p.K+j, parity)
	}
}

// EncodeSmall is the allocating convenience wrapper around EncodeSmallInto,
// returning a freshly owned codeword of SizeOutput(code) bytes.
func EncodeSmall(code Code, data []byte) []byte {
	codeword := make([]byte, SizeOutput(code))
	EncodeSmallInto(code, data, codeword)
	return codeword
}

// EncodeFastInto computes the codeword the same way as EncodeSmallInto but
// reads parity columns from a pre-expanded generator g (as written by
// InitGenerator) rather than expanding the compact table on the fly.
// Required to be bit-exact with EncodeSmallInto.
func EncodeFastInto(code Code, g []uint32, data, codeword []byte) {
	p := GetParams(code)
	if p.N == 0 {
		return
	}
	copy(codeword[:p.K/8], data[:p.K/8])
	np := npk(p)
	words := np / 32
	for j := 0; j < np; j++ {
		parity := 0
		for r := 0; r < p.K; r++ {
			if getBit(data, r) == 1 {
				parity ^= wordBit(g[r*words+j/32], j%32)
			}
		}
		setBit(codeword, p.K+j, parity)
	}
}

// EncodeFast is the allocating convenience wrapper around EncodeFastInto.
func EncodeFast(code Code, g []uint32, data []byte) []byte {
	codeword := make([]byte, SizeOutput(code))
	EncodeFastInto(code, g, data, codeword)
	return codeword
}
