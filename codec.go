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

// Codec bundles a single materialised code together with its encode/decode
// operations, for callers who don't want to manage generator and sparse
// graph buffers themselves. The free functions (InitGenerator, EncodeSmall,
// DecodeBF, ...) remain the primitive API Codec is built from.
type Codec interface {
	// Code returns the code this Codec was constructed for.
	Code() Code

	// Params returns the code's parameters.
	Params() Params

	// EncodeSmall computes a codeword directly from the compact table.
	EncodeSmall(data []byte) []byte

	// EncodeFast computes a codeword from this Codec's materialised
	// generator.
	EncodeFast(data []byte) []byte

	// DecodeBF runs the bit-flipping decoder against received hard bits.
	DecodeBF(input []byte) (output []byte, ok bool)

	// DecodeMP runs the message-passing decoder against received LLRs.
	DecodeMP(llrs []float32) (output []byte, ok bool)
}

// ldpcCodec is the concrete implementation of Codec.
// Implements ldpc.Codec.
type ldpcCodec struct {
	code   Code
	params Params

	g              []uint32
	ci, cs, vi, vs []uint16
}

// NewCodec materialises code's generator and sparse parity-check graph and
// returns a Codec ready to encode and decode. For CodeNone, the returned
// Codec's operations are all no-ops, matching the free-function API.
func NewCodec(code Code) Codec {
	c := &ldpcCodec{code: code, params: GetParams(code)}
	if c.params.N == 0 {
		return c
	}

	c.g = make([]uint32, SizeGenerator(code)/4)
	InitGenerator(code, c.g)

	sizes := SizeSparseParityCheck(code)
	c.ci = make([]uint16, sizes.CI/2)
	c.cs = make([]uint16, sizes.CS/2)
	c.vi = make([]uint16, sizes.VI/2)
	c.vs = make([]uint16, sizes.VS/2)
	InitSparseParityCheck(code, c.ci, c.cs, c.vi, c.vs)

	return c
}

func (c *ldpcCodec) Code() Code { return c.code }

func (c *ldpcCodec) Params() Params { return c.params }

func (c *ldpcCodec) EncodeSmall(data []byte) []byte {
	return EncodeSmall(c.code, data)
}

func (c *ldpcCodec) EncodeFast(data []byte) []byte {
	return EncodeFast(c.code, c.g, data)
}

func (c *ldpcCodec) DecodeBF(input []byte) ([]byte, bool) {
	output, _, ok := DecodeBF(c.code, c.ci, c.cs, c.vi, c.vs, input)
	return output, ok
}

func (c *ldpcCodec) DecodeMP(llrs []float32) ([]byte, bool) {
	output, _, ok := DecodeMP(c.code, c.ci, c.cs, c.vi, c.vs, llrs)
	return output, ok
}
