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

// defaultBER is the bit error rate assumed by HardToLLRs when the caller has
// no channel estimate of its own.
const defaultBER = 0.05

// HardToLLRsBER converts n packed hard bits to n log-likelihood ratios
// assuming a uniform channel bit error rate ber: llrs[i] = log(ber) if bit i
// is set, else -log(ber). Positive LLR means bit 0 is more likely.
func HardToLLRsBER(code Code, input []byte, llrs []float32, ber float64) {
	p := GetParams(code)
	logBER := float32(math.Log(ber))
	for i := 0; i < p.N; i++ {
		if getBit(input, i) == 1 {
			llrs[i] = logBER
		} else {
			llrs[i] = -logBER
		}
	}
}

// HardToLLRs is HardToLLRsBER with the package's default assumed BER (0.05).
func HardToLLRs(code Code, input []byte, llrs []float32) {
	HardToLLRsBER(code, input, llrs, defaultBER)
}

// LLRsToHard hard-decides n LLRs into packed output bits: bit i is set iff
// llrs[i] <= 0.
func LLRsToHard(code Code, llrs []float32, output []byte) {
	p := GetParams(code)
	for i := range output[:p.N/8] {
		output[i] = 0
	}
	for i := 0; i < p.N; i++ {
		if llrs[i] <= 0 {
			setBit(output, i, 1)
		}
	}
}
