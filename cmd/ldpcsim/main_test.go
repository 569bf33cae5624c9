package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRunSmoke exercises the CLI's core path end-to-end for one small code
// without crashing; correctness of the decoders themselves is covered by
// the root package's own tests.
func TestRunSmoke(t *testing.T) {
	f := &flags{code: "N128_K64", ber: 0.05, trials: 8, seed: 42}
	require.NoError(t, run(f))
}

func TestRunUnknownCode(t *testing.T) {
	f := &flags{code: "NOT_A_CODE", ber: 0.05, trials: 1, seed: 1}
	require.Error(t, run(f))
}
