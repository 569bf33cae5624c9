// Command ldpcsim runs repeated single-bit-error trials against one of the
// library's LDPC codes, flipping one randomly chosen transmitted bit per
// trial, and reports the empirical correction rate. It is a thin external collaborator: all the
// encode/decode work happens in package ldpc, this binary only drives it,
// seeds the channel, and reports results.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/adamgreig/ldpc"
)

var codeNames = map[string]ldpc.Code{
	"N128_K64":    ldpc.CodeN128K64,
	"N256_K128":   ldpc.CodeN256K128,
	"N512_K256":   ldpc.CodeN512K256,
	"N1280_K1024": ldpc.CodeN1280K1024,
	"N1536_K1024": ldpc.CodeN1536K1024,
	"N2048_K1024": ldpc.CodeN2048K1024,
}

type flags struct {
	code   string
	ber    float64
	trials int
	seed   int64
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	f := &flags{}
	root := &cobra.Command{
		Use:   "ldpcsim",
		Short: "Simulate single-bit-error channel trials against an LDPC code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}
	root.Flags().StringVar(&f.code, "code", "N256_K128", "code to simulate (e.g. N256_K128)")
	root.Flags().Float64Var(&f.ber, "ber", 0.05, "assumed channel bit error rate for LLR conversion")
	root.Flags().IntVar(&f.trials, "trials", 1000, "number of independent trials to run")
	root.Flags().Int64Var(&f.seed, "seed", 1, "PRNG seed for reproducible trials")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// materialisedCode holds one code's shared, read-only buffers: safe to read
// concurrently from every trial goroutine since nothing writes to them after
// run builds them.
type materialisedCode struct {
	code           ldpc.Code
	params         ldpc.Params
	g              []uint32
	ci, cs, vi, vs []uint16
}

func materialise(code ldpc.Code) *materialisedCode {
	m := &materialisedCode{code: code, params: ldpc.GetParams(code)}

	m.g = make([]uint32, ldpc.SizeGenerator(code)/4)
	ldpc.InitGenerator(code, m.g)

	sizes := ldpc.SizeSparseParityCheck(code)
	m.ci = make([]uint16, sizes.CI/2)
	m.cs = make([]uint16, sizes.CS/2)
	m.vi = make([]uint16, sizes.VI/2)
	m.vs = make([]uint16, sizes.VS/2)
	ldpc.InitSparseParityCheck(code, m.ci, m.cs, m.vi, m.vs)

	return m
}

func run(f *flags) error {
	code, found := codeNames[f.code]
	if !found {
		return fmt.Errorf("unrecognised code %q", f.code)
	}

	m := materialise(code)
	useMP := m.params.P > 0

	results := runTrials(m, useMP, f.ber, f.trials, f.seed)

	successes := make([]float64, len(results))
	iters := make([]float64, len(results))
	for i, r := range results {
		if r.ok {
			successes[i] = 1
		}
		iters[i] = float64(r.iters)
	}
	successRate := stat.Mean(successes, nil)
	meanIters := stat.Mean(iters, nil)

	fmt.Printf("code=%s trials=%d success_rate=%.4f mean_iters=%.2f\n",
		f.code, f.trials, successRate, meanIters)
	return nil
}

type trialResult struct {
	trial int
	ok    bool
	iters int
}

// runTrials runs trials independent single-bit-error trials concurrently
// across a bounded worker pool; each trial owns only its own local buffers,
// reading but never writing m's materialised graph and generator.
func runTrials(m *materialisedCode, useMP bool, ber float64, trials int, seed int64) []trialResult {
	jobs := make(chan int, trials)
	out := make(chan trialResult, trials)

	workers := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for trial := range jobs {
				out <- runTrial(m, useMP, ber, seed, trial)
			}
		}()
	}
	for t := 0; t < trials; t++ {
		jobs <- t
	}
	close(jobs)
	wg.Wait()
	close(out)

	results := make([]trialResult, 0, trials)
	for r := range out {
		results = append(results, r)
	}
	return results
}

func runTrial(m *materialisedCode, useMP bool, ber float64, seed int64, trial int) trialResult {
	rng := rand.New(ldpc.NewMersenneTwister(seed + int64(trial)))

	data := make([]byte, m.params.K/8)
	rng.Read(data)

	tx := ldpc.EncodeFast(m.code, m.g, data)
	flipByte := rng.Intn(m.params.N / 8)
	flipBit := rng.Intn(8)
	tx[flipByte] ^= 1 << (7 - uint(flipBit))

	var output []byte
	var runIters int
	var ok bool
	if useMP {
		llrs := make([]float32, m.params.N)
		ldpc.HardToLLRsBER(m.code, tx[:m.params.N/8], llrs, ber)
		output, runIters, ok = ldpc.DecodeMP(m.code, m.ci, m.cs, m.vi, m.vs, llrs)
	} else {
		output, runIters, ok = ldpc.DecodeBF(m.code, m.ci, m.cs, m.vi, m.vs, tx[:m.params.N/8])
	}

	success := ok && matchesData(output, data, m.params.K/8)

	logEvent := log.Info()
	if !success {
		logEvent = log.Warn()
	}
	logEvent.
		Str("code", m.code.String()).
		Int("trial", trial).
		Int("flip_bit", flipByte*8+flipBit).
		Bool("mp", useMP).
		Int("iters", runIters).
		Bool("ok", success).
		Msg("trial complete")

	return trialResult{trial: trial, ok: success, iters: runIters}
}

func matchesData(output, data []byte, n int) bool {
	if output == nil || len(output) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if output[i] != data[i] {
			return false
		}
	}
	return true
}
