// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package search_test

import (
	"context"
	"sync"
	"testing"
	"time"

	logging "github.com/ipfs/go-log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binance-chain/prime-gen/bigint"
	"github.com/binance-chain/prime-gen/primality"
	"github.com/binance-chain/prime-gen/search"
)

func setUp(level string) {
	if err := logging.SetLogLevel("primegen", level); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	setUp("error")
	m.Run()
}

// deterministicWitnessCheck independently verifies n with the fixed witness
// set spec.md prescribes, rather than reusing primality.MRTest's own random
// draws.
func deterministicWitnessCheck(t *testing.T, n bigint.BigInt) bool {
	t.Helper()
	witnesses := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

	nMinus1 := bigint.Sub(n, bigint.One())
	d := nMinus1
	s := 0
	for d.IsEven() {
		d = bigint.Shr(d, 1)
		s++
	}

	for _, w := range witnesses {
		a := bigint.FromUint64(w)
		if bigint.Cmp(a, n) >= 0 {
			continue
		}
		x := primality.ModExp(a, d, n)
		if bigint.Equal(x, bigint.One()) || bigint.Equal(x, nMinus1) {
			continue
		}
		passed := false
		for i := 0; i < s-1; i++ {
			x = bigint.Mod(bigint.Mul(x, x), n)
			if bigint.Equal(x, nMinus1) {
				passed = true
				break
			}
		}
		if !passed {
			return false
		}
	}
	return true
}

func TestGeneratePrimeShape(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := search.Config{BitWidth: 128, MRRounds: 20, Workers: 4}
	prime, err := search.GeneratePrime(ctx, search.CryptoOracle{}, cfg)
	require.NoError(t, err)

	assert.Equal(t, 128, prime.BitLen())
	assert.False(t, prime.IsEven())
	assert.True(t, deterministicWitnessCheck(t, prime))
}

func TestGeneratePrimeParallelRaceRepeatable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping repeated parallel-race search in short mode")
	}

	// The scenario in spec.md repeats this search 100 times; this test
	// scales that down to keep the suite fast while exercising the same
	// race-to-first path every iteration.
	const iterations = 5
	for i := 0; i < iterations; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		cfg := search.Config{BitWidth: 256, MRRounds: 20, Workers: 8}
		prime, err := search.GeneratePrime(ctx, search.CryptoOracle{}, cfg)
		cancel()
		require.NoError(t, err)
		assert.Equal(t, 256, prime.BitLen())
		assert.False(t, prime.IsEven())
	}
}

func TestGeneratePrimeObserverSeesAllStates(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[search.WorkerState]bool)
	var sequence []search.WorkerState

	observer := func(workerID int, state search.WorkerState) {
		mu.Lock()
		defer mu.Unlock()
		seen[state] = true
		sequence = append(sequence, state)
	}

	// A single worker on a narrow width keeps the observed sequence strictly
	// ordered (no interleaving from other workers) while still forcing
	// several small-prime rejections before a witness round runs.
	const iterations = 20
	for i := 0; i < iterations; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		cfg := search.Config{BitWidth: 32, MRRounds: 5, Workers: 1, Observer: observer}
		_, err := search.GeneratePrime(ctx, search.CryptoOracle{}, cfg)
		cancel()
		require.NoError(t, err)
	}

	for _, s := range []search.WorkerState{
		search.Initializing,
		search.Filtering,
		search.Witnessing,
		search.Advancing,
		search.Emitting,
	} {
		assert.True(t, seen[s], "expected observer to report state %s at least once", s)
	}

	require.NotEmpty(t, sequence)
	assert.Equal(t, search.Initializing, sequence[0])
	assert.Equal(t, search.Emitting, sequence[len(sequence)-1])
}

func TestGeneratePrimeInvalidBitWidth(t *testing.T) {
	_, err := search.GeneratePrime(context.Background(), search.CryptoOracle{}, search.Config{BitWidth: 0})
	assert.Error(t, err)
	_, err = search.GeneratePrime(context.Background(), search.CryptoOracle{}, search.Config{BitWidth: bigint.Width + 1})
	assert.Error(t, err)
}

type failingOracle struct{}

func (failingOracle) Fill(buf []byte) error {
	return assert.AnError
}

func TestGeneratePrimePropagatesOracleFailure(t *testing.T) {
	cfg := search.Config{BitWidth: 128, MRRounds: 10, Workers: 3}
	_, err := search.GeneratePrime(context.Background(), failingOracle{}, cfg)
	assert.Error(t, err)
}

func TestCryptoOracleFillsBuffer(t *testing.T) {
	var oracle search.CryptoOracle
	buf := make([]byte, 32)
	require.NoError(t, oracle.Fill(buf))

	// A second independent draw should not be identical; crypto/rand.Read
	// reuse would be a far bigger bug than flaky test noise.
	other := make([]byte, 32)
	require.NoError(t, oracle.Fill(other))
	assert.NotEqual(t, buf, other)
}
