// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binance-chain/prime-gen/bigint"
	"github.com/binance-chain/prime-gen/primality"
)

type cryptoOracle struct{}

func (cryptoOracle) Fill(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}

func bigFromUint64(v uint64) bigint.BigInt { return bigint.FromUint64(v) }

func TestModExpBoundaryCases(t *testing.T) {
	a := bigFromUint64(7)
	m := bigFromUint64(13)
	assert.True(t, bigint.Equal(primality.ModExp(a, bigint.Zero(), m), bigint.One()))
	assert.True(t, bigint.Equal(primality.ModExp(a, bigint.One(), m), bigint.Mod(a, m)))
	assert.True(t, bigint.Equal(primality.ModExp(a, bigFromUint64(5), bigint.One()), bigint.Zero()))
}

func TestModExpFermatOnKnownPrimes(t *testing.T) {
	knownPrimes := []uint64{97, 131, 251, 8191}
	for _, p := range knownPrimes {
		pb := bigFromUint64(p)
		for _, a := range []uint64{2, 3, 5, 7} {
			if a >= p-1 {
				continue
			}
			ab := bigFromUint64(a)
			got := primality.ModExp(ab, bigint.Sub(pb, bigint.One()), pb)
			assert.True(t, bigint.Equal(got, bigint.One()), "fermat check failed for p=%d a=%d", p, a)
		}
	}
}

func TestSmallPrimeFilter(t *testing.T) {
	table := primality.BuildSmallPrimeTable(100)
	assert.Equal(t, primality.Prime, primality.Filter(bigFromUint64(3), table))
	assert.Equal(t, primality.Composite, primality.Filter(bigFromUint64(561), table))
	assert.Equal(t, primality.Unknown, primality.Filter(bigFromUint64(547), table))
}

func TestMRTestKnownComposites(t *testing.T) {
	// 561 and 41041 are Carmichael numbers: they pass Fermat for every
	// base coprime to them, but Miller-Rabin still catches them.
	for _, c := range []uint64{561, 41041} {
		n := bigFromUint64(c)
		result, err := primality.MRTest(n, 10, cryptoOracle{})
		require.NoError(t, err)
		assert.Equal(t, primality.Composite, result, "expected %d to be reported composite", c)
	}
}

func TestMRTestKnownPrimes(t *testing.T) {
	for _, p := range []uint64{97, 131, 251, 8191, 999983} {
		n := bigFromUint64(p)
		result, err := primality.MRTest(n, 20, cryptoOracle{})
		require.NoError(t, err)
		assert.Equal(t, primality.ProbablePrime, result, "expected %d to be reported probably prime", p)
	}
}

func TestMRTestMersennePrime(t *testing.T) {
	// 2^521 - 1 is a known Mersenne prime.
	n := bigint.Sub(bigint.Pow2(521), bigint.One())
	result, err := primality.MRTest(n, 10, cryptoOracle{})
	require.NoError(t, err)
	assert.Equal(t, primality.ProbablePrime, result)
}

func TestFermatTestAgreesOnPrimes(t *testing.T) {
	n := bigFromUint64(8191)
	result, err := primality.FermatTest(n, 10, cryptoOracle{})
	require.NoError(t, err)
	assert.Equal(t, primality.ProbablePrime, result)
}

func TestDefaultTableShape(t *testing.T) {
	table := primality.DefaultTable()
	list := table.List()
	require.Len(t, list, primality.DefaultTableSize)
	assert.Equal(t, uint64(2), list[0])
	assert.Equal(t, uint64(3), list[1])
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1], list[i])
	}
}
