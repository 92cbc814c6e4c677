// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"github.com/pkg/errors"

	"github.com/binance-chain/prime-gen/bigint"
)

// DefaultMRRounds is the round count used for 1024-bit candidates: the
// composite probability bound is 4^-DefaultMRRounds, about 10^-6.
const DefaultMRRounds = 10

// MRTest runs k rounds of the Miller-Rabin probabilistic primality test
// against n, drawing witnesses from oracle. Its precondition is that n is
// odd and n > 3; callers route smaller or even candidates through Filter
// first. It returns Composite as soon as any round fails, or
// ProbablePrime if every round passes.
func MRTest(n bigint.BigInt, k int, oracle bigint.ByteOracle) (PrimeResult, error) {
	nMinus1 := bigint.Sub(n, bigint.One())
	nMinus3 := bigint.Sub(n, bigint.FromUint64(3))

	d := nMinus1
	s := 0
	for d.IsEven() {
		d = bigint.Shr(d, 1)
		s++
	}

	for round := 0; round < k; round++ {
		raw, err := bigint.Random(oracle)
		if err != nil {
			return Unknown, errors.Wrap(err, "primality: draw Miller-Rabin witness")
		}
		witness := bigint.Add(bigint.Mod(raw, nMinus3), bigint.FromUint64(2))

		x := ModExp(witness, d, n)
		passed := bigint.Equal(x, bigint.One()) || bigint.Equal(x, nMinus1)
		for i := 0; !passed && i < s-1; i++ {
			x = bigint.Mod(bigint.Mul(x, x), n)
			if bigint.Equal(x, nMinus1) {
				passed = true
			}
		}
		if !passed {
			return Composite, nil
		}
	}

	return ProbablePrime, nil
}
