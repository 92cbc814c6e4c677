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

// FermatTest is the simpler Fermat-base primality check retained as an
// alternative for small-width development and debug paths; the 1024-bit
// search driver uses MRTest instead, since Fermat alone admits Carmichael
// pseudoprimes. Witnesses are drawn and ranged exactly as in MRTest.
func FermatTest(n bigint.BigInt, k int, oracle bigint.ByteOracle) (PrimeResult, error) {
	nMinus1 := bigint.Sub(n, bigint.One())
	nMinus3 := bigint.Sub(n, bigint.FromUint64(3))

	for round := 0; round < k; round++ {
		raw, err := bigint.Random(oracle)
		if err != nil {
			return Unknown, errors.Wrap(err, "primality: draw Fermat witness")
		}
		witness := bigint.Add(bigint.Mod(raw, nMinus3), bigint.FromUint64(2))

		if !bigint.Equal(ModExp(witness, nMinus1, n), bigint.One()) {
			return Composite, nil
		}
	}

	return ProbablePrime, nil
}
