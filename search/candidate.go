// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package search

import "github.com/binance-chain/prime-gen/bigint"

// randomCandidate draws Width bits of randomness from oracle and forces the
// top bit of the target width and the bottom bit: the result is odd and
// has exactly bitWidth significant bits, without any rejection-sampling
// loop. This slightly biases the distribution among odd bitWidth-bit
// numbers, which is acceptable for key-generation purposes.
func randomCandidate(oracle ByteOracle, bitWidth int) (bigint.BigInt, error) {
	raw, err := bigint.Random(oracle)
	if err != nil {
		return bigint.Zero(), err
	}
	for i := bitWidth; i < bigint.Width; i++ {
		raw = raw.SetBit(i, 0)
	}
	raw = raw.SetBit(bitWidth-1, 1)
	raw = raw.SetBit(0, 1)
	return raw, nil
}
