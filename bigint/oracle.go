// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

// ByteOracle is the external randomness collaborator this package consumes.
// It fills a caller-owned buffer with uniform random bytes; a well-behaved
// implementation is cryptographically strong and safe for concurrent use.
// This package never implements one itself — that is left to callers (see
// the search package's CryptoOracle for the default crypto/rand-backed
// implementation).
type ByteOracle interface {
	Fill(buf []byte) error
}

// Random draws a uniformly random BigInt in [0, 2^Width) from oracle.
func Random(oracle ByteOracle) (BigInt, error) {
	buf := make([]byte, ByteLen)
	if err := oracle.Fill(buf); err != nil {
		return Zero(), err
	}
	b, err := FromBytes(buf)
	if err != nil {
		return Zero(), err
	}
	return b, nil
}
