// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package search implements the candidate-generation and parallel-race
// driver this module is built around: random odd, top-bit-set candidates
// of the requested width advance through the primality oracle, and the
// first worker to produce a probable prime wins.
package search

import (
	"crypto/rand"

	"github.com/pkg/errors"

	"github.com/binance-chain/prime-gen/bigint"
)

// ErrOracleUnavailable wraps a byte-oracle failure (the source of
// cryptographic randomness is unavailable, or returned a short read). It is
// treated as fatal for the whole search, per this module's error-handling
// design: randomness faults are environmental and are not retried.
var ErrOracleUnavailable = errors.New("search: byte oracle unavailable")

// ByteOracle is the external randomness collaborator consumed by the
// search driver and, transitively, by the primality oracle. It is the same
// contract as bigint.ByteOracle, re-exported here so callers of this
// package don't need to import bigint just to implement one.
type ByteOracle = bigint.ByteOracle

// CryptoOracle is the default ByteOracle, backed by crypto/rand.Reader. It
// is safe for concurrent use by every search worker, matching
// crypto/rand.Reader's own concurrency guarantee.
type CryptoOracle struct{}

// Fill fills buf with cryptographically strong random bytes.
func (CryptoOracle) Fill(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return errors.Wrap(ErrOracleUnavailable, err.Error())
	}
	return nil
}
