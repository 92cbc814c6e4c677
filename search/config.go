// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package search

import (
	"runtime"

	"github.com/binance-chain/prime-gen/bigint"
	"github.com/binance-chain/prime-gen/primality"
)

// Config controls a single GeneratePrime call.
type Config struct {
	// BitWidth is the exact bit width of the returned candidate: its top
	// bit and bottom bit are both forced to 1.
	BitWidth int

	// MRRounds is the number of Miller-Rabin witness rounds each
	// surviving candidate must pass.
	MRRounds int

	// Workers is the number of parallel search workers raced against
	// each other. Zero means runtime.NumCPU().
	Workers int

	// Observer, if non-nil, is called on every worker state transition
	// (Initializing, Filtering, Witnessing, Advancing, Emitting), letting
	// tests and callers watch the per-worker state machine described in
	// this module's design without reaching into worker internals. It is
	// invoked synchronously from the worker goroutine making the
	// transition, so it must not block.
	Observer StateObserver
}

// DefaultConfig returns the configuration used for 1024-bit key material:
// 10 Miller-Rabin rounds (composite probability <= 4^-10) and one worker
// per available hardware thread.
func DefaultConfig() Config {
	return Config{
		BitWidth: 1024,
		MRRounds: primality.DefaultMRRounds,
		Workers:  runtime.NumCPU(),
	}
}

func (c Config) normalized() (Config, error) {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.MRRounds <= 0 {
		c.MRRounds = primality.DefaultMRRounds
	}
	if c.BitWidth <= 2 || c.BitWidth > bigint.Width/2 {
		return c, errInvalidBitWidth
	}
	return c, nil
}
