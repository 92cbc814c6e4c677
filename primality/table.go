// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package primality implements the primality-testing machinery this module
// is built around: a small-prime trial-division filter followed by
// randomized Miller-Rabin witness rounds. Like the bigint package it sits
// on, it never reaches for an outside bignum or primality library — the
// small-prime table below is built the same way the teacher repo's own
// sieve helper (common/primes/prime.go) builds one, just against a fixed
// candidate count instead of an upper bound.
package primality

import (
	"sync"

	"github.com/binance-chain/prime-gen/bigint"
)

// DefaultTableSize is the number of primes (P), starting from 2, carried in
// the default small-prime table.
const DefaultTableSize = 5000

// SmallPrimeTable is a build-once, read-only list of the first N primes,
// used to cheaply eliminate the vast majority of composite candidates
// before any Miller-Rabin round runs.
type SmallPrimeTable struct {
	primes []uint64
}

// BuildSmallPrimeTable returns a table holding the first count primes,
// found by incremental trial division against the primes already found
// (table.primes[0] = 2, table.primes[1] = 3, and so on).
func BuildSmallPrimeTable(count int) *SmallPrimeTable {
	if count <= 0 {
		return &SmallPrimeTable{}
	}
	primes := make([]uint64, 0, count)
	primes = append(primes, 2)
	for candidate := uint64(3); len(primes) < count; candidate += 2 {
		isPrime := true
		for _, p := range primes {
			if p*p > candidate {
				break
			}
			if candidate%p == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, candidate)
		}
	}
	return &SmallPrimeTable{primes: primes}
}

// List returns the primes held by the table, ordered ascending.
func (t *SmallPrimeTable) List() []uint64 {
	return t.primes
}

var (
	defaultTable     *SmallPrimeTable
	defaultTableOnce sync.Once
)

// DefaultTable returns the shared, process-wide table of the first
// DefaultTableSize primes, built once on first use. Because it is never
// mutated after construction, every caller can safely hold and read the
// same instance concurrently.
func DefaultTable() *SmallPrimeTable {
	defaultTableOnce.Do(func() {
		defaultTable = BuildSmallPrimeTable(DefaultTableSize)
	})
	return defaultTable
}

// Filter runs candidate n against table, returning Prime if n is itself one
// of the table's primes, Composite if any table prime divides n, or
// Unknown if n survives and needs a witness-based test.
func Filter(n bigint.BigInt, table *SmallPrimeTable) PrimeResult {
	for _, p := range table.primes {
		pb := bigint.FromUint64(p)
		if bigint.Equal(n, pb) {
			return Prime
		}
		if bigint.Mod(n, pb).IsZero() {
			return Composite
		}
	}
	return Unknown
}
