// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

// PrimeResult is the oracle's verdict on a candidate. Unknown is an
// internal transient state used while a candidate is still being
// evaluated; the oracle's public result is always one of Prime, Composite,
// or ProbablePrime.
type PrimeResult int

const (
	Unknown PrimeResult = iota
	Composite
	ProbablePrime
	Prime
)

func (r PrimeResult) String() string {
	switch r {
	case Composite:
		return "Composite"
	case ProbablePrime:
		return "ProbablePrime"
	case Prime:
		return "Prime"
	default:
		return "Unknown"
	}
}
