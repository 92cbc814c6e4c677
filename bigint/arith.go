// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

import "math/bits"

// Add returns a + b. It panics with an overflow ArithmeticError if the
// mathematical sum does not fit in Width bits.
func Add(a, b BigInt) BigInt {
	var result BigInt
	var carry uint64
	for i := 0; i < NumLimbs; i++ {
		result.limbs[i], carry = bits.Add64(a.limbs[i], b.limbs[i], carry)
	}
	if carry != 0 {
		fail("Add", "overflow")
	}
	return result
}

// Sub returns a - b. It panics with an underflow ArithmeticError if a < b.
func Sub(a, b BigInt) BigInt {
	var result BigInt
	var borrow uint64
	for i := 0; i < NumLimbs; i++ {
		result.limbs[i], borrow = bits.Sub64(a.limbs[i], b.limbs[i], borrow)
	}
	if borrow != 0 {
		fail("Sub", "underflow")
	}
	return result
}

// Increment returns a + 1. It is a minimal-cost single-word add that stops
// carry propagation at the first limb that does not overflow.
func Increment(a BigInt) BigInt {
	for i := 0; i < NumLimbs; i++ {
		a.limbs[i]++
		if a.limbs[i] != 0 {
			return a
		}
	}
	fail("Increment", "overflow")
	return a // unreachable
}

// Decrement returns a - 1. It panics with an underflow ArithmeticError if a
// is zero.
func Decrement(a BigInt) BigInt {
	for i := 0; i < NumLimbs; i++ {
		if a.limbs[i] != 0 {
			a.limbs[i]--
			return a
		}
		a.limbs[i] = ^uint64(0)
	}
	fail("Decrement", "underflow")
	return a // unreachable
}

// IncrementBy2 returns a + 2. It is used by the search driver to step a
// candidate to the next odd value.
func IncrementBy2(a BigInt) BigInt {
	var carry uint64 = 2
	for i := 0; i < NumLimbs && carry != 0; i++ {
		var sum uint64
		sum, carry = bits.Add64(a.limbs[i], carry, 0)
		a.limbs[i] = sum
	}
	if carry != 0 {
		fail("IncrementBy2", "overflow")
	}
	return a
}
