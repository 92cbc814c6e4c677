// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

import "math/bits"

// Mul returns a * b using schoolbook long multiplication. It panics with an
// overflow ArithmeticError when a.Size() + b.Size() + 1 >= NumLimbs. That
// covers every product that does not fit in Width bits, and also some
// products that would just fit.
func Mul(a, b BigInt) BigInt {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}

	t := a.Size()
	n := b.Size()
	if t+n+1 >= NumLimbs {
		fail("Mul", "overflow")
	}

	// wide holds up to 2*NumLimbs limbs of intermediate product before the
	// overflow check below folds it back into a single-width result.
	var wide [2*NumLimbs + 1]uint64
	for i := 0; i <= t; i++ {
		if a.limbs[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j <= n; j++ {
			hi, lo := bits.Mul64(a.limbs[i], b.limbs[j])
			var c0, c1 uint64
			lo, c0 = bits.Add64(lo, wide[i+j], 0)
			lo, c1 = bits.Add64(lo, carry, 0)
			wide[i+j] = lo
			carry = hi + c0 + c1
		}
		wide[i+n+1] += carry
	}

	for i := NumLimbs; i < len(wide); i++ {
		if wide[i] != 0 {
			fail("Mul", "overflow")
		}
	}

	var result BigInt
	copy(result.limbs[:], wide[:NumLimbs])
	return result
}
