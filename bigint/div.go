// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

import "math/bits"

// DivMod returns (a/b, a%b). It panics with a division-by-zero
// ArithmeticError if b is zero. If a < b it returns (0, a) directly. For a
// single-limb divisor it runs a plain base-2^64 long division; otherwise it
// implements Knuth's Algorithm D: normalize so the divisor's top limb has
// its high bit set, estimate each quotient limb from the top two divisor
// limbs, correct the estimate, and multiply-subtract.
func DivMod(a, b BigInt) (BigInt, BigInt) {
	if b.IsZero() {
		fail("DivMod", "division by zero")
	}
	if Cmp(a, b) < 0 {
		return Zero(), a
	}

	n := b.Size() + 1
	if n == 1 {
		return divModSingleLimb(a, b.limbs[0])
	}
	return divModKnuth(a, b, n)
}

// Mod returns a % b; it is the second result of DivMod.
func Mod(a, b BigInt) BigInt {
	_, r := DivMod(a, b)
	return r
}

func divModSingleLimb(a BigInt, divisor uint64) (BigInt, BigInt) {
	var q BigInt
	var remainder uint64
	for i := NumLimbs - 1; i >= 0; i-- {
		q.limbs[i], remainder = bits.Div64(remainder, a.limbs[i], divisor)
	}
	return q, FromUint64(remainder)
}

func divModKnuth(a, b BigInt, n int) (BigInt, BigInt) {
	m := a.Size() + 1
	if m < n {
		return Zero(), a
	}

	s := uint(bits.LeadingZeros64(b.limbs[n-1]))

	vn := make([]uint64, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = (b.limbs[i] << s) | (b.limbs[i-1] >> (64 - s))
	}
	vn[0] = b.limbs[0] << s

	un := make([]uint64, m+1)
	un[m] = a.limbs[m-1] >> (64 - s)
	for i := m - 1; i > 0; i-- {
		un[i] = (a.limbs[i] << s) | (a.limbs[i-1] >> (64 - s))
	}
	un[0] = a.limbs[0] << s

	qn := make([]uint64, m-n+1)

	for j := m - n; j >= 0; j-- {
		qhat, rhat, rhatOverflow := estimateQuotientDigit(un[j+n], un[j+n-1], vn[n-1])

		for n >= 2 {
			overEstimate := false
			if !rhatOverflow {
				hi, lo := bits.Mul64(qhat, vn[n-2])
				if hi > rhat || (hi == rhat && lo > un[j+n-2]) {
					overEstimate = true
				}
			}
			if !overEstimate {
				break
			}
			qhat--
			var carry uint64
			rhat, carry = bits.Add64(rhat, vn[n-1], 0)
			rhatOverflow = carry != 0
			if rhatOverflow {
				break
			}
		}

		var borrow uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, vn[i])
			d, b1 := bits.Sub64(un[i+j], lo, 0)
			d, b2 := bits.Sub64(d, borrow, 0)
			un[i+j] = d
			borrow = hi + b1 + b2
		}
		d, b3 := bits.Sub64(un[j+n], borrow, 0)
		un[j+n] = d

		qn[j] = qhat
		if b3 != 0 {
			qn[j]--
			var carry uint64
			for i := 0; i < n; i++ {
				var sum uint64
				sum, carry = bits.Add64(un[i+j], vn[i], carry)
				un[i+j] = sum
			}
			un[j+n] += carry
		}
	}

	var q, r BigInt
	copy(q.limbs[:], qn)
	for i := 0; i < n; i++ {
		lo := un[i] >> s
		var hi uint64
		if i+1 < len(un) {
			hi = un[i+1] << (64 - s)
		}
		r.limbs[i] = lo | hi
	}
	return q, r
}

// estimateQuotientDigit computes q̂ = min((hi*2^64 + lo) / divisor, 2^64-1)
// and the corresponding remainder. hi is guaranteed <= divisor by the
// normalization invariant; when hi == divisor the true quotient would
// overflow a single limb, so it is clamped and the remainder is computed by
// hand.
func estimateQuotientDigit(hi, lo, divisor uint64) (qhat, rhat uint64, rhatOverflow bool) {
	if hi == divisor {
		qhat = ^uint64(0)
		var carry uint64
		rhat, carry = bits.Add64(divisor, lo, 0)
		rhatOverflow = carry != 0
		return
	}
	qhat, rhat = bits.Div64(hi, lo, divisor)
	return
}
