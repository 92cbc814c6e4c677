// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

// Shl returns a logically shifted left by s bits. A shift of 0 is the
// identity; a shift of Width or more produces zero. Bits shifted past the
// top of the value are discarded, matching hardware shift semantics rather
// than the overflow-checked arithmetic operators.
func Shl(a BigInt, s int) BigInt {
	if s <= 0 {
		if s == 0 {
			return a
		}
		fail("Shl", "negative shift amount")
	}
	if s >= Width {
		return Zero()
	}

	wordShift := s / LimbBits
	bitShift := uint(s % LimbBits)

	var result BigInt
	for i := NumLimbs - 1; i >= wordShift; i-- {
		srcIdx := i - wordShift
		low := a.limbs[srcIdx] << bitShift
		var high uint64
		if srcIdx >= 1 {
			high = a.limbs[srcIdx-1] >> (LimbBits - bitShift)
		}
		result.limbs[i] = low | high
	}
	return result
}

// Shr returns a logically shifted right by s bits. A shift of 0 is the
// identity; a shift of Width or more produces zero.
func Shr(a BigInt, s int) BigInt {
	if s <= 0 {
		if s == 0 {
			return a
		}
		fail("Shr", "negative shift amount")
	}
	if s >= Width {
		return Zero()
	}

	wordShift := s / LimbBits
	bitShift := uint(s % LimbBits)

	var result BigInt
	for i := 0; i+wordShift < NumLimbs; i++ {
		srcIdx := i + wordShift
		low := a.limbs[srcIdx] >> bitShift
		var high uint64
		if srcIdx+1 < NumLimbs {
			high = a.limbs[srcIdx+1] << (LimbBits - bitShift)
		}
		result.limbs[i] = low | high
	}
	return result
}
