// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package bigint implements a fixed-width unsigned multi-precision integer,
// built from the ground up over an array of 64-bit limbs. It exists so that
// the primality machinery in this module never has to reach for an outside
// bignum library: every value here fits in [0, 2^Width) and every arithmetic
// operation that would escape that range panics instead of silently
// wrapping. Shl is the exception: it discards bits shifted past the top.
package bigint

import "fmt"

const (
	// LimbBits is the width of a single machine word (limb) in bits.
	LimbBits = 64

	// Width is the fixed bit width of every BigInt value. It is chosen to
	// comfortably host intermediate products of 1024-bit primality
	// candidates: Width = 2 * 1024.
	Width = 2048

	// NumLimbs is the number of 64-bit limbs backing a BigInt.
	NumLimbs = Width / LimbBits
)

// BigInt is an unsigned integer in [0, 2^Width). Limbs are stored
// little-endian: limbs[0] holds the least-significant 64 bits. The zero
// value is the integer zero and is ready to use. Values are cheap and are
// passed and returned by value throughout this package.
type BigInt struct {
	limbs [NumLimbs]uint64
}

// ArithmeticError reports a core arithmetic fault: overflow, underflow, or
// division by zero. Per this module's design, these are bugs in the caller
// (a candidate that respects Width never triggers one), so they are raised
// via panic rather than threaded through every return value.
type ArithmeticError struct {
	Op  string
	Msg string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("bigint: %s: %s", e.Op, e.Msg)
}

func fail(op, msg string) {
	panic(&ArithmeticError{Op: op, Msg: msg})
}

// Zero returns the BigInt value 0.
func Zero() BigInt { return BigInt{} }

// One returns the BigInt value 1.
func One() BigInt { return FromUint64(1) }

// FromUint64 constructs a BigInt from a native uint64.
func FromUint64(v uint64) BigInt {
	var b BigInt
	b.limbs[0] = v
	return b
}

// FromUint128 constructs a BigInt from a 128-bit value given as its high
// and low 64-bit halves (Go has no native 128-bit integer type, so the
// split pair stands in for it here).
func FromUint128(hi, lo uint64) BigInt {
	var b BigInt
	b.limbs[0] = lo
	b.limbs[1] = hi
	return b
}

// Pow2 returns 2^n. It panics if n >= Width, since the result would not fit.
func Pow2(n uint) BigInt {
	if n >= Width {
		fail("Pow2", "exponent exceeds bit width")
	}
	var b BigInt
	b.limbs[n/LimbBits] = uint64(1) << (n % LimbBits)
	return b
}

// Size returns the index of the highest non-zero limb, or 0 for the zero
// value. Unlike arbitrary-precision bignums, BigInt never needs to
// normalize away leading zero limbs; Size is purely informational.
func (b BigInt) Size() int {
	for i := NumLimbs - 1; i > 0; i-- {
		if b.limbs[i] != 0 {
			return i
		}
	}
	return 0
}

// IsZero reports whether b is the integer 0.
func (b BigInt) IsZero() bool {
	for _, l := range b.limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// IsEven reports whether b is divisible by two.
func (b BigInt) IsEven() bool {
	return b.limbs[0]&1 == 0
}

// BitLen returns the number of bits required to represent b, i.e. the index
// of its highest set bit plus one. BitLen of zero is 0.
func (b BigInt) BitLen() int {
	for i := NumLimbs - 1; i >= 0; i-- {
		if b.limbs[i] != 0 {
			return i*LimbBits + bitLen64(b.limbs[i])
		}
	}
	return 0
}

func bitLen64(v uint64) int {
	n := 0
	for v != 0 {
		v >>= 1
		n++
	}
	return n
}

// Bit returns the value (0 or 1) of the i-th bit of b. It returns 0 for any
// i outside [0, Width).
func (b BigInt) Bit(i int) uint {
	if i < 0 || i >= Width {
		return 0
	}
	return uint((b.limbs[i/LimbBits] >> (uint(i) % LimbBits)) & 1)
}

// SetBit returns a copy of b with its i-th bit set to the low bit of v. It
// panics if i is outside [0, Width).
func (b BigInt) SetBit(i int, v uint) BigInt {
	if i < 0 || i >= Width {
		fail("SetBit", "bit index out of range")
	}
	limb := i / LimbBits
	mask := uint64(1) << (uint(i) % LimbBits)
	if v&1 == 1 {
		b.limbs[limb] |= mask
	} else {
		b.limbs[limb] &^= mask
	}
	return b
}

// Cmp compares a and b, returning -1, 0, or +1 as a < b, a == b, or a > b.
// Comparison is lexicographic on limbs, most-significant first, which
// together with arithmetic forms a total order.
func Cmp(a, b BigInt) int {
	for i := NumLimbs - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			if a.limbs[i] < b.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b are the same value.
func Equal(a, b BigInt) bool { return Cmp(a, b) == 0 }
