// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import "github.com/binance-chain/prime-gen/bigint"

// ModExp computes base^exponent mod modulus using right-to-left binary
// exponentiation. By convention ModExp(a, e, 1) = 0 for any a and e.
func ModExp(base, exponent, modulus bigint.BigInt) bigint.BigInt {
	if bigint.Equal(modulus, bigint.One()) {
		return bigint.Zero()
	}

	result := bigint.One()
	base = bigint.Mod(base, modulus)

	for !exponent.IsZero() {
		if exponent.Bit(0) == 1 {
			result = bigint.Mod(bigint.Mul(result, base), modulus)
		}
		exponent = bigint.Shr(exponent, 1)
		base = bigint.Mod(bigint.Mul(base, base), modulus)
	}

	return result
}
