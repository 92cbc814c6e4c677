// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

import (
	"encoding/binary"
	"fmt"
)

// ByteLen is the size, in bytes, of the little-endian buffer FromBytes and
// Bytes operate on.
const ByteLen = Width / 8

// decimalDigits bounds the number of base-10 digits needed to print the
// largest representable value: ceil(Width * log10(2)) rounded up with
// margin.
const decimalDigits = 620

// FromBytes constructs a BigInt from buf, a little-endian byte buffer of
// exactly ByteLen bytes (buf[0] is the least-significant byte). It returns
// an error if buf has the wrong length.
func FromBytes(buf []byte) (BigInt, error) {
	if len(buf) != ByteLen {
		return Zero(), fmt.Errorf("bigint: FromBytes: expected %d bytes, got %d", ByteLen, len(buf))
	}
	var b BigInt
	for i := 0; i < NumLimbs; i++ {
		b.limbs[i] = binary.LittleEndian.Uint64(buf[i*8 : i*8+8])
	}
	return b, nil
}

// Bytes returns a as a little-endian buffer of exactly ByteLen bytes.
func (b BigInt) Bytes() []byte {
	buf := make([]byte, ByteLen)
	for i := 0; i < NumLimbs; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], b.limbs[i])
	}
	return buf
}

// ToDecimalString converts a to its base-10 representation using the
// double-dabble (shift-and-add-3) algorithm: each input bit, taken from the
// most significant down to the least, is shifted into a register of 4-bit
// BCD digits, with every digit at least 5 bumped up by 3 beforehand so the
// shift carries correctly into the next decimal place.
func ToDecimalString(a BigInt) string {
	var bcd [decimalDigits]byte // bcd[0] is the ones digit

	for bitIndex := Width - 1; bitIndex >= 0; bitIndex-- {
		bit := byte(a.Bit(bitIndex))
		for i := range bcd {
			if bcd[i] >= 5 {
				bcd[i] += 3
			}
		}
		carry := bit
		for i := range bcd {
			v := (bcd[i] << 1) | carry
			carry = (v >> 4) & 1
			bcd[i] = v & 0xF
		}
	}

	top := len(bcd) - 1
	for top > 0 && bcd[top] == 0 {
		top--
	}

	out := make([]byte, top+1)
	for i := range out {
		out[i] = '0' + bcd[top-i]
	}
	return string(out)
}

// String implements fmt.Stringer by delegating to ToDecimalString.
func (b BigInt) String() string {
	return ToDecimalString(b)
}
