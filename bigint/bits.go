//
// bits.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"math/bits"
)

// Lsh sets z to x shifted left by n bits. The shift decomposes into
// a whole-word move and a sub-word shift. It fails with ErrCapacity
// if any significant bit would move past the fixed capacity; the
// check is on the result bit length, so a value whose top word has
// spare high bits may shift all the way to the boundary.
func (z *Int) Lsh(x *Int, n uint) error {
	if x == nil {
		return ErrNilOperand
	}
	if x.IsZero() {
		z.SetZero()
		return nil
	}
	if n == 0 {
		z.Set(x)
		return nil
	}
	if n > MaxWords*wordBits || uint(x.BitLen())+n > MaxWords*wordBits {
		return ErrCapacity
	}
	wordShift := int(n / wordBits)
	bitShift := uint(n % wordBits)

	var r Int
	for i := x.used - 1; i >= 0; i-- {
		val := uint64(x.words[i]) << bitShift
		r.words[i+wordShift] |= uint32(val)
		if hi := uint32(val >> wordBits); hi != 0 {
			r.words[i+wordShift+1] |= hi
		}
	}
	r.used = (x.BitLen() + int(n) + wordBits - 1) / wordBits
	r.norm()
	*z = r
	return nil
}

// Rsh sets z to x shifted right by n bits and returns z. Bits
// shifted out are discarded; shifting by more than the bit length
// yields zero.
func (z *Int) Rsh(x *Int, n uint) *Int {
	if n == 0 {
		return z.Set(x)
	}
	wordShift := int(n / wordBits)
	bitShift := uint(n % wordBits)

	if wordShift >= x.used {
		return z.SetZero()
	}

	var r Int
	for i := wordShift; i < x.used; i++ {
		v := x.words[i] >> bitShift
		if bitShift > 0 && i+1 < x.used {
			v |= x.words[i+1] << (wordBits - bitShift)
		}
		r.words[i-wordShift] = v
	}
	r.used = x.used - wordShift
	r.norm()
	*z = r
	return z
}

// Bit returns the value of the i'th bit of x. Positions at or beyond
// the significant range, and negative positions, return 0.
func (x *Int) Bit(i int) uint {
	if i < 0 {
		return 0
	}
	w := i / wordBits
	if w >= x.used {
		return 0
	}
	return uint(x.words[w]>>(i%wordBits)) & 1
}

// BitLen returns the length of x in bits. The bit length of zero
// is 0.
func (x *Int) BitLen() int {
	if x.IsZero() {
		return 0
	}
	return (x.used-1)*wordBits + bits.Len32(x.words[x.used-1])
}
