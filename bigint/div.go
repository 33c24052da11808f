//
// div.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

// QuoRem sets z to the quotient x/y and r to the remainder, so that
// x = z*y + r with 0 <= r < y. It fails with ErrDivByZero if y is
// zero. The division is binary long division: the cost is
// proportional to the bit length of x, not to the magnitude of the
// quotient.
func (z *Int) QuoRem(x, y, r *Int) error {
	if x == nil || y == nil || r == nil {
		return ErrNilOperand
	}
	if y.IsZero() {
		return ErrDivByZero
	}
	if x.IsZero() || x.Cmp(y) < 0 {
		r.Set(x)
		z.SetZero()
		return nil
	}

	var quo, rem Int
	for i := x.BitLen() - 1; i >= 0; i-- {
		if err := rem.shl1(); err != nil {
			return err
		}
		if x.Bit(i) != 0 {
			if rem.used == 0 {
				rem.used = 1
			}
			rem.words[0] |= 1
		}
		if rem.Cmp(y) >= 0 {
			rem.subIn(y)
			quo.setBit(i)
		}
	}
	quo.norm()
	*z = quo
	*r = rem
	return nil
}

// Mod sets z to x mod y, with 0 <= z < y. It fails with ErrDivByZero
// if y is zero.
func (z *Int) Mod(x, y *Int) error {
	var q Int
	return q.QuoRem(x, y, z)
}

// divWordIn divides z by the single word d in place and returns the
// remainder. The divisor must be non-zero.
func (z *Int) divWordIn(d uint32) uint32 {
	var rem uint64
	for i := z.used - 1; i >= 0; i-- {
		cur := rem<<wordBits | uint64(z.words[i])
		z.words[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	z.norm()
	return uint32(rem)
}
