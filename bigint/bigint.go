//
// bigint.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package bigint implements unsigned multi-precision integer
// arithmetic over a fixed-capacity array of 32-bit words. Unlike
// math/big, values never grow beyond MaxWords words; any operation
// whose result would need more words fails with ErrCapacity instead
// of truncating. The package also provides Montgomery reduction and
// modular exponentiation for RSA-style workloads.
package bigint

import (
	"errors"

	"github.com/markkurossi/rsa4096/trace"
)

const (
	// MaxWords is the fixed capacity of Int in 32-bit words. It
	// bounds representable values to 2^(32*MaxWords)-1 and leaves
	// room for RSA-4096 Montgomery intermediates, which need about
	// twice the modulus width as scratch.
	MaxWords = 512

	wordBits = 32
)

// Errors returned by the arithmetic operations.
var (
	ErrNilOperand  = errors.New("nil operand")
	ErrCapacity    = errors.New("result exceeds capacity")
	ErrDivByZero   = errors.New("division by zero")
	ErrZeroModulus = errors.New("zero modulus")
	ErrUnderflow   = errors.New("subtraction underflow")
	ErrNoInverse   = errors.New("no modular inverse")
)

var logger trace.Logger = trace.Nop{}

// SetLogger injects the trace logger consumed by this package. A nil
// argument restores the default no-op logger.
func SetLogger(l trace.Logger) {
	if l == nil {
		l = trace.Nop{}
	}
	logger = l
}

// Int is an unsigned multi-precision integer. The value is stored
// least-significant word first in the first used elements of words;
// all elements at index used and above are zero. The zero value of
// Int is a ready-to-use zero.
//
// Int is a plain value type: assignment copies the value and the
// copies are independent. Operations never allocate beyond their
// receiver.
type Int struct {
	words [MaxWords]uint32
	used  int
}

// NewInt returns a new Int holding the value x.
func NewInt(x uint32) *Int {
	z := new(Int)
	z.SetUint32(x)
	return z
}

// SetUint32 sets z to the single-word value x and returns z.
func (z *Int) SetUint32(x uint32) *Int {
	*z = Int{}
	if x != 0 {
		z.words[0] = x
		z.used = 1
	}
	return z
}

// SetZero sets z to zero and returns z.
func (z *Int) SetZero() *Int {
	*z = Int{}
	return z
}

// Set sets z to x and returns z. The copy is a full value copy; z
// and x do not share state afterwards.
func (z *Int) Set(x *Int) *Int {
	*z = *x
	return z
}

// IsZero reports whether x is zero. Both the used==0 form and the
// single zero word form are recognized.
func (x *Int) IsZero() bool {
	return x.used == 0 || (x.used == 1 && x.words[0] == 0)
}

// IsOne reports whether x is one.
func (x *Int) IsOne() bool {
	return x.used == 1 && x.words[0] == 1
}

// Cmp compares x and y and returns -1, 0, or 1 if x is smaller,
// equal, or greater than y. Both operands must be normalized; the
// word counts are compared first, then words from the most
// significant down.
func (x *Int) Cmp(y *Int) int {
	if x.used != y.used {
		if x.used < y.used {
			return -1
		}
		return 1
	}
	for i := x.used - 1; i >= 0; i-- {
		if x.words[i] != y.words[i] {
			if x.words[i] < y.words[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Uint32 returns the least-significant word of x.
func (x *Int) Uint32() uint32 {
	if x.used == 0 {
		return 0
	}
	return x.words[0]
}

// norm trims high zero words so that used is minimal. Zero
// collapses to the canonical used==0 form. Every mutating operation
// must normalize before returning.
func (z *Int) norm() {
	for z.used > 0 && z.words[z.used-1] == 0 {
		z.used--
	}
}

// ensureCapacity zero-extends z to at least min words. The extension
// deliberately leaves used non-minimal; callers normalize when the
// algorithm that needed the headroom is done.
func (z *Int) ensureCapacity(min int) error {
	if min > MaxWords {
		return ErrCapacity
	}
	if z.used < min {
		z.used = min
	}
	return nil
}

// setBit sets the i'th bit of z, extending used as needed. The bit
// position must be below the fixed capacity.
func (z *Int) setBit(i int) {
	w := i / wordBits
	if w >= z.used {
		z.used = w + 1
	}
	z.words[w] |= 1 << (i % wordBits)
}

// shl1 shifts z left by one bit in place.
func (z *Int) shl1() error {
	var carry uint32
	for i := 0; i < z.used; i++ {
		next := z.words[i] >> (wordBits - 1)
		z.words[i] = z.words[i]<<1 | carry
		carry = next
	}
	if carry != 0 {
		if z.used >= MaxWords {
			return ErrCapacity
		}
		z.words[z.used] = carry
		z.used++
	}
	return nil
}

// subIn subtracts y from z in place. The caller guarantees z >= y.
func (z *Int) subIn(y *Int) {
	var borrow uint64
	for i := 0; i < z.used; i++ {
		var yv uint64
		if i < y.used {
			yv = uint64(y.words[i])
		}
		d := uint64(z.words[i]) - yv - borrow
		z.words[i] = uint32(d)
		borrow = (d >> 63) & 1
	}
	z.norm()
}
