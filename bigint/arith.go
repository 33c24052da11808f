//
// arith.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

// Add sets z to x+y. It fails with ErrCapacity if the sum needs more
// than MaxWords words.
func (z *Int) Add(x, y *Int) error {
	if x == nil || y == nil {
		return ErrNilOperand
	}
	var r Int
	var carry uint64
	max := x.used
	if y.used > max {
		max = y.used
	}
	for i := 0; i < max || carry != 0; i++ {
		if i >= MaxWords {
			return ErrCapacity
		}
		sum := carry
		if i < x.used {
			sum += uint64(x.words[i])
		}
		if i < y.used {
			sum += uint64(y.words[i])
		}
		r.words[i] = uint32(sum)
		carry = sum >> wordBits
		r.used = i + 1
	}
	r.norm()
	*z = r
	return nil
}

// Sub sets z to x-y. The operands are magnitudes; x must be greater
// than or equal to y or the call fails with ErrUnderflow.
func (z *Int) Sub(x, y *Int) error {
	if x == nil || y == nil {
		return ErrNilOperand
	}
	if x.Cmp(y) < 0 {
		return ErrUnderflow
	}
	var r Int
	var borrow uint64
	for i := 0; i < x.used; i++ {
		var yv uint64
		if i < y.used {
			yv = uint64(y.words[i])
		}
		d := uint64(x.words[i]) - yv - borrow
		r.words[i] = uint32(d)
		borrow = (d >> 63) & 1
		r.used = i + 1
	}
	r.norm()
	*z = r
	return nil
}

// Mul sets z to x*y using schoolbook multiplication. It fails with
// ErrCapacity if the word counts of the operands sum to more than
// MaxWords; a sum of exactly MaxWords still succeeds.
func (z *Int) Mul(x, y *Int) error {
	if x == nil || y == nil {
		return ErrNilOperand
	}
	var r Int
	if x.IsZero() || y.IsZero() {
		*z = r
		return nil
	}
	if x.used+y.used > MaxWords {
		return ErrCapacity
	}
	for i := 0; i < x.used; i++ {
		var carry uint64
		for j := 0; j < y.used || carry != 0; j++ {
			pos := i + j
			if pos >= MaxWords {
				break
			}
			var product uint64
			if j < y.used {
				product = uint64(x.words[i]) * uint64(y.words[j])
			}
			sum := uint64(r.words[pos]) + (product & 0xFFFFFFFF) + carry
			r.words[pos] = uint32(sum)
			carry = (sum >> wordBits) + (product >> wordBits)
			if pos >= r.used {
				r.used = pos + 1
			}
		}
	}
	r.norm()
	*z = r
	return nil
}

// MulAddWord sets z to x*b+c where b and c are single words. The
// fused form is the building block of the Montgomery inner loop and
// the radix conversions. It fails with ErrCapacity if the result
// does not fit.
func (z *Int) MulAddWord(x *Int, b, c uint32) error {
	if x == nil {
		return ErrNilOperand
	}
	var r Int
	carry := uint64(c)
	for i := 0; i < x.used || carry != 0; i++ {
		if i >= MaxWords {
			return ErrCapacity
		}
		sum := carry
		if i < x.used {
			sum += uint64(x.words[i]) * uint64(b)
		}
		r.words[i] = uint32(sum)
		carry = sum >> wordBits
		r.used = i + 1
	}
	r.norm()
	*z = r
	return nil
}

// AddWord sets z to x+w with full carry propagation. It fails with
// ErrCapacity if the carry walks off the last word.
func (z *Int) AddWord(x *Int, w uint32) error {
	if x == nil {
		return ErrNilOperand
	}
	var r Int
	r.Set(x)
	carry := uint64(w)
	for i := 0; carry != 0; i++ {
		if i >= MaxWords {
			return ErrCapacity
		}
		sum := carry
		if i < r.used {
			sum += uint64(r.words[i])
		}
		r.words[i] = uint32(sum)
		carry = sum >> wordBits
		if i >= r.used {
			r.used = i + 1
		}
	}
	r.norm()
	*z = r
	return nil
}
