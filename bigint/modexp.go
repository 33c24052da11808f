//
// modexp.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

const (
	// slidingWindowWords is the exponent size, in words, above which
	// ModExp switches from the right-to-left binary method to the
	// 4-bit sliding window method.
	slidingWindowWords = 20

	// windowBits is the sliding window size.
	windowBits = 4

	// maxInverseIterations bounds the extended GCD loop. The Euclid
	// remainder sequence shrinks by at least one bit every second
	// step, so twice the capacity bit count can never be reached by
	// valid inputs; hitting the cap converts a runaway loop into a
	// defined error.
	maxInverseIterations = 2 * MaxWords * wordBits

	// trialInverseMax is the largest single-word modulus for which
	// ModInverse uses exhaustive trial search instead of the
	// extended GCD.
	trialInverseMax = 10000
)

// ModExp sets z to base^exp mod m. A zero exponent yields 1, a zero
// base yields 0, and a modulus of one yields 0. Exponents larger
// than slidingWindowWords words use the 4-bit sliding window method;
// both methods produce identical results. The result is always below
// the modulus.
func (z *Int) ModExp(base, exp, m *Int) error {
	if base == nil || exp == nil || m == nil {
		return ErrNilOperand
	}
	if m.IsZero() {
		return ErrZeroModulus
	}
	if exp.IsZero() {
		z.SetUint32(1)
		return nil
	}
	if base.IsZero() {
		z.SetZero()
		return nil
	}
	if m.IsOne() {
		z.SetZero()
		return nil
	}

	if exp.used > slidingWindowWords {
		logger.Debugf("modexp: %d-word exponent, sliding window", exp.used)
		return z.modExpWindow(base, exp, m)
	}
	return z.modExpBinary(base, exp, m)
}

// modExpBinary is the right-to-left binary method.
func (z *Int) modExpBinary(base, exp, m *Int) error {
	var result, b, t Int
	result.SetUint32(1)
	if err := b.Mod(base, m); err != nil {
		return err
	}

	ebits := exp.BitLen()
	for i := 0; i < ebits; i++ {
		if exp.Bit(i) != 0 {
			if err := t.Mul(&result, &b); err != nil {
				return err
			}
			if err := result.Mod(&t, m); err != nil {
				return err
			}
		}
		if i+1 < ebits {
			if err := t.Mul(&b, &b); err != nil {
				return err
			}
			if err := b.Mod(&t, m); err != nil {
				return err
			}
		}
	}
	*z = result
	return nil
}

// modExpWindow is the left-to-right 4-bit sliding window method for
// large exponents. It precomputes base^0..base^15 mod m and consumes
// the exponent four bits at a time, skipping leading all-zero
// windows before the first multiply.
func (z *Int) modExpWindow(base, exp, m *Int) error {
	var b, t Int
	if err := b.Mod(base, m); err != nil {
		return err
	}

	var powers [1 << windowBits]Int
	powers[0].SetUint32(1)
	powers[1].Set(&b)
	for i := 2; i < len(powers); i++ {
		if err := t.Mul(&powers[i-1], &b); err != nil {
			return err
		}
		if err := powers[i].Mod(&t, m); err != nil {
			return err
		}
	}

	var result Int
	started := false
	ebits := exp.BitLen()
	for pos := ebits - 1; pos >= 0; pos -= windowBits {
		// Accumulate the window MSB first so that a final window
		// narrower than windowBits keeps the weight of the bits it
		// actually consumed: the window value must match the number
		// of squarings applied below.
		window := 0
		width := 0
		for j := 0; j < windowBits && pos-j >= 0; j++ {
			window = window<<1 | int(exp.Bit(pos-j))
			width++
		}
		if !started {
			if window == 0 {
				continue
			}
			result.Set(&powers[window])
			started = true
			continue
		}
		for s := 0; s < width; s++ {
			if err := t.Mul(&result, &result); err != nil {
				return err
			}
			if err := result.Mod(&t, m); err != nil {
				return err
			}
		}
		if window > 0 {
			if err := t.Mul(&result, &powers[window]); err != nil {
				return err
			}
			if err := result.Mod(&t, m); err != nil {
				return err
			}
		}
	}
	if !started {
		result.SetUint32(1)
	}
	*z = result
	return nil
}

// ModInverse sets z to the multiplicative inverse of a modulo m,
// computed with the extended Euclidean algorithm. It fails with
// ErrNoInverse if gcd(a, m) != 1. Negative Bezout coefficients are
// folded back into [0, m) as the algorithm runs, so the intermediate
// values stay magnitudes.
func (z *Int) ModInverse(a, m *Int) error {
	if a == nil || m == nil {
		return ErrNilOperand
	}
	if m.IsZero() {
		return ErrZeroModulus
	}
	var red Int
	if err := red.Mod(a, m); err != nil {
		return err
	}
	if red.IsZero() {
		return ErrNoInverse
	}

	// Single-word moduli below the practicality threshold: trial
	// search is both simple and fast enough.
	if m.used == 1 && m.words[0] < trialInverseMax {
		mv := uint64(m.words[0])
		av := uint64(red.words[0])
		for i := uint64(1); i < mv; i++ {
			if av*i%mv == 1 {
				z.SetUint32(uint32(i))
				return nil
			}
		}
		return ErrNoInverse
	}

	// Invariant: oldR = oldS*a (mod m), r = s*a (mod m).
	var oldR, r, oldS, s Int
	oldR.Set(&red)
	r.Set(m)
	oldS.SetUint32(1)

	var q, rem, qs, newS Int
	for iter := 0; !r.IsZero(); iter++ {
		if iter >= maxInverseIterations {
			return ErrNoInverse
		}
		if err := q.QuoRem(&oldR, &r, &rem); err != nil {
			return err
		}
		oldR.Set(&r)
		r.Set(&rem)

		// newS = oldS - q*s (mod m); fold negative values back
		// into range by adding the modulus.
		if err := qs.Mul(&q, &s); err != nil {
			return err
		}
		if err := qs.Mod(&qs, m); err != nil {
			return err
		}
		if oldS.Cmp(&qs) >= 0 {
			if err := newS.Sub(&oldS, &qs); err != nil {
				return err
			}
		} else {
			if err := newS.Add(&oldS, m); err != nil {
				return err
			}
			if err := newS.Sub(&newS, &qs); err != nil {
				return err
			}
		}
		oldS.Set(&s)
		s.Set(&newS)
	}

	if !oldR.IsOne() {
		return ErrNoInverse
	}
	if oldS.Cmp(m) >= 0 {
		return z.Mod(&oldS, m)
	}
	z.Set(&oldS)
	return nil
}
