//
// montgomery.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//
// Montgomery reduction (REDC) and Montgomery-domain exponentiation.
// The REDC form replaces the division in modular multiplication with
// word-level multiply-accumulate passes, which is where RSA spends
// nearly all of its time.

package bigint

import (
	"errors"
)

// Montgomery reduction errors.
var (
	ErrEvenModulus = errors.New("montgomery: modulus must be odd")
	ErrInactive    = errors.New("montgomery: context inactive")
)

// redcHeadroom is the carry-propagation safety margin of the REDC
// scratch buffer, in words, on top of the 2x modulus width the
// algorithm itself needs.
const redcHeadroom = 10

// Montgomery holds the precomputed reduction parameters for one odd
// modulus n: R = 2^(32*rWords) with R > n, R^2 mod n for entering
// Montgomery form, the REDC multiplier n' = -n^(-1) mod 2^32, and
// optionally R^(-1) mod n. The context is immutable after
// construction and safe for concurrent readers.
type Montgomery struct {
	n        Int
	r        Int
	rSquared Int
	rInv     Int
	haveRInv bool
	nPrime   uint32
	nWords   int
	rWords   int
	active   bool
}

// NewMontgomery builds a Montgomery context for the given modulus.
// It fails if the modulus is nil, zero, or even, or if R would not
// fit with carry headroom in the fixed capacity. If the internal n'
// verification fails the returned context is inactive but the error
// is nil; callers fall back to classical arithmetic.
func NewMontgomery(modulus *Int) (*Montgomery, error) {
	if modulus == nil {
		return nil, ErrNilOperand
	}
	if modulus.IsZero() {
		return nil, ErrZeroModulus
	}
	if modulus.Bit(0) == 0 {
		return nil, ErrEvenModulus
	}

	m := new(Montgomery)
	m.n.Set(modulus)
	m.n.norm()
	m.nWords = m.n.used

	// R = 2^(32*rWords) with rWords = nWords. R > n holds because
	// the used count is minimal, so n < 2^(32*nWords).
	m.rWords = m.nWords
	if m.rWords >= MaxWords-redcHeadroom {
		return nil, ErrCapacity
	}
	m.r.words[m.rWords] = 1
	m.r.used = m.rWords + 1

	m.nPrime = montgomeryNPrime(m.n.words[0])
	if m.nPrime == 0 {
		// Verification failed: leave the context inactive so that
		// callers fall back to classical exponentiation.
		logger.Warnf("montgomery: n' verification failed, context disabled")
		return m, nil
	}

	// rSquared = (R mod n)^2 mod n.
	var rModN, sq Int
	if err := rModN.Mod(&m.r, &m.n); err != nil {
		return nil, err
	}
	if err := sq.Mul(&rModN, &rModN); err != nil {
		return nil, err
	}
	if err := m.rSquared.Mod(&sq, &m.n); err != nil {
		return nil, err
	}

	// rInv = R^(-1) mod n is needed only by the alternate exit path;
	// failing to compute it does not disable the context since
	// FromForm works via REDC alone.
	var rInv Int
	if err := rInv.ModInverse(&m.r, &m.n); err == nil {
		m.rInv.Set(&rInv)
		m.haveRInv = true
	} else {
		logger.Infof("montgomery: R^(-1) mod n unavailable: %s", err)
	}

	m.active = true
	logger.Debugf("montgomery: context ready: n_words=%d r_words=%d n'=%#08x",
		m.nWords, m.rWords, m.nPrime)
	return m, nil
}

// Active reports whether the context may be used for REDC
// operations.
func (m *Montgomery) Active() bool {
	return m != nil && m.active
}

// Modulus returns the modulus the context was built for. The caller
// must treat the value as read-only.
func (m *Montgomery) Modulus() *Int {
	return &m.n
}

// NWords returns the word count of the modulus.
func (m *Montgomery) NWords() int {
	return m.nWords
}

// RWords returns the word count of R.
func (m *Montgomery) RWords() int {
	return m.rWords
}

// NPrime returns the REDC multiplier -n^(-1) mod 2^32.
func (m *Montgomery) NPrime() uint32 {
	return m.nPrime
}

// RInv returns R^(-1) mod n and whether it is available.
func (m *Montgomery) RInv() (*Int, bool) {
	return &m.rInv, m.haveRInv
}

// wordInverse computes n^(-1) mod 2^32 for odd n with Newton's
// method: x <- x*(2 - n*x) converges quadratically from the odd seed
// x = n, so five iterations cover 32 bits. Returns 0 if n is even or
// the verification n*x == 1 fails.
func wordInverse(n uint32) uint32 {
	if n&1 == 0 {
		return 0
	}
	x := n
	for i := 0; i < 5; i++ {
		x *= 2 - n*x
	}
	if n*x != 1 {
		return 0
	}
	return x
}

// montgomeryNPrime computes n' = -n^(-1) mod 2^32 and verifies
// n*n' == 2^32-1. Returns 0 on any verification failure.
func montgomeryNPrime(n uint32) uint32 {
	inv := wordInverse(n)
	if inv == 0 {
		return 0
	}
	nPrime := ^inv + 1
	if n*nPrime != 0xFFFFFFFF {
		return 0
	}
	return nPrime
}

// Redc computes t*R^(-1) mod n with Montgomery reduction. The input
// must satisfy t < n*R; the result is in [0, n). For each low word
// of the accumulator a multiple of n is added to clear it, then the
// accumulator is shifted down by the width of R and reduced at most
// once.
func (m *Montgomery) Redc(t *Int) (*Int, error) {
	if t == nil {
		return nil, ErrNilOperand
	}
	if !m.Active() {
		return nil, ErrInactive
	}

	maxW := m.nWords*2 + redcHeadroom
	if maxW > MaxWords {
		maxW = MaxWords
	}
	var a Int
	a.Set(t)
	if err := a.ensureCapacity(maxW); err != nil {
		return nil, err
	}

	for i := 0; i < m.nWords; i++ {
		// mw clears accumulator word i: (a[i] + mw*n[0]) mod 2^32 == 0.
		mw := a.words[i] * m.nPrime

		var carry uint64
		for j := 0; j < m.nWords; j++ {
			pos := i + j
			if pos >= maxW {
				break
			}
			product := uint64(mw) * uint64(m.n.words[j])
			sum := uint64(a.words[pos]) + (product & 0xFFFFFFFF) + carry
			a.words[pos] = uint32(sum)
			carry = (sum >> wordBits) + (product >> wordBits)
		}
		for pos := i + m.nWords; carry != 0; pos++ {
			if pos >= maxW {
				return nil, ErrCapacity
			}
			sum := uint64(a.words[pos]) + carry
			a.words[pos] = uint32(sum)
			carry = sum >> wordBits
		}
	}

	// Divide by R: drop the low rWords words.
	var z Int
	a.norm()
	if a.used > m.nWords {
		z.used = a.used - m.nWords
		copy(z.words[:z.used], a.words[m.nWords:a.used])
	}
	z.norm()

	if !z.IsZero() && z.Cmp(&m.n) >= 0 {
		z.subIn(&m.n)
	}
	return &z, nil
}

// ToForm converts a into Montgomery form: a*R mod n, computed as
// REDC(a * R^2). Inputs at or above the modulus are reduced first.
func (m *Montgomery) ToForm(a *Int) (*Int, error) {
	if a == nil {
		return nil, ErrNilOperand
	}
	if !m.Active() {
		return nil, ErrInactive
	}
	var x Int
	x.Set(a)
	if x.Cmp(&m.n) >= 0 {
		if err := x.Mod(&x, &m.n); err != nil {
			return nil, err
		}
	}
	var t Int
	if err := t.Mul(&x, &m.rSquared); err != nil {
		return nil, err
	}
	return m.Redc(&t)
}

// FromForm converts a out of Montgomery form: a*R^(-1) mod n,
// computed as REDC(a). The conversion never needs R^(-1). Inputs at
// or above the modulus are reduced first.
func (m *Montgomery) FromForm(a *Int) (*Int, error) {
	if a == nil {
		return nil, ErrNilOperand
	}
	if !m.Active() {
		return nil, ErrInactive
	}
	var x Int
	x.Set(a)
	if x.Cmp(&m.n) >= 0 {
		if err := x.Mod(&x, &m.n); err != nil {
			return nil, err
		}
	}
	return m.Redc(&x)
}

// Mul multiplies two Montgomery-form values: REDC(a*b).
func (m *Montgomery) Mul(a, b *Int) (*Int, error) {
	if a == nil || b == nil {
		return nil, ErrNilOperand
	}
	if !m.Active() {
		return nil, ErrInactive
	}
	var t Int
	if err := t.Mul(a, b); err != nil {
		return nil, err
	}
	return m.Redc(&t)
}

// Square squares a Montgomery-form value.
func (m *Montgomery) Square(a *Int) (*Int, error) {
	return m.Mul(a, a)
}

// Exp computes base^exp mod n with left-to-right square-and-multiply
// in the Montgomery domain. A zero exponent yields 1 and a zero base
// yields 0, independent of the Montgomery form.
func (m *Montgomery) Exp(base, exp *Int) (*Int, error) {
	if base == nil || exp == nil {
		return nil, ErrNilOperand
	}
	if !m.Active() {
		return nil, ErrInactive
	}
	if exp.IsZero() {
		return NewInt(1), nil
	}
	if base.IsZero() {
		return new(Int), nil
	}

	baseM, err := m.ToForm(base)
	if err != nil {
		return nil, err
	}
	acc, err := m.ToForm(NewInt(1))
	if err != nil {
		return nil, err
	}

	ebits := exp.BitLen()
	for i := ebits - 1; i >= 0; i-- {
		if i < ebits-1 {
			acc, err = m.Square(acc)
			if err != nil {
				return nil, err
			}
		}
		if exp.Bit(i) != 0 {
			acc, err = m.Mul(acc, baseM)
			if err != nil {
				return nil, err
			}
		}
	}
	return m.FromForm(acc)
}
