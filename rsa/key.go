//
// key.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package rsa implements textbook (unpadded) RSA on top of the
// fixed-capacity bigint package. The exponentiation dispatches
// between Montgomery REDC and classical modular exponentiation with
// a deterministic selection policy.
//
// This is raw RSA: no padding scheme (PKCS #1, OAEP), no key
// generation, and no constant-time guarantees. The message and
// ciphertext representatives are plain residues modulo n.
package rsa

import (
	"github.com/markkurossi/rsa4096/bigint"
	"github.com/markkurossi/rsa4096/trace"
	"github.com/pkg/errors"
)

// Errors returned by the RSA operations.
var (
	ErrZeroModulus   = errors.New("rsa: modulus is zero")
	ErrZeroExponent  = errors.New("rsa: exponent is zero")
	ErrInputTooLarge = errors.New("rsa: input must be less than modulus")
	ErrNotPrivate    = errors.New("rsa: operation requires a private key")
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

// Key is an RSA key: the modulus, one exponent (public e or private
// d), and an optional Montgomery context. The context is present iff
// the modulus is odd and context construction succeeded; without it
// all operations fall back to classical exponentiation. A Key is
// immutable after loading and safe for concurrent readers.
type Key struct {
	N        *bigint.Int
	Exponent *bigint.Int
	Mont     *bigint.Montgomery
	Private  bool
}

// LoadKey parses an RSA key from decimal modulus and exponent
// strings. Zero modulus or exponent is rejected. If the modulus is
// odd, a Montgomery context is attached; a context construction
// failure is not fatal, the key just runs classical.
func LoadKey(nDecimal, expDecimal string, private bool) (*Key, error) {
	n := new(bigint.Int)
	if err := n.SetDecimal(nDecimal); err != nil {
		return nil, errors.Wrap(err, "parsing modulus")
	}
	e := new(bigint.Int)
	if err := e.SetDecimal(expDecimal); err != nil {
		return nil, errors.Wrap(err, "parsing exponent")
	}
	return newKey(n, e, private)
}

// LoadKeyBinary parses an RSA key from big-endian modulus and
// exponent buffers.
func LoadKeyBinary(nData, expData []byte, private bool) (*Key, error) {
	if len(nData) == 0 || len(expData) == 0 {
		return nil, ErrZeroModulus
	}
	n := new(bigint.Int)
	if err := n.SetBytes(nData); err != nil {
		return nil, errors.Wrap(err, "parsing modulus")
	}
	e := new(bigint.Int)
	if err := e.SetBytes(expData); err != nil {
		return nil, errors.Wrap(err, "parsing exponent")
	}
	return newKey(n, e, private)
}

func newKey(n, e *bigint.Int, private bool) (*Key, error) {
	if n.IsZero() {
		return nil, ErrZeroModulus
	}
	if e.IsZero() {
		return nil, ErrZeroExponent
	}
	key := &Key{
		N:        n,
		Exponent: e,
		Private:  private,
	}
	if n.Bit(0) == 1 {
		mont, err := bigint.NewMontgomery(n)
		if err != nil {
			// Montgomery is an optimization; the key stays usable.
			logger.Infof("rsa: montgomery context unavailable: %s", err)
		} else if mont.Active() {
			key.Mont = mont
		}
	} else {
		logger.Infof("rsa: even modulus, montgomery disabled")
	}
	logger.Debugf("rsa: loaded %d-bit %s key", n.BitLen(), keyRole(private))
	return key, nil
}

func keyRole(private bool) string {
	if private {
		return "private"
	}
	return "public"
}

// Size returns the modulus size in bytes.
func (k *Key) Size() int {
	return (k.N.BitLen() + 7) / 8
}
