//
// rsa.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rsa

import (
	"github.com/markkurossi/rsa4096/bigint"
	"github.com/pkg/errors"
)

// Encrypt computes message^e mod n for a decimal message string and
// returns the ciphertext as a lowercase hex string. The message
// representative must be below the modulus; zero encrypts to zero.
func (k *Key) Encrypt(messageDecimal string) (string, error) {
	var m bigint.Int
	if err := m.SetDecimal(messageDecimal); err != nil {
		return "", errors.Wrap(err, "parsing message")
	}
	c, err := k.apply(&m)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Decrypt computes ciphertext^d mod n for a hex ciphertext string
// and returns the message as a decimal string. It requires a private
// key; the ciphertext representative must be below the modulus.
func (k *Key) Decrypt(cipherHex string) (string, error) {
	if !k.Private {
		return "", ErrNotPrivate
	}
	var c bigint.Int
	if err := c.SetHex(cipherHex); err != nil {
		return "", errors.Wrap(err, "parsing ciphertext")
	}
	m, err := k.apply(&c)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// EncryptBinary computes message^e mod n over a big-endian message
// buffer and returns the ciphertext in minimal big-endian encoding.
// When the modulus is at most 8 bits, only the first input byte is
// processed since any longer input cannot satisfy message < n.
func (k *Key) EncryptBinary(message []byte) ([]byte, error) {
	if len(message) == 0 {
		return nil, errors.New("rsa: empty message")
	}
	if k.N.BitLen() <= 8 && len(message) > 1 {
		logger.Warnf("rsa: %d-bit modulus, clamping %d-byte message to 1 byte",
			k.N.BitLen(), len(message))
		message = message[:1]
	}
	var m bigint.Int
	if err := m.SetBytes(message); err != nil {
		return nil, errors.Wrap(err, "parsing message")
	}
	c, err := k.apply(&m)
	if err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

// DecryptBinary computes ciphertext^d mod n over a big-endian
// ciphertext buffer. It requires a private key.
func (k *Key) DecryptBinary(cipher []byte) ([]byte, error) {
	if !k.Private {
		return nil, ErrNotPrivate
	}
	if len(cipher) == 0 {
		return nil, errors.New("rsa: empty ciphertext")
	}
	var c bigint.Int
	if err := c.SetBytes(cipher); err != nil {
		return nil, errors.Wrap(err, "parsing ciphertext")
	}
	m, err := k.apply(&c)
	if err != nil {
		return nil, err
	}
	return m.Bytes(), nil
}

// apply runs the RSA core operation input^exponent mod n with the
// textbook domain check input < n. Zero maps to zero without
// exponentiation.
func (k *Key) apply(input *bigint.Int) (*bigint.Int, error) {
	if input.Cmp(k.N) >= 0 {
		return nil, ErrInputTooLarge
	}
	if input.IsZero() {
		return new(bigint.Int), nil
	}
	return ModExp(input, k.Exponent, k.N, k.Mont)
}
