//
// rand_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"math/big"
	"testing"

	"golang.org/x/crypto/chacha20"
)

// testStream returns a deterministic pseudorandom byte stream for
// property tests.
func testStream(t *testing.T) *chacha20.Cipher {
	t.Helper()
	key := make([]byte, chacha20.KeySize)
	nonce := make([]byte, chacha20.NonceSize)
	copy(key, []byte(t.Name()))
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		t.Fatalf("chacha20.NewUnauthenticatedCipher: %s", err)
	}
	return c
}

// randInt draws a pseudorandom value of at most words words from the
// stream.
func randInt(t *testing.T, c *chacha20.Cipher, words int) *Int {
	t.Helper()
	buf := make([]byte, words*4)
	c.XORKeyStream(buf, buf)
	z := new(Int)
	if err := z.SetBytes(buf); err != nil {
		t.Fatalf("SetBytes: %s", err)
	}
	return z
}

// randOdd draws a pseudorandom odd value of exactly words words.
func randOdd(t *testing.T, c *chacha20.Cipher, words int) *Int {
	t.Helper()
	z := randInt(t, c, words)
	z.words[0] |= 1
	if z.used < words {
		z.words[words-1] |= 1 << 31
		z.used = words
	}
	return z
}

func toBig(x *Int) *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

func fromBig(t *testing.T, x *big.Int) *Int {
	t.Helper()
	z := new(Int)
	if err := z.SetBytes(x.Bytes()); err != nil {
		t.Fatalf("SetBytes: %s", err)
	}
	return z
}
