//
// codec.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"fmt"
	"strings"
)

// SetDecimal parses the base-10 digit string s into z. Non-digit
// characters are skipped; the empty string parses to zero. It fails
// with ErrCapacity if the value does not fit in MaxWords words.
func (z *Int) SetDecimal(s string) error {
	var r Int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		if err := r.MulAddWord(&r, 10, uint32(c-'0')); err != nil {
			return err
		}
	}
	*z = r
	return nil
}

// String returns the base-10 representation of x.
func (x *Int) String() string {
	if x.IsZero() {
		return "0"
	}
	// Peel 9 decimal digits per division to keep the conversion
	// word-count proportional.
	var tmp Int
	tmp.Set(x)
	var chunks []uint32
	for !tmp.IsZero() {
		chunks = append(chunks, tmp.divWordIn(1000000000))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", chunks[len(chunks)-1])
	for i := len(chunks) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%09d", chunks[i])
	}
	return sb.String()
}

// SetHex parses the base-16 digit string s into z. Both upper and
// lower case digits are accepted; other characters are skipped, so
// embedded whitespace is harmless. It fails with ErrCapacity if the
// value does not fit.
func (z *Int) SetHex(s string) error {
	var r Int
	for i := 0; i < len(s); i++ {
		c := s[i]
		var digit uint32
		switch {
		case c >= '0' && c <= '9':
			digit = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			digit = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			digit = uint32(c-'A') + 10
		default:
			continue
		}
		if err := r.MulAddWord(&r, 16, digit); err != nil {
			return err
		}
	}
	*z = r
	return nil
}

// Hex returns the lowercase base-16 representation of x without a
// leading "0x".
func (x *Int) Hex() string {
	if x.IsZero() {
		return "0"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%x", x.words[x.used-1])
	for i := x.used - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08x", x.words[i])
	}
	return sb.String()
}

// SetBytes sets z from the big-endian byte buffer data. It fails
// with ErrCapacity if the buffer holds more than MaxWords words.
func (z *Int) SetBytes(data []byte) error {
	if (len(data)+3)/4 > MaxWords {
		return ErrCapacity
	}
	var r Int
	for i := 0; i < len(data); i++ {
		idx := len(data) - 1 - i
		r.words[idx/4] |= uint32(data[i]) << uint(idx%4*8)
	}
	r.used = (len(data) + 3) / 4
	r.norm()
	*z = r
	return nil
}

// Bytes returns the big-endian byte representation of x, trimmed to
// the minimal encoding. Zero encodes as a single zero byte.
func (x *Int) Bytes() []byte {
	byteLen := (x.BitLen() + 7) / 8
	if byteLen == 0 {
		byteLen = 1
	}
	data := make([]byte, byteLen)
	x.fillBytes(data)
	return data
}

// FillBytes writes the big-endian representation of x into buf,
// zero-padded on the left. It fails with ErrCapacity if buf is too
// small to hold the value.
func (x *Int) FillBytes(buf []byte) error {
	byteLen := (x.BitLen() + 7) / 8
	if byteLen > len(buf) {
		return ErrCapacity
	}
	x.fillBytes(buf)
	return nil
}

func (x *Int) fillBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	for i := 0; i < len(buf); i++ {
		idx := len(buf) - 1 - i
		if idx/4 < x.used {
			buf[i] = byte(x.words[idx/4] >> uint(idx%4*8))
		}
	}
}
