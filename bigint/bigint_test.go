//
// bigint_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"testing"
)

func TestZeroForms(t *testing.T) {
	var a Int
	if !a.IsZero() {
		t.Errorf("zero value is not zero")
	}

	// Single zero word form must be equivalent.
	var b Int
	b.words[0] = 0
	b.used = 1
	if !b.IsZero() {
		t.Errorf("single zero word form is not zero")
	}

	if NewInt(0).used != 0 {
		t.Errorf("NewInt(0) not canonical")
	}
}

func TestSetUint32(t *testing.T) {
	a := NewInt(0xdeadbeef)
	if a.used != 1 || a.words[0] != 0xdeadbeef {
		t.Errorf("NewInt: used=%d words[0]=%#x", a.used, a.words[0])
	}
	if a.Uint32() != 0xdeadbeef {
		t.Errorf("Uint32: %#x", a.Uint32())
	}
}

func TestSetIsCopy(t *testing.T) {
	a := NewInt(42)
	b := new(Int).Set(a)
	a.SetUint32(7)
	if b.Uint32() != 42 {
		t.Errorf("Set shares state with source")
	}
}

var cmpTests = []struct {
	a string
	b string
	r int
}{
	{"0", "0", 0},
	{"0", "1", -1},
	{"1", "0", 1},
	{"12345678901234567890", "12345678901234567890", 0},
	{"12345678901234567890", "12345678901234567891", -1},
	{"4294967296", "4294967295", 1},
	{"18446744073709551616", "4294967296", 1},
}

func TestCmp(t *testing.T) {
	for idx, test := range cmpTests {
		var a, b Int
		if err := a.SetDecimal(test.a); err != nil {
			t.Fatalf("SetDecimal: %s", err)
		}
		if err := b.SetDecimal(test.b); err != nil {
			t.Fatalf("SetDecimal: %s", err)
		}
		if r := a.Cmp(&b); r != test.r {
			t.Errorf("TestCmp-%d: Cmp(%s,%s)=%d, expected %d",
				idx, test.a, test.b, r, test.r)
		}
	}
}

func TestIsOne(t *testing.T) {
	if !NewInt(1).IsOne() {
		t.Errorf("1 is not one")
	}
	if NewInt(2).IsOne() || NewInt(0).IsOne() {
		t.Errorf("false positive IsOne")
	}
}

var decimalTests = []string{
	"0",
	"1",
	"9",
	"10",
	"4294967295",
	"4294967296",
	"123456789012345678901234567890",
	"340282366920938463463374607431768211455",
	"340282366920938463463374607431768211456",
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, test := range decimalTests {
		var a Int
		if err := a.SetDecimal(test); err != nil {
			t.Fatalf("SetDecimal(%q): %s", test, err)
		}
		if s := a.String(); s != test {
			t.Errorf("decimal round-trip: got %q, expected %q", s, test)
		}
	}
}

func TestDecimalSkipsNonDigits(t *testing.T) {
	var a, b Int
	if err := a.SetDecimal(" 1_234-567 "); err != nil {
		t.Fatalf("SetDecimal: %s", err)
	}
	if err := b.SetDecimal("1234567"); err != nil {
		t.Fatalf("SetDecimal: %s", err)
	}
	if a.Cmp(&b) != 0 {
		t.Errorf("non-digit skip: got %s, expected %s", a.String(), b.String())
	}
}

var hexTests = []struct {
	in  string
	out string
}{
	{"0", "0"},
	{"1", "1"},
	{"ff", "ff"},
	{"FF", "ff"},
	{"deadbeef", "deadbeef"},
	{"100000000", "100000000"},
	{"ffffffffffffffffffffffffffffffff", "ffffffffffffffffffffffffffffffff"},
}

func TestHexRoundTrip(t *testing.T) {
	for _, test := range hexTests {
		var a Int
		if err := a.SetHex(test.in); err != nil {
			t.Fatalf("SetHex(%q): %s", test.in, err)
		}
		if s := a.Hex(); s != test.out {
			t.Errorf("hex round-trip: got %q, expected %q", s, test.out)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	stream := testStream(t)
	for i := 0; i < 100; i++ {
		a := randInt(t, stream, 1+i%40)
		var b Int
		if err := b.SetBytes(a.Bytes()); err != nil {
			t.Fatalf("SetBytes: %s", err)
		}
		if a.Cmp(&b) != 0 {
			t.Errorf("bytes round-trip: got %s, expected %s",
				b.String(), a.String())
		}
	}
}

func TestBytesZero(t *testing.T) {
	data := new(Int).Bytes()
	if len(data) != 1 || data[0] != 0 {
		t.Errorf("zero encodes as %x", data)
	}
}

func TestFillBytes(t *testing.T) {
	var a Int
	if err := a.SetHex("010203"); err != nil {
		t.Fatalf("SetHex: %s", err)
	}
	buf := make([]byte, 5)
	if err := a.FillBytes(buf); err != nil {
		t.Fatalf("FillBytes: %s", err)
	}
	expected := []byte{0, 0, 1, 2, 3}
	for i, b := range expected {
		if buf[i] != b {
			t.Errorf("FillBytes: got %x, expected %x", buf, expected)
			break
		}
	}

	small := make([]byte, 2)
	if err := a.FillBytes(small); err != ErrCapacity {
		t.Errorf("FillBytes into short buffer: %v, expected ErrCapacity", err)
	}
}

func TestSetBytesTooLarge(t *testing.T) {
	var a Int
	if err := a.SetBytes(make([]byte, MaxWords*4+1)); err != ErrCapacity {
		t.Errorf("SetBytes overflow: %v, expected ErrCapacity", err)
	}
}

func TestDecimalVsBig(t *testing.T) {
	stream := testStream(t)
	for i := 0; i < 20; i++ {
		a := randInt(t, stream, 1+i*3)
		if a.String() != toBig(a).String() {
			t.Errorf("decimal mismatch with math/big: %s vs %s",
				a.String(), toBig(a).String())
		}
		if a.Hex() != toBig(a).Text(16) {
			t.Errorf("hex mismatch with math/big: %s vs %s",
				a.Hex(), toBig(a).Text(16))
		}
	}
}
