//
// div_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"math/big"
	"testing"
)

var quoRemTests = []struct {
	x string
	y string
}{
	{"0", "7"},
	{"6", "7"},
	{"7", "7"},
	{"100", "7"},
	{"18446744073709551616", "4294967296"},
	{"987654321098765432109876543210", "123456789012345678901234567890"},
	{"1", "340282366920938463463374607431768211455"},
}

func TestQuoRem(t *testing.T) {
	for idx, test := range quoRemTests {
		var x, y, q, r Int
		if err := x.SetDecimal(test.x); err != nil {
			t.Fatalf("SetDecimal: %s", err)
		}
		if err := y.SetDecimal(test.y); err != nil {
			t.Fatalf("SetDecimal: %s", err)
		}
		if err := q.QuoRem(&x, &y, &r); err != nil {
			t.Fatalf("QuoRem: %s", err)
		}
		// Cross-check against math/big instead of trusting the
		// table: the identity x = q*y + r must hold exactly.
		eq, er := new(big.Int).QuoRem(toBig(&x), toBig(&y), new(big.Int))
		if toBig(&q).Cmp(eq) != 0 || toBig(&r).Cmp(er) != 0 {
			t.Errorf("TestQuoRem-%d: %s/%s: got q=%s r=%s, expected q=%s r=%s",
				idx, test.x, test.y, q.String(), r.String(),
				eq.String(), er.String())
		}
	}
}

func TestQuoRemRandomVsBig(t *testing.T) {
	stream := testStream(t)
	for i := 0; i < 100; i++ {
		x := randInt(t, stream, 1+i%40)
		y := randInt(t, stream, 1+(i*3)%20)
		if y.IsZero() {
			continue
		}
		var q, r Int
		if err := q.QuoRem(x, y, &r); err != nil {
			t.Fatalf("QuoRem: %s", err)
		}

		// Identity x == q*y + r, 0 <= r < y.
		if r.Cmp(y) >= 0 {
			t.Fatalf("remainder not below divisor: %s >= %s",
				r.String(), y.String())
		}
		var prod, sum Int
		if err := prod.Mul(&q, y); err != nil {
			t.Fatalf("Mul: %s", err)
		}
		if err := sum.Add(&prod, &r); err != nil {
			t.Fatalf("Add: %s", err)
		}
		if sum.Cmp(x) != 0 {
			t.Errorf("q*y+r != x: %s != %s", sum.String(), x.String())
		}
	}
}

func TestDivByZero(t *testing.T) {
	var q, r Int
	if err := q.QuoRem(NewInt(42), new(Int), &r); err != ErrDivByZero {
		t.Errorf("QuoRem by zero: %v, expected ErrDivByZero", err)
	}
	if err := r.Mod(NewInt(42), new(Int)); err != ErrDivByZero {
		t.Errorf("Mod by zero: %v, expected ErrDivByZero", err)
	}
}

func TestModAliasing(t *testing.T) {
	var a, m Int
	if err := a.SetDecimal("123456789012345678901234567890"); err != nil {
		t.Fatalf("SetDecimal: %s", err)
	}
	if err := m.SetDecimal("97"); err != nil {
		t.Fatalf("SetDecimal: %s", err)
	}
	var expected Int
	if err := expected.Mod(&a, &m); err != nil {
		t.Fatalf("Mod: %s", err)
	}
	if err := a.Mod(&a, &m); err != nil {
		t.Fatalf("Mod aliased: %s", err)
	}
	if a.Cmp(&expected) != 0 {
		t.Errorf("aliased Mod: got %s, expected %s",
			a.String(), expected.String())
	}
}
