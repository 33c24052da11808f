//
// bench.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"time"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
	"github.com/spf13/cobra"

	"github.com/markkurossi/rsa4096/bigint"
	"github.com/markkurossi/rsa4096/rsa"
)

var (
	flagBenchRounds int
	flagBenchExp    int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark classical vs Montgomery exponentiation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(flagBenchRounds, uint32(flagBenchExp))
	},
}

func init() {
	benchCmd.Flags().IntVarP(&flagBenchRounds, "rounds", "r", 10,
		"exponentiations per measurement")
	benchCmd.Flags().IntVar(&flagBenchExp, "exp", 65537,
		"public exponent")
}

var benchBits = []int{256, 512, 1024, 2048}

func runBench(rounds int, exp uint32) error {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Operation").SetAlign(tabulate.ML)
	tab.Header("Classical").SetAlign(tabulate.MR)
	tab.Header("Montgomery").SetAlign(tabulate.MR)
	tab.Header("Speedup").SetAlign(tabulate.MR)

	e := bigint.NewInt(exp)
	for _, bits := range benchBits {
		n, err := randomOddModulus(bits)
		if err != nil {
			return err
		}
		base, err := randomBelow(n)
		if err != nil {
			return err
		}

		classical := benchPath(base, e, n, nil, rounds)

		mont, err := bigint.NewMontgomery(n)
		if err != nil {
			return err
		}
		montTime := benchPath(base, e, n, mont, rounds)

		row := tab.Row()
		row.Column(fmt.Sprintf("%d-bit b%s mod n", bits,
			superscript.Itoa(int(exp))))
		row.Column(classical.String())
		row.Column(montTime.String())
		row.Column(fmt.Sprintf("%.2fx",
			float64(classical)/float64(montTime)))
	}
	tab.Print(os.Stdout)
	return nil
}

// benchPath measures the average time of one modular exponentiation
// over the given path. A nil Montgomery context selects the classical
// method.
func benchPath(base, exp, n *bigint.Int, mont *bigint.Montgomery,
	rounds int) time.Duration {

	start := time.Now()
	for i := 0; i < rounds; i++ {
		if _, err := rsa.ModExp(base, exp, n, mont); err != nil {
			// Benchmark data is random; an arithmetic failure here is
			// a bug worth crashing on.
			panic(err)
		}
	}
	return time.Since(start) / time.Duration(rounds)
}

// randomOddModulus draws a random odd value with the exact bit count.
// The benchmark needs realistic word counts, not primality.
func randomOddModulus(bits int) (*bigint.Int, error) {
	buf := make([]byte, bits/8)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	buf[0] |= 0x80
	buf[len(buf)-1] |= 1
	n := new(bigint.Int)
	if err := n.SetBytes(buf); err != nil {
		return nil, err
	}
	return n, nil
}

func randomBelow(n *bigint.Int) (*bigint.Int, error) {
	buf := make([]byte, len(n.Bytes()))
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	b := new(bigint.Int)
	if err := b.SetBytes(buf); err != nil {
		return nil, err
	}
	if b.Cmp(n) >= 0 {
		if err := b.Mod(b, n); err != nil {
			return nil, err
		}
	}
	return b, nil
}
