//
// verify.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"

	"github.com/markkurossi/rsa4096/rsa"
)

// verifySuite is a known-answer key pair with its expected
// ciphertexts.
type verifySuite struct {
	name    string
	n       string
	e       string
	d       string
	vectors []verifyVector
}

type verifyVector struct {
	plain  string
	cipher string
}

var verifySuites = []verifySuite{
	{
		name: "n=35",
		n:    "35",
		e:    "5",
		d:    "5",
		vectors: []verifyVector{
			{"2", "20"},
			{"3", "21"},
			{"4", "9"},
		},
	},
	{
		name: "n=143",
		n:    "143",
		e:    "7",
		d:    "103",
		vectors: []verifyVector{
			{"2", "80"},
			{"42", "51"},
			{"99", "2c"},
		},
	},
	{
		name: "n=3233",
		n:    "3233",
		e:    "17",
		d:    "413",
		vectors: []verifyVector{
			{"65", "ae6"},
			{"123", "357"},
		},
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the built-in known-answer vectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		tab := tabulate.New(tabulate.UnicodeLight)
		tab.Header("Suite").SetAlign(tabulate.ML)
		tab.Header("Message").SetAlign(tabulate.MR)
		tab.Header("Cipher").SetAlign(tabulate.MR)
		tab.Header("Recovered").SetAlign(tabulate.MR)
		tab.Header("Status").SetAlign(tabulate.MC)

		failed := 0
		for _, suite := range verifySuites {
			pub, err := rsa.LoadKey(suite.n, suite.e, false)
			if err != nil {
				return err
			}
			priv, err := rsa.LoadKey(suite.n, suite.d, true)
			if err != nil {
				return err
			}
			for _, vec := range suite.vectors {
				cipher, err := pub.Encrypt(vec.plain)
				if err != nil {
					return err
				}
				recovered, err := priv.Decrypt(cipher)
				if err != nil {
					return err
				}
				ok := cipher == vec.cipher && recovered == vec.plain

				row := tab.Row()
				row.Column(suite.name)
				row.Column(vec.plain)
				row.Column(cipher)
				row.Column(recovered)
				if ok {
					row.Column("ok")
				} else {
					row.Column("FAIL")
					failed++
				}
			}
		}
		tab.Print(os.Stdout)
		if failed > 0 {
			return fmt.Errorf("%d vector(s) failed", failed)
		}
		return nil
	},
}
