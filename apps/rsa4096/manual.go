//
// manual.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/markkurossi/rsa4096/rsa"
)

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Interactive key entry and encryption",
	Long: `Manual prompts for a modulus and exponent on stdin and then
encrypts or decrypts values until EOF. Decimal input and output for
messages, hex for ciphertexts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runManual(os.Stdin)
	},
}

func runManual(in *os.File) error {
	reader := bufio.NewScanner(in)
	prompt := func(label string) (string, bool) {
		fmt.Printf("%s> ", label)
		if !reader.Scan() {
			return "", false
		}
		return strings.TrimSpace(reader.Text()), true
	}

	n, ok := prompt("modulus (decimal)")
	if !ok {
		return reader.Err()
	}
	e, ok := prompt("exponent (decimal)")
	if !ok {
		return reader.Err()
	}
	// The exponent role is the operator's call: the same key drives
	// both directions.
	key, err := rsa.LoadKey(n, e, true)
	if err != nil {
		return err
	}
	fmt.Printf("loaded %d-bit key\n", key.N.BitLen())

	for {
		op, ok := prompt("op (e=encrypt, d=decrypt, q=quit)")
		if !ok {
			return reader.Err()
		}
		switch op {
		case "e":
			msg, ok := prompt("message (decimal)")
			if !ok {
				return reader.Err()
			}
			cipher, err := key.Encrypt(msg)
			if err != nil {
				fmt.Printf("error: %s\n", err)
				continue
			}
			fmt.Printf("cipher: %s\n", cipher)

		case "d":
			cipher, ok := prompt("cipher (hex)")
			if !ok {
				return reader.Err()
			}
			msg, err := key.Decrypt(cipher)
			if err != nil {
				fmt.Printf("error: %s\n", err)
				continue
			}
			fmt.Printf("message: %s\n", msg)

		case "q":
			return nil

		default:
			fmt.Printf("unknown op %q\n", op)
		}
	}
}
