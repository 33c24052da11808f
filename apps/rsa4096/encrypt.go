//
// encrypt.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markkurossi/rsa4096/rsa"
)

var (
	flagModulus  string
	flagExponent string
	flagBinary   bool
)

func keyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagModulus, "modulus", "n", "",
		"modulus as a decimal string")
	cmd.Flags().StringVarP(&flagExponent, "exponent", "e", "",
		"exponent as a decimal string")
	cmd.MarkFlagRequired("modulus")
	cmd.MarkFlagRequired("exponent")
}

func binaryFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&flagBinary, "binary", "b", false,
		"treat input and output as hex-encoded byte strings")
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt message",
	Short: "Encrypt a message with a public key",
	Long: `Encrypt computes message^e mod n. The message is a decimal
string, or a hex byte string with --binary. The message representative
must be less than the modulus; no padding is applied.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := rsa.LoadKey(flagModulus, flagExponent, false)
		if err != nil {
			return err
		}
		if flagBinary {
			msg, err := hex.DecodeString(args[0])
			if err != nil {
				return err
			}
			cipher, err := key.EncryptBinary(msg)
			if err != nil {
				return err
			}
			fmt.Printf("%x\n", cipher)
			return nil
		}
		cipher, err := key.Encrypt(args[0])
		if err != nil {
			return err
		}
		fmt.Println(cipher)
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt ciphertext",
	Short: "Decrypt a ciphertext with a private key",
	Long: `Decrypt computes ciphertext^d mod n. The ciphertext is a hex
string; the output is a decimal string, or hex bytes with --binary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := rsa.LoadKey(flagModulus, flagExponent, true)
		if err != nil {
			return err
		}
		if flagBinary {
			cipher, err := hex.DecodeString(args[0])
			if err != nil {
				return err
			}
			msg, err := key.DecryptBinary(cipher)
			if err != nil {
				return err
			}
			fmt.Printf("%x\n", msg)
			return nil
		}
		msg, err := key.Decrypt(args[0])
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

var keyinfoCmd = &cobra.Command{
	Use:   "keyinfo",
	Short: "Print key parameters and the exponentiation path",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := rsa.LoadKey(flagModulus, flagExponent, false)
		if err != nil {
			return err
		}
		fmt.Printf("modulus bits : %d\n", key.N.BitLen())
		fmt.Printf("modulus bytes: %d\n", key.Size())
		fmt.Printf("exponent bits: %d\n", key.Exponent.BitLen())
		if key.Mont.Active() {
			fmt.Printf("montgomery   : active, n'=%#08x, R=2^%d\n",
				key.Mont.NPrime(), key.Mont.RWords()*32)
			if _, ok := key.Mont.RInv(); ok {
				fmt.Printf("r_inverse    : available\n")
			} else {
				fmt.Printf("r_inverse    : unavailable\n")
			}
		} else {
			fmt.Printf("montgomery   : inactive, classical path only\n")
		}
		return nil
	},
}

func init() {
	keyFlags(encryptCmd)
	keyFlags(decryptCmd)
	keyFlags(keyinfoCmd)
	binaryFlag(encryptCmd)
	binaryFlag(decryptCmd)
}
