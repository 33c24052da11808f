//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command rsa4096 is a workbench for the textbook RSA implementation:
// encrypt and decrypt with explicit keys, run the built-in
// verification vectors, benchmark the classical and Montgomery
// exponentiation paths, and drive the arithmetic interactively.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/markkurossi/rsa4096/bigint"
	"github.com/markkurossi/rsa4096/rsa"
)

var (
	flagVerbose bool
	flagDebug   bool
)

var mainCmd = &cobra.Command{
	Use:   "rsa4096",
	Short: "Textbook RSA workbench",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func initLogging() error {
	if !flagVerbose && !flagDebug {
		return nil
	}
	cfg := zap.NewDevelopmentConfig()
	if !flagDebug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return err
	}
	sugar := log.Sugar()
	bigint.SetLogger(sugar)
	rsa.SetLogger(sugar)
	return nil
}

func main() {
	flags := mainCmd.PersistentFlags()
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&flagDebug, "debug", "d", false, "debug output")

	mainCmd.AddCommand(encryptCmd)
	mainCmd.AddCommand(decryptCmd)
	mainCmd.AddCommand(keyinfoCmd)
	mainCmd.AddCommand(verifyCmd)
	mainCmd.AddCommand(benchCmd)
	mainCmd.AddCommand(manualCmd)

	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}
