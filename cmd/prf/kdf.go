package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhahn/go-prf/pkg/digest"
	"github.com/jhahn/go-prf/pkg/pbkdf2"
)

type kdfOptions struct {
	password   string
	salt       string
	iterations int
	length     int
	algorithm  string
	parallel   int
	traced     bool
}

var kdfOpts kdfOptions

var kdfCmd = &cobra.Command{
	Use:   "kdf",
	Short: "Derive a key with RFC 2898 PBKDF2",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKDF(cmd, kdfOpts)
	},
}

func init() {
	rootCmd.AddCommand(kdfCmd)
	kdfCmd.Flags().StringVar(&kdfOpts.password, "password", "", "password (required)")
	kdfCmd.Flags().StringVar(&kdfOpts.salt, "salt", "", "salt (required)")
	kdfCmd.Flags().IntVar(&kdfOpts.iterations, "iterations", 600000, "PRF iteration count per block")
	kdfCmd.Flags().IntVar(&kdfOpts.length, "length", 32, "derived key length in bytes")
	kdfCmd.Flags().StringVar(&kdfOpts.algorithm, "alg", "SHA1", "digest algorithm: "+strings.Join(digest.Algorithms(), ", "))
	kdfCmd.Flags().IntVar(&kdfOpts.parallel, "parallel", 1, "worker goroutines for independent blocks")
	kdfCmd.Flags().BoolVar(&kdfOpts.traced, "trace", false, "narrate intermediate values on stderr")
}

func runKDF(cmd *cobra.Command, opts kdfOptions) error {
	if opts.password == "" {
		return errors.New("--password is required")
	}
	if opts.salt == "" {
		return errors.New("--salt is required")
	}
	alg, err := digest.FromName(opts.algorithm)
	if err != nil {
		return err
	}
	deriveOpts := pbkdf2.Opts{
		Algorithm:   alg,
		Parallelism: opts.parallel,
	}
	if opts.traced {
		deriveOpts.Trace = newTracer(cmd)
	}
	dk, err := pbkdf2.KeyCustom([]byte(opts.password), []byte(opts.salt), opts.iterations, opts.length, deriveOpts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(dk))
	return nil
}
