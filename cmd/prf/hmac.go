package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhahn/go-prf/pkg/digest"
	"github.com/jhahn/go-prf/pkg/hmac"
)

type hmacOptions struct {
	key       string
	message   string
	algorithm string
	traced    bool
}

var hmacOpts hmacOptions

var hmacCmd = &cobra.Command{
	Use:   "hmac",
	Short: "Compute an RFC 2104 message authentication code",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHMAC(cmd, hmacOpts)
	},
}

func init() {
	rootCmd.AddCommand(hmacCmd)
	hmacCmd.Flags().StringVar(&hmacOpts.key, "key", "", "key, hex encoded (empty key is legal)")
	hmacCmd.Flags().StringVar(&hmacOpts.message, "message", "", "message to authenticate")
	hmacCmd.Flags().StringVar(&hmacOpts.algorithm, "alg", "SHA1", "digest algorithm: "+strings.Join(digest.Algorithms(), ", "))
	hmacCmd.Flags().BoolVar(&hmacOpts.traced, "trace", false, "narrate intermediate values on stderr")
}

func runHMAC(cmd *cobra.Command, opts hmacOptions) error {
	key, err := hex.DecodeString(opts.key)
	if err != nil {
		return fmt.Errorf("decode hex key: %w", err)
	}
	if opts.message == "" {
		return errors.New("--message is required")
	}
	alg, err := digest.FromName(opts.algorithm)
	if err != nil {
		return err
	}
	var sum []byte
	if opts.traced {
		sum = hmac.SumTrace(alg, key, []byte(opts.message), newTracer(cmd))
	} else {
		sum = hmac.Sum(alg, key, []byte(opts.message))
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sum))
	return nil
}
