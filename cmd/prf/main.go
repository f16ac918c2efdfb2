// Command prf exercises the go-prf primitives from the command line. It owns
// the concerns the library deliberately leaves to callers: decoding
// provisioning secrets (base32/hex) and narrating intermediate values.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhahn/go-prf/pkg/trace"
)

var rootCmd = &cobra.Command{
	Use:   "prf",
	Short: "HMAC, HOTP and PBKDF2 primitives",
	Long: `prf computes HMAC message authentication codes, RFC 4226 one-time
passwords and RFC 2898 derived keys using the go-prf first-principles
implementations.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Usage()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "prf: %v\n", err)
		os.Exit(1)
	}
}

// newTracer returns a recorder that narrates each step to the command's
// stderr stream, keeping stdout clean for the result.
func newTracer(cmd *cobra.Command) trace.Recorder {
	return trace.RecorderFunc(func(step string, value []byte) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%-16s %x\n", step, value)
	})
}
