// Package cli provides the command-line interface for ArixEncryptor.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arisohandriputra/ArixEncryptor/internal/log"
)

// Version is set by main.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "arix",
	Short: "Password-based file encryption tool",
	Long: `ArixEncryptor encrypts files in place into self-describing .enc containers:
  - PBKDF2-HMAC-SHA-256 for password-based key derivation
  - AES-256-CBC for symmetric encryption, streamed in 8 KiB chunks
  - HMAC-SHA-256 over the plaintext for tamper detection
  - Atomic replacement of the original file, with rollback on failure

The original extension is stored in the container and restored on decrypt.`,
	Version: Version,
}

var enableLog bool

// activeReporter is installed by the encrypt/decrypt commands so the signal
// handler can request a cooperative stop instead of killing the process.
var activeReporter *Reporter

// Execute runs the CLI application and returns the process exit code.
func Execute(version string) int {
	Version = version
	rootCmd.Version = version

	// Ctrl+C with an operation in flight: flag the reporter and let the
	// worker unwind, which removes its temp file and leaves the input
	// untouched. With no operation running there is nothing to clean up.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		if r := activeReporter; r != nil {
			r.Cancel()
			fmt.Fprintln(os.Stderr, "\nCancelling...")
			return
		}
		fmt.Fprintln(os.Stderr, "\nAborted.")
		os.Exit(1)
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVar(&enableLog, "log", false,
		"Record activity to "+log.DefaultPath())
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if enableLog {
			// Best-effort: a failed log file never blocks the operation.
			_ = log.OpenFile(log.DefaultPath())
		}
	}
}
