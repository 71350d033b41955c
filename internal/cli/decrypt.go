package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arisohandriputra/ArixEncryptor/internal/app"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt <file>...",
	Short: "Decrypt .enc containers",
	Long: `Decrypt one or more containers in place. Each container is replaced by
the original file, with the extension recorded at encryption time restored.

A failed decryption (wrong password, tampered container) leaves the
container untouched and writes nothing, so it can simply be retried.

Examples:
  # Decrypt interactively (prompts for password)
  arix decrypt secret.enc

  # Decrypt with a non-default iteration count (must match encryption)
  arix decrypt --iterations 100000 secret.enc

  # Read password from stdin (for scripts)
  echo "mypassword" | arix decrypt -P secret.enc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecrypt,
}

var (
	decPassword      string
	decPasswordStdin bool
	decIterations    int
	decQuiet         bool
)

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.SilenceErrors = true
	decryptCmd.SilenceUsage = true

	decryptCmd.Flags().StringVarP(&decPassword, "password", "p", "", "Decryption password")
	decryptCmd.Flags().BoolVarP(&decPasswordStdin, "password-stdin", "P", false, "Read password from stdin")
	decryptCmd.Flags().IntVar(&decIterations, "iterations", 0, "PBKDF2 iteration count used at encryption (default 5000)")
	decryptCmd.Flags().BoolVarP(&decQuiet, "quiet", "q", false, "Suppress progress output")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	password, err := resolvePassword(decPassword, decPasswordStdin, false)
	if err != nil {
		return err
	}

	reporter := NewReporter(decQuiet)
	activeReporter = reporter
	defer func() { activeReporter = nil }()

	done := make(chan app.Result, 1)
	engine := app.NewEngine(reporter.Progress, func(r app.Result) { done <- r })
	engine.Iterations = decIterations
	engine.IsCancelled = reporter.IsCancelled

	var failed int
	for _, path := range args {
		size := int64(0)
		if info, err := os.Stat(path); err == nil {
			size = info.Size()
		}
		reporter.Start("Decrypting", path, size)

		engine.DecryptFile(path, password)
		res := <-done
		reporter.Finish(res.Success, res.Message)
		if !res.Success {
			failed++
		}
		if reporter.IsCancelled() {
			return fmt.Errorf("operation cancelled")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to decrypt", failed, len(args))
	}
	return nil
}
