package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arisohandriputra/ArixEncryptor/internal/app"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt <file>...",
	Short: "Encrypt files into .enc containers",
	Long: `Encrypt one or more files in place. Each file is replaced by a sibling
container with the extension swapped for .enc; the original extension is
stored in the container and restored on decrypt.

If no password is provided, you will be prompted to enter one interactively
(with confirmation). The password is hidden while typing.

Examples:
  # Encrypt interactively (prompts for password)
  arix encrypt secret.txt

  # Keep a .bak copy of the original
  arix encrypt --backup secret.txt

  # Encrypt with password on the command line (visible in shell history)
  arix encrypt -p "mypassword" secret.txt report.pdf

  # Read password from stdin (for scripts)
  echo "mypassword" | arix encrypt -P secret.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncrypt,
}

var (
	encPassword      string
	encPasswordStdin bool
	encBackup        bool
	encIterations    int
	encQuiet         bool
)

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.SilenceErrors = true
	encryptCmd.SilenceUsage = true

	encryptCmd.Flags().StringVarP(&encPassword, "password", "p", "", "Encryption password")
	encryptCmd.Flags().BoolVarP(&encPasswordStdin, "password-stdin", "P", false, "Read password from stdin")
	encryptCmd.Flags().BoolVarP(&encBackup, "backup", "b", false, "Copy the original to .bak before encrypting")
	encryptCmd.Flags().IntVar(&encIterations, "iterations", 0, "PBKDF2 iteration count (default 5000; decrypt must match)")
	encryptCmd.Flags().BoolVarP(&encQuiet, "quiet", "q", false, "Suppress progress output")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	password, err := resolvePassword(encPassword, encPasswordStdin, true)
	if err != nil {
		return err
	}

	if !encQuiet && isTerminal() {
		if warning := passwordStrengthWarning(password); warning != "" {
			fmt.Fprintln(os.Stderr, warning)
		}
	}

	reporter := NewReporter(encQuiet)
	activeReporter = reporter
	defer func() { activeReporter = nil }()

	done := make(chan app.Result, 1)
	engine := app.NewEngine(reporter.Progress, func(r app.Result) { done <- r })
	engine.Iterations = encIterations
	engine.IsCancelled = reporter.IsCancelled

	var failed int
	for _, path := range args {
		size := int64(0)
		if info, err := os.Stat(path); err == nil {
			size = info.Size()
		}
		reporter.Start("Encrypting", path, size)

		engine.EncryptFile(path, password, encBackup)
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
		return fmt.Errorf("%d of %d file(s) failed to encrypt", failed, len(args))
	}
	return nil
}

// resolvePassword picks the password source: flag, piped stdin, or an
// interactive hidden prompt (with confirmation when confirm is true).
func resolvePassword(flagValue string, fromStdin, confirm bool) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if fromStdin {
		return ReadPasswordFromStdin()
	}
	return ReadPasswordInteractive(confirm)
}
