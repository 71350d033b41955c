package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arisohandriputra/ArixEncryptor/internal/header"
)

var probeCmd = &cobra.Command{
	Use:   "probe <file>",
	Short: "Check whether a file is an encrypted container",
	Long: `Probe reads only the container magic tag and reports the result.
Exits 0 if the file is an ArixEncryptor container, 1 otherwise (including
missing or unreadable files).`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.SilenceErrors = true
	probeCmd.SilenceUsage = true
}

func runProbe(cmd *cobra.Command, args []string) error {
	if header.Probe(args[0]) {
		fmt.Printf("%s: encrypted container\n", args[0])
		return nil
	}
	return fmt.Errorf("%s is not an encrypted container", args[0])
}
