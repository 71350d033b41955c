// ArixEncryptor command-line tool.
//
// arix encrypts single files in place into self-describing .enc containers:
//   - PBKDF2-HMAC-SHA-256 for password-based key derivation
//   - AES-256-CBC for symmetric encryption, streamed in 8 KiB chunks
//   - HMAC-SHA-256 over the plaintext for tamper detection
//   - Atomic replacement of the original file, with rollback on failure
package main

import (
	"os"

	"github.com/arisohandriputra/ArixEncryptor/internal/cli"
)

// version is the application version reported by --version.
const version = "v1.0.0"

func main() {
	os.Exit(cli.Execute(version))
}
