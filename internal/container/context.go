// Package container provides the high-level encrypt and decrypt operations
// over the ArixEncryptor container format.
//
// This is AUDIT-CRITICAL code - changes here directly affect the cryptographic
// pipeline. The package sequences the complete workflows:
//
// Encryption pipeline:
//  1. Validate: input exists and is not already a container
//  2. Backup: optional copy-if-absent of the original (best-effort)
//  3. Generate: fresh random salt and IV
//  4. Derive keys: PBKDF2 password stretching
//  5. Hash plaintext: HMAC-SHA-256 over the original file
//  6. Write payload: header and CBC ciphertext to a temp file
//  7. Replace: rename temp onto the .enc destination, remove the original
//
// Decryption pipeline:
//  1. Validate: input exists and is a container
//  2. Read header: extension, salt, IV, stored tag
//  3. Derive keys: PBKDF2 password stretching
//  4. Decrypt payload: CBC ciphertext to a temp file
//  5. Verify: recompute the plaintext tag against the stored one
//  6. Replace: rename temp onto the restored name, remove the container
//
// The ordering of encryption phases 3-6 (salt/IV generation, key derivation,
// plaintext hash, ciphertext write) is part of the format contract and MUST
// be preserved.
//
// Any failure or unwind before the final replace deletes the temp file; the
// input file is never touched until the output is fully written.
package container

import (
	"os"

	"github.com/arisohandriputra/ArixEncryptor/internal/crypto"
	"github.com/arisohandriputra/ArixEncryptor/internal/header"
)

// Progress receives percentage updates (0-100) during the streaming phase.
// Called from the operation's goroutine; marshaling to a UI thread is the
// caller's responsibility.
type Progress func(percent int)

// EncryptRequest contains all parameters needed to encrypt a file in place
// into a .enc container.
type EncryptRequest struct {
	InputFile  string // Path of the file to encrypt
	Password   string // User password (stretched through PBKDF2)
	MakeBackup bool   // Copy the original to .bak before encrypting

	// Iterations overrides the PBKDF2 iteration count; 0 means
	// crypto.DefaultIterations. The count is not stored in the container,
	// so decryption must use the same value.
	Iterations int

	OnProgress Progress // Optional progress callback

	// IsCancelled is polled between chunks during streaming. A true return
	// aborts the operation with errors.ErrCancelled; the unwind removes the
	// temp file and the input is left untouched. May be nil.
	IsCancelled func() bool
}

// DecryptRequest contains all parameters needed to decrypt a .enc container
// back into the original file.
type DecryptRequest struct {
	InputFile  string   // Path of the container
	Password   string   // User password; must match the one used to encrypt
	Iterations int      // Must match the encryption count; 0 means the default
	OnProgress Progress // Optional progress callback

	// IsCancelled is polled between chunks during streaming; see
	// EncryptRequest.IsCancelled. May be nil.
	IsCancelled func() bool
}

func (req *EncryptRequest) iterations() int {
	if req.Iterations == 0 {
		return crypto.DefaultIterations
	}
	return req.Iterations
}

func (req *DecryptRequest) iterations() int {
	if req.Iterations == 0 {
		return crypto.DefaultIterations
	}
	return req.Iterations
}

// OperationContext holds mutable state while an operation runs. It owns the
// derived key material and the temp file, and is responsible for destroying
// both on any exit path.
type OperationContext struct {
	InputFile  string // Operation input (plaintext or container)
	OutputFile string // Final destination
	TempFile   string // In-flight output; removed on failure

	Header *header.Header

	EncKey  []byte // 32 bytes - AES-256 key, zeroed on Close
	AuthKey []byte // 32 bytes - HMAC key, zeroed on Close

	// Size the streaming phase measures progress against: plaintext bytes
	// when encrypting, ciphertext bytes when decrypting.
	PayloadSize int64

	progress    Progress
	isCancelled func() bool
}

// cancelled reports whether the caller requested a stop. Safe with a nil
// check installed.
func (ctx *OperationContext) cancelled() bool {
	return ctx.isCancelled != nil && ctx.isCancelled()
}

// Close zeros the derived key material. Idempotent.
func (ctx *OperationContext) Close() {
	crypto.SecureZeroMultiple(ctx.EncKey, ctx.AuthKey)
	ctx.EncKey = nil
	ctx.AuthKey = nil
}

// cleanup removes the temp file, if one was created. Runs on every failed
// or interrupted exit so no partial output survives.
func (ctx *OperationContext) cleanup() {
	if ctx.TempFile != "" {
		os.Remove(ctx.TempFile)
		ctx.TempFile = ""
	}
}
