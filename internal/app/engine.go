// Package app exposes the asynchronous operation surface over the container
// pipelines. Each call launches one independent background worker; multiple
// concurrent operations are permitted and share no cryptographic state.
// Concurrent operations on the same path are outside the contract and must
// be serialized by the caller.
package app

import (
	"fmt"

	"github.com/arisohandriputra/ArixEncryptor/internal/container"
	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
	"github.com/arisohandriputra/ArixEncryptor/internal/fileops"
	"github.com/arisohandriputra/ArixEncryptor/internal/header"
	"github.com/arisohandriputra/ArixEncryptor/internal/log"
)

// Result is the outcome of one encrypt/decrypt operation, delivered exactly
// once via the completion callback.
type Result struct {
	Success bool
	Message string
}

// Engine runs encrypt/decrypt operations on background workers and reports
// through callbacks. Both callbacks are invoked from the worker's goroutine;
// marshaling to a UI thread is the consumer's responsibility.
type Engine struct {
	// OnProgress receives zero or more percentage updates (0-100,
	// non-decreasing) per operation. May be nil.
	OnProgress func(percent int)

	// OnComplete receives exactly one Result per operation. May be nil.
	OnComplete func(Result)

	// IsCancelled is polled during streaming. A true return aborts the
	// in-flight operation with the cancelled outcome; its temp file is
	// removed and the input is left untouched. May be nil.
	IsCancelled func() bool

	// Iterations overrides the PBKDF2 iteration count for all operations;
	// 0 means the format default.
	Iterations int
}

// NewEngine creates an engine with the given callbacks.
func NewEngine(onProgress func(int), onComplete func(Result)) *Engine {
	return &Engine{OnProgress: onProgress, OnComplete: onComplete}
}

// IsContainer reports whether path holds an encrypted container. Best
// effort: any access error reads as false.
func (e *Engine) IsContainer(path string) bool {
	return header.Probe(path)
}

// Backup copies path to path+".bak" unless the backup already exists.
// Failures are logged and swallowed, never surfaced.
func (e *Engine) Backup(path string) {
	if err := fileops.Backup(path); err != nil {
		log.Record("backup failed", path)
		return
	}
	log.Record("backup", path)
}

// EncryptFile encrypts path in the background and returns immediately.
func (e *Engine) EncryptFile(path, password string, makeBackup bool) {
	req := &container.EncryptRequest{
		InputFile:   path,
		Password:    password,
		MakeBackup:  makeBackup,
		Iterations:  e.Iterations,
		OnProgress:  container.Progress(e.OnProgress),
		IsCancelled: e.IsCancelled,
	}
	go e.run("encrypt", path, func() error {
		return container.Encrypt(req)
	})
}

// DecryptFile decrypts path in the background and returns immediately.
func (e *Engine) DecryptFile(path, password string) {
	req := &container.DecryptRequest{
		InputFile:   path,
		Password:    password,
		Iterations:  e.Iterations,
		OnProgress:  container.Progress(e.OnProgress),
		IsCancelled: e.IsCancelled,
	}
	go e.run("decrypt", path, func() error {
		return container.Decrypt(req)
	})
}

// run executes one operation and converts every exit - success, error, or
// panic - into a single completion callback. No error escapes the worker
// uncaught; temp cleanup happens inside the container pipeline's unwind.
func (e *Engine) run(action, path string, op func() error) {
	completed := false
	defer func() {
		if r := recover(); r != nil && !completed {
			log.Record(action+" aborted", path)
			e.complete(Result{Success: false, Message: fmt.Sprintf("Operation aborted: %v", r)})
		}
	}()

	err := op()
	completed = true
	if err != nil {
		log.Record(action+" failed", path)
		e.complete(Result{Success: false, Message: failureMessage(err)})
		return
	}
	e.complete(successResult(action))
}

func (e *Engine) complete(r Result) {
	if e.OnComplete != nil {
		e.OnComplete(r)
	}
}

func successResult(action string) Result {
	if action == "encrypt" {
		return Result{Success: true, Message: "File encrypted successfully."}
	}
	return Result{Success: true, Message: "File decrypted successfully."}
}

// failureMessage maps internal errors to user-facing text. Cryptographic
// and integrity failures share one deliberately ambiguous message so the
// outcome never reveals whether the password was wrong or the file was
// tampered with. Filesystem errors keep their detail; it carries no
// security sensitivity.
func failureMessage(err error) string {
	switch {
	case errors.IsCryptoFailure(err), errors.IsIntegrityFailure(err):
		return "Invalid password or corrupted file."
	case errors.Is(err, errors.ErrAlreadyEncrypted):
		return "File is already encrypted."
	case errors.Is(err, errors.ErrNotEncrypted), errors.Is(err, errors.ErrNotContainer):
		return "File is not a recognized encrypted container."
	case errors.Is(err, errors.ErrFileNotFound):
		return "File not found."
	case errors.Is(err, errors.ErrTruncated):
		return "Encrypted container is damaged or truncated."
	case errors.Is(err, errors.ErrCancelled):
		return "Operation cancelled."
	default:
		return err.Error()
	}
}
