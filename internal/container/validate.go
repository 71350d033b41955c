package container

import (
	"os"

	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
	"github.com/arisohandriputra/ArixEncryptor/internal/header"
)

// Validate checks that the EncryptRequest targets an existing file that is
// not already a container. Returns nil if valid; fails fast with no side
// effects otherwise.
func (req *EncryptRequest) Validate() error {
	if req.InputFile == "" {
		return errors.ErrNoInputFile
	}
	if req.Iterations < 0 {
		return errors.Wrap(errors.ErrKeyDerivation, "negative iteration count")
	}

	info, err := os.Stat(req.InputFile)
	if err != nil {
		return errors.NewFileError("stat", req.InputFile, errors.ErrFileNotFound)
	}
	if info.IsDir() {
		return errors.NewFileError("stat", req.InputFile, errors.New("is a directory"))
	}

	if header.Probe(req.InputFile) {
		return errors.ErrAlreadyEncrypted
	}
	return nil
}

// Validate checks that the DecryptRequest targets an existing recognized
// container. Returns nil if valid; fails fast with no side effects otherwise.
func (req *DecryptRequest) Validate() error {
	if req.InputFile == "" {
		return errors.ErrNoInputFile
	}
	if req.Iterations < 0 {
		return errors.Wrap(errors.ErrKeyDerivation, "negative iteration count")
	}

	if _, err := os.Stat(req.InputFile); err != nil {
		return errors.NewFileError("stat", req.InputFile, errors.ErrFileNotFound)
	}

	if !header.Probe(req.InputFile) {
		return errors.ErrNotEncrypted
	}
	return nil
}
