package container

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arisohandriputra/ArixEncryptor/internal/crypto"
	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
	"github.com/arisohandriputra/ArixEncryptor/internal/fileops"
	"github.com/arisohandriputra/ArixEncryptor/internal/header"
	"github.com/arisohandriputra/ArixEncryptor/internal/log"
)

// Encrypt performs a complete encryption operation: the input file is
// replaced by a sibling container with the extension swapped for .enc.
// This is the main entry point for encryption.
func Encrypt(req *EncryptRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	ctx := &OperationContext{InputFile: req.InputFile, progress: req.OnProgress, isCancelled: req.IsCancelled}
	committed := false
	// The deferred cleanup covers every unwind path, panics included, so an
	// aborted worker never leaves a partial temp file behind.
	defer func() {
		if !committed {
			ctx.cleanup()
		}
		ctx.Close()
	}()

	if err := encryptBackup(ctx, req); err != nil {
		return err
	}
	if err := encryptGenerateValues(ctx, req); err != nil {
		return err
	}
	if err := encryptDeriveKeys(ctx, req); err != nil {
		return err
	}
	if err := encryptHashPlaintext(ctx, req); err != nil {
		return err
	}
	if err := encryptWritePayload(ctx, req); err != nil {
		return err
	}
	if err := encryptReplace(ctx, req); err != nil {
		return err
	}

	committed = true
	return nil
}

// encryptBackup copies the original aside when requested. Backup failures
// are recorded and swallowed; they never abort the encryption.
func encryptBackup(ctx *OperationContext, req *EncryptRequest) error {
	if !req.MakeBackup {
		return nil
	}
	if err := fileops.Backup(req.InputFile); err != nil {
		log.Record("backup failed", req.InputFile)
	} else {
		log.Record("backup", req.InputFile)
	}
	return nil
}

func encryptGenerateValues(ctx *OperationContext, req *EncryptRequest) error {
	salt, err := crypto.RandomBytes(header.SaltSize)
	if err != nil {
		return err
	}
	iv, err := crypto.RandomBytes(header.IVSize)
	if err != nil {
		return err
	}

	ctx.Header = &header.Header{
		Extension: filepath.Ext(req.InputFile),
		Salt:      salt,
		IV:        iv,
	}
	return nil
}

func encryptDeriveKeys(ctx *OperationContext, req *EncryptRequest) error {
	var err error
	ctx.EncKey, ctx.AuthKey, err = crypto.DeriveKeys(req.Password, ctx.Header.Salt, req.iterations())
	return err
}

// encryptHashPlaintext computes the integrity tag with a full pass over the
// original file, before any ciphertext is written.
func encryptHashPlaintext(ctx *OperationContext, req *EncryptRequest) error {
	in, err := os.Open(req.InputFile)
	if err != nil {
		return errors.NewFileError("open", req.InputFile, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.NewFileError("stat", req.InputFile, err)
	}
	ctx.PayloadSize = info.Size()

	tag, err := crypto.ComputeTag(in, ctx.AuthKey)
	if err != nil {
		return err
	}
	ctx.Header.Tag = tag
	return nil
}

func encryptWritePayload(ctx *OperationContext, req *EncryptRequest) error {
	ctx.OutputFile = encryptedName(req.InputFile)
	ctx.TempFile = fileops.TempPath(ctx.OutputFile)

	out, err := os.OpenFile(ctx.TempFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return errors.NewFileError("create", ctx.TempFile, err)
	}

	in, err := os.Open(req.InputFile)
	if err != nil {
		out.Close()
		return errors.NewFileError("open", req.InputFile, err)
	}
	defer in.Close()

	if _, err := header.WriteHeader(out, ctx.Header); err != nil {
		out.Close()
		return err
	}

	err = crypto.Transform(out, in, crypto.ModeEncrypt, ctx.EncKey, ctx.Header.IV,
		ctx.PayloadSize, crypto.Progress(ctx.progress), crypto.CancelCheck(ctx.isCancelled))
	if err != nil {
		out.Close()
		return err
	}

	if err := out.Sync(); err != nil {
		out.Close()
		return errors.NewFileError("sync", ctx.TempFile, err)
	}
	return out.Close()
}

// encryptReplace moves the finished container onto the .enc destination and
// removes the original. The temp file is verified to exist first; the
// original is never touched before that point.
func encryptReplace(ctx *OperationContext, req *EncryptRequest) error {
	// Last check before the point of no return; a late cancel must not
	// touch the original.
	if ctx.cancelled() {
		return errors.ErrCancelled
	}
	if _, err := os.Stat(ctx.TempFile); err != nil {
		return errors.NewFileError("stat", ctx.TempFile, err)
	}
	if err := fileops.Replace(ctx.TempFile, ctx.OutputFile, ctx.InputFile); err != nil {
		return err
	}
	ctx.TempFile = ""
	log.Record("encrypt", ctx.OutputFile)
	return nil
}

// encryptedName swaps the file's extension for the fixed encrypted suffix.
func encryptedName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + header.EncryptedSuffix
}
