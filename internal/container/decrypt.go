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

// Decrypt performs a complete decryption operation: the container is
// replaced by the original file with its recorded extension restored.
// This is the main entry point for decryption.
//
// Failure is fully idempotent: on any error the container is left
// untouched and no partial plaintext remains, so the operation can simply
// be retried.
func Decrypt(req *DecryptRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	ctx := &OperationContext{InputFile: req.InputFile, progress: req.OnProgress, isCancelled: req.IsCancelled}
	committed := false
	defer func() {
		if !committed {
			ctx.cleanup()
		}
		ctx.Close()
	}()

	in, err := os.Open(req.InputFile)
	if err != nil {
		return errors.NewFileError("open", req.InputFile, err)
	}
	defer in.Close()

	if err := decryptReadHeader(ctx, in); err != nil {
		return err
	}
	if err := decryptDeriveKeys(ctx, req); err != nil {
		return err
	}
	if err := decryptPayload(ctx, in); err != nil {
		return err
	}
	if err := decryptVerify(ctx); err != nil {
		return err
	}
	if err := decryptReplace(ctx); err != nil {
		return err
	}

	committed = true
	return nil
}

// decryptReadHeader parses the container header and computes the
// ciphertext length (stream length minus header length) the streaming
// phase measures progress against.
func decryptReadHeader(ctx *OperationContext, in *os.File) error {
	h, headerLen, err := header.ReadHeader(in)
	if err != nil {
		return err
	}
	ctx.Header = h

	info, err := in.Stat()
	if err != nil {
		return errors.NewFileError("stat", ctx.InputFile, err)
	}
	ctx.PayloadSize = info.Size() - int64(headerLen)
	return nil
}

func decryptDeriveKeys(ctx *OperationContext, req *DecryptRequest) error {
	var err error
	ctx.EncKey, ctx.AuthKey, err = crypto.DeriveKeys(req.Password, ctx.Header.Salt, req.iterations())
	return err
}

// decryptPayload streams the candidate plaintext into a temp file. A
// padding failure here is the first signal of a wrong password.
func decryptPayload(ctx *OperationContext, in *os.File) error {
	ctx.OutputFile = restoredName(ctx.InputFile, ctx.Header.Extension)
	ctx.TempFile = fileops.TempPath(ctx.OutputFile)

	out, err := os.OpenFile(ctx.TempFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return errors.NewFileError("create", ctx.TempFile, err)
	}

	err = crypto.Transform(out, in, crypto.ModeDecrypt, ctx.EncKey, ctx.Header.IV,
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

// decryptVerify recomputes the plaintext tag with a full pass over the temp
// file and compares it against the stored tag in constant time. A mismatch
// means wrong password or tampering; the container is not modified.
func decryptVerify(ctx *OperationContext) error {
	tmp, err := os.Open(ctx.TempFile)
	if err != nil {
		return errors.NewFileError("open", ctx.TempFile, err)
	}
	defer tmp.Close()

	computed, err := crypto.ComputeTag(tmp, ctx.AuthKey)
	if err != nil {
		return err
	}
	if !crypto.VerifyTag(computed, ctx.Header.Tag) {
		return errors.ErrIntegrity
	}
	return nil
}

func decryptReplace(ctx *OperationContext) error {
	// Last check before the point of no return; a late cancel must not
	// touch the container.
	if ctx.cancelled() {
		return errors.ErrCancelled
	}
	if err := fileops.Replace(ctx.TempFile, ctx.OutputFile, ctx.InputFile); err != nil {
		return err
	}
	ctx.TempFile = ""
	log.Record("decrypt", ctx.OutputFile)
	return nil
}

// restoredName strips the encrypted suffix and appends the extension
// recorded in the container header.
func restoredName(path, extension string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + extension
}
