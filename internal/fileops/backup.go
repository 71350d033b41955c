// Package fileops provides the file-level operations around the encryption
// pipeline: backup copies, unique temp paths, and atomic replacement.
package fileops

import (
	"io"
	"os"
	"sync"

	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
)

// BackupSuffix is appended to the original path for backup copies.
const BackupSuffix = ".bak"

// backupMu serializes backup creation process-wide. The existence check and
// the copy are not atomic, so concurrent operations on the same path would
// otherwise race. Backups are infrequent and short, a coarse lock is enough.
var backupMu sync.Mutex

// Backup copies the file at path to path+".bak". It is a no-op if the
// backup already exists. Callers treat failures as best-effort: the error
// is returned for logging but must never abort the operation that
// requested the backup.
func Backup(path string) error {
	backupMu.Lock()
	defer backupMu.Unlock()

	backupPath := path + BackupSuffix
	if _, err := os.Stat(backupPath); err == nil {
		return nil
	}
	return copyFile(path, backupPath)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.NewFileError("open", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.NewFileError("stat", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.NewFileError("create", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return errors.NewFileError("write", dst, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return errors.NewFileError("close", dst, err)
	}
	return nil
}
