package fileops

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
)

// TempPath returns a unique temporary sibling path for path. The temp file
// lives in the same directory as its final destination so the concluding
// rename never crosses filesystems.
func TempPath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
}

// Replace moves the fully written temp file onto finalPath, then removes
// originalPath. The rename lands first, so there is never a window in which
// neither the original nor the output exists; an interruption leaves either
// both files or the finished output plus the original.
//
// On platforms where rename cannot overwrite an existing destination, the
// destination is removed and the rename retried. That fallback reopens a
// small non-atomic window, which is the accepted residual risk there.
func Replace(tempPath, finalPath, originalPath string) error {
	if err := os.Rename(tempPath, finalPath); err != nil {
		if rmErr := os.Remove(finalPath); rmErr != nil && !os.IsNotExist(rmErr) {
			return errors.NewFileError("remove", finalPath, rmErr)
		}
		if err := os.Rename(tempPath, finalPath); err != nil {
			return errors.NewFileError("rename", tempPath, err)
		}
	}

	if originalPath != "" && originalPath != finalPath {
		if err := os.Remove(originalPath); err != nil {
			return errors.NewFileError("remove", originalPath, err)
		}
	}
	return nil
}
