package header

import (
	"fmt"
	"io"

	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
)

// WriteHeader serializes a complete container header to the output stream.
// Fields are written in the exact order required by the format. Returns the
// number of bytes written and any error.
//
// The integrity tag must already be computed: the plaintext hash happens
// before any ciphertext is written, so the header is complete in one pass.
func WriteHeader(w io.Writer, h *Header) (int, error) {
	if len(h.Extension) > MaxExtensionLen {
		return 0, errors.ErrExtensionTooLong
	}
	if len(h.Salt) != SaltSize {
		return 0, errors.NewHeaderError("salt", fmt.Errorf("length %d; want %d", len(h.Salt), SaltSize))
	}
	if len(h.IV) != IVSize {
		return 0, errors.NewHeaderError("iv", fmt.Errorf("length %d; want %d", len(h.IV), IVSize))
	}
	if len(h.Tag) != TagSize {
		return 0, errors.NewHeaderError("tag", fmt.Errorf("length %d; want %d", len(h.Tag), TagSize))
	}

	var totalWritten int

	n, err := w.Write([]byte(MagicTag))
	totalWritten += n
	if err != nil {
		return totalWritten, fmt.Errorf("write magic tag: %w", err)
	}

	n, err = w.Write([]byte{byte(len(h.Extension))})
	totalWritten += n
	if err != nil {
		return totalWritten, fmt.Errorf("write extension length: %w", err)
	}

	n, err = w.Write([]byte(h.Extension))
	totalWritten += n
	if err != nil {
		return totalWritten, fmt.Errorf("write extension: %w", err)
	}

	n, err = w.Write(h.Salt)
	totalWritten += n
	if err != nil {
		return totalWritten, fmt.Errorf("write salt: %w", err)
	}

	n, err = w.Write(h.IV)
	totalWritten += n
	if err != nil {
		return totalWritten, fmt.Errorf("write iv: %w", err)
	}

	n, err = w.Write(h.Tag)
	totalWritten += n
	if err != nil {
		return totalWritten, fmt.Errorf("write tag: %w", err)
	}

	return totalWritten, nil
}
