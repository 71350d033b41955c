package header

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
)

// ReadHeader reads and parses a complete container header from the stream.
// Returns the header and the number of bytes consumed, which is the offset
// where the ciphertext begins.
//
// The magic tag is validated first: a mismatch returns errors.ErrNotContainer
// without consuming any further fields. A stream that ends before all fields
// are read returns errors.ErrTruncated.
func ReadHeader(r io.Reader) (*Header, int, error) {
	var bytesRead int

	magic := make([]byte, MagicSize)
	n, err := io.ReadFull(r, magic)
	bytesRead += n
	if err != nil {
		return nil, bytesRead, errors.Wrap(errors.ErrNotContainer, "read magic tag")
	}
	if !bytes.Equal(magic, []byte(MagicTag)) {
		return nil, bytesRead, errors.ErrNotContainer
	}

	h := &Header{}

	extLen := make([]byte, ExtLenSize)
	n, err = io.ReadFull(r, extLen)
	bytesRead += n
	if err != nil {
		return nil, bytesRead, errors.Wrap(errors.ErrTruncated, "read extension length")
	}

	ext := make([]byte, int(extLen[0]))
	n, err = io.ReadFull(r, ext)
	bytesRead += n
	if err != nil {
		return nil, bytesRead, errors.Wrap(errors.ErrTruncated, "read extension")
	}
	h.Extension = string(ext)

	h.Salt = make([]byte, SaltSize)
	n, err = io.ReadFull(r, h.Salt)
	bytesRead += n
	if err != nil {
		return nil, bytesRead, errors.Wrap(errors.ErrTruncated, "read salt")
	}

	h.IV = make([]byte, IVSize)
	n, err = io.ReadFull(r, h.IV)
	bytesRead += n
	if err != nil {
		return nil, bytesRead, errors.Wrap(errors.ErrTruncated, "read iv")
	}

	h.Tag = make([]byte, TagSize)
	n, err = io.ReadFull(r, h.Tag)
	bytesRead += n
	if err != nil {
		return nil, bytesRead, errors.Wrap(errors.ErrTruncated, "read tag")
	}

	if bytesRead != h.Size() {
		return nil, bytesRead, errors.NewHeaderError("size", fmt.Errorf("read %d bytes; want %d", bytesRead, h.Size()))
	}

	return h, bytesRead, nil
}

// Probe reports whether the file at path starts with the container magic
// tag. It reads only the magic-tag-length prefix and never returns an
// error: a missing, unreadable, or too-short file is simply not a container.
//
// Used as a cheap "is this already one of ours" check before encrypting and
// as validation before decrypting.
func Probe(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	magic := make([]byte, MagicSize)
	if _, err := io.ReadFull(f, magic); err != nil {
		return false
	}
	return bytes.Equal(magic, []byte(MagicTag))
}
