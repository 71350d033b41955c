// Package encoding implements PKCS#7 padding for the AES-CBC payload.
package encoding

import (
	"bytes"

	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
)

// BlockSize is the AES block size in bytes. PKCS#7 padding always pads the
// final plaintext chunk up to a multiple of this size.
const BlockSize = 16

// Pad applies PKCS#7 padding so data fills a whole number of blocks.
//
// N bytes are appended, each with value N, where N is the number of bytes
// needed to reach the next block boundary. If data is already a multiple of
// BlockSize (including empty data), a full block of padding is added, so the
// padding length is always in [1, BlockSize].
func Pad(data []byte) []byte {
	padLen := BlockSize - len(data)%BlockSize
	padding := bytes.Repeat([]byte{byte(padLen)}, padLen)
	return append(data, padding...)
}

// Unpad strips PKCS#7 padding from the final decrypted block(s).
//
// The padding length is the value of the last byte; every padding byte must
// carry that same value. Returns errors.ErrInvalidPadding if the data is
// empty, not block-aligned, or the padding bytes are malformed. A malformed
// padding here is the first signal of a wrong-password decryption.
func Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%BlockSize != 0 {
		return nil, errors.ErrInvalidPadding
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > BlockSize {
		return nil, errors.ErrInvalidPadding
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.ErrInvalidPadding
		}
	}
	return data[:len(data)-padLen], nil
}
