package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"io"

	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
)

// TagSize is the output size of the plaintext integrity tag (HMAC-SHA-256).
const TagSize = sha256.Size

// ComputeTag computes the keyed integrity tag over the entire plaintext
// stream using HMAC-SHA-256 seeded with the authentication key.
//
// On encryption this runs over the original file before any ciphertext is
// written; on decryption it runs over the candidate plaintext after it has
// been fully written to a temporary file.
func ComputeTag(r io.Reader, authKey []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, authKey)
	if _, err := io.Copy(mac, r); err != nil {
		return nil, errors.Wrap(err, "hashing plaintext")
	}
	return mac.Sum(nil), nil
}

// VerifyTag reports whether the computed tag matches the stored tag, in
// constant time. A mismatch signals either a wrong password or tampering;
// the two cases are indistinguishable by design.
func VerifyTag(computed, stored []byte) bool {
	return ConstantTimeCompare(computed, stored)
}
