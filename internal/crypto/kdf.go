package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
)

// Key derivation parameters
const (
	// DefaultIterations is the PBKDF2 iteration count used by the container
	// format. Low by modern standards, but fixed for compatibility; callers
	// may raise it per operation, at the cost of containers that only
	// decrypt with the same count.
	DefaultIterations = 5000

	// EncryptionKeySize is the AES-256 key size.
	EncryptionKeySize = 32

	// AuthKeySize is the HMAC-SHA-256 key size.
	AuthKeySize = 32

	derivedSize = EncryptionKeySize + AuthKeySize
)

// DeriveKeys stretches password and salt into an encryption key and a
// separate authentication key using PBKDF2-HMAC-SHA-256.
//
// A single derivation produces 64 bytes of key material: the first 32 bytes
// become the AES key, the next 32 the HMAC key. The split is deterministic,
// so the same password and salt always yield the same pair.
//
// CRITICAL: The derivation parameters and the split order MUST NOT change
// or existing containers cannot be decrypted.
//
// Fails only on malformed inputs (empty salt, non-positive iteration count);
// any password content, including empty, is accepted. Neither the password
// nor the derived keys are ever logged or persisted.
func DeriveKeys(password string, salt []byte, iterations int) (encKey, authKey []byte, err error) {
	if len(salt) == 0 {
		return nil, nil, errors.Wrap(errors.ErrKeyDerivation, "empty salt")
	}
	if iterations <= 0 {
		return nil, nil, errors.Wrap(errors.ErrKeyDerivation, "non-positive iteration count")
	}

	material := pbkdf2.Key([]byte(password), salt, iterations, derivedSize, sha256.New)
	return material[:EncryptionKeySize], material[EncryptionKeySize:], nil
}
