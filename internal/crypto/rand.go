// Package crypto provides cryptographic primitives for ArixEncryptor containers.
// This is AUDIT-CRITICAL code - changes here directly affect encryption/decryption.
package crypto

import (
	"crypto/rand"
	"sync"

	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
)

// RandomSource produces cryptographically secure random bytes.
// Implementations must be safe for concurrent use; the process-wide default
// serializes every request behind a single lock.
type RandomSource interface {
	Bytes(n int) ([]byte, error)
}

// lockedSource is the default RandomSource backed by crypto/rand.
// A single mutex guards every request so concurrent operations share one
// generator without interleaving.
type lockedSource struct {
	mu sync.Mutex
}

func (s *lockedSource) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, errors.Wrap(errors.ErrRandFailure, "invalid length")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Wrap(errors.ErrRandFailure, err.Error())
	}

	// Sanity check: bytes should not be all zeros
	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, errors.Wrap(errors.ErrRandFailure, "produced zero bytes")
	}

	return b, nil
}

var (
	sourceMu      sync.RWMutex
	defaultSource RandomSource = &lockedSource{}
)

// SetRandomSource replaces the process-wide random source.
// Call with nil to restore the default crypto/rand-backed source.
// Tests use this to substitute a deterministic source.
func SetRandomSource(s RandomSource) {
	sourceMu.Lock()
	defer sourceMu.Unlock()
	if s == nil {
		defaultSource = &lockedSource{}
	} else {
		defaultSource = s
	}
}

// RandomBytes generates n cryptographically secure random bytes from the
// process-wide source. Used for salts and IVs, which must be freshly random
// for every encryption operation.
func RandomBytes(n int) ([]byte, error) {
	sourceMu.RLock()
	s := defaultSource
	sourceMu.RUnlock()
	return s.Bytes(n)
}
