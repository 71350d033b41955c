// Memory zeroing utilities for secure cleanup of key material.

package crypto

import "crypto/subtle"

// SecureZero overwrites a byte slice with zeros so derived key material does
// not persist in memory longer than one operation. Go's garbage collector
// means this cannot guarantee complete erasure, but it shrinks the window
// during which keys are recoverable from RAM.
//
// subtle.ConstantTimeCopy is used so the compiler cannot optimize the
// zeroing away.
func SecureZero(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}

// SecureZeroMultiple zeros multiple byte slices in a single call.
func SecureZeroMultiple(slices ...[]byte) {
	for _, s := range slices {
		SecureZero(s)
	}
}
