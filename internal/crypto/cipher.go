package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"io"

	"github.com/arisohandriputra/ArixEncryptor/internal/encoding"
	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
)

// ChunkSize is the fixed transform chunk size (8 KiB). Chunked processing
// bounds memory use regardless of file size. It is a multiple of the AES
// block size, so CBC chaining carries across chunks without re-buffering.
const ChunkSize = 8 * 1024

// IVSize is the CBC initialization vector size.
const IVSize = encoding.BlockSize

// Mode selects the transform direction.
type Mode int

const (
	ModeEncrypt Mode = iota
	ModeDecrypt
)

// Progress receives percentage updates (0-100) after each processed chunk.
// The reported sequence is non-decreasing and ends at 100 on success.
type Progress func(percent int)

// CancelCheck is polled before each chunk is processed. A true return stops
// the stream with errors.ErrCancelled.
type CancelCheck func() bool

// Transform runs the streaming AES-256-CBC pipeline between src and dst.
//
// Encryption applies PKCS#7 padding to the final chunk; decryption strips
// it and fails with errors.ErrInvalidPadding when malformed. total is the
// byte count progress is measured against: the plaintext size when
// encrypting, the ciphertext length (stream length minus header length)
// when decrypting - progress tracks bytes read, not bytes produced.
// cancelled may be nil; a non-nil check is polled once per chunk.
func Transform(dst io.Writer, src io.Reader, mode Mode, key, iv []byte, total int64, onProgress Progress, cancelled CancelCheck) error {
	if len(key) != EncryptionKeySize {
		return errors.Wrap(errors.ErrKeyDerivation, "encryption key must be 32 bytes")
	}
	if len(iv) != IVSize {
		return errors.New("iv must be 16 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return errors.Wrap(err, "initializing cipher")
	}

	p := &progressTracker{total: total, fn: onProgress}
	if mode == ModeEncrypt {
		return encryptStream(dst, src, cipher.NewCBCEncrypter(block, iv), p, cancelled)
	}
	return decryptStream(dst, src, cipher.NewCBCDecrypter(block, iv), total, p, cancelled)
}

func encryptStream(dst io.Writer, src io.Reader, enc cipher.BlockMode, p *progressTracker, cancelled CancelCheck) error {
	buf := make([]byte, ChunkSize)
	for {
		if cancelled != nil && cancelled() {
			return errors.ErrCancelled
		}
		n, err := io.ReadFull(src, buf)
		chunk := buf[:n]
		final := false
		switch err {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			// Short or empty read means end of plaintext; pad the remainder.
			final = true
			chunk = encoding.Pad(chunk)
		default:
			return errors.Wrap(err, "reading plaintext")
		}

		enc.CryptBlocks(chunk, chunk)
		if _, werr := dst.Write(chunk); werr != nil {
			return errors.Wrap(werr, "writing ciphertext")
		}

		p.add(int64(n))
		if final {
			p.finish()
			return nil
		}
	}
}

func decryptStream(dst io.Writer, src io.Reader, dec cipher.BlockMode, total int64, p *progressTracker, cancelled CancelCheck) error {
	if total <= 0 || total%encoding.BlockSize != 0 {
		return errors.Wrap(errors.ErrCorruptData, "ciphertext length not block-aligned")
	}

	buf := make([]byte, ChunkSize)
	remaining := total
	for remaining > 0 {
		if cancelled != nil && cancelled() {
			return errors.ErrCancelled
		}
		n := int64(ChunkSize)
		if remaining < n {
			n = remaining
		}

		chunk := buf[:n]
		if _, err := io.ReadFull(src, chunk); err != nil {
			return errors.Wrap(errors.ErrTruncated, "reading ciphertext")
		}

		dec.CryptBlocks(chunk, chunk)
		remaining -= n
		p.add(n)

		if remaining == 0 {
			var err error
			chunk, err = encoding.Unpad(chunk)
			if err != nil {
				return errors.Wrap(err, "final block")
			}
		}

		if _, err := dst.Write(chunk); err != nil {
			return errors.Wrap(err, "writing plaintext")
		}
	}

	p.finish()
	return nil
}

// progressTracker converts processed byte counts into monotone percentage
// callbacks. Percentages never decrease even if the total hint is wrong.
type progressTracker struct {
	total int64
	done  int64
	last  int
	fn    Progress
}

func (p *progressTracker) add(n int64) {
	p.done += n
	if p.fn == nil {
		return
	}

	pct := 100
	if p.total > 0 {
		pct = int(p.done * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
	}
	if pct < p.last {
		pct = p.last
	}
	p.last = pct
	p.fn(pct)
}

func (p *progressTracker) finish() {
	if p.fn != nil && p.last < 100 {
		p.last = 100
		p.fn(100)
	}
}
