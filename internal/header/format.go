// Package header handles container header reading, writing, and probing.
// This is AUDIT-CRITICAL code - changes here directly affect file format compatibility.
package header

// MagicTag identifies an ArixEncryptor container. It is fixed and
// versionless: the format is implicitly version 1, and any layout change
// breaks backward compatibility.
const MagicTag = "ARIXENCV01"

// Header field sizes, in on-disk byte order
const (
	MagicSize   = len(MagicTag) // 10 bytes, ASCII
	ExtLenSize  = 1             // length of the extension string
	SaltSize    = 32            // key derivation salt
	IVSize      = 16            // CBC initialization vector
	TagSize     = 32            // HMAC-SHA-256 of the plaintext

	// MaxExtensionLen is the longest extension the 1-byte length field can
	// describe.
	MaxExtensionLen = 255

	// BaseSize is the header size with an empty extension (91 bytes).
	BaseSize = MagicSize + ExtLenSize + SaltSize + IVSize + TagSize
)

// EncryptedSuffix replaces the original extension on encrypted output.
const EncryptedSuffix = ".enc"

// Header contains the container metadata preceding the ciphertext.
//
// On-disk layout: magic tag, 1-byte extension length, extension (UTF-8,
// leading dot included), salt, IV, plaintext integrity tag, in that fixed
// order, immediately followed by the ciphertext stream.
type Header struct {
	Extension string // Original file extension, e.g. ".txt" (may be empty)
	Salt      []byte // 32 bytes - fresh random per encryption
	IV        []byte // 16 bytes - fresh random per encryption
	Tag       []byte // 32 bytes - HMAC-SHA-256 of the plaintext
}

// Size returns the total header length in bytes for this header.
func (h *Header) Size() int {
	return BaseSize + len(h.Extension)
}
