package crypto

import (
	"bytes"
	"testing"

	"github.com/arisohandriputra/ArixEncryptor/internal/errors"
)

func TestDeriveKeys(t *testing.T) {
	salt := make([]byte, 32)
	for i := range salt {
		salt[i] = byte(i)
	}

	encKey, authKey, err := DeriveKeys("test-password", salt, DefaultIterations)
	if err != nil {
		t.Fatalf("DeriveKeys failed: %v", err)
	}
	if len(encKey) != EncryptionKeySize {
		t.Errorf("encryption key length = %d; want %d", len(encKey), EncryptionKeySize)
	}
	if len(authKey) != AuthKeySize {
		t.Errorf("auth key length = %d; want %d", len(authKey), AuthKeySize)
	}
	if bytes.Equal(encKey, authKey) {
		t.Error("encryption and auth keys should differ")
	}

	// Deterministic: same inputs produce the same pair
	encKey2, authKey2, _ := DeriveKeys("test-password", salt, DefaultIterations)
	if !bytes.Equal(encKey, encKey2) || !bytes.Equal(authKey, authKey2) {
		t.Error("same inputs should produce same keys")
	}

	// Different salt produces different keys
	salt[0] ^= 0xFF
	encKey3, _, _ := DeriveKeys("test-password", salt, DefaultIterations)
	if bytes.Equal(encKey, encKey3) {
		t.Error("different salt should produce different keys")
	}

	// Different iteration count produces different keys
	salt[0] ^= 0xFF
	encKey4, _, _ := DeriveKeys("test-password", salt, DefaultIterations+1)
	if bytes.Equal(encKey, encKey4) {
		t.Error("different iteration count should produce different keys")
	}
}

func TestDeriveKeysMalformedInputs(t *testing.T) {
	salt := make([]byte, 32)

	if _, _, err := DeriveKeys("pw", nil, DefaultIterations); !errors.Is(err, errors.ErrKeyDerivation) {
		t.Errorf("empty salt: err = %v; want ErrKeyDerivation", err)
	}
	if _, _, err := DeriveKeys("pw", salt, 0); !errors.Is(err, errors.ErrKeyDerivation) {
		t.Errorf("zero iterations: err = %v; want ErrKeyDerivation", err)
	}
	if _, _, err := DeriveKeys("pw", salt, -1); !errors.Is(err, errors.ErrKeyDerivation) {
		t.Errorf("negative iterations: err = %v; want ErrKeyDerivation", err)
	}

	// Empty password is never an error
	if _, _, err := DeriveKeys("", salt, DefaultIterations); err != nil {
		t.Errorf("empty password: err = %v; want nil", err)
	}
}

func TestConstantTimeCompare(t *testing.T) {
	cases := []struct {
		a, b []byte
		want bool
	}{
		{[]byte{}, []byte{}, true},
		{[]byte{1, 2, 3}, []byte{1, 2, 3}, true},
		{[]byte{1, 2, 3}, []byte{1, 2, 4}, false},
		{[]byte{1, 2, 3}, []byte{0, 2, 3}, false},
		{[]byte{1, 2, 3}, []byte{1, 2}, false},
		{nil, []byte{}, true},
	}

	for i, tc := range cases {
		if got := ConstantTimeCompare(tc.a, tc.b); got != tc.want {
			t.Errorf("case %d: ConstantTimeCompare(%v, %v) = %v; want %v", i, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestComputeTag(t *testing.T) {
	authKey := bytes.Repeat([]byte{0x42}, AuthKeySize)
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	tag, err := ComputeTag(bytes.NewReader(plaintext), authKey)
	if err != nil {
		t.Fatalf("ComputeTag failed: %v", err)
	}
	if len(tag) != TagSize {
		t.Errorf("tag length = %d; want %d", len(tag), TagSize)
	}

	// Deterministic
	tag2, _ := ComputeTag(bytes.NewReader(plaintext), authKey)
	if !VerifyTag(tag, tag2) {
		t.Error("same plaintext and key should produce same tag")
	}

	// Different key, different tag
	otherKey := bytes.Repeat([]byte{0x43}, AuthKeySize)
	tag3, _ := ComputeTag(bytes.NewReader(plaintext), otherKey)
	if VerifyTag(tag, tag3) {
		t.Error("different keys should produce different tags")
	}

	// Different plaintext, different tag
	tag4, _ := ComputeTag(bytes.NewReader([]byte("tampered")), authKey)
	if VerifyTag(tag, tag4) {
		t.Error("different plaintext should produce different tags")
	}
}

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes(32) failed: %v", err)
	}
	if len(a) != 32 {
		t.Errorf("length = %d; want 32", len(a))
	}

	b, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes(32) failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("two draws should not be equal")
	}

	if _, err := RandomBytes(0); !errors.Is(err, errors.ErrRandFailure) {
		t.Errorf("RandomBytes(0): err = %v; want ErrRandFailure", err)
	}
}

// fixedSource returns a repeating byte pattern, for deterministic tests.
type fixedSource struct{ b byte }

func (s *fixedSource) Bytes(n int) ([]byte, error) {
	return bytes.Repeat([]byte{s.b}, n), nil
}

func TestSetRandomSource(t *testing.T) {
	SetRandomSource(&fixedSource{b: 0x7F})
	defer SetRandomSource(nil)

	got, err := RandomBytes(8)
	if err != nil {
		t.Fatalf("RandomBytes failed: %v", err)
	}
	if !bytes.Equal(got, bytes.Repeat([]byte{0x7F}, 8)) {
		t.Errorf("injected source not used: got %v", got)
	}

	SetRandomSource(nil)
	got, err = RandomBytes(8)
	if err != nil {
		t.Fatalf("RandomBytes after reset failed: %v", err)
	}
	if bytes.Equal(got, bytes.Repeat([]byte{0x7F}, 8)) {
		t.Error("SetRandomSource(nil) should restore the default source")
	}
}

func TestSecureZero(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	SecureZero(data)
	for i, b := range data {
		if b != 0 {
			t.Errorf("byte %d = %#x; want 0", i, b)
		}
	}

	// Empty and nil slices are no-ops
	SecureZero(nil)
	SecureZero([]byte{})

	a := []byte{9, 9}
	b := []byte{8}
	SecureZeroMultiple(a, b, nil)
	if a[0] != 0 || a[1] != 0 || b[0] != 0 {
		t.Error("SecureZeroMultiple did not zero all slices")
	}
}
