package errors

import (
	"fmt"
	"testing"
)

func TestFileError(t *testing.T) {
	underlying := New("disk full")
	err := NewFileError("write", "/tmp/test.enc", underlying)

	want := "write /tmp/test.enc: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q; want %q", err.Error(), want)
	}

	if !Is(err, underlying) {
		t.Error("FileError should unwrap to underlying error")
	}

	var fe *FileError
	if !As(err, &fe) {
		t.Fatal("As() should find FileError in chain")
	}
	if fe.Op != "write" || fe.Path != "/tmp/test.enc" {
		t.Errorf("FileError fields = {%q, %q}; want {write, /tmp/test.enc}", fe.Op, fe.Path)
	}
}

func TestHeaderError(t *testing.T) {
	err := NewHeaderError("salt", ErrTruncated)

	if !Is(err, ErrTruncated) {
		t.Error("HeaderError should unwrap to ErrTruncated")
	}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrap(ErrInvalidPadding, "decrypting final block")
	if !Is(wrapped, ErrInvalidPadding) {
		t.Error("wrapped error should match sentinel")
	}
}

func TestIsCryptoFailure(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{ErrKeyDerivation, true},
		{ErrInvalidPadding, true},
		{ErrCorruptData, true},
		{fmt.Errorf("stream: %w", ErrInvalidPadding), true},
		{ErrIntegrity, false},
		{ErrFileNotFound, false},
		{nil, false},
	}

	for _, tc := range cases {
		if got := IsCryptoFailure(tc.err); got != tc.want {
			t.Errorf("IsCryptoFailure(%v) = %v; want %v", tc.err, got, tc.want)
		}
	}
}

func TestIsIntegrityFailure(t *testing.T) {
	if !IsIntegrityFailure(fmt.Errorf("verify: %w", ErrIntegrity)) {
		t.Error("wrapped ErrIntegrity should be an integrity failure")
	}
	if IsIntegrityFailure(ErrInvalidPadding) {
		t.Error("padding error is not an integrity failure")
	}
}
