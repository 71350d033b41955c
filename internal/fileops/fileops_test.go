package fileops

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	writeFixture(t, path, []byte("original content"))

	if err := Backup(path); err != nil {
		t.Fatalf("Backup failed: %v", err)
	}

	got, err := os.ReadFile(path + BackupSuffix)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if !bytes.Equal(got, []byte("original content")) {
		t.Errorf("backup content = %q; want original", got)
	}

	// Existing backup is not overwritten
	writeFixture(t, path, []byte("changed content"))
	if err := Backup(path); err != nil {
		t.Fatalf("second Backup failed: %v", err)
	}
	got, _ = os.ReadFile(path + BackupSuffix)
	if !bytes.Equal(got, []byte("original content")) {
		t.Errorf("existing backup was overwritten: %q", got)
	}

	// Missing source reports an error (callers swallow it)
	if err := Backup(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("Backup of missing file should return an error")
	}
}

func TestTempPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")

	a := TempPath(path)
	b := TempPath(path)
	if a == b {
		t.Error("two temp paths for the same file should differ")
	}
	if filepath.Dir(a) != filepath.Dir(path) {
		t.Errorf("temp path %q not a sibling of %q", a, path)
	}
	if !strings.HasSuffix(a, ".tmp") {
		t.Errorf("temp path %q missing .tmp suffix", a)
	}
}

func TestReplace(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "doc.txt")
	final := filepath.Join(dir, "doc.enc")
	temp := TempPath(final)

	writeFixture(t, original, []byte("plaintext"))
	writeFixture(t, temp, []byte("ciphertext"))

	if err := Replace(temp, final, original); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, err := os.ReadFile(final)
	if err != nil {
		t.Fatalf("reading final: %v", err)
	}
	if !bytes.Equal(got, []byte("ciphertext")) {
		t.Errorf("final content = %q; want ciphertext", got)
	}

	if _, err := os.Stat(original); !os.IsNotExist(err) {
		t.Error("original file should be removed")
	}
	if _, err := os.Stat(temp); !os.IsNotExist(err) {
		t.Error("temp file should be gone after rename")
	}
}

func TestReplaceOverwritesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "doc.enc")
	temp := TempPath(final)

	writeFixture(t, final, []byte("stale"))
	writeFixture(t, temp, []byte("fresh"))

	if err := Replace(temp, final, ""); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	got, _ := os.ReadFile(final)
	if !bytes.Equal(got, []byte("fresh")) {
		t.Errorf("final content = %q; want fresh", got)
	}
}

func TestReplaceSamePath(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "doc.enc")
	temp := TempPath(final)
	writeFixture(t, temp, []byte("data"))

	// original == final must not delete the result
	if err := Replace(temp, final, final); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if _, err := os.Stat(final); err != nil {
		t.Errorf("final file missing: %v", err)
	}
}
