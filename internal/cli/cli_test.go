package cli

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestResolvePasswordFlagTakesPrecedence(t *testing.T) {
	pw, err := resolvePassword("from-flag", true, true)
	if err != nil {
		t.Fatalf("resolvePassword failed: %v", err)
	}
	if pw != "from-flag" {
		t.Errorf("password = %q; want from-flag", pw)
	}
}

func TestPasswordStrengthWarning(t *testing.T) {
	if w := passwordStrengthWarning("password"); w == "" {
		t.Error("trivial password should produce a warning")
	}
	if w := passwordStrengthWarning("12345"); !strings.Contains(w, "weak password") {
		t.Errorf("warning = %q; want mention of weak password", w)
	}
	if w := passwordStrengthWarning("correct horse battery staple 42!"); w != "" {
		t.Errorf("strong passphrase produced warning: %q", w)
	}
}

func TestReporterQuiet(t *testing.T) {
	r := NewReporter(true)
	r.Start("Encrypting", "doc.txt", 1000)
	// Must not write to the terminal or panic in quiet mode
	r.Progress(50)
	r.Finish(true, "File encrypted successfully.")
}

func TestReporterCancel(t *testing.T) {
	r := NewReporter(true)
	if r.IsCancelled() {
		t.Error("fresh reporter reports cancelled")
	}
	r.Cancel()
	if !r.IsCancelled() {
		t.Error("Cancel did not stick")
	}
}

func TestReporterLineWidthInRunes(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{out: &buf}
	r.Start("Encrypting", "doc.txt", 1000)
	r.Progress(50)

	// The bar glyphs are multibyte; stale-line clearing must track the
	// printed rune width, not the byte length.
	line := strings.TrimPrefix(buf.String(), "\r")
	if got := utf8.RuneCountInString(line); r.lastLine != got {
		t.Errorf("lastLine = %d; want rune width %d", r.lastLine, got)
	}

	// A shorter follow-up line is padded out to exactly the prior width
	prev := r.lastLine
	r.label = "x"
	buf.Reset()
	r.Progress(60)
	line = strings.TrimPrefix(buf.String(), "\r")
	if got := utf8.RuneCountInString(line); got != prev {
		t.Errorf("padded line width = %d runes; want %d", got, prev)
	}
}
