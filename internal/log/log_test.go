package log

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestRecorderFormat(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf).(*writerRecorder)
	r.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 34, 56, 0, time.UTC)
	}

	r.Record("encrypt", "/data/hello.txt")

	want := "2026-08-31 12:34:56 | encrypt | /data/hello.txt\n"
	if buf.String() != want {
		t.Errorf("entry = %q; want %q", buf.String(), want)
	}
}

// failingWriter always errors, to verify fire-and-forget behavior.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRecordSwallowsWriteErrors(t *testing.T) {
	r := NewRecorder(failingWriter{})
	// Must not panic or surface the error in any way.
	r.Record("encrypt", "/data/hello.txt")
}

func TestDefaultRecorderIsNull(t *testing.T) {
	SetRecorder(nil)
	// Recording with no recorder configured is a silent no-op.
	Record("decrypt", "/data/hello.enc")
}

func TestSetRecorder(t *testing.T) {
	var buf bytes.Buffer
	SetRecorder(NewRecorder(&buf))
	defer SetRecorder(nil)

	Record("backup", "/data/hello.txt")
	if !strings.Contains(buf.String(), "| backup | /data/hello.txt") {
		t.Errorf("entry not recorded: %q", buf.String())
	}
}

func TestConcurrentRecord(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Record("encrypt", "/data/file")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Errorf("recorded %d lines; want 20", len(lines))
	}
	for _, line := range lines {
		if strings.Count(line, " | ") != 2 {
			t.Errorf("malformed line: %q", line)
		}
	}
}
