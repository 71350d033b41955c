// Package log provides the best-effort activity log for ArixEncryptor
// operations. By default recording is disabled (null recorder) for zero
// overhead; the CLI enables it with OpenFile.
//
// Every entry is one timestamped line of the form
//
//	2006-01-02 15:04:05 | action | path
//
// Recording is strictly fire-and-forget: write failures are swallowed and
// never affect the outcome of the operation being logged.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Recorder receives activity entries. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Record(action, path string)
}

// nullRecorder discards all entries.
type nullRecorder struct{}

func (nullRecorder) Record(action, path string) {}

// writerRecorder appends entries to an io.Writer behind a single coarse
// lock, matching the append-only log file contract.
type writerRecorder struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// NewRecorder creates a recorder that appends entries to out.
func NewRecorder(out io.Writer) Recorder {
	return &writerRecorder{out: out, now: time.Now}
}

func (r *writerRecorder) Record(action, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Best-effort: the write error is deliberately dropped.
	fmt.Fprintf(r.out, "%s | %s | %s\n", r.now().Format("2006-01-02 15:04:05"), action, path)
}

var (
	recorderMu      sync.RWMutex
	defaultRecorder Recorder = nullRecorder{}
)

// SetRecorder sets the process-wide recorder. Call with nil to disable
// recording.
func SetRecorder(r Recorder) {
	recorderMu.Lock()
	defer recorderMu.Unlock()
	if r == nil {
		defaultRecorder = nullRecorder{}
	} else {
		defaultRecorder = r
	}
}

// Record appends one activity entry via the process-wide recorder.
func Record(action, path string) {
	recorderMu.RLock()
	r := defaultRecorder
	recorderMu.RUnlock()
	r.Record(action, path)
}

// OpenFile enables recording to an append-only file at path.
func OpenFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	SetRecorder(NewRecorder(f))
	return nil
}

// DefaultPath returns the well-known activity log location: next to the
// running executable, falling back to the working directory.
func DefaultPath() string {
	const name = "arix-activity.log"
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}
