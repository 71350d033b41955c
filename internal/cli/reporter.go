package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/docker/go-units"
)

// Reporter renders operation progress on a single terminal line that gets
// overwritten as updates arrive. If quiet is true, nothing is printed.
// Cancel may be called from the signal handler's goroutine.
type Reporter struct {
	mu        sync.Mutex
	out       io.Writer
	label     string
	quiet     bool
	lastLine  int // Printed width of last line in runes (for clearing)
	cancelled atomic.Bool
}

// NewReporter creates a terminal progress reporter.
func NewReporter(quiet bool) *Reporter {
	return &Reporter{out: os.Stderr, quiet: quiet}
}

// Cancel marks the current operation as cancelled.
func (r *Reporter) Cancel() {
	r.cancelled.Store(true)
}

// IsCancelled reports whether cancellation was requested. Safe to pass as
// the engine's cancel check.
func (r *Reporter) IsCancelled() bool {
	return r.cancelled.Load()
}

// Start announces a new operation on path with the given input size.
func (r *Reporter) Start(action, path string, size int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.label = fmt.Sprintf("%s %s (%s)", action, path, units.HumanSize(float64(size)))
	r.lastLine = 0
}

// Progress draws the progress bar for the current operation.
// Safe to pass as the engine's progress callback.
func (r *Reporter) Progress(percent int) {
	if r.quiet {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	barWidth := 30
	filled := percent * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	line := fmt.Sprintf("\r[%s] %3d%% | %s", bar, percent, r.label)
	// The bar runes are multibyte, so stale-line clearing must count
	// runes, not bytes.
	width := utf8.RuneCountInString(line)
	if width < r.lastLine {
		line += strings.Repeat(" ", r.lastLine-width)
		width = r.lastLine
	}
	r.lastLine = width

	fmt.Fprint(r.out, line)
}

// Finish ends the progress line with the operation's outcome message.
func (r *Reporter) Finish(success bool, message string) {
	if r.quiet {
		if !success {
			fmt.Fprintln(r.out, message)
		}
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastLine > 0 {
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out, message)
	r.lastLine = 0
}
