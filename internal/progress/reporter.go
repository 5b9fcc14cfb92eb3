package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while pages render. Advance may be
// called from several goroutines.
type Reporter interface {
	Start(total int, label string)
	Advance(message string)
	Finish()
}

// NewReporter returns a CIReporter if the CI environment variable is set,
// a no-op reporter when quiet, and a TerminalReporter otherwise.
func NewReporter(w io.Writer, quiet bool) Reporter {
	if quiet {
		return Nop{}
	}
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	w   io.Writer
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Advance(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	w       io.Writer
	mu      sync.Mutex
	label   string
	total   int
	current int
}

func (r *CIReporter) Start(total int, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total, r.label, r.current = total, label, 0
	fmt.Fprintf(r.w, "%s: %d pages\n", label, total)
}

func (r *CIReporter) Advance(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current++
	fmt.Fprintf(r.w, "[%d/%d] %s\n", r.current, r.total, message)
}

func (r *CIReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "%s: done\n", r.label)
}

// Nop reports nothing.
type Nop struct{}

func (Nop) Start(int, string) {}
func (Nop) Advance(string)    {}
func (Nop) Finish()           {}
