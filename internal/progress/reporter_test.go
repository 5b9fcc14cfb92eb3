package progress

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestNewReporter(t *testing.T) {
	if _, ok := NewReporter(&bytes.Buffer{}, true).(Nop); !ok {
		t.Error("quiet should give a Nop reporter")
	}

	t.Setenv("CI", "true")
	if _, ok := NewReporter(&bytes.Buffer{}, false).(*CIReporter); !ok {
		t.Error("CI should give a CIReporter")
	}

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter(&bytes.Buffer{}, false).(*TerminalReporter); !ok {
		t.Error("expected a TerminalReporter outside CI")
	}
}

func TestCIReporterConcurrentAdvance(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{w: &buf}
	r.Start(20, "Rendering pages")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Advance(fmt.Sprintf("/docs/%d", i))
		}(i)
	}
	wg.Wait()
	r.Finish()

	out := buf.String()
	if !strings.HasPrefix(out, "Rendering pages: 20 pages\n") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "[20/20] ") {
		t.Errorf("last line should count to 20:\n%s", out)
	}
	if !strings.HasSuffix(out, "Rendering pages: done\n") {
		t.Errorf("missing footer:\n%s", out)
	}
}

func TestTerminalReporterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{w: &buf}
	r.Advance("before start") // no bar yet, must not panic
	r.Start(2, "Rendering pages")
	r.Advance("/")
	r.Advance("/docs")
	r.Finish()
	if buf.Len() == 0 {
		t.Error("progress bar should write to the configured writer")
	}
}
