package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	rebuilt := make(chan struct{}, 10)

	w := &Watcher{
		Dirs:     []string{dir, filepath.Join(dir, "missing")},
		Debounce: 20 * time.Millisecond,
		Rebuild: func(context.Context) error {
			rebuilt <- struct{}{}
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before the first write.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "faq.md"), []byte("# FAQ\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, rebuilt, "rebuild after write")

	sub := filepath.Join(dir, "docs")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	waitFor(t, rebuilt, "rebuild after mkdir")
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(sub, "scan.md"), []byte("scan\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, rebuilt, "rebuild after write in new directory")

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestRebuildErrorKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	calls := make(chan struct{}, 10)

	w := &Watcher{
		Dirs:     []string{dir},
		Debounce: 20 * time.Millisecond,
		Rebuild: func(context.Context) error {
			calls <- struct{}{}
			return errors.New("broken page")
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	for i, name := range []string{"a.md", "b.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		waitFor(t, calls, "rebuild "+string(rune('1'+i)))
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestRunRequiresRebuild(t *testing.T) {
	if err := (&Watcher{}).Run(context.Background()); err == nil {
		t.Error("expected error without Rebuild")
	}
}
