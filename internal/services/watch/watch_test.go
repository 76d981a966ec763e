package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dvogt23/book-summary/internal/services/watch"
)

func TestRunRejectsBadOptions(t *testing.T) {
	testCases := []struct {
		name       string
		options    watch.Options
		regenerate func() error
	}{
		{name: "empty root", options: watch.Options{}, regenerate: func() error { return nil }},
		{name: "nil callback", options: watch.Options{Root: t.TempDir()}, regenerate: nil},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if runError := watch.Run(context.Background(), testCase.options, testCase.regenerate); runError == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestRunRegeneratesOnChange(t *testing.T) {
	notesDirectory := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	regenerated := make(chan struct{}, 8)
	runDone := make(chan error, 1)
	go func() {
		runDone <- watch.Run(ctx, watch.Options{
			Root:           notesDirectory,
			OutputFileName: "SUMMARY.md",
			Debounce:       50 * time.Millisecond,
		}, func() error {
			regenerated <- struct{}{}
			return nil
		})
	}()

	// Give the watcher a moment to register before producing events.
	time.Sleep(200 * time.Millisecond)
	if writeError := os.WriteFile(filepath.Join(notesDirectory, "note.md"), []byte("# note\n"), 0o644); writeError != nil {
		t.Fatalf("write note: %v", writeError)
	}

	select {
	case <-regenerated:
	case <-time.After(5 * time.Second):
		t.Fatalf("expected regeneration after a change")
	}

	cancel()
	select {
	case runError := <-runDone:
		if runError != nil {
			t.Fatalf("expected clean shutdown, got %v", runError)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not stop after cancellation")
	}
}

func TestRunIgnoresOutputFile(t *testing.T) {
	notesDirectory := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	regenerated := make(chan struct{}, 8)
	go func() {
		_ = watch.Run(ctx, watch.Options{
			Root:           notesDirectory,
			OutputFileName: "SUMMARY.md",
			Debounce:       50 * time.Millisecond,
		}, func() error {
			regenerated <- struct{}{}
			return nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	if writeError := os.WriteFile(filepath.Join(notesDirectory, "SUMMARY.md"), []byte("# Summary\n"), 0o644); writeError != nil {
		t.Fatalf("write summary: %v", writeError)
	}

	select {
	case <-regenerated:
		t.Fatalf("the generated summary must not retrigger regeneration")
	case <-time.After(500 * time.Millisecond):
	}
}
