// Package watch regenerates the summary whenever the note collection changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultDebounce spaces out regeneration runs while an editor is still
// writing.
const DefaultDebounce = 500 * time.Millisecond

// Options configures a watch run.
type Options struct {
	// Root is the notes directory to watch, recursively.
	Root string
	// OutputFileName is the generated summary file; events for it are
	// ignored so the regeneration does not retrigger itself.
	OutputFileName string
	// Debounce delays regeneration after the last observed event.
	// DefaultDebounce is used when zero.
	Debounce time.Duration
	// Logger receives watch lifecycle and failure messages.
	Logger *zap.Logger
}

// Run watches the notes tree and invokes regenerate after each debounced burst
// of changes. Every invocation is expected to redo the whole
// scan-build-render-write pipeline; nothing is updated incrementally. Run
// returns when the context is canceled or the watcher fails.
func Run(ctx context.Context, options Options, regenerate func() error) error {
	if options.Root == "" {
		return fmt.Errorf("watch: root directory is empty")
	}
	if regenerate == nil {
		return fmt.Errorf("watch: regenerate callback is nil")
	}
	debounce := options.Debounce
	if debounce == 0 {
		debounce = DefaultDebounce
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	watcher, watcherError := fsnotify.NewWatcher()
	if watcherError != nil {
		return fmt.Errorf("create file watcher: %w", watcherError)
	}
	defer watcher.Close()

	if addError := addDirectoryTree(watcher, options.Root); addError != nil {
		return addError
	}
	logger.Info("watching notes directory", zap.String("root", options.Root))

	changed := make(chan struct{}, 1)
	group, watchCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		for {
			select {
			case <-watchCtx.Done():
				return watchCtx.Err()
			case event, ok := <-watcher.Events:
				if !ok {
					return fmt.Errorf("watch: event channel closed")
				}
				if !isRelevant(event, options.OutputFileName) {
					continue
				}
				if event.Op.Has(fsnotify.Create) {
					// New directories must be watched as well.
					if info, statError := os.Stat(event.Name); statError == nil && info.IsDir() {
						if addError := addDirectoryTree(watcher, event.Name); addError != nil {
							logger.Warn("watch new directory", zap.Error(addError))
						}
					}
				}
				select {
				case changed <- struct{}{}:
				default:
				}
			case watchError, ok := <-watcher.Errors:
				if !ok {
					return fmt.Errorf("watch: error channel closed")
				}
				logger.Warn("file watcher error", zap.Error(watchError))
			}
		}
	})

	group.Go(func() error {
		var timer *time.Timer
		var pending <-chan time.Time
		for {
			select {
			case <-watchCtx.Done():
				return watchCtx.Err()
			case <-changed:
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounce)
				}
				pending = timer.C
			case <-pending:
				pending = nil
				if regenerateError := regenerate(); regenerateError != nil {
					logger.Warn("regeneration failed", zap.Error(regenerateError))
					continue
				}
				logger.Info("summary regenerated")
			}
		}
	})

	if waitError := group.Wait(); waitError != nil && !errors.Is(waitError, context.Canceled) {
		return waitError
	}
	return nil
}

// addDirectoryTree registers path and every non-hidden directory below it.
func addDirectoryTree(watcher *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			// The entry may have vanished between event and walk.
			return nil
		}
		if !directoryEntry.IsDir() {
			return nil
		}
		if currentPath != path && strings.HasPrefix(directoryEntry.Name(), ".") {
			return filepath.SkipDir
		}
		if addError := watcher.Add(currentPath); addError != nil {
			return fmt.Errorf("watch directory %s: %w", currentPath, addError)
		}
		return nil
	})
}

// isRelevant filters out events for hidden entries and for the generated
// summary file itself.
func isRelevant(event fsnotify.Event, outputFileName string) bool {
	baseName := filepath.Base(event.Name)
	if strings.HasPrefix(baseName, ".") {
		return false
	}
	if outputFileName != "" && baseName == filepath.Base(outputFileName) {
		return false
	}
	return true
}
