package prove

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settleDelay lets an editor finish writing before the file is re-read.
const settleDelay = 100 * time.Millisecond

// Watcher re-proves claim files whenever they are written.
type Watcher struct {
	engine   Engine
	logger   *zap.Logger
	onResult func(Result)
	onError  func(path string, err error)
}

// NewWatcher creates a Watcher. onResult receives every fresh result;
// onError receives read and parse failures. Either may be nil.
func NewWatcher(engine Engine, logger *zap.Logger, onResult func(Result), onError func(string, error)) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if onResult == nil {
		onResult = func(Result) {}
	}
	if onError == nil {
		onError = func(string, error) {}
	}
	return &Watcher{engine: engine, logger: logger, onResult: onResult, onError: onError}
}

// Watch blocks until ctx is done, handling write events below dirs.
func (w *Watcher) Watch(ctx context.Context, dirs []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}
	w.logger.Info("watching for claim changes", zap.Strings("dirs", dirs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !hasClaimExtension(event.Name) {
		return
	}

	time.Sleep(settleDelay)
	res, err := w.engine.Prove(event.Name)
	if err != nil {
		w.logger.Error("error proving file", zap.String("file", event.Name), zap.Error(err))
		w.onError(event.Name, err)
		return
	}
	w.logger.Debug("re-proved claim", zap.String("file", event.Name), zap.Bool("closed", res.Closed))
	w.onResult(res)
}
