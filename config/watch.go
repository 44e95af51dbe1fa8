package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce batches the burst of events an editor produces on save.
const debounce = 100 * time.Millisecond

// Watch reloads path whenever it is written and hands the result to fn. The
// parent directory is watched so editors that replace the file on save are
// still seen. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watch: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("config watch %s: %w", dir, err)
	}
	name := filepath.Clean(path)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("config watch: %w", err))

		case <-timer.C:
			cfg, err := LoadFile(path)
			if err == nil {
				err = cfg.Validate()
			}
			if err != nil {
				fn(nil, err)
				continue
			}
			fn(cfg, nil)
		}
	}
}
