// Package watch reloads files when they change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce collapses the burst of events one save produces.
const DefaultDebounce = 250 * time.Millisecond

// FileWatcher calls OnChange after path is written, created or renamed
// into place. The parent directory is watched so editors that replace
// the file keep triggering reloads.
type FileWatcher struct {
	Path     string
	Debounce time.Duration
	OnChange func(path string)
}

// Run watches until ctx is done.
func (w FileWatcher) Run(ctx context.Context) error {
	abs, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", w.Path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", w.Path, err)
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", w.Path, err)
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	logger := log.With().Str("component", "watch").Str("path", abs).Logger()
	logger.Info().Msg("watching file")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")
		case <-timer.C:
			logger.Info().Msg("file changed")
			if w.OnChange != nil {
				w.OnChange(abs)
			}
		}
	}
}
