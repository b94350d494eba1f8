package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/moltbot/gateway/internal/gperr"
	"github.com/moltbot/gateway/internal/logging"
)

// Watch reloads the config whenever path is rewritten and hands the
// result to onChange. Parse failures are logged and skipped, the
// previous config stays active.
//
// Watching stops when ctx is canceled.
func Watch(ctx context.Context, path string, onChange func(*Config)) gperr.Error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return gperr.Wrap(err, "unable to create fs watcher")
	}
	// watch the directory: editors replace the file on save,
	// which drops a watch registered on the file itself
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return gperr.Wrap(err, "unable to watch config directory")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return gperr.Wrap(err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				evAbs, err := filepath.Abs(event.Name)
				if err != nil || evAbs != abs {
					continue
				}
				cfg, loadErr := Load(path)
				if loadErr != nil {
					gperr.LogWarn("config reload skipped", loadErr)
					continue
				}
				logging.Info().Str("path", path).Msg("config reloaded")
				onChange(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				gperr.LogWarn("config watcher error", err)
			}
		}
	}()
	return nil
}
