package host

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/darkslide/internal/logging"
)

// Watcher turns writes to appearance.json into payload-free theme-change
// notifications. Receivers must re-query the active theme.
type Watcher struct {
	fs     *fsnotify.Watcher
	target string
	logger hclog.Logger

	notify chan struct{}
	done   chan struct{}
}

// NewWatcher watches the vault's configuration directory. The directory is
// watched rather than the file because editors and the host replace the
// file on save.
func NewWatcher(v *Vault, logger hclog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fsw.Add(v.ConfigPath()); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", v.ConfigPath(), err)
	}

	w := &Watcher{
		fs:     fsw,
		target: filepath.Clean(v.AppearancePath()),
		logger: logging.OrNull(logger).Named("watcher"),
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Notifications delivers one value per burst of changes. It is closed when
// the watcher stops.
func (w *Watcher) Notifications() <-chan struct{} {
	return w.notify
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.notify)

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			w.logger.Trace("appearance changed", "op", event.Op.String())
			// Coalesce: a pending notification already implies a re-query.
			select {
			case w.notify <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}
