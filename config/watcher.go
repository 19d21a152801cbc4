package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"code.vegaprotocol.io/rgbwallet/logging"

	"github.com/fsnotify/fsnotify"
)

const namedLogger = "cfgwatcher"

// Watcher is looking for updates in the configuration file
type Watcher struct {
	log  *logging.Logger
	cfg  Config
	path string

	cfgUpdateListeners []func(Config)
	mu                 sync.Mutex
}

// NewWatcher reads the configuration at path, then reads it again, and
// notifies the listeners, every time the file is written. It stops when ctx
// is done. The file is not validated, the command line may complete it.
func NewWatcher(ctx context.Context, log *logging.Logger, path string) (*Watcher, error) {
	w := &Watcher{
		log:                log.Named(namedLogger),
		cfg:                NewDefaultConfig(),
		path:               filepath.Clean(path),
		cfgUpdateListeners: []func(Config){},
	}

	cfg, err := Read(w.path)
	if err != nil {
		return nil, err
	}
	w.cfg = *cfg

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors replace the file instead of writing it in place, so the folder
	// is watched.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	w.log.Info("config watcher started successfully",
		logging.String("config", w.path))

	go w.watch(ctx, watcher)

	return w, nil
}

// Get return the last update of the configuration
func (w *Watcher) Get() Config {
	w.mu.Lock()
	conf := w.cfg
	w.mu.Unlock()
	return conf
}

// OnConfigUpdate register a function to be called when the configuration is getting updated
func (w *Watcher) OnConfigUpdate(fns ...func(Config)) {
	w.mu.Lock()
	w.cfgUpdateListeners = append(w.cfgUpdateListeners, fns...)
	w.mu.Unlock()
}

func (w *Watcher) reload() error {
	cfg, err := Read(w.path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.cfg = *cfg
	listeners := make([]func(Config), len(w.cfgUpdateListeners))
	copy(listeners, w.cfgUpdateListeners)
	w.mu.Unlock()

	for _, f := range listeners {
		f(*cfg)
	}
	return nil
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// the file is sometimes empty right after the event
			time.Sleep(50 * time.Millisecond)
			w.log.Info("configuration updated", logging.String("event", event.String()))
			if err := w.reload(); err != nil {
				w.log.Error("unable to load configuration", logging.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("config watcher received error event", logging.Error(err))
		case <-ctx.Done():
			w.log.Debug("config watcher stopped")
			return
		}
	}
}
