package opengl

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Reloadable is a program that can be rebuilt from its source files.
type Reloadable interface {
	Name() string
	ReloadFiles(vertPath, fragPath string) error
}

type watchedProgram struct {
	program    Reloadable
	vert, frag string
}

// ShaderWatcher relinks programs when their source files change on disk.
// Events are drained without blocking from Update, so reloads happen on the
// render thread between frames. It satisfies renderer.Drawable.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	byPath  map[string]*watchedProgram
	dirs    map[string]bool
	log     *slog.Logger

	closeOnce sync.Once
}

func NewShaderWatcher(logger *slog.Logger) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	return &ShaderWatcher{
		watcher: w,
		byPath:  make(map[string]*watchedProgram),
		dirs:    make(map[string]bool),
		log:     logger,
	}, nil
}

// Watch reloads p whenever vertPath or fragPath is written. The parent
// directories are watched since editors often replace files on save.
func (w *ShaderWatcher) Watch(p Reloadable, vertPath, fragPath string) error {
	entry := &watchedProgram{program: p, vert: vertPath, frag: fragPath}
	for _, path := range []string{vertPath, fragPath} {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("watch %q: %w", path, err)
		}
		dir := filepath.Dir(abs)
		if !w.dirs[dir] {
			if err := w.watcher.Add(dir); err != nil {
				return fmt.Errorf("watch %q: %w", dir, err)
			}
			w.dirs[dir] = true
		}
		w.byPath[abs] = entry
	}
	return nil
}

// Update reloads every program touched since the last call.
func (w *ShaderWatcher) Update() {
	var dirty []*watchedProgram
	seen := make(map[*watchedProgram]bool)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.reload(dirty)
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if entry, ok := w.byPath[abs]; ok && !seen[entry] {
				seen[entry] = true
				dirty = append(dirty, entry)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.reload(dirty)
				return
			}
			w.log.Warn("shader watcher", "error", err)
		default:
			w.reload(dirty)
			return
		}
	}
}

func (w *ShaderWatcher) reload(dirty []*watchedProgram) {
	for _, e := range dirty {
		if err := e.program.ReloadFiles(e.vert, e.frag); err != nil {
			w.log.Error("shader reload failed, keeping previous program", "program", e.program.Name(), "error", err)
			continue
		}
		w.log.Info("shader reloaded", "program", e.program.Name())
	}
}

func (w *ShaderWatcher) Draw() {}

func (w *ShaderWatcher) Destroy() {
	w.closeOnce.Do(func() {
		if err := w.watcher.Close(); err != nil {
			w.log.Warn("close shader watcher", "error", err)
		}
	})
}
