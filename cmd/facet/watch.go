package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
)

// modelWatcher reloads a model file whenever it changes on disk.
type modelWatcher struct {
	w      *fsnotify.Watcher
	path   string
	meshes chan *models.Mesh
}

// newModelWatcher watches the directory holding path, so editors that
// replace the file by rename are still noticed.
func newModelWatcher(path string) (*modelWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return &modelWatcher{w: w, path: abs, meshes: make(chan *models.Mesh, 1)}, nil
}

// Meshes delivers successfully reloaded meshes.
func (mw *modelWatcher) Meshes() <-chan *models.Mesh { return mw.meshes }

func (mw *modelWatcher) Close() error { return mw.w.Close() }

// run forwards reloads until ctx is done or the watcher is closed.
func (mw *modelWatcher) run(ctx context.Context) {
	log := render.Logger().With("path", mw.path)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-mw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != mw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			mesh, err := models.Load(mw.path)
			if err != nil {
				// Half-written files fail here; the next write retries.
				log.Warn("reload failed", "err", err)
				continue
			}
			log.Debug("reloaded", "faces", mesh.TriangleCount())
			mw.deliver(ctx, mesh)
		case err, ok := <-mw.w.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", "err", err)
		}
	}
}

// deliver replaces any mesh the render loop has not picked up yet.
func (mw *modelWatcher) deliver(ctx context.Context, mesh *models.Mesh) {
	for {
		select {
		case mw.meshes <- mesh:
			return
		case <-ctx.Done():
			return
		default:
		}
		select {
		case <-mw.meshes:
		default:
		}
	}
}
