package app

import (
	"context"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/graphcache/internal/adapters/watcher"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch resolves the documents found for args once and again every time one of them
// changes, until ctx is done. Failures are logged and do not stop watching.
func (a *App) Watch(ctx context.Context, args []string, opts ResolveOptions) error {
	if a.watcher == nil {
		return zerr.Wrap(domain.ErrWatchFailed, "no watcher configured")
	}
	docs, err := a.findDocuments(args)
	if err != nil {
		return err
	}

	byPath := make(map[string]string, len(docs))
	for _, doc := range docs {
		abs, err := filepath.Abs(doc)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "document", doc)
		}
		byPath[abs] = doc
	}

	var mu sync.Mutex
	rerun := func(changed []string) {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		if err := a.Resolve(ctx, changed, opts); err != nil {
			a.logger.Error(err)
		}
	}

	rerun(docs)

	if err := a.watcher.Start(ctx, docs); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		changed := make([]string, 0, len(paths))
		for _, p := range paths {
			if doc, ok := byPath[p]; ok && !slices.Contains(changed, doc) {
				changed = append(changed, doc)
			}
		}
		if len(changed) > 0 {
			a.logger.Info("change detected, resolving again")
			rerun(changed)
		}
	})

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}
	return nil
}
