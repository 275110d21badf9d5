package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/graphcache/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/graphcache/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/graphcache/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/graphcache/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/graphcache/internal/adapters/settings" //nolint:depguard // Wired in app layer
	"go.trai.ch/graphcache/internal/adapters/telemetry"
	"go.trai.ch/graphcache/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/tui"
	"go.trai.ch/graphcache/internal/ui/output"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			settings.NodeID,
			watcher.NodeID,
			fs.FinderNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ResolutionLoader](ctx)
	if err != nil {
		return nil, err
	}
	stores, err := graft.Dep[ports.StoreFactory](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	s, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	finder, err := graft.Dep[ports.DocumentFinder](ctx)
	if err != nil {
		return nil, err
	}
	a := New(loader, stores, tracer, log, s).WithWatcher(w).WithFinder(finder)
	if !s.JSONLogs && output.IsTerminal(os.Stderr) {
		a.WithProgress(tui.NewReporter(os.Stderr))
	}
	return a, nil
}
