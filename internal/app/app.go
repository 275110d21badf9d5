// Package app implements the application layer for graphcache.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/graphcache/internal/adapters/telemetry"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/resolution"
	"go.trai.ch/graphcache/internal/ui/output"
	"go.trai.ch/graphcache/internal/ui/report"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader   ports.ResolutionLoader
	stores   ports.StoreFactory
	tracer   ports.Tracer
	logger   ports.Logger
	watcher  ports.Watcher
	finder   ports.DocumentFinder
	progress ports.Progress
	settings domain.Settings
	out      io.Writer
	profile  termenv.Profile
}

// New creates a new App instance.
func New(
	loader ports.ResolutionLoader,
	stores ports.StoreFactory,
	tracer ports.Tracer,
	log ports.Logger,
	settings domain.Settings,
) *App {
	a := &App{
		loader:   loader,
		stores:   stores,
		tracer:   tracer,
		logger:   log,
		settings: settings,
	}
	return a.WithOutput(os.Stdout)
}

// WithOutput sets where reports are written. Colors are only used when w is a terminal.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	a.profile = termenv.Ascii
	if output.IsTerminal(w) {
		a.profile = output.ColorProfile()
	}
	return a
}

// WithWatcher sets the watcher used by Watch.
func (a *App) WithWatcher(w ports.Watcher) *App {
	a.watcher = w
	return a
}

// WithFinder sets how document arguments are expanded. Without a finder the
// arguments are used as paths.
func (a *App) WithFinder(f ports.DocumentFinder) *App {
	a.finder = f
	return a
}

// WithProgress sets an observer that is told when each document starts and finishes.
func (a *App) WithProgress(p ports.Progress) *App {
	a.progress = p
	return a
}

func (a *App) findDocuments(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, domain.ErrNoDocumentsSpecified
	}
	if a.finder == nil {
		return args, nil
	}
	docs, err := a.finder.Find(args)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNoDocumentsSpecified
	}
	return docs, nil
}

// ResolveOptions configures Resolve and Watch.
type ResolveOptions struct {
	// Lenient reports unresolved dependencies without failing.
	Lenient bool
	// Trace logs the duration of every resolution span.
	Trace bool
}

type outcome struct {
	summary    *report.Summary
	unresolved error
}

// Resolve stores, reloads and reports the resolution of every document found for args.
// Documents are processed in parallel. Reports are written in argument order.
func (a *App) Resolve(ctx context.Context, args []string, opts ResolveOptions) error {
	docs, err := a.findDocuments(args)
	if err != nil {
		return err
	}

	tracer := a.tracer
	if opts.Trace {
		tp := telemetry.NewProvider(telemetry.NewBridge(a.logger))
		defer func() { _ = tp.Shutdown(context.WithoutCancel(ctx)) }()
		tracer = telemetry.NewOTelTracerFrom(tp, telemetry.InstrumentationName)
	}

	if a.progress != nil {
		a.progress.Begin(ctx, docs)
	}
	outcomes := make([]outcome, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.settings.Parallelism, 1))
	for i, doc := range docs {
		g.Go(func() error {
			a.started(doc)
			o, err := a.resolveDocument(gctx, doc, tracer)
			a.finished(doc, o, err)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "resolve document"), "document", doc)
			}
			outcomes[i] = o
			return nil
		})
	}
	err = g.Wait()
	if a.progress != nil {
		a.progress.End()
	}
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(a.out, a.profile)
	var failed []error
	for _, o := range outcomes {
		if err := renderer.Render(*o.summary); err != nil {
			return zerr.Wrap(err, "write report")
		}
		if o.unresolved != nil {
			failed = append(failed, o.unresolved)
		}
	}

	if opts.Lenient || len(failed) == 0 {
		return nil
	}
	return errors.Join(failed...)
}

func (a *App) started(doc string) {
	if a.progress != nil {
		a.progress.Started(doc)
	}
}

func (a *App) finished(doc string, o outcome, err error) {
	if a.progress == nil {
		return
	}
	unresolved := 0
	if o.summary != nil {
		unresolved = len(o.summary.Unresolved)
	}
	a.progress.Finished(doc, unresolved, err)
}

func (a *App) resolveDocument(ctx context.Context, doc string, tracer ports.Tracer) (outcome, error) {
	res, err := a.loader.Load(doc)
	if err != nil {
		return outcome{}, err
	}

	store, err := a.stores.NewStore()
	if err != nil {
		return outcome{}, err
	}

	result, err := resolution.Resolve(ctx, res, store, tracer)
	if err != nil {
		if ab, ok := store.(interface{ Abort() error }); ok {
			_ = ab.Abort()
		}
		return outcome{}, err
	}
	defer func() { _ = result.Close() }()

	summary, err := summarize(ctx, doc, result)
	if err != nil {
		return outcome{}, err
	}
	return outcome{summary: summary, unresolved: result.Rethrow()}, nil
}

func summarize(ctx context.Context, doc string, result *resolution.Result) (*report.Summary, error) {
	results, err := result.Results(ctx)
	if err != nil {
		return nil, err
	}
	deps, err := result.AllDependencies(ctx)
	if err != nil {
		return nil, err
	}
	artifacts, err := result.Artifacts(ctx, domain.AllRequests)
	if err != nil {
		return nil, err
	}

	s := &report.Summary{
		Document:      doc,
		Configuration: result.Configuration(),
		Root:          results.Root.Component,
		Dependencies:  len(deps),
		Artifacts:     artifacts,
		Unresolved:    result.Unresolved(),
	}
	for _, fl := range results.FirstLevel {
		s.FirstLevel = append(s.FirstLevel, report.FirstLevel{Request: fl.Request, Component: fl.Node.Component})
	}
	return s, nil
}
