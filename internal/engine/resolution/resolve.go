package resolution

import (
	"context"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/failures"
	"go.trai.ch/graphcache/internal/engine/transient"
	"go.trai.ch/zerr"
)

// Resolve stores the graph of res in store and collects its failures.
// The returned Result decodes the stored graph on first use.
func Resolve(ctx context.Context, res *domain.Resolution, store ports.BinaryStore, tracer ports.Tracer) (*Result, error) {
	_, span := tracer.Start(ctx, "graphcache.resolve")
	defer span.End()
	span.SetAttribute("configuration", res.Configuration)

	if err := res.Graph.Validate(); err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, "resolve configuration"), "configuration", res.Configuration)
	}
	span.SetAttribute("nodes", res.Graph.Len())

	builder := transient.NewBuilder(store)
	collector := failures.NewCollector()
	if err := Walk(res.Graph, newResultsVisitor(builder, res.Requests), collector); err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, "store resolution results"), "configuration", res.Configuration)
	}

	stored, err := builder.Complete()
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, "store resolution results"), "configuration", res.Configuration)
	}

	unresolved := collector.Complete(res.Extra)
	span.SetAttribute("unresolved", len(unresolved))

	loader := transient.NewLoader(stored.Handle, stored.Requests)
	return &Result{
		configuration: res.Configuration,
		unresolved:    unresolved,
		artifacts:     res.Artifacts,
		cache:         transient.NewCache(loader, stored.Handle, tracer),
	}, nil
}
