package transient

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// ResultsLoader decodes stored results.
type ResultsLoader interface {
	Load(artifacts ports.ArtifactResults) (*domain.ResolvedResults, error)
}

// Cache decodes stored results at most once and hands the same graph to every caller.
// The blob is closed after the first decode attempt, whether it succeeded or not.
type Cache struct {
	loader ResultsLoader
	handle ports.BlobHandle
	tracer ports.Tracer

	mu      sync.Mutex
	loaded  bool
	results *domain.ResolvedResults
	err     error
}

// NewCache creates a Cache. handle must be the blob read by loader.
func NewCache(loader ResultsLoader, handle ports.BlobHandle, tracer ports.Tracer) *Cache {
	return &Cache{loader: loader, handle: handle, tracer: tracer}
}

// Load returns the decoded results, decoding them on the first call.
// A failed decode is not retried. A panicking loader is recorded as a failed decode.
func (c *Cache) Load(ctx context.Context, artifacts ports.ArtifactResults) (*domain.ResolvedResults, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.results, c.err
	}

	_, span := c.tracer.Start(ctx, "graphcache.load")
	defer span.End()

	c.results, c.err = c.decode(artifacts, span)
	c.loaded = true
	if c.err != nil {
		span.RecordError(c.err)
	} else {
		span.SetAttribute("root", c.results.Root.String())
		span.SetAttribute("first_level", len(c.results.FirstLevel))
	}
	return c.results, c.err
}

// decode runs the loader once and always closes the handle afterwards.
func (c *Cache) decode(artifacts ports.ArtifactResults, span ports.Span) (results *domain.ResolvedResults, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = zerr.With(zerr.Wrap(domain.ErrResultsLoadFailed, "decode panicked"), "panic", fmt.Sprint(r))
		}
		// A failed close leaves the decoded graph intact.
		if cerr := c.handle.Close(); cerr != nil {
			span.RecordError(zerr.Wrap(cerr, "close results blob"))
		}
	}()
	return c.loader.Load(artifacts)
}

// Close releases the blob if it was never decoded. Later loads fail with ErrBlobClosed.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return nil
	}
	c.loaded = true
	c.err = zerr.Wrap(domain.ErrBlobClosed, "load results")
	return c.handle.Close()
}
