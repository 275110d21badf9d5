package resolution

import (
	"context"
	"errors"
	"slices"
	"strconv"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/transient"
	"go.trai.ch/zerr"
)

// Result is a lenient view of a resolved configuration: unresolved dependencies are
// reported instead of failing, and the result graph is decoded on first access.
type Result struct {
	configuration string
	unresolved    []domain.UnresolvedDependency
	artifacts     ports.ArtifactResults
	cache         *transient.Cache
}

// Configuration returns the name of the resolved configuration.
func (r *Result) Configuration() string {
	return r.configuration
}

// HasError reports whether any dependency could not be resolved.
func (r *Result) HasError() bool {
	return len(r.unresolved) > 0
}

// Unresolved returns the dependencies that could not be resolved.
func (r *Result) Unresolved() []domain.UnresolvedDependency {
	return r.unresolved
}

// Rethrow returns an error describing every unresolved dependency, or nil.
func (r *Result) Rethrow() error {
	if !r.HasError() {
		return nil
	}
	head := zerr.Wrap(domain.ErrResolveFailed, "resolve configuration "+strconv.Quote(r.configuration))
	head = zerr.With(head, "configuration", r.configuration)
	head = zerr.With(head, "unresolved", len(r.unresolved))

	errs := []error{head}
	for _, u := range r.unresolved {
		if u.Problem == nil {
			continue
		}
		errs = append(errs, zerr.With(zerr.Wrap(u.Problem, "could not resolve "+u.Selector.String()), "selector", u.Selector.String()))
	}
	return errors.Join(errs...)
}

// Root returns the root of the result graph.
func (r *Result) Root(ctx context.Context) (*domain.ResolvedDependency, error) {
	res, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return res.Root, nil
}

// Results returns the decoded result graph together with the request of every
// first-level dependency.
func (r *Result) Results(ctx context.Context) (*domain.ResolvedResults, error) {
	return r.load(ctx)
}

// FirstLevel returns the distinct direct dependencies of the root whose request
// satisfies filter.
func (r *Result) FirstLevel(ctx context.Context, filter domain.RequestFilter) ([]*domain.ResolvedDependency, error) {
	res, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.ResolvedDependency
	for _, fl := range res.FirstLevel {
		if filter(fl.Request) && !slices.Contains(out, fl.Node) {
			out = append(out, fl.Node)
		}
	}
	return out, nil
}

// AllDependencies returns every node reachable from the root, breadth-first,
// excluding the root itself.
func (r *Result) AllDependencies(ctx context.Context) ([]*domain.ResolvedDependency, error) {
	res, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[*domain.ResolvedDependency]bool{res.Root: true}
	var out []*domain.ResolvedDependency
	queue := slices.Clone(res.Root.Children())
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		queue = append(queue, n.Children()...)
	}
	return out, nil
}

// Artifacts returns the artifacts of the first-level dependencies matching filter and
// of everything they depend on. Each dependency contributes the artifacts selected on
// the edge it was reached through plus its own module artifacts.
func (r *Result) Artifacts(ctx context.Context, filter domain.RequestFilter) ([]domain.Artifact, error) {
	res, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Artifact
	seenArtifact := make(map[domain.Artifact]bool)
	add := func(artifacts []domain.Artifact) {
		for _, a := range artifacts {
			if !seenArtifact[a] {
				seenArtifact[a] = true
				out = append(out, a)
			}
		}
	}

	type visit struct{ parent, node *domain.ResolvedDependency }
	seenEdge := make(map[visit]bool)
	var walk func(parent, node *domain.ResolvedDependency)
	walk = func(parent, node *domain.ResolvedDependency) {
		if seenEdge[visit{parent, node}] {
			return
		}
		seenEdge[visit{parent, node}] = true
		add(node.ArtifactsFor(parent))
		add(node.ModuleArtifacts())
		for _, child := range node.Children() {
			walk(node, child)
		}
	}

	for _, fl := range res.FirstLevel {
		if filter(fl.Request) {
			walk(res.Root, fl.Node)
		}
	}
	return out, nil
}

// Close releases the stored results if they were never decoded.
func (r *Result) Close() error {
	return r.cache.Close()
}

func (r *Result) load(ctx context.Context) (*domain.ResolvedResults, error) {
	return r.cache.Load(ctx, r.artifacts)
}
