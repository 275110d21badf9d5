package resolution_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/internal/adapters/memstore"
	"go.trai.ch/graphcache/internal/adapters/telemetry"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/engine/resolution"
)

var errNotFound = errors.New("could not find g:missing:1")

func sel(module, version string) domain.ComponentSelector {
	return domain.ComponentSelector{Group: "g", Module: module, Version: version}
}

// newResolution builds:
//
//	root -> a (api) -> x
//	root -> b (impl) -> x
//	x -> missing (failed)
//	root -> y (undeclared)
func newResolution(t *testing.T) *domain.Resolution {
	t.Helper()

	g := domain.NewGraph()
	for i, m := range []string{"root", "a", "b", "x", "y"} {
		_, err := g.AddNode(int64(i), domain.NewModuleVersionID("g", m, "1"), "runtime")
		require.NoError(t, err)
	}
	require.NoError(t, g.SetRoot(0))
	require.NoError(t, g.Connect(0, 1, sel("a", "1"), 1))
	require.NoError(t, g.Connect(0, 2, sel("b", "1.+"), 2))
	require.NoError(t, g.Connect(0, 4, sel("y", "1"), 5))
	require.NoError(t, g.Connect(1, 3, sel("x", "1"), 3))
	require.NoError(t, g.Connect(2, 3, sel("x", "1"), 4))
	require.NoError(t, g.Fail(3, sel("missing", "1"), errNotFound))
	require.NoError(t, g.SetNodeArtifacts(3, 6))

	art := func(id int, name string) domain.ArtifactSet {
		return domain.ArtifactSet{ID: id, Artifacts: []domain.Artifact{{Name: name, Extension: "jar"}}}
	}
	return &domain.Resolution{
		Configuration: "runtimeClasspath",
		Graph:         g,
		Requests: []domain.DependencyRequest{
			{Selector: sel("a", "1"), Reason: "api"},
			{Selector: sel("b", "1.+"), Reason: "impl"},
		},
		Artifacts: domain.ArtifactTable{
			1: art(1, "a"),
			2: art(2, "b"),
			3: art(3, "x"),
			4: art(4, "x"),
			5: art(5, "y"),
			6: art(6, "x-extra"),
		},
	}
}

func byReason(reason string) domain.RequestFilter {
	return func(r domain.DependencyRequest) bool { return r.Reason == reason }
}

func names(nodes []*domain.ResolvedDependency) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Component.Module.String()
	}
	return out
}

func TestResolve_LenientResult(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res, err := resolution.Resolve(ctx, newResolution(t), memstore.New(), telemetry.NewNoOpTracer())
	require.NoError(t, err)
	assert.Equal(t, "runtimeClasspath", res.Configuration())

	t.Run("unresolved", func(t *testing.T) {
		require.True(t, res.HasError())
		require.Len(t, res.Unresolved(), 1)
		u := res.Unresolved()[0]
		assert.Equal(t, sel("missing", "1"), u.Selector)
		require.Len(t, u.Paths, 2)
		assert.Equal(t, "g:root:1 > g:a:1 > g:x:1", u.Paths[0].String())
		assert.Equal(t, "g:root:1 > g:b:1 > g:x:1", u.Paths[1].String())
	})

	t.Run("rethrow", func(t *testing.T) {
		err := res.Rethrow()
		require.ErrorIs(t, err, domain.ErrResolveFailed)
		require.ErrorIs(t, err, errNotFound)
		assert.ErrorContains(t, err, `resolve configuration "runtimeClasspath"`)
		assert.ErrorContains(t, err, "could not resolve g:missing:1")
	})

	t.Run("root", func(t *testing.T) {
		root, err := res.Root(ctx)
		require.NoError(t, err)
		assert.Equal(t, "g:root:1", root.String())
	})

	t.Run("first level", func(t *testing.T) {
		all, err := res.FirstLevel(ctx, domain.AllRequests)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "y"}, names(all))

		api, err := res.FirstLevel(ctx, byReason("api"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, names(api))
	})

	t.Run("all dependencies", func(t *testing.T) {
		deps, err := res.AllDependencies(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "y", "x"}, names(deps))
	})

	t.Run("artifacts", func(t *testing.T) {
		arts, err := res.Artifacts(ctx, byReason("impl"))
		require.NoError(t, err)
		assert.Equal(t, []domain.Artifact{
			{Name: "b", Extension: "jar"},
			{Name: "x", Extension: "jar"},
			{Name: "x-extra", Extension: "jar"},
		}, arts)

		all, err := res.Artifacts(ctx, domain.AllRequests)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})
}

func TestResolve_FirstLevelRequestedTwice(t *testing.T) {
	t.Parallel()

	g := domain.NewGraph()
	for i, m := range []string{"root", "a"} {
		_, err := g.AddNode(int64(i), domain.NewModuleVersionID("g", m, "1"), "runtime")
		require.NoError(t, err)
	}
	require.NoError(t, g.SetRoot(0))
	require.NoError(t, g.Connect(0, 1, sel("a", "1"), 1))
	require.NoError(t, g.Connect(0, 1, sel("a", "1"), 1))
	require.NoError(t, g.Connect(0, 1, sel("a", "1.+"), 1))

	in := &domain.Resolution{
		Configuration: "c",
		Graph:         g,
		Requests: []domain.DependencyRequest{
			{Selector: sel("a", "1"), Reason: "api"},
			{Selector: sel("a", "1.+"), Reason: "test"},
		},
		Artifacts: domain.ArtifactTable{1: {ID: 1}},
	}

	ctx := context.Background()
	res, err := resolution.Resolve(ctx, in, memstore.New(), telemetry.NewNoOpTracer())
	require.NoError(t, err)

	results, err := res.Results(ctx)
	require.NoError(t, err)
	require.Len(t, results.FirstLevel, 2)
	assert.Equal(t, "api", results.FirstLevel[0].Request.Reason)
	assert.Equal(t, "test", results.FirstLevel[1].Request.Reason)
	assert.Equal(t, []string{"a"}, names(results.FirstLevelNodes()))

	all, err := res.FirstLevel(ctx, domain.AllRequests)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names(all))
}

func TestResolve_NoFailures(t *testing.T) {
	t.Parallel()

	g := domain.NewGraph()
	_, err := g.AddNode(0, domain.NewModuleVersionID("g", "root", "1"), "")
	require.NoError(t, err)
	require.NoError(t, g.SetRoot(0))

	res, err := resolution.Resolve(context.Background(), &domain.Resolution{Configuration: "c", Graph: g}, memstore.New(), telemetry.NewNoOpTracer())
	require.NoError(t, err)
	assert.False(t, res.HasError())
	assert.Nil(t, res.Unresolved())
	require.NoError(t, res.Rethrow())

	deps, err := res.AllDependencies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestResolve_ExtraFailures(t *testing.T) {
	t.Parallel()

	in := newResolution(t)
	invalid := errors.New("invalid selector")
	in.Extra = []domain.UnresolvedDependency{{Selector: domain.ComponentSelector{Module: "bad"}, Problem: invalid}}

	res, err := resolution.Resolve(context.Background(), in, memstore.New(), telemetry.NewNoOpTracer())
	require.NoError(t, err)
	require.Len(t, res.Unresolved(), 2)
	require.ErrorIs(t, res.Rethrow(), invalid)
}

func TestResolve_MissingRoot(t *testing.T) {
	t.Parallel()

	in := &domain.Resolution{Configuration: "c", Graph: domain.NewGraph()}
	_, err := resolution.Resolve(context.Background(), in, memstore.New(), telemetry.NewNoOpTracer())
	require.ErrorIs(t, err, domain.ErrMissingRoot)
}

func TestResolve_StoreFailure(t *testing.T) {
	t.Parallel()

	store := memstore.New()
	_, err := store.Done()
	require.NoError(t, err)

	_, err = resolution.Resolve(context.Background(), newResolution(t), store, telemetry.NewNoOpTracer())
	require.ErrorIs(t, err, domain.ErrStoreSealed)
}

func TestResult_CloseBeforeLoad(t *testing.T) {
	t.Parallel()

	res, err := resolution.Resolve(context.Background(), newResolution(t), memstore.New(), telemetry.NewNoOpTracer())
	require.NoError(t, err)
	require.NoError(t, res.Close())

	_, err = res.Root(context.Background())
	require.ErrorIs(t, err, domain.ErrBlobClosed)
}
