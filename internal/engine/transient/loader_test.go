package transient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/internal/adapters/memstore"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/codec"
	"go.trai.ch/graphcache/internal/engine/transient"
)

var (
	reqA = domain.DependencyRequest{Selector: domain.ComponentSelector{Group: "org.example", Module: "a", Version: "1.0"}}
	reqB = domain.DependencyRequest{Selector: domain.ComponentSelector{Group: "org.example", Module: "b", Version: "[1.0,2.0)"}, Reason: "api"}
)

func buildDiamond(t *testing.T, d diamond) *transient.TransientResults {
	t.Helper()

	b := transient.NewBuilder(memstore.New())
	for _, n := range []*domain.Node{d.r, d.a, d.b, d.x} {
		require.NoError(t, b.NewResolvedDependency(n))
	}
	require.NoError(t, b.AddFirstLevelDependency(reqA, d.a))
	require.NoError(t, b.AddFirstLevelDependency(reqB, d.b))
	require.NoError(t, b.AddChild(d.r, d.a, 10))
	require.NoError(t, b.AddChild(d.r, d.b, 11))
	require.NoError(t, b.AddChild(d.a, d.x, 12))
	require.NoError(t, b.AddChild(d.b, d.x, 13))
	require.NoError(t, b.AddNodeArtifacts(d.x, 20))
	require.NoError(t, b.Done(d.r))

	res, err := b.Complete()
	require.NoError(t, err)
	return res
}

func rawBlob(t *testing.T, records ...func(ports.Encoder) error) ports.BlobHandle {
	t.Helper()

	s := memstore.New()
	require.NoError(t, s.Write(codec.WriteHeader))
	for _, r := range records {
		require.NoError(t, s.Write(r))
	}
	h, err := s.Done()
	require.NoError(t, err)
	return h
}

func node(id int64, module string) func(ports.Encoder) error {
	return func(enc ports.Encoder) error {
		return codec.WriteNode(enc, id, domain.NewModuleVersionID("g", module, "1"), "")
	}
}

func TestLoader_RoundTrip(t *testing.T) {
	t.Parallel()

	d := newDiamond(t)
	tr := buildDiamond(t, d)

	got, err := transient.NewLoader(tr.Handle, tr.Requests).Load(d.artifacts)
	require.NoError(t, err)
	require.NotNil(t, got.Root)

	root := got.Root
	assert.Equal(t, int64(0), root.ID)
	assert.Equal(t, "org.example:root:1.0", root.Component.String())
	assert.Equal(t, "runtime", root.Variant)

	require.Len(t, root.Children(), 2)
	a, b := root.Children()[0], root.Children()[1]
	assert.Equal(t, "org.example:a:1.0", a.String())
	assert.Equal(t, "org.example:b:1.0", b.String())

	require.Len(t, a.Children(), 1)
	require.Len(t, b.Children(), 1)
	x := a.Children()[0]
	assert.Same(t, x, b.Children()[0])
	assert.Equal(t, []*domain.ResolvedDependency{a, b}, x.Parents())

	assert.Equal(t, d.artifacts[12].Artifacts, x.ArtifactsFor(a))
	assert.Equal(t, d.artifacts[13].Artifacts, x.ArtifactsFor(b))
	assert.Equal(t, d.artifacts[10].Artifacts, a.ArtifactsFor(root))
	assert.Equal(t, d.artifacts[20].Artifacts, x.ModuleArtifacts())
	assert.Empty(t, a.ModuleArtifacts())

	assert.Equal(t, []domain.FirstLevelDependency{
		{Request: reqA, Node: a},
		{Request: reqB, Node: b},
	}, got.FirstLevel)
	assert.Equal(t, []*domain.ResolvedDependency{a, b}, got.FirstLevelNodes())
}

func TestLoader_FirstLevelWithoutRequest(t *testing.T) {
	t.Parallel()

	h := rawBlob(t,
		node(0, "root"),
		node(1, "a"),
		func(enc ports.Encoder) error { return codec.WriteFirstLevel(enc, 1) },
		func(enc ports.Encoder) error { return codec.WriteRoot(enc, 0) },
	)

	got, err := transient.NewLoader(h, nil).Load(domain.ArtifactTable{})
	require.NoError(t, err)
	require.Len(t, got.FirstLevel, 1)
	assert.Equal(t, domain.DependencyRequest{}, got.FirstLevel[0].Request)
	assert.Equal(t, int64(1), got.FirstLevel[0].Node.ID)
}

func TestLoader_RepeatedFirstLevelRecord(t *testing.T) {
	t.Parallel()

	req := domain.DependencyRequest{Selector: domain.ComponentSelector{Group: "org.example", Module: "a", Version: "1.0"}}
	h := rawBlob(t,
		node(0, "root"),
		node(1, "a"),
		func(enc ports.Encoder) error { return codec.WriteFirstLevel(enc, 1) },
		func(enc ports.Encoder) error { return codec.WriteFirstLevel(enc, 1) },
		func(enc ports.Encoder) error { return codec.WriteRoot(enc, 0) },
	)

	got, err := transient.NewLoader(h, map[int64][]domain.DependencyRequest{1: {req}}).Load(domain.ArtifactTable{})
	require.NoError(t, err)
	require.Len(t, got.FirstLevel, 1)
	assert.Equal(t, req, got.FirstLevel[0].Request)
}

func TestLoader_DanglingReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record func(ports.Encoder) error
		msg    string
	}{
		{
			name:   "first level",
			record: func(enc ports.Encoder) error { return codec.WriteFirstLevel(enc, 9) },
			msg:    "unexpected first level id",
		},
		{
			name:   "edge parent",
			record: func(enc ports.Encoder) error { return codec.WriteEdge(enc, 9, 1, 0) },
			msg:    "unexpected parent dependency id",
		},
		{
			name:   "edge child",
			record: func(enc ports.Encoder) error { return codec.WriteEdge(enc, 0, 9, 0) },
			msg:    "unexpected child dependency id",
		},
		{
			name:   "node artifacts",
			record: func(enc ports.Encoder) error { return codec.WriteNodeArtifacts(enc, 9, 0) },
			msg:    "unexpected node id",
		},
		{
			name:   "root",
			record: func(enc ports.Encoder) error { return codec.WriteRoot(enc, 9) },
			msg:    "unexpected root id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := rawBlob(t,
				node(1, "a"),
				node(0, "root"),
				tt.record,
				func(enc ports.Encoder) error { return codec.WriteRoot(enc, 0) },
			)

			_, err := transient.NewLoader(h, nil).Load(domain.ArtifactTable{0: {}})
			require.Error(t, err)
			require.ErrorIs(t, err, domain.ErrDanglingReference)
			require.ErrorIs(t, err, domain.ErrResultsLoadFailed)
			assert.ErrorContains(t, err, tt.msg)

			id, ok := metadata(err, "id")
			require.True(t, ok)
			assert.Equal(t, int64(9), id)

			known, ok := metadata(err, "known_ids")
			require.True(t, ok)
			assert.Equal(t, []int64{0, 1}, known)

			read, ok := metadata(err, "records_read")
			require.True(t, ok)
			assert.Equal(t, 2, read)
		})
	}
}

func TestLoader_DuplicateNode(t *testing.T) {
	t.Parallel()

	h := rawBlob(t,
		node(0, "root"),
		node(1, "a"),
		node(1, "again"),
		func(enc ports.Encoder) error { return codec.WriteRoot(enc, 0) },
	)

	_, err := transient.NewLoader(h, nil).Load(domain.ArtifactTable{})
	require.ErrorIs(t, err, domain.ErrDuplicateNode)
	require.ErrorIs(t, err, domain.ErrResultsLoadFailed)

	var loadErr *transient.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 2, loadErr.Records)

	lastTag, ok := metadata(err, "last_tag")
	require.True(t, ok)
	assert.Equal(t, "NODE", lastTag)
}

func TestLoader_UnknownArtifactSet(t *testing.T) {
	t.Parallel()

	d := newDiamond(t)
	tr := buildDiamond(t, d)
	delete(d.artifacts, 13)

	_, err := transient.NewLoader(tr.Handle, tr.Requests).Load(d.artifacts)
	require.ErrorIs(t, err, domain.ErrUnknownArtifactSet)

	lastTag, ok := metadata(err, "last_tag")
	require.True(t, ok)
	assert.Equal(t, "EDGE", lastTag)
}

func TestLoader_TruncatedStream(t *testing.T) {
	t.Parallel()

	h := rawBlob(t, node(0, "root"), node(1, "a"))

	_, err := transient.NewLoader(h, nil).Load(domain.ArtifactTable{})
	require.ErrorIs(t, err, domain.ErrCorruptResults)

	read, ok := metadata(err, "records_read")
	require.True(t, ok)
	assert.Equal(t, 2, read)
}

func TestLoader_ClosedHandle(t *testing.T) {
	t.Parallel()

	d := newDiamond(t)
	tr := buildDiamond(t, d)
	require.NoError(t, tr.Handle.Close())

	_, err := transient.NewLoader(tr.Handle, tr.Requests).Load(d.artifacts)
	require.ErrorIs(t, err, domain.ErrBlobClosed)
}
