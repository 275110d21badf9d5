package transient

import (
	"maps"
	"slices"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/codec"
	"go.trai.ch/zerr"
)

// Loader rebuilds the result graph from a sealed blob.
type Loader struct {
	handle   ports.BlobHandle
	requests map[int64][]domain.DependencyRequest
}

// NewLoader creates a Loader for the blob behind handle. requests is the first-level
// table produced by the Builder that wrote the blob.
func NewLoader(handle ports.BlobHandle, requests map[int64][]domain.DependencyRequest) *Loader {
	return &Loader{handle: handle, requests: requests}
}

// Load decodes the blob. Artifact set ids are resolved through artifacts.
// Every error is reported once, with the number of records read and the last tag seen.
func (l *Loader) Load(artifacts ports.ArtifactResults) (*domain.ResolvedResults, error) {
	g := &graphReader{
		requests:  l.requests,
		artifacts: artifacts,
		nodes:     make(map[int64]*domain.ResolvedDependency),
		seenFirst: make(map[int64]bool),
	}

	var progress codec.Progress
	err := l.handle.Read(func(dec ports.Decoder) error {
		var err error
		progress, err = codec.ReadRecords(dec, g)
		return err
	})
	if err != nil {
		return nil, &LoadError{Cause: err, Records: progress.Records, LastTag: progress.LastTag}
	}
	return g.result, nil
}

// LoadError reports a failed decode. It matches domain.ErrResultsLoadFailed and
// unwraps to the record error.
type LoadError struct {
	Cause   error
	Records int
	LastTag codec.Tag
}

func (e *LoadError) Error() string {
	return e.Message() + ": " + e.Cause.Error()
}

// Message returns the load failure without its cause.
func (e *LoadError) Message() string {
	return domain.ErrResultsLoadFailed.Error()
}

// Metadata reports how far the decode got.
func (e *LoadError) Metadata() map[string]any {
	return map[string]any{
		"records_read": e.Records,
		"last_tag":     e.LastTag.String(),
	}
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

func (e *LoadError) Is(target error) bool {
	return target == domain.ErrResultsLoadFailed
}

type graphReader struct {
	requests   map[int64][]domain.DependencyRequest
	artifacts  ports.ArtifactResults
	nodes      map[int64]*domain.ResolvedDependency
	firstLevel []domain.FirstLevelDependency
	seenFirst  map[int64]bool
	result     *domain.ResolvedResults
}

func (g *graphReader) Node(id int64, component domain.ModuleVersionID, variant string) error {
	if _, ok := g.nodes[id]; ok {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateNode, "read node"), "id", id)
	}
	g.nodes[id] = domain.NewResolvedDependency(id, component, variant)
	return nil
}

func (g *graphReader) FirstLevel(id int64) error {
	node, err := g.lookup(id, "unexpected first level id")
	if err != nil {
		return err
	}
	// A node is first level once, however many records name it.
	if g.seenFirst[id] {
		return nil
	}
	g.seenFirst[id] = true
	reqs := g.requests[id]
	if len(reqs) == 0 {
		g.firstLevel = append(g.firstLevel, domain.FirstLevelDependency{Node: node})
		return nil
	}
	for _, req := range reqs {
		g.firstLevel = append(g.firstLevel, domain.FirstLevelDependency{Request: req, Node: node})
	}
	return nil
}

func (g *graphReader) Edge(parentID, childID int64, artifactsID int) error {
	parent, err := g.lookup(parentID, "unexpected parent dependency id")
	if err != nil {
		return err
	}
	child, err := g.lookup(childID, "unexpected child dependency id")
	if err != nil {
		return err
	}
	set, err := g.artifacts.ArtifactsWithID(artifactsID)
	if err != nil {
		return err
	}
	parent.AddChild(child)
	child.AddParentArtifacts(parent, set)
	return nil
}

func (g *graphReader) NodeArtifacts(id int64, artifactsID int) error {
	node, err := g.lookup(id, "unexpected node id")
	if err != nil {
		return err
	}
	set, err := g.artifacts.ArtifactsWithID(artifactsID)
	if err != nil {
		return err
	}
	node.AddModuleArtifacts(set)
	return nil
}

func (g *graphReader) Root(id int64) error {
	root, err := g.lookup(id, "unexpected root id")
	if err != nil {
		return err
	}
	g.result = &domain.ResolvedResults{Root: root, FirstLevel: g.firstLevel}
	return nil
}

func (g *graphReader) lookup(id int64, msg string) (*domain.ResolvedDependency, error) {
	node, ok := g.nodes[id]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrDanglingReference, msg), "id", id)
		return nil, zerr.With(err, "known_ids", slices.Sorted(maps.Keys(g.nodes)))
	}
	return node, nil
}
