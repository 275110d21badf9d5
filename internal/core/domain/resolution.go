package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Resolution is everything a resolver hands over once a configuration has been resolved.
type Resolution struct {
	// Configuration names the resolved configuration, e.g. "runtimeClasspath".
	Configuration string
	Graph         *Graph
	// Requests are the dependencies declared directly on the root.
	Requests []DependencyRequest
	Artifacts ArtifactTable
	// Extra holds failures found before the graph was built, such as invalid declarations.
	Extra []UnresolvedDependency
}

// ArtifactTable maps artifact set ids to the sets selected during resolution.
type ArtifactTable map[int]ArtifactSet

// ArtifactsWithID returns the set registered under id.
func (t ArtifactTable) ArtifactsWithID(id int) (ArtifactSet, error) {
	set, ok := t[id]
	if !ok {
		err := zerr.Wrap(ErrUnknownArtifactSet, "lookup artifact set")
		err = zerr.With(err, "id", id)
		return ArtifactSet{}, zerr.With(err, "known_ids", slices.Sorted(maps.Keys(t)))
	}
	return set, nil
}
