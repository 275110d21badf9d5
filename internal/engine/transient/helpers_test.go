package transient_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/internal/core/domain"
)

// metadata returns the first value stored under key anywhere in err's chain.
func metadata(err error, key string) (any, bool) {
	for ; err != nil; err = errors.Unwrap(err) {
		md, ok := err.(interface{ Metadata() map[string]any })
		if !ok {
			continue
		}
		if v, ok := md.Metadata()[key]; ok {
			return v, true
		}
	}
	return nil, false
}

type diamond struct {
	graph      *domain.Graph
	r, a, b, x *domain.Node
	artifacts  domain.ArtifactTable
}

// newDiamond builds R -> A -> X and R -> B -> X.
func newDiamond(t *testing.T) diamond {
	t.Helper()

	g := domain.NewGraph()
	add := func(id int64, module string) *domain.Node {
		n, err := g.AddNode(id, domain.NewModuleVersionID("org.example", module, "1.0"), "runtime")
		require.NoError(t, err)
		return n
	}
	d := diamond{graph: g, r: add(0, "root"), a: add(1, "a"), b: add(2, "b"), x: add(3, "x")}
	require.NoError(t, g.SetRoot(0))

	d.artifacts = domain.ArtifactTable{
		10: {ID: 10, Artifacts: []domain.Artifact{{Name: "a", Extension: "jar", Path: "/repo/a.jar"}}},
		11: {ID: 11, Artifacts: []domain.Artifact{{Name: "b", Extension: "jar", Path: "/repo/b.jar"}}},
		12: {ID: 12, Artifacts: []domain.Artifact{{Name: "x", Extension: "jar", Path: "/repo/x.jar"}}},
		13: {ID: 13, Artifacts: []domain.Artifact{{Name: "x", Classifier: "sources", Extension: "jar"}}},
		20: {ID: 20, Artifacts: []domain.Artifact{{Name: "x", Type: "pom", Extension: "pom"}}},
	}
	return d
}
