package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/internal/core/domain"
)

func selector(t *testing.T, s string) domain.ComponentSelector {
	t.Helper()
	sel, err := domain.ParseSelector(s)
	require.NoError(t, err)
	return sel
}

// newResolution builds app(0) -> lib(1). With broken set, lib also requests a
// missing component.
func newResolution(t *testing.T, broken bool) *domain.Resolution {
	t.Helper()

	g := domain.NewGraph()
	_, err := g.AddNode(0, domain.NewModuleVersionID("org.example", "app", "1.0"), "runtime")
	require.NoError(t, err)
	_, err = g.AddNode(1, domain.NewModuleVersionID("org.example", "lib", "1.2"), "runtime")
	require.NoError(t, err)
	require.NoError(t, g.SetRoot(0))

	libSel := selector(t, "org.example:lib:1.+")
	require.NoError(t, g.Connect(0, 1, libSel, 1))
	if broken {
		require.NoError(t, g.Fail(1, selector(t, "org.example:missing:9.9"), errors.New("not found in any repository")))
	}

	return &domain.Resolution{
		Configuration: "runtime",
		Graph:         g,
		Requests:      []domain.DependencyRequest{{Selector: libSel, Reason: "api"}},
		Artifacts: domain.ArtifactTable{
			1: {ID: 1, Artifacts: []domain.Artifact{{Name: "lib", Type: "jar", Extension: "jar", Path: "/repo/lib.jar"}}},
		},
	}
}
