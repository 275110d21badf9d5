package domain_test

import (
	"slices"
	"testing"

	"go.trai.ch/graphcache/internal/core/domain"
)

func TestResolvedDependency_Links(t *testing.T) {
	root := domain.NewResolvedDependency(0, domain.NewModuleVersionID("g", "root", "1"), "")
	a := domain.NewResolvedDependency(1, domain.NewModuleVersionID("g", "a", "1"), "runtime")
	b := domain.NewResolvedDependency(2, domain.NewModuleVersionID("g", "b", "1"), "runtime")

	root.AddChild(a)
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(b)

	if !slices.Equal(root.Children(), []*domain.ResolvedDependency{a, b}) {
		t.Errorf("unexpected children %v", root.Children())
	}
	if !slices.Equal(b.Parents(), []*domain.ResolvedDependency{root, a}) {
		t.Errorf("unexpected parents %v", b.Parents())
	}
	if len(a.Parents()) != 1 {
		t.Errorf("duplicate link must be ignored, got parents %v", a.Parents())
	}
	if a.String() != "g:a:1" {
		t.Errorf("unexpected String() %q", a.String())
	}
}

func TestResolvedDependency_Artifacts(t *testing.T) {
	root := domain.NewResolvedDependency(0, domain.NewModuleVersionID("g", "root", "1"), "")
	a := domain.NewResolvedDependency(1, domain.NewModuleVersionID("g", "a", "1"), "")
	b := domain.NewResolvedDependency(2, domain.NewModuleVersionID("g", "b", "1"), "")

	jar := domain.Artifact{Name: "b", Extension: "jar"}
	api := domain.Artifact{Name: "b-api", Extension: "jar"}
	src := domain.Artifact{Name: "b", Classifier: "sources", Extension: "jar"}

	b.AddParentArtifacts(root, domain.ArtifactSet{ID: 1, Artifacts: []domain.Artifact{jar}})
	b.AddParentArtifacts(a, domain.ArtifactSet{ID: 2, Artifacts: []domain.Artifact{api}})
	b.AddModuleArtifacts(domain.ArtifactSet{ID: 3, Artifacts: []domain.Artifact{src}})

	if got := b.ArtifactsFor(root); !slices.Equal(got, []domain.Artifact{jar}) {
		t.Errorf("ArtifactsFor(root) = %v", got)
	}
	if got := b.ArtifactsFor(a); !slices.Equal(got, []domain.Artifact{api}) {
		t.Errorf("ArtifactsFor(a) = %v", got)
	}
	if got := b.ArtifactSetsFor(a); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("ArtifactSetsFor(a) = %v", got)
	}
	if got := b.ArtifactsFor(b); got != nil {
		t.Errorf("expected no artifacts for an unknown parent, got %v", got)
	}
	if got := b.ModuleArtifacts(); !slices.Equal(got, []domain.Artifact{src}) {
		t.Errorf("ModuleArtifacts() = %v", got)
	}
}

func TestResolvedResults_FirstLevelNodes(t *testing.T) {
	a := domain.NewResolvedDependency(1, domain.NewModuleVersionID("g", "a", "1"), "")
	b := domain.NewResolvedDependency(2, domain.NewModuleVersionID("g", "b", "1"), "")
	sel := func(m string) domain.DependencyRequest {
		return domain.DependencyRequest{Selector: domain.ComponentSelector{Group: "g", Module: m, Version: "1"}}
	}

	res := domain.ResolvedResults{FirstLevel: []domain.FirstLevelDependency{
		{Request: sel("b"), Node: b},
		{Request: sel("a"), Node: a},
		{Request: sel("b-alias"), Node: b},
	}}

	if got := res.FirstLevelNodes(); !slices.Equal(got, []*domain.ResolvedDependency{b, a}) {
		t.Errorf("FirstLevelNodes() = %v", got)
	}
}
