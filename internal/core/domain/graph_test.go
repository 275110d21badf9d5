package domain_test

import (
	"errors"
	"slices"
	"testing"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/zerr"
)

func mustSelector(t *testing.T, s string) domain.ComponentSelector {
	t.Helper()
	sel, err := domain.ParseSelector(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return sel
}

func addNode(t *testing.T, g *domain.Graph, id int64, module string) {
	t.Helper()
	if _, err := g.AddNode(id, domain.NewModuleVersionID("g", module, "1"), "runtime"); err != nil {
		t.Fatalf("add node %d: %v", id, err)
	}
}

func TestGraph_AddNode(t *testing.T) {
	g := domain.NewGraph()
	addNode(t, g, 1, "a")

	_, err := g.AddNode(1, domain.NewModuleVersionID("g", "b", "1"), "")
	if !errors.Is(err, domain.ErrNodeAlreadyExists) {
		t.Fatalf("expected ErrNodeAlreadyExists, got %v", err)
	}
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if id, ok := zErr.Metadata()["id"].(int64); !ok || id != 1 {
		t.Errorf("expected metadata id=1, got %v", zErr.Metadata()["id"])
	}

	_, err = g.AddNode(-1, domain.NewModuleVersionID("g", "c", "1"), "")
	if !errors.Is(err, domain.ErrInvalidNodeID) {
		t.Errorf("expected ErrInvalidNodeID, got %v", err)
	}
}

func TestGraph_UnknownNodes(t *testing.T) {
	g := domain.NewGraph()
	addNode(t, g, 0, "root")
	sel := mustSelector(t, "g:x:1")

	checks := map[string]error{
		"root":      g.SetRoot(9),
		"artifacts": g.SetNodeArtifacts(9, 1),
		"from":      g.Connect(9, 0, sel, 0),
		"to":        g.Connect(0, 9, sel, 0),
		"fail":      g.Fail(9, sel, errors.New("x")),
	}
	for name, err := range checks {
		if !errors.Is(err, domain.ErrNodeNotFound) {
			t.Errorf("%s: expected ErrNodeNotFound, got %v", name, err)
		}
		var zErr *zerr.Error
		if !errors.As(err, &zErr) {
			t.Fatalf("%s: expected *zerr.Error, got %T", name, err)
		}
		if got := zErr.Metadata()["known_ids"]; !slices.Equal(got.([]int64), []int64{0}) {
			t.Errorf("%s: known_ids = %v, want [0]", name, got)
		}
	}
}

func TestGraph_Validate(t *testing.T) {
	g := domain.NewGraph()
	addNode(t, g, 0, "root")

	if err := g.Validate(); !errors.Is(err, domain.ErrMissingRoot) {
		t.Fatalf("expected ErrMissingRoot, got %v", err)
	}
	if g.Root() != nil {
		t.Error("expected nil root interface before SetRoot")
	}

	if err := g.SetRoot(0); err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGraph_Edges(t *testing.T) {
	g := domain.NewGraph()
	addNode(t, g, 0, "root")
	addNode(t, g, 1, "a")
	if err := g.SetNodeArtifacts(1, 7); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect(0, 1, mustSelector(t, "g:a:1.+"), 3); err != nil {
		t.Fatal(err)
	}
	failure := errors.New("not found")
	if err := g.Fail(1, mustSelector(t, "g:missing:1"), failure); err != nil {
		t.Fatal(err)
	}

	root, _ := g.Node(0)
	edges := root.OutgoingEdges()
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	e := edges[0]
	if e.From().NodeID() != 0 || e.Target().NodeID() != 1 || e.ArtifactsID() != 3 || e.Failure() != nil {
		t.Errorf("unexpected successful edge %+v", e)
	}

	a, _ := g.Node(1)
	if id, ok := a.ArtifactsID(); !ok || id != 7 {
		t.Errorf("expected node artifacts 7, got %d (%v)", id, ok)
	}
	failed := a.OutgoingEdges()[0]
	if failed.Target() != nil {
		t.Errorf("expected nil target on failed edge, got %v", failed.Target())
	}
	if !errors.Is(failed.Failure(), failure) {
		t.Errorf("unexpected failure %v", failed.Failure())
	}
}

func TestGraph_Walk(t *testing.T) {
	g := domain.NewGraph()
	for id, module := range []string{"root", "a", "b", "x", "orphan"} {
		addNode(t, g, int64(id), module)
	}
	if err := g.SetRoot(0); err != nil {
		t.Fatal(err)
	}
	sel := mustSelector(t, "g:any:1")
	for _, e := range [][2]int64{{0, 2}, {0, 1}, {1, 3}, {2, 3}, {3, 0}} {
		if err := g.Connect(e[0], e[1], sel, 0); err != nil {
			t.Fatal(err)
		}
	}

	var got []int64
	for n := range g.Walk() {
		got = append(got, n.NodeID())
	}

	want := []int64{0, 2, 1, 3, 4}
	if !slices.Equal(got, want) {
		t.Errorf("walk order = %v, want %v", got, want)
	}
	if !slices.Equal(g.IDs(), []int64{0, 1, 2, 3, 4}) {
		t.Errorf("unexpected ids %v", g.IDs())
	}
	if g.Len() != 5 {
		t.Errorf("expected 5 nodes, got %d", g.Len())
	}
}

func TestGraph_WalkStops(t *testing.T) {
	g := domain.NewGraph()
	addNode(t, g, 0, "root")
	addNode(t, g, 1, "a")
	if err := g.SetRoot(0); err != nil {
		t.Fatal(err)
	}

	count := 0
	for range g.Walk() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("expected walk to stop after the first node, got %d", count)
	}
}
