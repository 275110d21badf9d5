package resolution

import (
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/transient"
)

var _ ports.DependencyGraphVisitor = (*resultsVisitor)(nil)

// resultsVisitor writes the visited graph through a transient.Builder.
type resultsVisitor struct {
	builder  *transient.Builder
	requests map[domain.ComponentSelector][]domain.DependencyRequest
	root     domain.GraphNode
	recorded map[firstLevelKey]bool
}

type firstLevelKey struct {
	selector domain.ComponentSelector
	target   int64
}

func newResultsVisitor(b *transient.Builder, requests []domain.DependencyRequest) *resultsVisitor {
	bySelector := make(map[domain.ComponentSelector][]domain.DependencyRequest, len(requests))
	for _, r := range requests {
		bySelector[r.Selector] = append(bySelector[r.Selector], r)
	}
	return &resultsVisitor{builder: b, requests: bySelector, recorded: make(map[firstLevelKey]bool)}
}

func (v *resultsVisitor) Start(root domain.GraphNode) error {
	v.root = root
	return nil
}

func (v *resultsVisitor) VisitNode(node domain.GraphNode) error {
	if err := v.builder.NewResolvedDependency(node); err != nil {
		return err
	}
	if id, ok := node.ArtifactsID(); ok {
		return v.builder.AddNodeArtifacts(node, id)
	}
	return nil
}

func (v *resultsVisitor) VisitEdges(node domain.GraphNode) error {
	isRoot := node.NodeID() == v.root.NodeID()
	for _, e := range node.OutgoingEdges() {
		target := e.Target()
		if target == nil {
			continue
		}
		if isRoot {
			if err := v.firstLevel(e, target); err != nil {
				return err
			}
		}
		if err := v.builder.AddChild(node, target, e.ArtifactsID()); err != nil {
			return err
		}
	}
	return nil
}

// firstLevel records target as a direct dependency of the root. A root edge with no
// matching declaration gets a request built from its selector.
func (v *resultsVisitor) firstLevel(e domain.GraphEdge, target domain.GraphNode) error {
	key := firstLevelKey{selector: e.Requested(), target: target.NodeID()}
	if v.recorded[key] {
		return nil
	}
	v.recorded[key] = true

	reqs := v.requests[e.Requested()]
	if len(reqs) == 0 {
		reqs = []domain.DependencyRequest{{Selector: e.Requested()}}
	}
	for _, r := range reqs {
		if err := v.builder.AddFirstLevelDependency(r, target); err != nil {
			return err
		}
	}
	return nil
}

func (v *resultsVisitor) Finish(root domain.GraphNode) error {
	return v.builder.Done(root)
}
