// Package resolution drives a resolved dependency graph through the result builder and
// the failure collector, and exposes the outcome as a lenient view.
package resolution

import (
	"iter"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
)

// Graph is a live dependency graph that can be walked.
type Graph interface {
	Root() domain.GraphNode
	Walk() iter.Seq[domain.GraphNode]
}

// Walk feeds g to every visitor: Start, VisitNode for all nodes, VisitEdges for all
// nodes, then Finish. All nodes are visited before any edges, so every edge refers
// to nodes the visitors already know. The first error stops the walk.
func Walk(g Graph, visitors ...ports.DependencyGraphVisitor) error {
	root := g.Root()
	if root == nil {
		return domain.ErrMissingRoot
	}

	for _, v := range visitors {
		if err := v.Start(root); err != nil {
			return err
		}
	}
	for n := range g.Walk() {
		for _, v := range visitors {
			if err := v.VisitNode(n); err != nil {
				return err
			}
		}
	}
	for n := range g.Walk() {
		for _, v := range visitors {
			if err := v.VisitEdges(n); err != nil {
				return err
			}
		}
	}
	for _, v := range visitors {
		if err := v.Finish(root); err != nil {
			return err
		}
	}
	return nil
}
