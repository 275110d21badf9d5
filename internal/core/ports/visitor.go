package ports

import "go.trai.ch/graphcache/internal/core/domain"

// DependencyGraphVisitor receives the nodes of a live graph.
// Start is called first, then VisitNode for every node, then VisitEdges for every
// node, then Finish.
//
//go:generate mockgen -source=visitor.go -destination=mocks/mock_visitor.go -package=mocks
type DependencyGraphVisitor interface {
	Start(root domain.GraphNode) error
	VisitNode(node domain.GraphNode) error
	VisitEdges(node domain.GraphNode) error
	Finish(root domain.GraphNode) error
}
