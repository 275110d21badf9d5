// Package domain contains the core models of dependency resolution results: the live
// resolved graph, the graph reconstructed from a results stream, and unresolved
// dependency reports.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// GraphNode is one resolved component-variant in a live dependency graph.
// Node ids are assigned by the resolver, unique within one resolution and non-negative.
type GraphNode interface {
	NodeID() int64
	Component() ModuleVersionID
	Variant() string
	OutgoingEdges() []GraphEdge
	// ArtifactsID returns the id of the node's own artifact set, if it has one.
	ArtifactsID() (int, bool)
}

// GraphEdge is a dependency from a node to a requested selector.
// A failed edge has a nil Target and a non-nil Failure.
type GraphEdge interface {
	From() GraphNode
	Requested() ComponentSelector
	Target() GraphNode
	Failure() error
	// ArtifactsID is the artifact set selected for the target when reached through this edge.
	ArtifactsID() int
}

// Node is the GraphNode implementation used by Graph.
type Node struct {
	id           int64
	component    ModuleVersionID
	variant      string
	edges        []GraphEdge
	artifactsID  int
	hasArtifacts bool
}

// NodeID implements GraphNode.
func (n *Node) NodeID() int64 { return n.id }

// Component implements GraphNode.
func (n *Node) Component() ModuleVersionID { return n.component }

// Variant implements GraphNode.
func (n *Node) Variant() string { return n.variant }

// OutgoingEdges implements GraphNode.
func (n *Node) OutgoingEdges() []GraphEdge { return n.edges }

// ArtifactsID implements GraphNode.
func (n *Node) ArtifactsID() (int, bool) { return n.artifactsID, n.hasArtifacts }

// Edge is the GraphEdge implementation used by Graph.
type Edge struct {
	from        *Node
	requested   ComponentSelector
	target      *Node
	failure     error
	artifactsID int
}

// From implements GraphEdge.
func (e *Edge) From() GraphNode { return e.from }

// Requested implements GraphEdge.
func (e *Edge) Requested() ComponentSelector { return e.requested }

// Target implements GraphEdge.
func (e *Edge) Target() GraphNode {
	if e.target == nil {
		return nil
	}
	return e.target
}

// Failure implements GraphEdge.
func (e *Edge) Failure() error { return e.failure }

// ArtifactsID implements GraphEdge.
func (e *Edge) ArtifactsID() int { return e.artifactsID }

// Graph is a live resolved dependency graph, as handed over by a resolver.
type Graph struct {
	nodes map[int64]*Node
	order []int64
	root  *Node
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]*Node),
	}
}

// AddNode adds a node to the graph.
// It returns an error if the id is negative or already taken.
func (g *Graph) AddNode(id int64, component ModuleVersionID, variant string) (*Node, error) {
	if id < 0 {
		return nil, zerr.With(zerr.Wrap(ErrInvalidNodeID, "add node"), "id", id)
	}
	if _, exists := g.nodes[id]; exists {
		return nil, zerr.With(zerr.Wrap(ErrNodeAlreadyExists, "add node"), "id", id)
	}
	n := &Node{id: id, component: component, variant: variant}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n, nil
}

// SetRoot marks an existing node as the root of the resolution.
func (g *Graph) SetRoot(id int64) error {
	n, err := g.lookup(id)
	if err != nil {
		return err
	}
	g.root = n
	return nil
}

// SetNodeArtifacts attaches the node's own artifact set id.
func (g *Graph) SetNodeArtifacts(id int64, artifactsID int) error {
	n, err := g.lookup(id)
	if err != nil {
		return err
	}
	n.artifactsID = artifactsID
	n.hasArtifacts = true
	return nil
}

// Connect adds a successfully resolved edge from one node to another.
func (g *Graph) Connect(from, to int64, requested ComponentSelector, artifactsID int) error {
	src, err := g.lookup(from)
	if err != nil {
		return err
	}
	dst, err := g.lookup(to)
	if err != nil {
		return err
	}
	src.edges = append(src.edges, &Edge{
		from:        src,
		requested:   requested,
		target:      dst,
		artifactsID: artifactsID,
	})
	return nil
}

// Fail adds an edge whose requested selector could not be resolved.
func (g *Graph) Fail(from int64, requested ComponentSelector, failure error) error {
	src, err := g.lookup(from)
	if err != nil {
		return err
	}
	src.edges = append(src.edges, &Edge{
		from:      src,
		requested: requested,
		failure:   failure,
	})
	return nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id int64) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Root returns the root node, or nil if none was set.
func (g *Graph) Root() GraphNode {
	if g.root == nil {
		return nil
	}
	return g.root
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Validate checks that the graph is ready to be visited.
func (g *Graph) Validate() error {
	if g.root == nil {
		return ErrMissingRoot
	}
	return nil
}

// Walk returns an iterator over all nodes, breadth-first from the root.
// Children are visited in edge order. Nodes not reachable from the root follow in
// insertion order so that every node is visited exactly once.
func (g *Graph) Walk() iter.Seq[GraphNode] {
	return func(yield func(GraphNode) bool) {
		seen := make(map[int64]bool, len(g.nodes))
		var queue []*Node
		if g.root != nil {
			queue = append(queue, g.root)
			seen[g.root.id] = true
		}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n) {
				return
			}
			for _, e := range n.edges {
				t, ok := e.Target().(*Node)
				if ok && !seen[t.id] {
					seen[t.id] = true
					queue = append(queue, t)
				}
			}
		}
		for _, id := range g.order {
			if !seen[id] {
				if !yield(g.nodes[id]) {
					return
				}
			}
		}
	}
}

// IDs returns the ids of all nodes in ascending order.
func (g *Graph) IDs() []int64 {
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (g *Graph) lookup(id int64) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		err := zerr.With(zerr.Wrap(ErrNodeNotFound, "lookup node"), "id", id)
		return nil, zerr.With(err, "known_ids", g.IDs())
	}
	return n, nil
}
