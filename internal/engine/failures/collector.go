// Package failures collects unresolved dependencies from a resolved graph and
// reports every path through which each of them was required.
package failures

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
)

var _ ports.DependencyGraphVisitor = (*Collector)(nil)

type broken struct {
	selector   domain.ComponentSelector
	problem    error
	requiredBy []domain.GraphNode
}

// Collector is a graph visitor that groups failed edges by requested selector.
type Collector struct {
	root    domain.GraphNode
	byKey   map[domain.ComponentSelector]*broken
	order   []domain.ComponentSelector
	parents map[int64][]domain.GraphNode
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		byKey:   make(map[domain.ComponentSelector]*broken),
		parents: make(map[int64][]domain.GraphNode),
	}
}

// Start implements ports.DependencyGraphVisitor.
func (c *Collector) Start(root domain.GraphNode) error {
	c.root = root
	return nil
}

// VisitNode records the failed outgoing edges of node, and node as a parent of every
// successfully resolved target.
func (c *Collector) VisitNode(node domain.GraphNode) error {
	for _, e := range node.OutgoingEdges() {
		if e.Failure() != nil {
			c.addFailure(node, e)
			continue
		}
		if target := e.Target(); target != nil {
			id := target.NodeID()
			if !containsNode(c.parents[id], node) {
				c.parents[id] = append(c.parents[id], node)
			}
		}
	}
	return nil
}

// VisitEdges implements ports.DependencyGraphVisitor.
func (c *Collector) VisitEdges(domain.GraphNode) error { return nil }

// Finish implements ports.DependencyGraphVisitor.
func (c *Collector) Finish(domain.GraphNode) error { return nil }

func (c *Collector) addFailure(from domain.GraphNode, e domain.GraphEdge) {
	key := e.Requested()
	b, ok := c.byKey[key]
	if !ok {
		b = &broken{selector: key, problem: e.Failure()}
		c.byKey[key] = b
		c.order = append(c.order, key)
	}
	if !containsNode(b.requiredBy, from) {
		b.requiredBy = append(b.requiredBy, from)
	}
}

// Complete returns the collected failures in the order they were first seen, followed
// by extra. When nothing was collected, extra is returned unchanged.
func (c *Collector) Complete(extra []domain.UnresolvedDependency) []domain.UnresolvedDependency {
	if len(c.order) == 0 {
		if len(extra) == 0 {
			return nil
		}
		return extra
	}

	out := make([]domain.UnresolvedDependency, 0, len(c.order)+len(extra))
	for _, key := range c.order {
		b := c.byKey[key]
		out = append(out, domain.UnresolvedDependency{
			Selector: b.selector,
			Problem:  b.problem,
			Paths:    c.paths(b.requiredBy),
		})
	}
	return append(out, extra...)
}

// paths enumerates the distinct root-first paths ending at each of the given nodes.
func (c *Collector) paths(ends []domain.GraphNode) []domain.DependencyPath {
	var out []domain.DependencyPath
	seen := make(map[string]bool)

	emit := func(chain []domain.GraphNode) {
		path := make(domain.DependencyPath, len(chain))
		for i, n := range chain {
			path[len(chain)-1-i] = n.Component()
		}
		key := pathKey(chain)
		if !seen[key] {
			seen[key] = true
			out = append(out, path)
		}
	}

	visited := make(map[int64]bool)
	var chain []domain.GraphNode
	var walk func(n domain.GraphNode)
	walk = func(n domain.GraphNode) {
		visited[n.NodeID()] = true
		chain = append(chain, n)
		defer func() {
			chain = chain[:len(chain)-1]
			delete(visited, n.NodeID())
		}()

		if c.isRoot(n) {
			emit(chain)
			return
		}
		extended := false
		for _, p := range c.parents[n.NodeID()] {
			if visited[p.NodeID()] {
				continue
			}
			extended = true
			walk(p)
		}
		if !extended {
			emit(chain)
		}
	}

	for _, end := range ends {
		walk(end)
	}
	return out
}

func (c *Collector) isRoot(n domain.GraphNode) bool {
	return c.root != nil && c.root.NodeID() == n.NodeID()
}

// pathKey identifies a path by node ids. Two nodes may share a component.
func pathKey(chain []domain.GraphNode) string {
	var sb strings.Builder
	for _, n := range slices.Backward(chain) {
		sb.WriteString(strconv.FormatInt(n.NodeID(), 10))
		sb.WriteByte('/')
	}
	return sb.String()
}

func containsNode(nodes []domain.GraphNode, n domain.GraphNode) bool {
	return slices.ContainsFunc(nodes, func(o domain.GraphNode) bool {
		return o.NodeID() == n.NodeID()
	})
}
