package domain

import "strings"

// DependencyPath is a chain of components from the root to the node that issued a
// failing edge. The first element is always the root of the walk.
type DependencyPath []ModuleVersionID

// String renders the path as "a > b > c".
func (p DependencyPath) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = id.String()
	}
	return strings.Join(parts, " > ")
}

// UnresolvedDependency reports a requested selector that could not be resolved,
// together with every path through which it was required.
type UnresolvedDependency struct {
	Selector ComponentSelector
	Problem  error
	Paths    []DependencyPath
}
