package domain

import "slices"

// ResolvedDependency is a node of the result graph rebuilt from a results stream.
// It is populated incrementally while records are read and must be treated as
// read-only once the loader returns it.
type ResolvedDependency struct {
	ID        int64
	Component ModuleVersionID
	Variant   string

	children        []*ResolvedDependency
	parents         []*ResolvedDependency
	parentArtifacts map[*ResolvedDependency][]ArtifactSet
	moduleArtifacts []ArtifactSet
}

// NewResolvedDependency creates an empty node.
func NewResolvedDependency(id int64, component ModuleVersionID, variant string) *ResolvedDependency {
	return &ResolvedDependency{
		ID:              id,
		Component:       component,
		Variant:         variant,
		parentArtifacts: make(map[*ResolvedDependency][]ArtifactSet),
	}
}

// AddChild links child below d. Linking the same pair twice is a no-op.
func (d *ResolvedDependency) AddChild(child *ResolvedDependency) {
	if slices.Contains(d.children, child) {
		return
	}
	d.children = append(d.children, child)
	child.parents = append(child.parents, d)
}

// AddParentArtifacts records the artifacts selected for d when reached from parent.
func (d *ResolvedDependency) AddParentArtifacts(parent *ResolvedDependency, set ArtifactSet) {
	d.parentArtifacts[parent] = append(d.parentArtifacts[parent], set)
}

// AddModuleArtifacts records artifacts that belong to d regardless of the incoming edge.
func (d *ResolvedDependency) AddModuleArtifacts(set ArtifactSet) {
	d.moduleArtifacts = append(d.moduleArtifacts, set)
}

// Children returns the direct dependencies of d in stream order.
func (d *ResolvedDependency) Children() []*ResolvedDependency {
	return d.children
}

// Parents returns the nodes that depend on d in stream order.
func (d *ResolvedDependency) Parents() []*ResolvedDependency {
	return d.parents
}

// ArtifactSetsFor returns the artifact sets selected for d on the edge from parent.
func (d *ResolvedDependency) ArtifactSetsFor(parent *ResolvedDependency) []ArtifactSet {
	return d.parentArtifacts[parent]
}

// ArtifactsFor returns the artifacts selected for d on the edge from parent.
func (d *ResolvedDependency) ArtifactsFor(parent *ResolvedDependency) []Artifact {
	return flatten(d.parentArtifacts[parent])
}

// ModuleArtifacts returns the artifacts attached to d itself.
func (d *ResolvedDependency) ModuleArtifacts() []Artifact {
	return flatten(d.moduleArtifacts)
}

// String returns the component notation of the node.
func (d *ResolvedDependency) String() string {
	return d.Component.String()
}

func flatten(sets []ArtifactSet) []Artifact {
	var out []Artifact
	for _, s := range sets {
		out = append(out, s.Artifacts...)
	}
	return out
}

// FirstLevelDependency pairs a node the root depends on with the request that asked for it.
type FirstLevelDependency struct {
	Request DependencyRequest
	Node    *ResolvedDependency
}

// ResolvedResults is the result graph rebuilt from a results stream.
type ResolvedResults struct {
	Root       *ResolvedDependency
	FirstLevel []FirstLevelDependency
}

// FirstLevelNodes returns the distinct first-level nodes in stream order.
func (r *ResolvedResults) FirstLevelNodes() []*ResolvedDependency {
	nodes := make([]*ResolvedDependency, 0, len(r.FirstLevel))
	for _, fl := range r.FirstLevel {
		if !slices.Contains(nodes, fl.Node) {
			nodes = append(nodes, fl.Node)
		}
	}
	return nodes
}
