package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ModuleVersionID identifies the component a resolved node stands for.
type ModuleVersionID struct {
	Group   InternedString
	Module  InternedString
	Version InternedString
}

// NewModuleVersionID creates a ModuleVersionID from plain strings.
func NewModuleVersionID(group, module, version string) ModuleVersionID {
	return ModuleVersionID{
		Group:   NewInternedString(group),
		Module:  NewInternedString(module),
		Version: NewInternedString(version),
	}
}

// String returns the group:module:version notation.
func (id ModuleVersionID) String() string {
	return id.Group.String() + ":" + id.Module.String() + ":" + id.Version.String()
}

// ComponentSelector is a requested coordinate. The version may be a range or dynamic
// version, so a selector is not necessarily the identity of what it resolved to.
//
// Selectors are comparable and are used as map keys when grouping failures.
type ComponentSelector struct {
	Group   string
	Module  string
	Version string
}

// ParseSelector parses a group:module:version coordinate.
func ParseSelector(s string) (ComponentSelector, error) {
	parts := strings.Split(s, ":")
	valid := len(parts) == 3
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			valid = false
		}
	}
	if !valid {
		return ComponentSelector{}, zerr.With(zerr.Wrap(ErrInvalidSelector, "cannot parse "+strconv.Quote(s)), "selector", s)
	}
	return ComponentSelector{Group: parts[0], Module: parts[1], Version: parts[2]}, nil
}

// String returns the group:module:version notation.
func (s ComponentSelector) String() string {
	return s.Group + ":" + s.Module + ":" + s.Version
}

// DependencyRequest is a dependency declared directly on the root of a resolution.
// It is never written to the results stream; the builder keeps it on the side and
// hands it to the loader explicitly.
type DependencyRequest struct {
	Selector ComponentSelector
	Reason   string
}

// RequestFilter selects first-level dependencies by their original request.
type RequestFilter func(DependencyRequest) bool

// AllRequests is a RequestFilter that accepts every request.
func AllRequests(DependencyRequest) bool { return true }

// Artifact is a single file produced by a resolved component.
type Artifact struct {
	Name       string
	Type       string
	Extension  string
	Classifier string
	Path       string
}

// ArtifactSet is a group of artifacts selected for one node, or for one node when
// reached through a particular parent.
type ArtifactSet struct {
	ID        int
	Artifacts []Artifact
}
