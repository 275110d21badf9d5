// Package config reads resolution documents.
package config

import (
	"errors"
	"os"
	"strings"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ResolutionLoader = (*Loader)(nil)

// SupportedVersion is the only document version understood by the loader.
const SupportedVersion = "1"

// Loader implements ports.ResolutionLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the resolution document at path.
func (l *Loader) Load(path string) (*domain.Resolution, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	res, err := l.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return res, nil
}

// Parse maps a YAML document to a Resolution.
func (l *Loader) Parse(data []byte) (*domain.Resolution, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if doc.Version != "" && doc.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unsupported document version"), "version", doc.Version)
	}

	g, err := buildGraph(&doc)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, err)
	}

	requests, extra := l.parseDependencies(&doc, g)

	artifacts := make(domain.ArtifactTable, len(doc.ArtifactSets))
	for _, set := range doc.ArtifactSets {
		if _, dup := artifacts[set.ID]; dup {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "duplicate artifact set"), "id", set.ID)
		}
		artifacts[set.ID] = toArtifactSet(set)
	}

	return &domain.Resolution{
		Configuration: doc.Configuration,
		Graph:         g,
		Requests:      requests,
		Artifacts:     artifacts,
		Extra:         extra,
	}, nil
}

func buildGraph(doc *Document) (*domain.Graph, error) {
	g := domain.NewGraph()
	for _, n := range doc.Nodes {
		sel, err := domain.ParseSelector(n.Component)
		if err != nil {
			return nil, zerr.With(err, "node", n.ID)
		}
		if _, err := g.AddNode(n.ID, domain.NewModuleVersionID(sel.Group, sel.Module, sel.Version), n.Variant); err != nil {
			return nil, err
		}
		if n.Artifacts != nil {
			if err := g.SetNodeArtifacts(n.ID, *n.Artifacts); err != nil {
				return nil, err
			}
		}
	}
	if err := g.SetRoot(doc.Root); err != nil {
		return nil, zerr.Wrap(err, "set root")
	}

	for _, e := range doc.Edges {
		requested, err := domain.ParseSelector(e.Requested)
		if err != nil {
			return nil, zerr.With(err, "from", e.From)
		}
		switch {
		case e.Failure != "":
			err = g.Fail(e.From, requested, zerr.New(e.Failure))
		case e.To != nil:
			err = g.Connect(e.From, *e.To, requested, e.Artifacts)
		default:
			err = zerr.With(zerr.New("edge needs either a target or a failure"), "requested", e.Requested)
		}
		if err != nil {
			return nil, zerr.With(err, "from", e.From)
		}
	}
	return g, nil
}

// parseDependencies splits declared dependencies into valid requests and failures for
// declarations that cannot be parsed.
func (l *Loader) parseDependencies(doc *Document, g *domain.Graph) ([]domain.DependencyRequest, []domain.UnresolvedDependency) {
	rootEdges := make(map[domain.ComponentSelector]bool)
	for _, e := range g.Root().OutgoingEdges() {
		rootEdges[e.Requested()] = true
	}

	var requests []domain.DependencyRequest
	var extra []domain.UnresolvedDependency
	for _, d := range doc.Dependencies {
		sel, err := domain.ParseSelector(d.Selector)
		if err != nil {
			extra = append(extra, domain.UnresolvedDependency{Selector: partialSelector(d.Selector), Problem: err})
			continue
		}
		if !rootEdges[sel] && l.Logger != nil {
			l.Logger.Warn("declared dependency " + sel.String() + " has no edge from the root")
		}
		requests = append(requests, domain.DependencyRequest{Selector: sel, Reason: d.Reason})
	}
	return requests, extra
}

func partialSelector(s string) domain.ComponentSelector {
	parts := strings.SplitN(s, ":", 3)
	parts = append(parts, "", "")
	return domain.ComponentSelector{Group: parts[0], Module: parts[1], Version: parts[2]}
}

func toArtifactSet(dto ArtifactSetDTO) domain.ArtifactSet {
	set := domain.ArtifactSet{ID: dto.ID, Artifacts: make([]domain.Artifact, 0, len(dto.Artifacts))}
	for _, a := range dto.Artifacts {
		set.Artifacts = append(set.Artifacts, domain.Artifact(a))
	}
	return set
}
