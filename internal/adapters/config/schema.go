package config

// Document represents the structure of a resolution document.
type Document struct {
	Version       string           `yaml:"version"`
	Configuration string           `yaml:"configuration"`
	Root          int64            `yaml:"root"`
	Nodes         []NodeDTO        `yaml:"nodes"`
	Edges         []EdgeDTO        `yaml:"edges"`
	Dependencies  []DependencyDTO  `yaml:"dependencies"`
	ArtifactSets  []ArtifactSetDTO `yaml:"artifactSets"`
}

// NodeDTO represents a resolved component.
type NodeDTO struct {
	ID        int64  `yaml:"id"`
	Component string `yaml:"component"`
	Variant   string `yaml:"variant"`
	Artifacts *int   `yaml:"artifacts"`
}

// EdgeDTO represents a dependency edge. Either To or Failure is set.
type EdgeDTO struct {
	From      int64  `yaml:"from"`
	Requested string `yaml:"requested"`
	To        *int64 `yaml:"to"`
	Artifacts int    `yaml:"artifacts"`
	Failure   string `yaml:"failure"`
}

// DependencyDTO represents a dependency declared on the root.
type DependencyDTO struct {
	Selector string `yaml:"selector"`
	Reason   string `yaml:"reason"`
}

// ArtifactSetDTO represents a set of artifacts selected during resolution.
type ArtifactSetDTO struct {
	ID        int           `yaml:"id"`
	Artifacts []ArtifactDTO `yaml:"artifacts"`
}

// ArtifactDTO represents a single artifact.
type ArtifactDTO struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Extension  string `yaml:"extension"`
	Classifier string `yaml:"classifier"`
	Path       string `yaml:"path"`
}
