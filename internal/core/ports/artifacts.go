package ports

import "go.trai.ch/graphcache/internal/core/domain"

// ArtifactResults resolves artifact set ids recorded in a results stream.
//
//go:generate mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactResults interface {
	ArtifactsWithID(id int) (domain.ArtifactSet, error)
}
