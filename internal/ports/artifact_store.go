package ports

import "github.com/aalvaropc/aoc/internal/domain"

// ArtifactStore persists solve artifacts for reproducibility.
type ArtifactStore interface {
	SaveRun(run domain.RunArtifact) (id string, err error)
	ListRuns() ([]domain.RunRef, error)
	LoadRun(id string) ([]byte, error)
}
