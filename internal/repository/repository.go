package repository

import (
	"context"
	"database/sql"
	"time"
)

// ModelArtifact is the one object this application persists: the serialized
// health classifier plus its training bookkeeping.
type ModelArtifact struct {
	Payload   []byte
	TrainedAt time.Time
	Samples   int
	Seed      int64
}

// ArtifactStore loads and saves the single model artifact. Load returns a
// zero artifact and nil error when none has been saved yet; callers treat
// an empty payload as "no model".
type ArtifactStore interface {
	Save(ctx context.Context, a ModelArtifact) error
	Load(ctx context.Context) (ModelArtifact, error)
}

type Repository struct {
	Artifacts ArtifactStore
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Artifacts: NewArtifactSQLite(db),
	}
}
