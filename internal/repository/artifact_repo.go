package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type ArtifactSQLite struct {
	db *sql.DB
}

func NewArtifactSQLite(db *sql.DB) *ArtifactSQLite {
	return &ArtifactSQLite{db: db}
}

const (
	modelArtifactRowID = 1

	upsertArtifactSQL = `
		INSERT INTO model_artifacts (id, payload, trained_at, samples, seed)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			payload=excluded.payload,
			trained_at=excluded.trained_at,
			samples=excluded.samples,
			seed=excluded.seed
	`

	selectArtifactSQL = `
		SELECT payload, trained_at, samples, seed
		FROM model_artifacts WHERE id=?
	`
)

// Save updates or inserts the model_artifacts row (id always 1). The
// payload is stored as text so the serialized model stays inspectable with
// any sqlite client.
func (r *ArtifactSQLite) Save(ctx context.Context, a ModelArtifact) error {
	if len(a.Payload) == 0 {
		return errors.New("refusing to save empty model payload")
	}

	tsUTC := a.TrainedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertArtifactSQL,
		modelArtifactRowID,
		string(a.Payload),
		tsUTC,
		a.Samples,
		a.Seed,
	)
	return err
}

// Load fetches the single model_artifacts row (id=1). A missing row is not
// an error: the caller falls back to training.
func (r *ArtifactSQLite) Load(ctx context.Context) (ModelArtifact, error) {
	row := r.db.QueryRowContext(ctx, selectArtifactSQL, modelArtifactRowID)

	var a ModelArtifact
	var payload string
	if err := row.Scan(
		&payload,
		&a.TrainedAt,
		&a.Samples,
		&a.Seed,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ModelArtifact{}, nil
		}
		return ModelArtifact{}, err
	}

	a.Payload = []byte(payload)
	a.TrainedAt = a.TrainedAt.UTC()
	return a, nil
}
