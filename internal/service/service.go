package service

import (
	"context"
	"time"

	"github.com/bhoomi2310/GreenPulse/internal/models"
	"github.com/bhoomi2310/GreenPulse/internal/repository"
)

// Simulator produces the current synthetic reading for a site.
type Simulator interface {
	Reading(locationID string, at time.Time) (models.SensorReading, error)
}

// History generates rolling windows of past readings with interventions
// overlaid, plus the weekly roll-up.
type History interface {
	Series(locationID string, end time.Time, horizonHours, intervalMinutes int) (models.HistoricalSeries, error)
	WeeklySummary(locationID string, end time.Time) ([]models.DailySummary, error)
}

// Predictor classifies feature triples and manages the model lifecycle.
type Predictor interface {
	Predict(humidity, light, moisture float64) models.HealthPrediction
	HealthScore(humidity, light, moisture float64) float64
	Recommendations(label models.HealthLabel) []string
	Rules() Ruleset
	SyntheticSamples(n int, seed int64) []TrainingSample
	Fit(samples []TrainingSample) error
	Evaluate(samples []TrainingSample) float64
	Train(ctx context.Context, n int, seed int64) error
	Load(ctx context.Context) bool
	Save(ctx context.Context) error
}

// Insight derives the dashboard analytics panels.
type Insight interface {
	StatusDistribution(locationID string, end time.Time, horizonHours int) (map[models.HealthLabel]int, error)
	Impact(locationID string, at time.Time) (models.ImpactReport, error)
}

// Directory lists and resolves the configured sites.
type Directory interface {
	List() []models.Location
	Get(id string) (models.Location, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Simulator
	History
	Predictor
	Insight
	Directory
}

// Options bundles the wiring inputs for NewService.
type Options struct {
	Locations []models.Location
	Seed      int64
	Events    EventProfile
	Rules     Ruleset
	Store     repository.ArtifactStore
}

// NewService wires the concrete services together. Store may be nil when no
// artifact persistence is wanted.
func NewService(opts Options) (*Service, error) {
	table, err := NewLocationTable(opts.Locations)
	if err != nil {
		return nil, err
	}
	sim := NewSimulatorService(table, opts.Seed)
	hist := NewHistoryService(table, opts.Seed, opts.Events)
	pred := NewPredictorService(opts.Rules, opts.Store)
	return &Service{
		Simulator: sim,
		History:   hist,
		Predictor: pred,
		Insight:   NewInsightService(sim, hist, pred, opts.Seed),
		Directory: table,
	}, nil
}
