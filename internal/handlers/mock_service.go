package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhoomi2310/GreenPulse/internal/models"
	"github.com/bhoomi2310/GreenPulse/internal/service"
)

// ---- Service Mocks ----

type mockSimulator struct {
	reading models.SensorReading
	err     error

	lastLocation string
	lastAt       time.Time
	calls        int
}

func (m *mockSimulator) Reading(locationID string, at time.Time) (models.SensorReading, error) {
	m.calls++
	m.lastLocation = locationID
	m.lastAt = at
	return m.reading, m.err
}

type mockHistory struct {
	series     models.HistoricalSeries
	seriesErr  error
	summary    []models.DailySummary
	summaryErr error

	lastLocation string
	lastEnd      time.Time
	lastHours    int
	lastInterval int
}

func (m *mockHistory) Series(locationID string, end time.Time, horizonHours, intervalMinutes int) (models.HistoricalSeries, error) {
	m.lastLocation = locationID
	m.lastEnd = end
	m.lastHours = horizonHours
	m.lastInterval = intervalMinutes
	return m.series, m.seriesErr
}

func (m *mockHistory) WeeklySummary(locationID string, end time.Time) ([]models.DailySummary, error) {
	m.lastLocation = locationID
	m.lastEnd = end
	return m.summary, m.summaryErr
}

type mockPredictor struct {
	prediction models.HealthPrediction
	score      float64
	recs       []string
	rules      service.Ruleset
	samples    []service.TrainingSample
	fitErr     error
	accuracy   float64
	trainErr   error
	loadOK     bool
	saveErr    error

	predictCalls int
}

func (m *mockPredictor) Predict(humidity, light, moisture float64) models.HealthPrediction {
	m.predictCalls++
	return m.prediction
}
func (m *mockPredictor) HealthScore(humidity, light, moisture float64) float64 {
	return m.score
}
func (m *mockPredictor) Recommendations(label models.HealthLabel) []string {
	return m.recs
}
func (m *mockPredictor) Rules() service.Ruleset {
	return m.rules
}
func (m *mockPredictor) SyntheticSamples(n int, seed int64) []service.TrainingSample {
	return m.samples
}
func (m *mockPredictor) Fit(samples []service.TrainingSample) error {
	return m.fitErr
}
func (m *mockPredictor) Evaluate(samples []service.TrainingSample) float64 {
	return m.accuracy
}
func (m *mockPredictor) Train(ctx context.Context, n int, seed int64) error {
	return m.trainErr
}
func (m *mockPredictor) Load(ctx context.Context) bool {
	return m.loadOK
}
func (m *mockPredictor) Save(ctx context.Context) error {
	return m.saveErr
}

type mockInsight struct {
	dist      map[models.HealthLabel]int
	distErr   error
	report    models.ImpactReport
	reportErr error

	lastHours int
}

func (m *mockInsight) StatusDistribution(locationID string, end time.Time, horizonHours int) (map[models.HealthLabel]int, error) {
	m.lastHours = horizonHours
	return m.dist, m.distErr
}
func (m *mockInsight) Impact(locationID string, at time.Time) (models.ImpactReport, error) {
	return m.report, m.reportErr
}

type mockDirectory struct {
	locations []models.Location
}

func (m *mockDirectory) List() []models.Location {
	return m.locations
}
func (m *mockDirectory) Get(id string) (models.Location, error) {
	for _, loc := range m.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return models.Location{}, fmt.Errorf("%w: unknown location %q", service.ErrConfig, id)
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
