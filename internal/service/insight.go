package service

import (
	"math"
	"time"

	"github.com/bhoomi2310/GreenPulse/internal/models"
)

// ----------- Impact estimate constants -----------

const (
	co2AbsorbMinKg   = 15.0 // kg/day at full efficiency
	co2AbsorbMaxKg   = 25.0
	airPurifiedLoM3  = 500.0 // m³/day
	airPurifiedHiM3  = 800.0
	energySavedLoKWh = 25.0 // kWh/day of cooling offset
	energySavedHiKWh = 40.0
	waterEffLoPct    = 85.0 // % recirculated
	waterEffHiPct    = 95.0
)

const distributionIntervalMinutes = 15

// InsightService derives the dashboard's analytics panels from generated
// series and the predictor.
type InsightService struct {
	simulator Simulator
	history   History
	predictor Predictor
	seed      int64
}

// NewInsightService wires the analytics layer on top of the other services.
func NewInsightService(sim Simulator, hist History, pred Predictor, seed int64) *InsightService {
	return &InsightService{simulator: sim, history: hist, predictor: pred, seed: seed}
}

// StatusDistribution classifies every reading of the trailing window and
// counts the labels. All four labels appear in the result, zeros included,
// so chart legends stay stable across refreshes.
func (s *InsightService) StatusDistribution(locationID string, end time.Time, horizonHours int) (map[models.HealthLabel]int, error) {
	series, err := s.history.Series(locationID, end, horizonHours, distributionIntervalMinutes)
	if err != nil {
		return nil, err
	}
	dist := make(map[models.HealthLabel]int, len(models.Labels()))
	for _, l := range models.Labels() {
		dist[l] = 0
	}
	for _, r := range series.Readings {
		dist[s.predictor.Predict(r.Humidity, r.Light, r.Moisture).Label]++
	}
	return dist, nil
}

// Impact estimates the environmental panel from the current reading. CO₂
// absorption scales with how wet and humid the wall is right now; the other
// figures are demo estimates that stay stable within the hour.
func (s *InsightService) Impact(locationID string, at time.Time) (models.ImpactReport, error) {
	if at.IsZero() {
		at = time.Now()
	}
	at = at.UTC()
	r, err := s.simulator.Reading(locationID, at)
	if err != nil {
		return models.ImpactReport{}, err
	}

	efficiency := math.Min(1, r.Humidity/100*r.Moisture/70)
	rng := derivedRand(s.seed, "impact/"+locationID, at.Truncate(time.Hour).Unix())

	return models.ImpactReport{
		LocationID:      locationID,
		CO2AbsorbedKg:   round1(efficiency * uniform(rng, co2AbsorbMinKg, co2AbsorbMaxKg)),
		AirPurifiedM3:   round1(uniform(rng, airPurifiedLoM3, airPurifiedHiM3)),
		EnergySavedKWh:  round1(uniform(rng, energySavedLoKWh, energySavedHiKWh)),
		WaterEfficiency: round1(uniform(rng, waterEffLoPct, waterEffHiPct)),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
