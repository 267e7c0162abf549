package service

import "github.com/bhoomi2310/GreenPulse/internal/models"

// Ruleset holds the health classification thresholds. The rules are checked
// first-match-wins: dryness beats harsh light beats a humidity excursion.
// The same table labels the synthetic training data, so a trained model is
// expected to reproduce these boundaries, never to improve on them.
type Ruleset struct {
	LowMoisture float64 `json:"low_moisture"` // % below which the wall needs water
	HighLight   float64 `json:"high_light"`   // lux above which the wall needs shade
	HumidityMin float64 `json:"humidity_min"` // %RH lower edge of the acceptable band
	HumidityMax float64 `json:"humidity_max"` // %RH upper edge of the acceptable band
}

// DefaultRules returns the thresholds the dashboard ships with.
func DefaultRules() Ruleset {
	return Ruleset{
		LowMoisture: 30,
		HighLight:   1000,
		HumidityMin: 40,
		HumidityMax: 80,
	}
}

// Classify maps one feature triple to its maintenance category. Inputs are
// expected to be clamped already; the priority order is part of the
// contract, a bone-dry wall needs water no matter how bright it is.
func (r Ruleset) Classify(humidity, light, moisture float64) models.HealthLabel {
	switch {
	case moisture < r.LowMoisture:
		return models.LabelNeedsWater
	case light > r.HighLight:
		return models.LabelNeedsShade
	case humidity < r.HumidityMin || humidity > r.HumidityMax:
		return models.LabelNeedsAttention
	default:
		return models.LabelHealthy
	}
}
