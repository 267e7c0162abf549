package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/bhoomi2310/GreenPulse/internal/models"
	"github.com/bhoomi2310/GreenPulse/internal/repository"
)

// ----------- Health score constants -----------

// Set points for the 0..10 health score. Moisture carries the most weight:
// a drying wall degrades fastest.
const (
	optimalHumidity = 70.0  // %RH
	optimalLight    = 500.0 // lux
	optimalMoisture = 65.0  // %

	humidityWeight = 0.3
	lightWeight    = 0.3
	moistureWeight = 0.4

	humiditySpan = 50.0
	lightSpan    = 700.0
	moistureSpan = 65.0
)

// artifactVersion guards the serialized tree layout. Bump it when the node
// encoding changes; stale artifacts then fail Load and get retrained.
const artifactVersion = 1

// modelArtifact is the serialized form of a trained classifier.
type modelArtifact struct {
	Version   int       `json:"version"`
	TrainedAt time.Time `json:"trained_at"`
	Samples   int       `json:"samples"`
	Seed      int64     `json:"seed"`
	Rules     Ruleset   `json:"rules"`
	Tree      *treeNode `json:"tree"`
}

// PredictorService owns the trained moss health classifier and its rule
// fallback. Nothing mutates after the initial Load or Train, so concurrent
// readers need no locking.
type PredictorService struct {
	rules Ruleset
	store repository.ArtifactStore

	tree      *treeNode
	trainedAt time.Time
	samples   int
	seed      int64
}

// NewPredictorService returns a predictor that starts in rule fallback mode
// until a model is loaded or trained. store may be nil; the predictor then
// works purely in memory.
func NewPredictorService(rules Ruleset, store repository.ArtifactStore) *PredictorService {
	return &PredictorService{rules: rules, store: store}
}

// Rules returns the active threshold table.
func (p *PredictorService) Rules() Ruleset {
	return p.rules
}

// Predict classifies one feature triple. Out-of-range input is clamped to
// the physical bounds first; the call cannot fail. Without a trained tree
// the rule table answers directly with full confidence.
func (p *PredictorService) Predict(humidity, light, moisture float64) models.HealthPrediction {
	humidity = models.HumidityRange.Clamp(humidity)
	light = models.LightRange.Clamp(light)
	moisture = models.MoistureRange.Clamp(moisture)

	if p.tree != nil {
		label, purity := p.tree.classify([featureCount]float64{humidity, light, moisture})
		return models.HealthPrediction{Label: label, Confidence: purity, Source: models.SourceModel}
	}
	return models.HealthPrediction{
		Label:      p.rules.Classify(humidity, light, moisture),
		Confidence: 1,
		Source:     models.SourceRuleFallback,
	}
}

// SyntheticSamples draws n feature triples uniformly across the physical
// ranges and labels each one with the rule table. The rules double as the
// label generator on purpose: the trained model approximates exactly the
// boundary the fallback enforces.
func (p *PredictorService) SyntheticSamples(n int, seed int64) []TrainingSample {
	rng := rand.New(rand.NewSource(seed))
	out := make([]TrainingSample, 0, n)
	for i := 0; i < n; i++ {
		h := uniform(rng, models.HumidityRange.Min, models.HumidityRange.Max)
		l := uniform(rng, models.LightRange.Min, models.LightRange.Max)
		m := uniform(rng, models.MoistureRange.Min, models.MoistureRange.Max)
		out = append(out, TrainingSample{
			Humidity: h,
			Light:    l,
			Moisture: m,
			Label:    p.rules.Classify(h, l, m),
		})
	}
	return out
}

// Fit trains the decision tree on the given samples. Growth is greedy and
// order dependent, so a fixed sample slice always yields the same tree.
func (p *PredictorService) Fit(samples []TrainingSample) error {
	if len(samples) == 0 {
		return errors.New("fit: empty training set")
	}
	p.tree = growTree(samples, 0)
	p.trainedAt = time.Now().UTC()
	p.samples = len(samples)
	return nil
}

// Train is the startup path: synthesize n labeled samples from the given
// seed, fit, and persist the result when a store is attached.
func (p *PredictorService) Train(ctx context.Context, n int, seed int64) error {
	if n <= 0 {
		return fmt.Errorf("%w: training size must be positive, got %d", ErrConfig, n)
	}
	if err := p.Fit(p.SyntheticSamples(n, seed)); err != nil {
		return err
	}
	p.seed = seed
	if p.store == nil {
		return nil
	}
	return p.Save(ctx)
}

// Evaluate returns the fraction of samples the predictor labels the same
// way as their stored label.
func (p *PredictorService) Evaluate(samples []TrainingSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	hits := 0
	for _, s := range samples {
		if p.Predict(s.Humidity, s.Light, s.Moisture).Label == s.Label {
			hits++
		}
	}
	return float64(hits) / float64(len(samples))
}

// Load pulls the persisted classifier if a usable one exists. Every failure
// mode, a missing artifact, an unreadable store, a corrupt payload, version
// skew or thresholds that no longer match the active rules, reports false
// so the caller can fall back to training.
func (p *PredictorService) Load(ctx context.Context) bool {
	if p.store == nil {
		return false
	}
	stored, err := p.store.Load(ctx)
	if err != nil || len(stored.Payload) == 0 {
		return false
	}
	var art modelArtifact
	if err := json.Unmarshal(stored.Payload, &art); err != nil {
		return false
	}
	if art.Version != artifactVersion || art.Tree == nil || art.Rules != p.rules {
		return false
	}
	p.tree = art.Tree
	p.trainedAt = art.TrainedAt
	p.samples = art.Samples
	p.seed = art.Seed
	return true
}

// Save persists the trained classifier through the artifact store.
func (p *PredictorService) Save(ctx context.Context) error {
	if p.tree == nil {
		return errors.New("save: no trained model")
	}
	if p.store == nil {
		return errors.New("save: no artifact store attached")
	}
	payload, err := json.Marshal(modelArtifact{
		Version:   artifactVersion,
		TrainedAt: p.trainedAt,
		Samples:   p.samples,
		Seed:      p.seed,
		Rules:     p.rules,
		Tree:      p.tree,
	})
	if err != nil {
		return fmt.Errorf("marshal model artifact: %w", err)
	}
	return p.store.Save(ctx, repository.ModelArtifact{
		Payload:   payload,
		TrainedAt: p.trainedAt,
		Samples:   p.samples,
		Seed:      p.seed,
	})
}

// HealthScore grades a reading 0..10 by weighted distance from the optimal
// set points.
func (p *PredictorService) HealthScore(humidity, light, moisture float64) float64 {
	hs := 1 - math.Abs(models.HumidityRange.Clamp(humidity)-optimalHumidity)/humiditySpan
	ls := 1 - math.Abs(models.LightRange.Clamp(light)-optimalLight)/lightSpan
	ms := 1 - math.Abs(models.MoistureRange.Clamp(moisture)-optimalMoisture)/moistureSpan

	score := (clamp01(hs)*humidityWeight + clamp01(ls)*lightWeight + clamp01(ms)*moistureWeight) * 10
	return math.Round(score*10) / 10
}

// Recommendations returns the maintenance checklist shown for a label.
func (p *PredictorService) Recommendations(label models.HealthLabel) []string {
	switch label {
	case models.LabelNeedsWater:
		return []string{
			"Activate the misting system",
			"Check water reservoir levels",
			"Inspect irrigation lines for blockages",
		}
	case models.LabelNeedsShade:
		return []string{
			"Deploy temporary shading",
			"Increase misting frequency during peak light",
			"Review nearby reflective surfaces",
		}
	case models.LabelNeedsAttention:
		return []string{
			"Schedule an on-site inspection",
			"Recalibrate the wall's humidity sensors",
			"Check ventilation around the installation",
		}
	default:
		return []string{
			"Keep the current maintenance schedule",
			"Continue routine monitoring",
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
