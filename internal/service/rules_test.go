package service

import (
	"testing"

	"github.com/bhoomi2310/GreenPulse/internal/models"
)

func TestRuleset_Classify_PriorityOrder(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()

	cases := []struct {
		name     string
		humidity float64
		light    float64
		moisture float64
		want     models.HealthLabel
	}{
		{
			name:     "all in band is healthy",
			humidity: 65, light: 400, moisture: 60,
			want: models.LabelHealthy,
		},
		{
			name:     "dry wall needs water",
			humidity: 65, light: 400, moisture: 20,
			want: models.LabelNeedsWater,
		},
		{
			name:     "harsh light needs shade",
			humidity: 65, light: 1200, moisture: 60,
			want: models.LabelNeedsShade,
		},
		{
			name:     "humidity below band needs attention",
			humidity: 30, light: 400, moisture: 60,
			want: models.LabelNeedsAttention,
		},
		{
			name:     "humidity above band needs attention",
			humidity: 92, light: 400, moisture: 60,
			want: models.LabelNeedsAttention,
		},
		{
			name:     "dryness beats harsh light",
			humidity: 65, light: 1400, moisture: 10,
			want: models.LabelNeedsWater,
		},
		{
			name:     "dryness beats humidity excursion",
			humidity: 20, light: 400, moisture: 5,
			want: models.LabelNeedsWater,
		},
		{
			name:     "harsh light beats humidity excursion",
			humidity: 20, light: 1300, moisture: 60,
			want: models.LabelNeedsShade,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := rules.Classify(tc.humidity, tc.light, tc.moisture)
			if got != tc.want {
				t.Fatalf("Classify(%.0f, %.0f, %.0f) = %q; want %q", tc.humidity, tc.light, tc.moisture, got, tc.want)
			}
		})
	}
}

func TestRuleset_Classify_CustomThresholds(t *testing.T) {
	t.Parallel()

	// With a lower dryness threshold the same reading flips from
	// "Needs Water" to a humidity problem.
	custom := Ruleset{LowMoisture: 20, HighLight: 1000, HumidityMin: 40, HumidityMax: 80}

	if got := DefaultRules().Classify(50, 50, 10); got != models.LabelNeedsWater {
		t.Fatalf("default rules: got %q, want %q", got, models.LabelNeedsWater)
	}
	if got := custom.Classify(50, 50, 25); got != models.LabelHealthy {
		t.Fatalf("custom rules: got %q, want %q", got, models.LabelHealthy)
	}
}

func TestRuleset_Classify_AlwaysReturnsKnownLabel(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	known := make(map[models.HealthLabel]bool)
	for _, l := range models.Labels() {
		known[l] = true
	}

	// Sweep a coarse grid across the full physical ranges; every cell must
	// land on one of the four labels.
	for h := models.HumidityRange.Min; h <= models.HumidityRange.Max; h += 10 {
		for l := models.LightRange.Min; l <= models.LightRange.Max; l += 150 {
			for m := models.MoistureRange.Min; m <= models.MoistureRange.Max; m += 10 {
				got := rules.Classify(h, l, m)
				if !known[got] {
					t.Fatalf("Classify(%.0f, %.0f, %.0f) returned unknown label %q", h, l, m, got)
				}
			}
		}
	}
}
