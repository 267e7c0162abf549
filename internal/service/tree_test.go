package service

import (
	"testing"

	"github.com/bhoomi2310/GreenPulse/internal/models"
)

func TestGini(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		counts []int
		total  float64
		want   float64
	}{
		{"pure node", []int{10, 0, 0, 0}, 10, 0},
		{"empty node", []int{0, 0, 0, 0}, 0, 0},
		{"even two-way split", []int{5, 5, 0, 0}, 10, 0.5},
		{"even four-way split", []int{4, 4, 4, 4}, 16, 0.75},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := gini(tc.counts, tc.total)
			if diff := got - tc.want; diff > 1e-12 || diff < -1e-12 {
				t.Fatalf("gini(%v) = %.6f, want %.6f", tc.counts, got, tc.want)
			}
		})
	}
}

func TestMajorityLabel(t *testing.T) {
	t.Parallel()

	// Counts follow the canonical label order.
	label, purity := majorityLabel([]int{2, 7, 1, 0}, 10)
	if label != models.LabelNeedsWater {
		t.Fatalf("majority = %q, want %q", label, models.LabelNeedsWater)
	}
	if purity != 0.7 {
		t.Fatalf("purity = %.2f, want 0.7", purity)
	}

	// Ties resolve to the earlier label in canonical order.
	label, _ = majorityLabel([]int{5, 5, 0, 0}, 10)
	if label != models.LabelHealthy {
		t.Fatalf("tie resolved to %q, want %q", label, models.LabelHealthy)
	}
}

func TestGrowTree_PureSetStaysALeaf(t *testing.T) {
	t.Parallel()

	samples := []TrainingSample{
		{Humidity: 60, Light: 400, Moisture: 60, Label: models.LabelHealthy},
		{Humidity: 70, Light: 500, Moisture: 70, Label: models.LabelHealthy},
		{Humidity: 50, Light: 300, Moisture: 50, Label: models.LabelHealthy},
	}
	node := growTree(samples, 0)
	if !node.leaf() {
		t.Fatalf("pure training set should produce a single leaf")
	}
	if node.Label != models.LabelHealthy || node.Purity != 1 {
		t.Fatalf("leaf = (%q, %.2f), want (Healthy, 1)", node.Label, node.Purity)
	}
}

func TestGrowTree_SplitsOnTheSeparatingFeature(t *testing.T) {
	t.Parallel()

	// Perfectly separable on moisture at 40; humidity and light carry no
	// signal.
	samples := []TrainingSample{
		{Humidity: 60, Light: 400, Moisture: 10, Label: models.LabelNeedsWater},
		{Humidity: 62, Light: 410, Moisture: 20, Label: models.LabelNeedsWater},
		{Humidity: 61, Light: 390, Moisture: 30, Label: models.LabelNeedsWater},
		{Humidity: 60, Light: 405, Moisture: 50, Label: models.LabelHealthy},
		{Humidity: 63, Light: 395, Moisture: 60, Label: models.LabelHealthy},
		{Humidity: 59, Light: 400, Moisture: 70, Label: models.LabelHealthy},
	}
	node := growTree(samples, 0)
	if node.leaf() {
		t.Fatalf("separable set should split")
	}
	if node.Feature != 2 {
		t.Fatalf("split on feature %d, want 2 (moisture)", node.Feature)
	}
	if node.Threshold != 40 {
		t.Fatalf("threshold = %.2f, want the midpoint 40", node.Threshold)
	}
	if !node.Left.leaf() || !node.Right.leaf() {
		t.Fatalf("one split separates this set completely")
	}
	if node.Left.Label != models.LabelNeedsWater || node.Right.Label != models.LabelHealthy {
		t.Fatalf("children labeled (%q, %q)", node.Left.Label, node.Right.Label)
	}
	if node.Left.Purity != 1 || node.Right.Purity != 1 {
		t.Fatalf("children should be pure, got %.2f and %.2f", node.Left.Purity, node.Right.Purity)
	}

	// Internal nodes carry no leaf payload; leaves carry no split payload.
	if node.Label != "" || node.Purity != 0 {
		t.Fatalf("internal node still has leaf payload: %q %.2f", node.Label, node.Purity)
	}
}

func TestGrowTree_RespectsDepthLimit(t *testing.T) {
	t.Parallel()

	p := NewPredictorService(DefaultRules(), nil)
	tree := growTree(p.SyntheticSamples(2000, 42), 0)
	if d := tree.depth(); d > maxTreeDepth {
		t.Fatalf("tree depth %d exceeds the limit %d", d, maxTreeDepth)
	}
}

func TestGrowTree_IndistinguishableSamplesStayALeaf(t *testing.T) {
	t.Parallel()

	// Identical features with conflicting labels leave nothing to split on.
	samples := []TrainingSample{
		{Humidity: 60, Light: 400, Moisture: 50, Label: models.LabelHealthy},
		{Humidity: 60, Light: 400, Moisture: 50, Label: models.LabelNeedsWater},
	}
	node := growTree(samples, 0)
	if !node.leaf() {
		t.Fatalf("identical features cannot be split")
	}
	if node.Purity != 0.5 {
		t.Fatalf("purity = %.2f, want 0.5", node.Purity)
	}
}

func TestTreeNode_Classify(t *testing.T) {
	t.Parallel()

	tree := &treeNode{
		Feature:   2,
		Threshold: 30,
		Left:      &treeNode{Label: models.LabelNeedsWater, Purity: 1},
		Right: &treeNode{
			Feature:   1,
			Threshold: 1000,
			Left:      &treeNode{Label: models.LabelHealthy, Purity: 0.9},
			Right:     &treeNode{Label: models.LabelNeedsShade, Purity: 0.95},
		},
	}

	cases := []struct {
		name       string
		features   [featureCount]float64
		wantLabel  models.HealthLabel
		wantPurity float64
	}{
		{"dry goes left", [featureCount]float64{65, 400, 10}, models.LabelNeedsWater, 1},
		{"wet and dim goes right-left", [featureCount]float64{65, 400, 60}, models.LabelHealthy, 0.9},
		{"wet and bright goes right-right", [featureCount]float64{65, 1200, 60}, models.LabelNeedsShade, 0.95},
		{"boundary value goes right", [featureCount]float64{65, 400, 30}, models.LabelHealthy, 0.9},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			label, purity := tree.classify(tc.features)
			if label != tc.wantLabel || purity != tc.wantPurity {
				t.Fatalf("classify(%v) = (%q, %.2f), want (%q, %.2f)", tc.features, label, purity, tc.wantLabel, tc.wantPurity)
			}
		})
	}
}
