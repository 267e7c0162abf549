package models

// HealthLabel is one of the four maintenance categories a moss wall can be
// classified into.
type HealthLabel string

const (
	LabelHealthy        HealthLabel = "Healthy"
	LabelNeedsWater     HealthLabel = "Needs Water"
	LabelNeedsShade     HealthLabel = "Needs Shade"
	LabelNeedsAttention HealthLabel = "Needs Attention"
)

// Labels returns every health label in canonical order. The order is stable
// so model training and distribution reports stay deterministic.
func Labels() []HealthLabel {
	return []HealthLabel{LabelHealthy, LabelNeedsWater, LabelNeedsShade, LabelNeedsAttention}
}

// PredictionSource tells which path produced a prediction.
type PredictionSource string

const (
	SourceModel        PredictionSource = "model"
	SourceRuleFallback PredictionSource = "rule_fallback"
)

// HealthPrediction is the classifier output for one feature triple.
// Confidence is 1 for rule-based answers and the training purity of the
// matched leaf for model answers.
type HealthPrediction struct {
	Label      HealthLabel      `json:"label"`
	Confidence float64          `json:"confidence"`
	Source     PredictionSource `json:"source"`
}
