package service

import (
	"sort"

	"github.com/bhoomi2310/GreenPulse/internal/models"
)

// featureCount is the width of the classifier input vector, ordered as
// (humidity, light, moisture).
const featureCount = 3

const (
	maxTreeDepth    = 10
	minSplitSamples = 2
)

// TrainingSample is one synthetic (features, label) pair.
type TrainingSample struct {
	Humidity float64            `json:"humidity"`
	Light    float64            `json:"light"`
	Moisture float64            `json:"moisture"`
	Label    models.HealthLabel `json:"label"`
}

func (s TrainingSample) features() [featureCount]float64 {
	return [featureCount]float64{s.Humidity, s.Light, s.Moisture}
}

// treeNode is one node of the trained classifier, serialized as-is into the
// model artifact. Internal nodes route on feature < threshold; leaves carry
// the majority label and its training purity.
type treeNode struct {
	Feature   int                `json:"feature,omitempty"`
	Threshold float64            `json:"threshold,omitempty"`
	Left      *treeNode          `json:"left,omitempty"`
	Right     *treeNode          `json:"right,omitempty"`
	Label     models.HealthLabel `json:"label,omitempty"`
	Purity    float64            `json:"purity,omitempty"`
}

func (n *treeNode) leaf() bool { return n.Left == nil }

// classify walks the tree for one clamped feature vector.
func (n *treeNode) classify(f [featureCount]float64) (models.HealthLabel, float64) {
	node := n
	for !node.leaf() {
		if f[node.Feature] < node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Label, node.Purity
}

func (n *treeNode) depth() int {
	if n == nil || n.leaf() {
		return 0
	}
	l, r := n.Left.depth(), n.Right.depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// treeLabels fixes the class order for counting. Counting into a slice
// instead of a map keeps every float accumulation order stable, which keeps
// training fully deterministic.
var treeLabels = models.Labels()

func labelIndex(l models.HealthLabel) int {
	for i, c := range treeLabels {
		if c == l {
			return i
		}
	}
	return 0
}

func countLabels(samples []TrainingSample) []int {
	counts := make([]int, len(treeLabels))
	for _, s := range samples {
		counts[labelIndex(s.Label)]++
	}
	return counts
}

func gini(counts []int, total float64) float64 {
	if total == 0 {
		return 0
	}
	g := 1.0
	for _, c := range counts {
		p := float64(c) / total
		g -= p * p
	}
	return g
}

func majorityLabel(counts []int, total float64) (models.HealthLabel, float64) {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	if total == 0 {
		return treeLabels[0], 0
	}
	return treeLabels[best], float64(counts[best]) / total
}

// growTree builds a CART classifier with gini splits. Growth is greedy and
// deterministic: features are scanned in fixed order, thresholds are
// midpoints between consecutive distinct sorted values, and only strict
// impurity improvements are taken.
func growTree(samples []TrainingSample, depth int) *treeNode {
	counts := countLabels(samples)
	total := float64(len(samples))
	label, purity := majorityLabel(counts, total)
	node := &treeNode{Label: label, Purity: purity}

	if depth >= maxTreeDepth || len(samples) < minSplitSamples || purity == 1 {
		return node
	}
	feature, threshold, ok := bestSplit(samples, counts)
	if !ok {
		return node
	}

	var left, right []TrainingSample
	for _, s := range samples {
		if s.features()[feature] < threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	node.Label = ""
	node.Purity = 0
	node.Feature = feature
	node.Threshold = threshold
	node.Left = growTree(left, depth+1)
	node.Right = growTree(right, depth+1)
	return node
}

// bestSplit scans every feature for the threshold with the lowest weighted
// child impurity, sweeping sorted samples once with running class counts.
// Candidate thresholds sit between runs of equal values, so the sweep is
// insensitive to how ties are ordered.
func bestSplit(samples []TrainingSample, parentCounts []int) (int, float64, bool) {
	total := float64(len(samples))
	bestImpurity := gini(parentCounts, total)
	bestFeature, bestThreshold := 0, 0.0
	found := false

	order := make([]int, len(samples))
	for f := 0; f < featureCount; f++ {
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return samples[order[a]].features()[f] < samples[order[b]].features()[f]
		})

		left := make([]int, len(treeLabels))
		right := append([]int(nil), parentCounts...)
		for i := 0; i < len(order)-1; i++ {
			s := samples[order[i]]
			idx := labelIndex(s.Label)
			left[idx]++
			right[idx]--

			v := s.features()[f]
			next := samples[order[i+1]].features()[f]
			if v == next {
				continue
			}
			nl := float64(i + 1)
			nr := total - nl
			impurity := (nl*gini(left, nl) + nr*gini(right, nr)) / total
			if impurity < bestImpurity {
				bestImpurity = impurity
				bestFeature = f
				bestThreshold = (v + next) / 2
				found = true
			}
		}
	}
	return bestFeature, bestThreshold, found
}
