// Package hypothesis checks the experiment's three claims against the
// per-dimension correlations collected for every judge.
//
// H1 and H2 are fixed. H3 exists in two incompatible formulations and both
// are kept as separate variants: Ensemble compares a human/judge blend with
// the best single judge, CrossModel compares the best judge with the others.
package hypothesis

import (
	"fmt"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
)

const (
	StructuredThreshold  = 0.7
	SubjectiveThreshold  = 0.5
	ImprovementThreshold = 0.15
)

type Variant string

const (
	Ensemble   Variant = "ensemble"
	CrossModel Variant = "cross_model"
)

func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case Ensemble, CrossModel:
		return Variant(s), nil
	case "":
		return CrossModel, nil
	default:
		return "", fmt.Errorf("unknown H3 variant %q, expected %q or %q", s, Ensemble, CrossModel)
	}
}

// JudgeStats holds one judge's per-dimension statistics. Order matters for
// reproducible float sums, so results are passed as a slice.
type JudgeStats struct {
	Judge string
	Stats metrics.StatSet
}

type MeanVerdict struct {
	Hypothesis string  `json:"hypothesis"`
	Result     float64 `json:"result"`
	Threshold  float64 `json:"threshold"`
	Samples    int     `json:"samples"`
	Validated  bool    `json:"validated"`
}

type ComparisonVerdict struct {
	Hypothesis          string             `json:"hypothesis"`
	Variant             Variant            `json:"variant"`
	IndividualBest      float64            `json:"individual_best"`
	BestModel           string             `json:"best_model"`
	ModelPerformances   map[string]float64 `json:"model_performances"`
	EnsemblePerformance *float64           `json:"ensemble_performance,omitempty"`
	OthersMean          *float64           `json:"others_mean,omitempty"`
	ImprovementPercent  float64            `json:"improvement_percent"`
	Threshold           float64            `json:"threshold"`
	Validated           bool               `json:"validated"`
}

type Validation struct {
	H1 MeanVerdict       `json:"H1"`
	H2 MeanVerdict       `json:"H2"`
	H3 ComparisonVerdict `json:"H3"`
}
