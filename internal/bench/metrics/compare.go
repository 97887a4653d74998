package metrics

import (
	"fmt"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
)

type DimensionStats struct {
	Correlation float64 `json:"correlation"`
	PValue      float64 `json:"p_value"`
	MAE         float64 `json:"mae"`
	HumanMean   float64 `json:"human_mean"`
	JudgeMean   float64 `json:"llm_mean"`
}

type StatSet map[rating.Dimension]DimensionStats

// MeanCorrelation averages the correlation over the given dimensions.
func (s StatSet) MeanCorrelation(dims []rating.Dimension) float64 {
	if len(dims) == 0 {
		return 0
	}
	var sum float64
	for _, d := range dims {
		sum += s[d].Correlation
	}
	return sum / float64(len(dims))
}

func ComputeStats(human, judge []float64, method Significance) DimensionStats {
	r, p := Correlate(human, judge, method)
	return DimensionStats{
		Correlation: r,
		PValue:      p,
		MAE:         MeanAbsoluteError(human, judge),
		HumanMean:   Mean(human),
		JudgeMean:   Mean(judge),
	}
}

// Compare aligns both tables on the human table's paper order and computes
// per-dimension statistics.
func Compare(human, other *rating.Table, dims []rating.Dimension, method Significance) (StatSet, error) {
	if human.Len() != other.Len() {
		return nil, apperr.NewValidation(fmt.Sprintf("compare %q with %q: %d papers vs %d", human.Source, other.Source, human.Len(), other.Len()))
	}

	order := human.PaperIDs()
	stats := make(StatSet, len(dims))

	for _, d := range dims {
		h, err := human.Column(d, order)
		if err != nil {
			return nil, fmt.Errorf("compare %s: %w", d, err)
		}
		o, err := other.Column(d, order)
		if err != nil {
			return nil, fmt.Errorf("compare %s: %w", d, err)
		}
		stats[d] = ComputeStats(h, o, method)
	}

	return stats, nil
}
