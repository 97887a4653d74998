package metrics

import (
	"math"
	"sort"
)

// Distribution summarizes a score sample.
type Distribution struct {
	Min         float64         `json:"min"`
	Max         float64         `json:"max"`
	Mean        float64         `json:"mean"`
	Median      float64         `json:"median"`
	Stddev      float64         `json:"stddev"`
	Percentiles map[int]float64 `json:"percentiles"`
	SampleCount int             `json:"sample_count"`
}

var defaultPercentiles = []int{50, 75, 90, 95, 99}

func ComputeDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{
			Percentiles: make(map[int]float64),
		}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		Min:         sorted[0],
		Max:         sorted[len(sorted)-1],
		Mean:        Mean(sorted),
		Median:      percentile(sorted, 50),
		Percentiles: make(map[int]float64, len(defaultPercentiles)),
		SampleCount: len(values),
	}

	if len(sorted) > 1 {
		var sumSquares float64
		for _, v := range sorted {
			diff := v - d.Mean
			sumSquares += diff * diff
		}
		d.Stddev = math.Sqrt(sumSquares / float64(len(sorted)-1))
	}

	for _, p := range defaultPercentiles {
		d.Percentiles[p] = percentile(sorted, p)
	}

	return d
}

func percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := float64(p) / 100.0 * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
