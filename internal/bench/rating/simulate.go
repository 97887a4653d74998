package rating

import (
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/sampler"
	"github.com/DjordjeVuckovic/judge-bench/internal/domain"
)

const HumanSource = "human"

// Noise model. Judges stay close to humans on structured dimensions and drift
// far on subjective ones.
const (
	BaseQualityMean = 3.0
	BaseQualityStd  = 0.8
	HumanNoiseStd   = 0.3
	StructuredNoise = 0.4
	SubjectiveNoise = 1.2
)

// SimulateHuman draws a latent quality per paper and derives each dimension
// score from it with independent noise.
func SimulateHuman(src *sampler.Source, papers []domain.Paper) *Table {
	t := NewTable(HumanSource)

	for _, p := range papers {
		base := sampler.Clip(src.Normal(BaseQualityMean, BaseQualityStd), MinScore, MaxScore)
		for _, d := range Dimensions {
			t.Set(p.ID, d, sampler.Clip(base+src.Normal(0, HumanNoiseStd), MinScore, MaxScore))
		}
	}

	return t
}

// SimulateJudge perturbs every human score with class-dependent noise.
// The judge label only names the resulting table.
func SimulateJudge(src *sampler.Source, human *Table, judge string) *Table {
	t := NewTable(judge)

	for _, id := range human.order {
		scores := human.scores[id]
		for _, d := range Dimensions {
			h, ok := scores[d]
			if !ok {
				continue
			}
			t.Set(id, d, sampler.Clip(h+src.Normal(0, NoiseStd(d)), MinScore, MaxScore))
		}
	}

	return t
}

func NoiseStd(d Dimension) float64 {
	if d.Class() == Structured {
		return StructuredNoise
	}
	return SubjectiveNoise
}
