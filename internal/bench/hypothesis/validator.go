package hypothesis

import (
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
)

// Validate runs H1, H2 and the selected H3 variant. ensemble may be nil unless
// variant is Ensemble.
func Validate(judges []JudgeStats, ensemble metrics.StatSet, variant Variant) (*Validation, error) {
	if err := checkJudges(judges); err != nil {
		return nil, err
	}

	v := &Validation{
		H1: ValidateStructured(judges),
		H2: ValidateSubjective(judges),
	}

	switch variant {
	case Ensemble:
		if ensemble == nil {
			return nil, apperr.NewValidation("ensemble variant requires ensemble results")
		}
		if err := checkStats("ensemble", ensemble); err != nil {
			return nil, err
		}
		v.H3 = ValidateEnsemble(judges, ensemble)
	case CrossModel:
		v.H3 = ValidateCrossModel(judges)
	default:
		return nil, apperr.NewValidation(fmt.Sprintf("unknown H3 variant %q", variant))
	}

	return v, nil
}

// ValidateStructured checks that judges agree with humans on structured dimensions.
func ValidateStructured(judges []JudgeStats) MeanVerdict {
	mean, n := meanOver(judges, rating.StructuredDimensions)
	return MeanVerdict{
		Hypothesis: fmt.Sprintf("LLM correlation >%.1f on structured dimensions", StructuredThreshold),
		Result:     mean,
		Threshold:  StructuredThreshold,
		Samples:    n,
		Validated:  mean > StructuredThreshold,
	}
}

// ValidateSubjective checks that judges disagree with humans on subjective dimensions.
func ValidateSubjective(judges []JudgeStats) MeanVerdict {
	mean, n := meanOver(judges, rating.SubjectiveDimensions)
	return MeanVerdict{
		Hypothesis: fmt.Sprintf("LLM correlation <%.1f on subjective dimensions", SubjectiveThreshold),
		Result:     mean,
		Threshold:  SubjectiveThreshold,
		Samples:    n,
		Validated:  mean < SubjectiveThreshold,
	}
}

// ValidateEnsemble checks whether the blended ratings beat the best single
// judge by more than ImprovementThreshold.
func ValidateEnsemble(judges []JudgeStats, ensemble metrics.StatSet) ComparisonVerdict {
	perf, best, bestName := modelPerformances(judges)
	ens := ensemble.MeanCorrelation(rating.Dimensions)
	improvement := relativeImprovement(ens, best)

	return ComparisonVerdict{
		Hypothesis:          fmt.Sprintf("Ensemble outperforms individual by >%.0f%%", ImprovementThreshold*100),
		Variant:             Ensemble,
		IndividualBest:      best,
		BestModel:           bestName,
		ModelPerformances:   perf,
		EnsemblePerformance: &ens,
		ImprovementPercent:  improvement * 100,
		Threshold:           ImprovementThreshold,
		Validated:           improvement > ImprovementThreshold,
	}
}

// ValidateCrossModel checks whether the best judge beats the mean of the
// remaining judges by more than ImprovementThreshold. A single judge has
// nothing to beat and is never validated.
func ValidateCrossModel(judges []JudgeStats) ComparisonVerdict {
	perf, best, bestName := modelPerformances(judges)

	verdict := ComparisonVerdict{
		Hypothesis:        "Performance comparison across models",
		Variant:           CrossModel,
		IndividualBest:    best,
		BestModel:         bestName,
		ModelPerformances: perf,
		Threshold:         ImprovementThreshold,
	}

	if len(judges) < 2 {
		return verdict
	}

	var sum float64
	for _, j := range judges {
		if j.Judge == bestName {
			continue
		}
		sum += perf[j.Judge]
	}
	others := sum / float64(len(judges)-1)
	improvement := relativeImprovement(best, others)

	verdict.OthersMean = &others
	verdict.ImprovementPercent = improvement * 100
	verdict.Validated = improvement > ImprovementThreshold

	return verdict
}

func meanOver(judges []JudgeStats, dims []rating.Dimension) (float64, int) {
	var sum float64
	var n int
	for _, j := range judges {
		for _, d := range dims {
			sum += j.Stats[d].Correlation
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// modelPerformances returns each judge's mean correlation across all
// dimensions, the best value and its judge. Ties keep the earliest judge.
func modelPerformances(judges []JudgeStats) (map[string]float64, float64, string) {
	perf := make(map[string]float64, len(judges))
	var best float64
	var bestName string

	for i, j := range judges {
		m := j.Stats.MeanCorrelation(rating.Dimensions)
		perf[j.Judge] = m
		if i == 0 || m > best {
			best = m
			bestName = j.Judge
		}
	}

	return perf, best, bestName
}

// relativeImprovement is (value-baseline)/|baseline|, or 0 when baseline is 0.
// Dividing by the magnitude keeps the sign of value-baseline when the
// baseline correlation is negative.
func relativeImprovement(value, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (value - baseline) / math.Abs(baseline)
}

func checkJudges(judges []JudgeStats) error {
	if len(judges) == 0 {
		return apperr.NewValidation("no judge results to validate")
	}
	seen := make(map[string]bool, len(judges))
	for _, j := range judges {
		if seen[j.Judge] {
			return apperr.NewValidation(fmt.Sprintf("duplicate judge %q", j.Judge))
		}
		seen[j.Judge] = true
		if err := checkStats(j.Judge, j.Stats); err != nil {
			return err
		}
	}
	return nil
}

func checkStats(source string, stats metrics.StatSet) error {
	for _, d := range rating.Dimensions {
		if _, ok := stats[d]; !ok {
			return apperr.NewValidation(fmt.Sprintf("%s results are missing dimension %s", source, d))
		}
	}
	return nil
}
