package report

import (
	"fmt"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/hypothesis"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/runner"
	"github.com/DjordjeVuckovic/judge-bench/pkg/utils"
)

const summaryDecimals = 3

func Generate(res *runner.ExperimentResult) *Document {
	doc := &Document{
		ExperimentID:       res.Config.ExperimentID,
		RunID:              res.RunID,
		Timestamp:          res.StartedAt.UTC().Round(0),
		DurationMS:         res.Duration.Milliseconds(),
		Seed:               res.Config.Seed,
		NPapers:            len(res.Papers),
		Judges:             res.JudgeNames(),
		SignificanceMethod: res.Config.Significance,
		LLMResults:         make(map[string]metrics.StatSet, len(res.Judges)),
		ScoreDistributions: distributions(res),
		Environment:        NewEnvironmentInfo(),
	}

	for _, j := range res.Judges {
		doc.LLMResults[j.Judge] = j.Stats
	}

	if res.Ensemble != nil {
		doc.EnsembleResults = &EnsembleSection{
			Judge: res.Ensemble.Judge,
			HumanWeights: map[rating.Class]float64{
				rating.Structured: rating.HumanWeight(rating.StructuredDimensions[0]),
				rating.Subjective: rating.HumanWeight(rating.SubjectiveDimensions[0]),
			},
			Results: res.Ensemble.Stats,
		}
	}

	if res.Validation != nil {
		doc.HypothesisValidation = *res.Validation
		doc.Summary = summarize(res.Validation)
	}

	return doc
}

func summarize(v *hypothesis.Validation) Summary {
	structured := v.H1.Result
	subjective := v.H2.Result

	return Summary{
		H1Validated:           v.H1.Validated,
		H2Validated:           v.H2.Validated,
		H3Validated:           v.H3.Validated,
		StructuredPerformance: utils.RoundDecimal(structured, summaryDecimals),
		SubjectivePerformance: utils.RoundDecimal(subjective, summaryDecimals),
		BestModel:             v.H3.BestModel,
		KeyFinding:            keyFinding(structured, subjective),
	}
}

func keyFinding(structured, subjective float64) string {
	switch {
	case structured > subjective:
		return fmt.Sprintf("LLM judges track human experts more closely on structured dimensions (r=%.3f) than on subjective ones (r=%.3f)", structured, subjective)
	case structured < subjective:
		return fmt.Sprintf("LLM judges track human experts more closely on subjective dimensions (r=%.3f) than on structured ones (r=%.3f)", subjective, structured)
	default:
		return fmt.Sprintf("LLM judges track structured and subjective dimensions equally (r=%.3f)", structured)
	}
}

func distributions(res *runner.ExperimentResult) map[string]map[rating.Dimension]metrics.Distribution {
	out := make(map[string]map[rating.Dimension]metrics.Distribution)

	for _, table := range res.Tables() {
		if table == nil {
			continue
		}
		ids := table.PaperIDs()
		perDim := make(map[rating.Dimension]metrics.Distribution, len(rating.Dimensions))
		for _, d := range rating.Dimensions {
			col, err := table.Column(d, ids)
			if err != nil {
				continue
			}
			perDim[d] = metrics.ComputeDistribution(col)
		}
		out[table.Source] = perDim
	}

	return out
}
