package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/report"
)

const (
	kindJudge    = "judge"
	kindEnsemble = "ensemble"
)

// Document is one population/dimension statistic, denormalized with the run
// metadata needed to filter and aggregate across runs.
type Document struct {
	ID                 string    `json:"id"`
	RunID              string    `json:"run_id"`
	ExperimentID       string    `json:"experiment_id"`
	Seed               uint64    `json:"seed"`
	NPapers            int       `json:"n_papers"`
	SignificanceMethod string    `json:"significance_method"`
	H3Variant          string    `json:"h3_variant"`
	Population         string    `json:"population"`
	Kind               string    `json:"kind"`
	Dimension          string    `json:"dimension"`
	DimensionClass     string    `json:"dimension_class"`
	Correlation        float64   `json:"correlation"`
	PValue             float64   `json:"p_value"`
	MAE                float64   `json:"mae"`
	HumanMean          float64   `json:"human_mean"`
	JudgeMean          float64   `json:"judge_mean"`
	H1Validated        bool      `json:"h1_validated"`
	H2Validated        bool      `json:"h2_validated"`
	H3Validated        bool      `json:"h3_validated"`
	Timestamp          time.Time `json:"timestamp"`
	IndexedAt          time.Time `json:"indexed_at"`
}

func toDocuments(doc *report.Document, indexedAt time.Time) []Document {
	var docs []Document

	add := func(population, kind string, stats metrics.StatSet) {
		for _, d := range rating.Dimensions {
			st, ok := stats[d]
			if !ok {
				continue
			}
			docs = append(docs, Document{
				ID:                 fmt.Sprintf("%s:%s:%s", doc.RunID, population, d),
				RunID:              doc.RunID.String(),
				ExperimentID:       doc.ExperimentID,
				Seed:               doc.Seed,
				NPapers:            doc.NPapers,
				SignificanceMethod: string(doc.SignificanceMethod),
				H3Variant:          string(doc.HypothesisValidation.H3.Variant),
				Population:         population,
				Kind:               kind,
				Dimension:          string(d),
				DimensionClass:     string(d.Class()),
				Correlation:        st.Correlation,
				PValue:             st.PValue,
				MAE:                st.MAE,
				HumanMean:          st.HumanMean,
				JudgeMean:          st.JudgeMean,
				H1Validated:        doc.HypothesisValidation.H1.Validated,
				H2Validated:        doc.HypothesisValidation.H2.Validated,
				H3Validated:        doc.HypothesisValidation.H3.Validated,
				Timestamp:          doc.Timestamp,
				IndexedAt:          indexedAt,
			})
		}
	}

	for _, judge := range doc.Judges {
		add(judge, kindJudge, doc.LLMResults[judge])
	}
	if doc.EnsembleResults != nil {
		add(rating.EnsembleSourcePrefix+doc.EnsembleResults.Judge, kindEnsemble, doc.EnsembleResults.Results)
	}

	return docs
}
