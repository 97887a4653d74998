package runner

import (
	"time"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/hypothesis"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
	"github.com/DjordjeVuckovic/judge-bench/internal/domain"
	"github.com/google/uuid"
)

type JudgeResult struct {
	Judge   string
	Ratings *rating.Table
	Stats   metrics.StatSet
}

type EnsembleResult struct {
	Judge   string
	Ratings *rating.Table
	Stats   metrics.StatSet
}

type ExperimentResult struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	Duration   time.Duration
	Config     Config
	Papers     []domain.Paper
	Human      *rating.Table
	Judges     []JudgeResult
	Ensemble   *EnsembleResult
	Validation *hypothesis.Validation
}

func (r *ExperimentResult) JudgeNames() []string {
	names := make([]string, 0, len(r.Judges))
	for _, j := range r.Judges {
		names = append(names, j.Judge)
	}
	return names
}

func (r *ExperimentResult) JudgeStats() []hypothesis.JudgeStats {
	stats := make([]hypothesis.JudgeStats, 0, len(r.Judges))
	for _, j := range r.Judges {
		stats = append(stats, hypothesis.JudgeStats{Judge: j.Judge, Stats: j.Stats})
	}
	return stats
}

// Tables returns every rating table produced by the run: human first, then
// judges in configured order, then the ensemble when present.
func (r *ExperimentResult) Tables() []*rating.Table {
	tables := []*rating.Table{r.Human}
	for _, j := range r.Judges {
		tables = append(tables, j.Ratings)
	}
	if r.Ensemble != nil {
		tables = append(tables, r.Ensemble.Ratings)
	}
	return tables
}
