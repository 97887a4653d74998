package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/corpus"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/hypothesis"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/sampler"
	"github.com/google/uuid"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Variant == "" {
		cfg.Variant = hypothesis.CrossModel
	}
	if cfg.Significance == "" {
		cfg.Significance = metrics.Approximate
	}
	return &Runner{config: cfg}
}

// Run executes the whole experiment. All randomness comes from one source
// seeded with Config.Seed and is consumed in a fixed order: papers, human
// ratings, then each judge in configured order.
func (r *Runner) Run(ctx context.Context) (*ExperimentResult, error) {
	if err := r.config.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run experiment: %w", err)
	}

	started := time.Now()
	res := &ExperimentResult{
		RunID:     uuid.New(),
		StartedAt: started.UTC(),
		Config:    r.config,
	}

	src := sampler.New(r.config.Seed)

	res.Papers = corpus.Generate(src, r.config.Papers)
	slog.Info("Generated papers", "count", len(res.Papers), "seed", r.config.Seed)

	res.Human = rating.SimulateHuman(src, res.Papers)
	slog.Info("Simulated human ratings", "papers", res.Human.Len())

	for _, judge := range r.config.Judges {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run experiment: %w", err)
		}

		jr, err := r.evaluateJudge(src, res.Human, judge)
		if err != nil {
			return nil, fmt.Errorf("evaluate judge %q: %w", judge, err)
		}
		res.Judges = append(res.Judges, jr)

		slog.Info("Evaluated judge",
			"judge", judge,
			"structured_r", jr.Stats.MeanCorrelation(rating.StructuredDimensions),
			"subjective_r", jr.Stats.MeanCorrelation(rating.SubjectiveDimensions),
		)
	}

	ens, err := r.evaluateEnsemble(res)
	if err != nil {
		return nil, err
	}
	res.Ensemble = ens

	var ensembleStats metrics.StatSet
	if ens != nil {
		ensembleStats = ens.Stats
	}
	validation, err := hypothesis.Validate(res.JudgeStats(), ensembleStats, r.config.Variant)
	if err != nil {
		return nil, fmt.Errorf("validate hypotheses: %w", err)
	}
	res.Validation = validation
	res.Duration = time.Since(started)

	slog.Info("Validated hypotheses",
		"H1", validation.H1.Validated,
		"H2", validation.H2.Validated,
		"H3", validation.H3.Validated,
		"h3_variant", validation.H3.Variant,
		"duration", res.Duration,
	)

	return res, nil
}

func (r *Runner) evaluateJudge(src *sampler.Source, human *rating.Table, judge string) (JudgeResult, error) {
	table := rating.SimulateJudge(src, human, judge)
	stats, err := metrics.Compare(human, table, rating.Dimensions, r.config.Significance)
	if err != nil {
		return JudgeResult{}, err
	}
	return JudgeResult{Judge: judge, Ratings: table, Stats: stats}, nil
}

func (r *Runner) evaluateEnsemble(res *ExperimentResult) (*EnsembleResult, error) {
	name := r.config.ensembleJudge()

	for _, jr := range res.Judges {
		if jr.Judge != name {
			continue
		}
		blended, err := rating.Blend(res.Human, jr.Ratings)
		if err != nil {
			return nil, fmt.Errorf("build ensemble: %w", err)
		}
		stats, err := metrics.Compare(res.Human, blended, rating.Dimensions, r.config.Significance)
		if err != nil {
			return nil, fmt.Errorf("evaluate ensemble: %w", err)
		}
		return &EnsembleResult{Judge: name, Ratings: blended, Stats: stats}, nil
	}

	return nil, fmt.Errorf("ensemble judge %q produced no ratings", name)
}
