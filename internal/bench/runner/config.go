package runner

import (
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/corpus"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/hypothesis"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/sampler"
)

var DefaultJudges = []string{"gpt-4", "claude-3.5-sonnet", "gemini-pro"}

const DefaultExperimentID = "exp_2025080500001"

type Config struct {
	ExperimentID string
	Seed         uint64
	Papers       int
	Judges       []string
	Significance metrics.Significance
	Variant      hypothesis.Variant
	// EnsembleJudge names the judge blended with human ratings. Empty means
	// the first judge.
	EnsembleJudge string
}

func DefaultConfig() Config {
	return Config{
		ExperimentID: DefaultExperimentID,
		Seed:         sampler.DefaultSeed,
		Papers:       corpus.DefaultPaperCount,
		Judges:       slices.Clone(DefaultJudges),
		Significance: metrics.Approximate,
		Variant:      hypothesis.CrossModel,
	}
}

func (c Config) Validate() error {
	if c.Papers < 0 {
		return apperr.NewValidation(fmt.Sprintf("paper count must be >= 0, got %d", c.Papers))
	}
	if len(c.Judges) == 0 {
		return apperr.NewValidation("at least one judge is required")
	}

	seen := make(map[string]bool, len(c.Judges))
	for _, j := range c.Judges {
		if j == "" {
			return apperr.NewValidation("judge label must not be empty")
		}
		if seen[j] {
			return apperr.NewValidation(fmt.Sprintf("duplicate judge %q", j))
		}
		seen[j] = true
	}

	if _, err := metrics.ParseSignificance(string(c.Significance)); err != nil {
		return apperr.NewValidationWrap("invalid significance method", err)
	}
	if _, err := hypothesis.ParseVariant(string(c.Variant)); err != nil {
		return apperr.NewValidationWrap("invalid H3 variant", err)
	}
	if c.EnsembleJudge != "" && !seen[c.EnsembleJudge] {
		return apperr.NewValidation(fmt.Sprintf("ensemble judge %q is not one of the configured judges", c.EnsembleJudge))
	}

	return nil
}

func (c Config) ensembleJudge() string {
	if c.EnsembleJudge != "" {
		return c.EnsembleJudge
	}
	return c.Judges[0]
}
