package pg

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS judge_runs (
		run_id              UUID PRIMARY KEY,
		experiment_id       TEXT NOT NULL,
		seed                NUMERIC(20, 0) NOT NULL,
		n_papers            INTEGER NOT NULL,
		significance_method TEXT NOT NULL,
		h3_variant          TEXT NOT NULL,
		h1_validated        BOOLEAN NOT NULL,
		h2_validated        BOOLEAN NOT NULL,
		h3_validated        BOOLEAN NOT NULL,
		best_model          TEXT NOT NULL,
		started_at          TIMESTAMPTZ NOT NULL,
		document            JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS judge_dimension_stats (
		run_id          UUID NOT NULL REFERENCES judge_runs (run_id) ON DELETE CASCADE,
		population      TEXT NOT NULL,
		dimension       TEXT NOT NULL,
		dimension_class TEXT NOT NULL,
		correlation     DOUBLE PRECISION NOT NULL,
		p_value         DOUBLE PRECISION NOT NULL,
		mae             DOUBLE PRECISION NOT NULL,
		human_mean      DOUBLE PRECISION NOT NULL,
		judge_mean      DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (run_id, population, dimension)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_judge_runs_experiment ON judge_runs (experiment_id)`,
}

// EnsureSchema creates the result tables when they do not exist.
func (s *Sink) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
