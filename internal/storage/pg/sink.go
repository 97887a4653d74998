package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/report"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var statColumns = []string{
	"run_id", "population", "dimension", "dimension_class",
	"correlation", "p_value", "mae", "human_mean", "judge_mean",
}

type Sink struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewSink(ctx context.Context, cfg PoolConfig) (*Sink, error) {
	pool, err := NewConnectionPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := &Sink{pool: pool, db: pool.GetConn()}
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

func (s *Sink) Name() string { return "postgres" }

// Save stores the run row and its per-dimension statistics in one transaction.
func (s *Sink) Save(ctx context.Context, doc *report.Document) error {
	documentJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	v := doc.HypothesisValidation
	_, err = tx.Exec(ctx, `
		INSERT INTO judge_runs (
			run_id, experiment_id, seed, n_papers, significance_method, h3_variant,
			h1_validated, h2_validated, h3_validated, best_model, started_at, document
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		doc.RunID,
		doc.ExperimentID,
		seedNumeric(doc.Seed),
		doc.NPapers,
		string(doc.SignificanceMethod),
		string(v.H3.Variant),
		v.H1.Validated,
		v.H2.Validated,
		v.H3.Validated,
		v.H3.BestModel,
		doc.Timestamp,
		documentJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	rows := statRows(doc)
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"judge_dimension_stats"}, statColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy dimension stats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}

	slog.Info("Run stored in postgres", "run_id", doc.RunID, "stats_rows", n)
	return nil
}

func (s *Sink) Close() error {
	s.pool.Close()
	return nil
}

// statRows flattens judge and ensemble statistics into COPY rows, judges in
// document order then the ensemble, dimensions in canonical order.
func statRows(doc *report.Document) [][]any {
	var rows [][]any

	appendRows := func(population string, stats metrics.StatSet) {
		for _, d := range rating.Dimensions {
			st, ok := stats[d]
			if !ok {
				continue
			}
			rows = append(rows, []any{
				doc.RunID,
				population,
				string(d),
				string(d.Class()),
				st.Correlation,
				st.PValue,
				st.MAE,
				st.HumanMean,
				st.JudgeMean,
			})
		}
	}

	for _, judge := range doc.Judges {
		appendRows(judge, doc.LLMResults[judge])
	}
	if doc.EnsembleResults != nil {
		appendRows(rating.EnsembleSourcePrefix+doc.EnsembleResults.Judge, doc.EnsembleResults.Results)
	}

	return rows
}

func seedNumeric(seed uint64) pgtype.Numeric {
	return pgtype.Numeric{Int: new(big.Int).SetUint64(seed), Valid: true}
}
