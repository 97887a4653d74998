package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/ratings"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/report"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/runner"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/spec"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage"
)

// runExperiment runs the pipeline, prints the report and writes the results
// file plus the optional ratings dump.
func runExperiment(ctx context.Context, s *spec.ExperimentSpec, out io.Writer) (*report.Document, error) {
	runCfg, err := runnerConfig(s)
	if err != nil {
		return nil, err
	}

	res, err := runner.New(runCfg).Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("experiment failed: %w", err)
	}

	doc := report.Generate(res)
	report.WriteTable(doc, out)

	if err := report.WriteJSON(doc, s.Output.Results); err != nil {
		return nil, err
	}
	slog.Info("Results written", "path", s.Output.Results)

	if s.Output.Ratings != "" {
		if err := ratings.WriteFile(ratings.FromResult(res), s.Output.Ratings); err != nil {
			return nil, err
		}
		slog.Info("Ratings written", "path", s.Output.Ratings)
	}

	return doc, nil
}

// publish saves doc to every sink. A failing sink does not stop the others;
// all failures are returned joined.
func publish(ctx context.Context, doc *report.Document, sinks []storage.Sink) error {
	var sinkErrs []error
	for _, sink := range sinks {
		if err := sink.Save(ctx, doc); err != nil {
			slog.Error("Failed to store results", "sink", sink.Name(), "error", err)
			sinkErrs = append(sinkErrs, fmt.Errorf("%s sink: %w", sink.Name(), err))
		}
	}
	return errors.Join(sinkErrs...)
}
