package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/ratings"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/report"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/spec"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSinkEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PG_CONNECTION_STRING", "ES_ADDRESSES", "ES_INDEX_NAME", "ES_USERNAME", "ES_PASSWORD", "ENV_PATH"} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseJudges(t *testing.T) {
	judges, err := parseJudges(" gpt-4 ,, gemini-pro ")
	require.NoError(t, err)
	assert.Equal(t, []string{"gpt-4", "gemini-pro"}, judges)

	_, err = parseJudges(" , ")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestRootCmd_RunAndShow(t *testing.T) {
	clearSinkEnv(t)
	dir := t.TempDir()
	results := filepath.Join(dir, "data", "results.json")
	ratingsPath := filepath.Join(dir, "data", "ratings.yaml")

	out, err := execute(t,
		"--papers", "12",
		"--seed", "7",
		"--judges", "gpt-4,gemini-pro",
		"--h3-variant", "ensemble",
		"--significance", "exact",
		"--output", results,
		"--ratings-out", ratingsPath,
		"--env-file", filepath.Join(dir, ".env"),
		"--log-level", "error",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "[2/2] Judge: gemini-pro")
	assert.Contains(t, out, "two-tailed t-test")

	doc, err := report.ReadJSON(results)
	require.NoError(t, err)
	assert.Equal(t, 12, doc.NPapers)
	assert.Equal(t, uint64(7), doc.Seed)
	assert.Equal(t, []string{"gpt-4", "gemini-pro"}, doc.Judges)
	assert.Equal(t, "ensemble", string(doc.HypothesisValidation.H3.Variant))

	rf, err := ratings.ReadFile(ratingsPath)
	require.NoError(t, err)
	tables, err := rf.RatingTables()
	require.NoError(t, err)
	assert.Len(t, tables, 4)

	shown, err := execute(t, "show", results, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, shown, "Judge: gpt-4")
	assert.Contains(t, shown, doc.RunID.String())
}

func TestRootCmd_SameSeedSameResults(t *testing.T) {
	clearSinkEnv(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	envFile := filepath.Join(dir, ".env")

	_, err := execute(t, "--papers", "15", "--output", a, "--env-file", envFile, "--log-level", "error")
	require.NoError(t, err)
	_, err = execute(t, "--papers", "15", "--output", b, "--env-file", envFile, "--log-level", "error")
	require.NoError(t, err)

	docA, err := report.ReadJSON(a)
	require.NoError(t, err)
	docB, err := report.ReadJSON(b)
	require.NoError(t, err)

	assert.Equal(t, docA.LLMResults, docB.LLMResults)
	assert.Equal(t, docA.HypothesisValidation, docB.HypothesisValidation)
}

func TestRootCmd_ConfigFileWithOverrides(t *testing.T) {
	clearSinkEnv(t)
	dir := t.TempDir()
	results := filepath.Join(dir, "results.json")
	specPath := filepath.Join(dir, "experiment.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(`
experiment_id: exp_from_file
papers: 30
judges: [gpt-4, claude-3.5-sonnet]
output:
  results: `+filepath.Join(dir, "ignored.json")+`
`), 0644))

	_, err := execute(t,
		"--config", specPath,
		"--papers", "9",
		"--output", results,
		"--env-file", filepath.Join(dir, ".env"),
		"--log-level", "error",
	)
	require.NoError(t, err)

	doc, err := report.ReadJSON(results)
	require.NoError(t, err)
	assert.Equal(t, "exp_from_file", doc.ExperimentID)
	assert.Equal(t, 9, doc.NPapers)
	assert.Equal(t, []string{"gpt-4", "claude-3.5-sonnet"}, doc.Judges)
	assert.NoFileExists(t, filepath.Join(dir, "ignored.json"))
}

func TestRootCmd_InvalidInput(t *testing.T) {
	clearSinkEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown h3 variant", args: []string{"--h3-variant", "pairwise"}},
		{name: "unknown significance", args: []string{"--significance", "bayesian"}},
		{name: "empty judges", args: []string{"--judges", ","}},
		{name: "ensemble judge not configured", args: []string{"--judges", "gpt-4", "--ensemble-judge", "gemini-pro"}},
		{name: "negative papers", args: []string{"--papers", "-3"}},
		{name: "bad log level", args: []string{"--log-level", "loud"}},
		{name: "missing spec file", args: []string{"--config", filepath.Join(dir, "missing.yaml")}},
		{name: "empty experiment id", args: []string{"--experiment-id", ""}},
		{name: "blank experiment id", args: []string{"--experiment-id", "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--output", filepath.Join(dir, tt.name+".json"), "--env-file", filepath.Join(dir, ".env")}, tt.args...)
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.NoFileExists(t, filepath.Join(dir, tt.name+".json"))
		})
	}
}

func TestRootCmd_EmptyExperimentIDIsValidationError(t *testing.T) {
	clearSinkEnv(t)
	dir := t.TempDir()

	_, err := execute(t, "--papers", "5", "--output", filepath.Join(dir, "results.json"), "--experiment-id", "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestRootCmd_UnreachableSinkStillWritesResults(t *testing.T) {
	clearSinkEnv(t)
	dir := t.TempDir()
	results := filepath.Join(dir, "results.json")

	_, err := execute(t,
		"--papers", "5",
		"--output", results,
		"--env-file", filepath.Join(dir, ".env"),
		"--pg", "postgres://u:p@127.0.0.1:1/db",
	)
	require.Error(t, err)
	require.FileExists(t, results)

	doc, err := report.ReadJSON(results)
	require.NoError(t, err)
	assert.Equal(t, 5, doc.NPapers)
}

func TestShowCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "show", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

type failingSink struct{}

func (failingSink) Name() string { return "failing" }

func (failingSink) Save(context.Context, *report.Document) error { return assert.AnError }

func (failingSink) Close() error { return nil }

func TestRunExperiment_Sinks(t *testing.T) {
	dir := t.TempDir()
	s, err := spec.Parse([]byte("papers: 5\noutput:\n  results: " + filepath.Join(dir, "results.json") + "\n"))
	require.NoError(t, err)

	mem := in_mem.NewSink()
	var out bytes.Buffer

	doc, err := runExperiment(context.Background(), s, &out)
	require.NoError(t, err)
	require.NoError(t, publish(context.Background(), doc, []storage.Sink{mem}))
	require.Len(t, mem.Documents(), 1)
	assert.Equal(t, doc.RunID, mem.Documents()[0].RunID)

	t.Run("failing sink does not stop the others", func(t *testing.T) {
		path := filepath.Join(dir, "with-failure.json")
		s.Output.Results = path
		mem := in_mem.NewSink()

		doc, err := runExperiment(context.Background(), s, &out)
		require.NoError(t, err)
		assert.FileExists(t, path)

		err = publish(context.Background(), doc, []storage.Sink{failingSink{}, mem})
		require.ErrorIs(t, err, assert.AnError)
		assert.Len(t, mem.Documents(), 1)
	})
}
