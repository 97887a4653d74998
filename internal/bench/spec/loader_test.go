package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		yaml := `
experiment_id: exp_custom
seed: 7
papers: 120
judges: [gpt-4, gemini-pro]
significance: exact
h3_variant: ensemble
ensemble_judge: gemini-pro
output:
  results: out/results.json
  ratings: out/ratings.yaml
sinks:
  postgres:
    connection: "postgresql://localhost/judge"
  elasticsearch:
    addresses: ["http://localhost:9200"]
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "exp_custom", s.ExperimentID)
		assert.Equal(t, uint64(7), *s.Seed)
		assert.Equal(t, 120, *s.Papers)
		assert.Equal(t, []string{"gpt-4", "gemini-pro"}, s.Judges)
		assert.Equal(t, "exact", s.Significance)
		assert.Equal(t, "ensemble", s.H3Variant)
		assert.Equal(t, "gemini-pro", s.EnsembleJudge)
		assert.Equal(t, "out/ratings.yaml", s.Output.Ratings)
		require.NotNil(t, s.Sinks.Postgres)
		require.NotNil(t, s.Sinks.Elasticsearch)
		assert.Equal(t, []string{"http://localhost:9200"}, s.Sinks.Elasticsearch.Addresses)
	})

	t.Run("defaults applied", func(t *testing.T) {
		s, err := Parse([]byte("{}"))
		require.NoError(t, err)
		assert.Equal(t, "exp_2025080500001", s.ExperimentID)
		assert.Equal(t, uint64(42), *s.Seed)
		assert.Equal(t, 50, *s.Papers)
		assert.Equal(t, []string{"gpt-4", "claude-3.5-sonnet", "gemini-pro"}, s.Judges)
		assert.Equal(t, "approximate", s.Significance)
		assert.Equal(t, "cross_model", s.H3Variant)
		assert.Equal(t, "gpt-4", s.EnsembleJudge)
		assert.Equal(t, DefaultResultsPath, s.Output.Results)
		assert.Nil(t, s.Sinks.Postgres)
	})

	t.Run("zero seed and zero papers are kept", func(t *testing.T) {
		s, err := Parse([]byte("seed: 0\npapers: 0\n"))
		require.NoError(t, err)
		assert.Equal(t, uint64(0), *s.Seed)
		assert.Equal(t, 0, *s.Papers)
	})

	invalid := []struct {
		name string
		yaml string
	}{
		{name: "negative papers", yaml: "papers: -1"},
		{name: "duplicate judges", yaml: "judges: [gpt-4, gpt-4]"},
		{name: "empty judge label", yaml: `judges: ["", gpt-4]`},
		{name: "unknown significance", yaml: "significance: bayesian"},
		{name: "unknown h3 variant", yaml: "h3_variant: pairwise"},
		{name: "ensemble judge not configured", yaml: "judges: [gpt-4]\nensemble_judge: gemini-pro"},
		{name: "postgres without connection", yaml: "sinks:\n  postgres: {}"},
		{name: "elasticsearch bad address", yaml: "sinks:\n  elasticsearch:\n    addresses: [\"not a url\"]"},
		{name: "malformed yaml", yaml: "judges: [gpt-4"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}

func TestValidate_AfterOverrides(t *testing.T) {
	s, err := Decode([]byte("judges: [gpt-4, gemini-pro]\n"))
	require.NoError(t, err)
	assert.Empty(t, s.EnsembleJudge)

	s.Judges = []string{"claude-3.5-sonnet"}
	require.NoError(t, Validate(s))
	assert.Equal(t, "claude-3.5-sonnet", s.EnsembleJudge)

	var empty ExperimentSpec
	require.NoError(t, Validate(&empty))
	assert.Equal(t, 50, *empty.Papers)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte("papers: 10\njudges: [gpt-4]\n"), 0644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, *s.Papers)

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	assert.False(t, apperr.IsValidation(err))
}

func TestLoadFromFile_ExampleConfig(t *testing.T) {
	s, err := LoadFromFile(filepath.Join("..", "..", "..", "configs", "experiment.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "cross_model", s.H3Variant)
	assert.Equal(t, "data/ratings.yaml", s.Output.Ratings)
	assert.Nil(t, s.Sinks.Postgres)
}
