package ratings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadFile_RoundTrip(t *testing.T) {
	cfg := runner.DefaultConfig()
	cfg.Papers = 8
	res, err := runner.New(cfg).Run(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "ratings.yaml")
	require.NoError(t, WriteFile(FromResult(res), path))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, res.Config.ExperimentID, loaded.ExperimentID)
	assert.Equal(t, res.RunID.String(), loaded.RunID)
	assert.Equal(t, res.Papers, loaded.Papers)

	tables, err := loaded.RatingTables()
	require.NoError(t, err)
	assert.Equal(t, res.Tables(), tables)
}

func TestRatingTables_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown dimension",
			yaml: `
tables:
  - source: human
    ratings:
      - paper_id: paper_000
        scores: {methodology: 3, reproducibility: 3, novelty: 3, significance: 3, impact: 3, clarity: 2}
`,
		},
		{
			name: "missing dimension",
			yaml: `
tables:
  - source: human
    ratings:
      - paper_id: paper_000
        scores: {methodology: 3, reproducibility: 3}
`,
		},
		{
			name: "score out of range",
			yaml: `
tables:
  - source: gpt-4
    ratings:
      - paper_id: paper_000
        scores: {methodology: 7, reproducibility: 3, novelty: 3, significance: 3, impact: 3}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ratings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			f, err := ReadFile(path)
			require.NoError(t, err)

			_, err = f.RatingTables()
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}

func TestReadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tables: [\n"), 0644))

	_, err := ReadFile(path)
	assert.Error(t, err)
}
