package ratings

import (
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
	"github.com/DjordjeVuckovic/judge-bench/internal/domain"
)

// File is the YAML dump of every paper and rating table from one run.
type File struct {
	ExperimentID string         `yaml:"experiment_id"`
	RunID        string         `yaml:"run_id"`
	Seed         uint64         `yaml:"seed"`
	Papers       []domain.Paper `yaml:"papers"`
	Tables       []TableEntry   `yaml:"tables"`
}

type TableEntry struct {
	Source  string         `yaml:"source"`
	Ratings []PaperRatings `yaml:"ratings"`
}

type PaperRatings struct {
	PaperID string        `yaml:"paper_id"`
	Scores  rating.Scores `yaml:"scores"`
}
