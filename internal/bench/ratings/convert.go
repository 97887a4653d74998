package ratings

import (
	"fmt"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/runner"
)

func FromResult(res *runner.ExperimentResult) *File {
	f := &File{
		ExperimentID: res.Config.ExperimentID,
		RunID:        res.RunID.String(),
		Seed:         res.Config.Seed,
		Papers:       res.Papers,
	}

	for _, t := range res.Tables() {
		f.Tables = append(f.Tables, fromTable(t))
	}

	return f
}

func fromTable(t *rating.Table) TableEntry {
	entry := TableEntry{Source: t.Source}
	for _, id := range t.PaperIDs() {
		entry.Ratings = append(entry.Ratings, PaperRatings{PaperID: id, Scores: t.Scores(id)})
	}
	return entry
}

// RatingTables rebuilds the tables and checks each one is complete and in range.
func (f *File) RatingTables() ([]*rating.Table, error) {
	tables := make([]*rating.Table, 0, len(f.Tables))

	for _, entry := range f.Tables {
		t := rating.NewTable(entry.Source)
		for _, pr := range entry.Ratings {
			for d, score := range pr.Scores {
				if !d.Valid() {
					return nil, apperr.NewValidation(fmt.Sprintf("table %q: unknown dimension %q", entry.Source, d))
				}
				t.Set(pr.PaperID, d, score)
			}
		}
		if err := t.Validate(rating.Dimensions); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	return tables, nil
}
