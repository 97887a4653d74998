package rating

import (
	"fmt"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
)

const (
	MinScore = 1.0
	MaxScore = 5.0
)

type Scores map[Dimension]float64

// Table maps paper id -> dimension -> score and remembers the order in which
// papers were added, so columns extracted from two tables line up.
type Table struct {
	Source string
	order  []string
	scores map[string]Scores
}

func NewTable(source string) *Table {
	return &Table{
		Source: source,
		scores: make(map[string]Scores),
	}
}

func (t *Table) Set(paperID string, dim Dimension, score float64) {
	s, ok := t.scores[paperID]
	if !ok {
		s = make(Scores, len(Dimensions))
		t.scores[paperID] = s
		t.order = append(t.order, paperID)
	}
	s[dim] = score
}

func (t *Table) Get(paperID string, dim Dimension) (float64, bool) {
	s, ok := t.scores[paperID]
	if !ok {
		return 0, false
	}
	v, ok := s[dim]
	return v, ok
}

// Scores returns a copy of one paper's scores.
func (t *Table) Scores(paperID string) Scores {
	out := make(Scores, len(Dimensions))
	for d, v := range t.scores[paperID] {
		out[d] = v
	}
	return out
}

func (t *Table) PaperIDs() []string {
	ids := make([]string, len(t.order))
	copy(ids, t.order)
	return ids
}

func (t *Table) Len() int {
	return len(t.order)
}

// Column extracts one dimension's scores following the given paper order.
func (t *Table) Column(dim Dimension, paperIDs []string) ([]float64, error) {
	col := make([]float64, 0, len(paperIDs))
	for _, id := range paperIDs {
		v, ok := t.Get(id, dim)
		if !ok {
			return nil, apperr.NewValidation(fmt.Sprintf("table %q has no %s score for %s", t.Source, dim, id))
		}
		col = append(col, v)
	}
	return col, nil
}

// Validate checks that every paper carries exactly the given dimensions and
// that every score lies in [MinScore, MaxScore].
func (t *Table) Validate(dims []Dimension) error {
	for _, id := range t.order {
		s := t.scores[id]
		if len(s) != len(dims) {
			return apperr.NewValidation(fmt.Sprintf("table %q: paper %s has %d scores, want %d", t.Source, id, len(s), len(dims)))
		}
		for _, d := range dims {
			v, ok := s[d]
			if !ok {
				return apperr.NewValidation(fmt.Sprintf("table %q: paper %s is missing %s", t.Source, id, d))
			}
			if v < MinScore || v > MaxScore {
				return apperr.NewValidation(fmt.Sprintf("table %q: paper %s %s=%.4f out of range", t.Source, id, d, v))
			}
		}
	}
	return nil
}
