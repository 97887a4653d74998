package rating

import "fmt"

const EnsembleSourcePrefix = "ensemble:"

// HumanWeight is the share given to the human score when blending.
func HumanWeight(d Dimension) float64 {
	if d.Class() == Structured {
		return 0.7
	}
	return 0.9
}

// Blend combines human and judge scores per dimension with fixed weights.
// A convex combination of two in-range scores stays in range, so no clipping.
func Blend(human, judge *Table) (*Table, error) {
	t := NewTable(EnsembleSourcePrefix + judge.Source)

	for _, id := range human.order {
		for _, d := range Dimensions {
			h, ok := human.Get(id, d)
			if !ok {
				continue
			}
			j, ok := judge.Get(id, d)
			if !ok {
				return nil, fmt.Errorf("blend: judge %q has no %s score for %s", judge.Source, d, id)
			}
			w := HumanWeight(d)
			t.Set(id, d, w*h+(1-w)*j)
		}
	}

	return t, nil
}
