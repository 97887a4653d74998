package corpus

import (
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/sampler"
	"github.com/DjordjeVuckovic/judge-bench/internal/domain"
)

const DefaultPaperCount = 50

// Generate draws n synthetic papers from the fixed venue, topic and year sets.
// Each paper consumes three draws from src, in venue, topic, year order.
func Generate(src *sampler.Source, n int) []domain.Paper {
	if n <= 0 {
		return []domain.Paper{}
	}

	papers := make([]domain.Paper, 0, n)
	for i := 0; i < n; i++ {
		papers = append(papers, domain.Paper{
			ID:    domain.PaperID(i),
			Title: domain.PaperTitle(i),
			Venue: sampler.Choice(src, domain.Venues),
			Topic: sampler.Choice(src, domain.Topics),
			Year:  sampler.Choice(src, domain.Years),
		})
	}

	return papers
}
