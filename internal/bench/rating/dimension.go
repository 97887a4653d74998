package rating

type Dimension string

const (
	Methodology     Dimension = "methodology"
	Reproducibility Dimension = "reproducibility"
	Novelty         Dimension = "novelty"
	Significance    Dimension = "significance"
	Impact          Dimension = "impact"
)

// Class partitions dimensions by how much room they leave for individual judgment.
type Class string

const (
	Structured Class = "structured"
	Subjective Class = "subjective"
)

// Dimensions is the canonical order. Simulators draw noise in this order.
var Dimensions = []Dimension{Methodology, Reproducibility, Novelty, Significance, Impact}

var (
	StructuredDimensions = []Dimension{Methodology, Reproducibility}
	SubjectiveDimensions = []Dimension{Novelty, Significance, Impact}
)

func (d Dimension) Class() Class {
	switch d {
	case Methodology, Reproducibility:
		return Structured
	default:
		return Subjective
	}
}

func (d Dimension) String() string { return string(d) }

func (d Dimension) Valid() bool {
	for _, known := range Dimensions {
		if d == known {
			return true
		}
	}
	return false
}
