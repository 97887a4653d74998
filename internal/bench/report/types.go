package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/hypothesis"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
	"github.com/google/uuid"
)

// Document is the persisted result artifact.
type Document struct {
	ExperimentID         string                                               `json:"experiment_id"`
	RunID                uuid.UUID                                            `json:"run_id"`
	Timestamp            time.Time                                            `json:"timestamp"`
	DurationMS           int64                                                `json:"duration_ms"`
	Seed                 uint64                                               `json:"seed"`
	NPapers              int                                                  `json:"n_papers"`
	Judges               []string                                             `json:"judges"`
	SignificanceMethod   metrics.Significance                                 `json:"significance_method"`
	LLMResults           map[string]metrics.StatSet                           `json:"llm_results"`
	EnsembleResults      *EnsembleSection                                     `json:"ensemble_results,omitempty"`
	HypothesisValidation hypothesis.Validation                                `json:"hypothesis_validation"`
	Summary              Summary                                              `json:"summary"`
	ScoreDistributions   map[string]map[rating.Dimension]metrics.Distribution `json:"score_distributions"`
	Environment          EnvironmentInfo                                      `json:"environment"`
}

type EnsembleSection struct {
	Judge        string                   `json:"judge"`
	HumanWeights map[rating.Class]float64 `json:"human_weights"`
	Results      metrics.StatSet          `json:"results"`
}

type Summary struct {
	H1Validated           bool    `json:"h1_validated"`
	H2Validated           bool    `json:"h2_validated"`
	H3Validated           bool    `json:"h3_validated"`
	StructuredPerformance float64 `json:"structured_performance"`
	SubjectivePerformance float64 `json:"subjective_performance"`
	BestModel             string  `json:"best_model"`
	KeyFinding            string  `json:"key_finding"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}
