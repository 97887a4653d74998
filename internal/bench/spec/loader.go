package spec

import (
	"fmt"
	"os"
	"slices"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/runner"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const DefaultResultsPath = "data/llm_judge_results.json"

var validate = validator.New(validator.WithRequiredStructEnabled())

func LoadFromFile(path string) (*ExperimentSpec, error) {
	s, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func Parse(data []byte) (*ExperimentSpec, error) {
	s, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// DecodeFile reads a spec without validating it or applying defaults, so
// callers can layer overrides first.
func DecodeFile(path string) (*ExperimentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Decode(data)
}

func Decode(data []byte) (*ExperimentSpec, error) {
	var s ExperimentSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, apperr.NewValidationWrap("parse spec YAML", err)
	}
	return &s, nil
}

// Validate checks the spec and fills unset fields with defaults.
func Validate(s *ExperimentSpec) error {
	if err := validate.Struct(s); err != nil {
		return apperr.NewValidationWrap("invalid experiment spec", err)
	}
	applyDefaults(s)
	if !slices.Contains(s.Judges, s.EnsembleJudge) {
		return apperr.NewValidation(fmt.Sprintf("ensemble judge %q is not one of the configured judges", s.EnsembleJudge))
	}
	return nil
}

func applyDefaults(s *ExperimentSpec) {
	d := runner.DefaultConfig()

	if s.ExperimentID == "" {
		s.ExperimentID = d.ExperimentID
	}
	if s.Seed == nil {
		seed := d.Seed
		s.Seed = &seed
	}
	if s.Papers == nil {
		papers := d.Papers
		s.Papers = &papers
	}
	if len(s.Judges) == 0 {
		s.Judges = slices.Clone(d.Judges)
	}
	if s.Significance == "" {
		s.Significance = string(d.Significance)
	}
	if s.H3Variant == "" {
		s.H3Variant = string(d.Variant)
	}
	if s.EnsembleJudge == "" {
		s.EnsembleJudge = s.Judges[0]
	}
	if s.Output.Results == "" {
		s.Output.Results = DefaultResultsPath
	}
}
