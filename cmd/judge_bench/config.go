package main

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/hypothesis"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/runner"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/spec"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage/es"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage/factory"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage/pg"
	"github.com/DjordjeVuckovic/judge-bench/pkg/utils"
	"github.com/spf13/cobra"
)

type cliConfig struct {
	ConfigPath    string
	Papers        int
	Output        string
	Seed          uint64
	Judges        string
	H3Variant     string
	Significance  string
	EnsembleJudge string
	ExperimentID  string
	RatingsOut    string
	PgConnStr     string
	EsAddresses   string
	EsIndex       string
	LogLevel      string
	EnvPath       string
}

func bindFlags(cmd *cobra.Command, cfg *cliConfig) {
	d := runner.DefaultConfig()

	f := cmd.Flags()
	f.StringVarP(&cfg.ConfigPath, "config", "c", "", "Path to YAML experiment spec")
	f.IntVarP(&cfg.Papers, "papers", "n", d.Papers, "Number of synthetic papers")
	f.StringVarP(&cfg.Output, "output", "o", spec.DefaultResultsPath, "Path of the JSON results file")
	f.Uint64Var(&cfg.Seed, "seed", d.Seed, "PRNG seed")
	f.StringVar(&cfg.Judges, "judges", strings.Join(d.Judges, ","), "Comma-separated judge labels")
	f.StringVar(&cfg.H3Variant, "h3-variant", string(d.Variant), "H3 formulation: ensemble or cross_model")
	f.StringVar(&cfg.Significance, "significance", string(d.Significance), "p-value method: approximate or exact")
	f.StringVar(&cfg.EnsembleJudge, "ensemble-judge", "", "Judge blended with human ratings (default: first judge)")
	f.StringVar(&cfg.ExperimentID, "experiment-id", d.ExperimentID, "Experiment identifier")
	f.StringVar(&cfg.RatingsOut, "ratings-out", "", "Optional path of a YAML dump of all rating tables")
	f.StringVar(&cfg.PgConnStr, "pg", "", "PostgreSQL connection string of the results sink")
	f.StringVar(&cfg.EsAddresses, "es-addresses", "", "Comma-separated Elasticsearch addresses of the results sink")
	f.StringVar(&cfg.EsIndex, "es-index", "", "Elasticsearch index of the results sink")
}

func bindPersistentFlags(cmd *cobra.Command, cfg *cliConfig) {
	f := cmd.PersistentFlags()
	f.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	f.StringVar(&cfg.EnvPath, "env-file", ".env", "Path of a .env file with sink credentials")
}

// resolveSpec layers explicitly set flags over the spec file, then validates
// and applies defaults.
func resolveSpec(cmd *cobra.Command, cfg cliConfig) (*spec.ExperimentSpec, error) {
	s := &spec.ExperimentSpec{}
	if cfg.ConfigPath != "" {
		decoded, err := spec.DecodeFile(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		s = decoded
	}

	changed := cmd.Flags().Changed

	if changed("experiment-id") {
		if strings.TrimSpace(cfg.ExperimentID) == "" {
			return nil, apperr.NewValidation("experiment id must not be empty")
		}
		s.ExperimentID = cfg.ExperimentID
	}
	if changed("seed") {
		seed := cfg.Seed
		s.Seed = &seed
	}
	if changed("papers") {
		papers := cfg.Papers
		s.Papers = &papers
	}
	if changed("judges") {
		judges, err := parseJudges(cfg.Judges)
		if err != nil {
			return nil, err
		}
		s.Judges = judges
	}
	if changed("significance") {
		s.Significance = cfg.Significance
	}
	if changed("h3-variant") {
		s.H3Variant = cfg.H3Variant
	}
	if changed("ensemble-judge") {
		s.EnsembleJudge = cfg.EnsembleJudge
	}
	if changed("output") {
		s.Output.Results = cfg.Output
	}
	if changed("ratings-out") {
		s.Output.Ratings = cfg.RatingsOut
	}
	if changed("pg") {
		s.Sinks.Postgres = &spec.PostgresSink{Connection: cfg.PgConnStr}
	}
	if changed("es-addresses") {
		addresses := utils.RemoveEmptyStrings(splitTrim(cfg.EsAddresses))
		esSink := &spec.ElasticsearchSink{Addresses: addresses}
		if prev := s.Sinks.Elasticsearch; prev != nil {
			esSink.Username = prev.Username
			esSink.Password = prev.Password
			esSink.Index = prev.Index
		}
		s.Sinks.Elasticsearch = esSink
	}
	if changed("es-index") && s.Sinks.Elasticsearch != nil {
		s.Sinks.Elasticsearch.Index = cfg.EsIndex
	}

	if err := spec.Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func parseJudges(s string) ([]string, error) {
	judges := utils.RemoveEmptyStrings(splitTrim(s))
	if len(judges) == 0 {
		return nil, apperr.NewValidation(fmt.Sprintf("no judges in %q", s))
	}
	return judges, nil
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func runnerConfig(s *spec.ExperimentSpec) (runner.Config, error) {
	sig, err := metrics.ParseSignificance(s.Significance)
	if err != nil {
		return runner.Config{}, err
	}
	variant, err := hypothesis.ParseVariant(s.H3Variant)
	if err != nil {
		return runner.Config{}, err
	}

	return runner.Config{
		ExperimentID:  s.ExperimentID,
		Seed:          *s.Seed,
		Papers:        *s.Papers,
		Judges:        s.Judges,
		Significance:  sig,
		Variant:       variant,
		EnsembleJudge: s.EnsembleJudge,
	}, nil
}

// sinkConfig maps sinks named in the spec. Credentials missing there are
// filled from the environment by the caller.
func sinkConfig(s *spec.ExperimentSpec) factory.SinkConfig {
	var cfg factory.SinkConfig

	if p := s.Sinks.Postgres; p != nil {
		cfg.Pg = &pg.PoolConfig{ConnStr: p.Connection}
	}
	if e := s.Sinks.Elasticsearch; e != nil {
		cfg.Es = &es.ClientConfig{
			Addresses: e.Addresses,
			IndexName: e.Index,
			Username:  e.Username,
			Password:  e.Password,
		}
	}

	return cfg
}
