package factory

import (
	"os"
	"strings"

	"github.com/DjordjeVuckovic/judge-bench/internal/storage/es"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage/pg"
	"github.com/DjordjeVuckovic/judge-bench/pkg/utils"
)

const DefaultESIndex = "judge-results"

// SinkConfig enables a sink by carrying its connection settings. A nil
// member means the sink is disabled.
type SinkConfig struct {
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

func (c SinkConfig) Empty() bool {
	return c.Pg == nil && c.Es == nil
}

// LoadEnv reads sink credentials from the environment. Unset variables leave
// the matching sink disabled.
func LoadEnv() SinkConfig {
	var cfg SinkConfig

	if conn := os.Getenv("PG_CONNECTION_STRING"); conn != "" {
		cfg.Pg = &pg.PoolConfig{ConnStr: conn}
	}

	addresses := utils.RemoveEmptyStrings(splitTrim(os.Getenv("ES_ADDRESSES")))
	if len(addresses) > 0 {
		cfg.Es = &es.ClientConfig{
			Addresses: addresses,
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
	}

	return cfg
}

// WithFallback fills sinks and Elasticsearch credentials missing from c with
// values from fallback.
func (c SinkConfig) WithFallback(fallback SinkConfig) SinkConfig {
	out := c

	if out.Pg == nil && fallback.Pg != nil {
		p := *fallback.Pg
		out.Pg = &p
	}

	switch {
	case out.Es == nil && fallback.Es != nil:
		e := *fallback.Es
		out.Es = &e
	case out.Es != nil && fallback.Es != nil:
		e := *out.Es
		if e.IndexName == "" {
			e.IndexName = fallback.Es.IndexName
		}
		if e.Username == "" && e.Password == "" {
			e.Username = fallback.Es.Username
			e.Password = fallback.Es.Password
		}
		out.Es = &e
	}

	if out.Es != nil && out.Es.IndexName == "" {
		e := *out.Es
		e.IndexName = DefaultESIndex
		out.Es = &e
	}

	return out
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
