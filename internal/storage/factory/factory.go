package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/judge-bench/internal/storage"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage/es"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/judge-bench/internal/storage/pg"
)

// NewSink creates a storage.Sink of the given type.
func NewSink(ctx context.Context, sinkType storage.Type, cfg any) (storage.Sink, error) {
	switch sinkType {
	case storage.PG:
		pgConfig, ok := cfg.(pg.PoolConfig)
		if !ok {
			return nil, fmt.Errorf("invalid config type for PostgreSQL sink: expected pg.PoolConfig")
		}
		return pg.NewSink(ctx, pgConfig)

	case storage.ES:
		esConfig, ok := cfg.(es.ClientConfig)
		if !ok {
			return nil, fmt.Errorf("invalid config type for Elasticsearch sink: expected es.ClientConfig")
		}
		return es.NewSink(ctx, esConfig)

	case storage.InMem:
		return in_mem.NewSink(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedSink), sinkType)
	}
}

// NewSinks opens every sink enabled in cfg. Sinks opened before a failure
// are closed.
func NewSinks(ctx context.Context, cfg SinkConfig) ([]storage.Sink, error) {
	var sinks []storage.Sink

	open := func(t storage.Type, c any) error {
		s, err := NewSink(ctx, t, c)
		if err != nil {
			return fmt.Errorf("open %s sink: %w", t, err)
		}
		slog.Info("Opened result sink", "sink", s.Name())
		sinks = append(sinks, s)
		return nil
	}

	if cfg.Pg != nil {
		if err := open(storage.PG, *cfg.Pg); err != nil {
			CloseAll(sinks)
			return nil, err
		}
	}
	if cfg.Es != nil {
		if err := open(storage.ES, *cfg.Es); err != nil {
			CloseAll(sinks)
			return nil, err
		}
	}

	return sinks, nil
}

func CloseAll(sinks []storage.Sink) {
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			slog.Warn("failed to close sink", "sink", s.Name(), "error", err)
		}
	}
}
