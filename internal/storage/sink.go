package storage

import (
	"context"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/report"
)

// Sink receives a finished result document.
type Sink interface {
	Name() string
	Save(ctx context.Context, doc *report.Document) error
	Close() error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type SinkError string

const (
	ErrUnsupportedSink SinkError = "unsupported sink type: %s"
)

func (e SinkError) Error() string {
	return string(e)
}
