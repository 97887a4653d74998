package in_mem

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/report"
	"github.com/google/uuid"
)

// Sink keeps saved documents in memory, keyed by run id.
type Sink struct {
	mu    sync.RWMutex
	docs  map[uuid.UUID]*report.Document
	order []uuid.UUID
}

func NewSink() *Sink {
	return &Sink{docs: make(map[uuid.UUID]*report.Document)}
}

func (s *Sink) Name() string { return "in_mem" }

func (s *Sink) Save(ctx context.Context, doc *report.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[doc.RunID]; ok {
		return fmt.Errorf("run %s already stored", doc.RunID)
	}
	s.docs[doc.RunID] = doc
	s.order = append(s.order, doc.RunID)

	slog.Debug("Run stored in memory", "run_id", doc.RunID)
	return nil
}

func (s *Sink) Get(runID uuid.UUID) (*report.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[runID]
	return doc, ok
}

// Documents returns stored documents in save order.
func (s *Sink) Documents() []*report.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*report.Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}

func (s *Sink) Close() error { return nil }
