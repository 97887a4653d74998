package in_mem

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/report"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink(t *testing.T) {
	ctx := context.Background()
	s := NewSink()

	a := &report.Document{RunID: uuid.New(), ExperimentID: "a"}
	b := &report.Document{RunID: uuid.New(), ExperimentID: "b"}

	require.NoError(t, s.Save(ctx, a))
	require.NoError(t, s.Save(ctx, b))
	assert.Error(t, s.Save(ctx, a))

	got, ok := s.Get(b.RunID)
	require.True(t, ok)
	assert.Equal(t, "b", got.ExperimentID)

	assert.Equal(t, []*report.Document{a, b}, s.Documents())

	_, ok = s.Get(uuid.New())
	assert.False(t, ok)
}

func TestSink_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSink().Save(ctx, &report.Document{RunID: uuid.New()})
	assert.ErrorIs(t, err, context.Canceled)
}
