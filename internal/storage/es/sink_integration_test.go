//go:build integration

package es

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/report"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/runner"
	testingpkg "github.com/DjordjeVuckovic/judge-bench/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Save(t *testing.T) {
	ctx := context.Background()
	container := testingpkg.NewESContainer(ctx, t)

	cfg := ClientConfig{Addresses: container.Addresses(), IndexName: "judge-results-test"}
	sink, err := NewSink(ctx, cfg)
	require.NoError(t, err)

	// an existing index is reused
	require.NoError(t, sink.EnsureIndex(ctx))

	rcfg := runner.DefaultConfig()
	rcfg.Papers = 10
	res, err := runner.New(rcfg).Run(ctx)
	require.NoError(t, err)
	doc := report.Generate(res)

	require.NoError(t, sink.Save(ctx, doc))

	_, err = sink.client.Indices.Refresh().Index(cfg.IndexName).Do(ctx)
	require.NoError(t, err)

	count, err := sink.client.Count().Index(cfg.IndexName).Do(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(toDocuments(doc, doc.Timestamp))), count.Count)
}
