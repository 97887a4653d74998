package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/report"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

type Sink struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewSink(ctx context.Context, config ClientConfig) (*Sink, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	sink := &Sink{
		client:    client,
		indexName: config.IndexName,
	}

	if err := sink.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return sink, nil
}

func (e *Sink) Name() string { return "elasticsearch" }

func (e *Sink) Close() error { return nil }

// Save bulk-indexes one document per population and dimension.
func (e *Sink) Save(ctx context.Context, doc *report.Document) error {
	docs := toDocuments(doc, time.Now().UTC())
	if len(docs) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    2,
		FlushBytes:    1e+6,
		FlushInterval: 5 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, d := range docs {
		body, err := json.Marshal(d)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", d.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: d.ID,
			Body:       bytes.NewReader(body),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", d.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Run indexed in elasticsearch",
		"run_id", doc.RunID,
		"successful", successful.Load(),
		"failed", failed.Load(),
		"index", e.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d documents", n, len(docs))
	}

	return nil
}

func (e *Sink) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":                  types.NewKeywordProperty(),
			"run_id":              types.NewKeywordProperty(),
			"experiment_id":       types.NewKeywordProperty(),
			"seed":                types.NewUnsignedLongNumberProperty(),
			"n_papers":            types.NewIntegerNumberProperty(),
			"significance_method": types.NewKeywordProperty(),
			"h3_variant":          types.NewKeywordProperty(),
			"population":          types.NewKeywordProperty(),
			"kind":                types.NewKeywordProperty(),
			"dimension":           types.NewKeywordProperty(),
			"dimension_class":     types.NewKeywordProperty(),
			"correlation":         types.NewDoubleNumberProperty(),
			"p_value":             types.NewDoubleNumberProperty(),
			"mae":                 types.NewDoubleNumberProperty(),
			"human_mean":          types.NewDoubleNumberProperty(),
			"judge_mean":          types.NewDoubleNumberProperty(),
			"h1_validated":        types.NewBooleanProperty(),
			"h2_validated":        types.NewBooleanProperty(),
			"h3_validated":        types.NewBooleanProperty(),
			"timestamp":           types.NewDateProperty(),
			"indexed_at":          types.NewDateProperty(),
		},
	}

	res, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}
