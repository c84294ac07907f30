package store

import (
	"context"
	"time"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
)

// Row kinds. Transaction rows come from imports; content rows from the
// content tagger.
const (
	KindTransaction = "transaction"
	KindContent     = "content"
)

// Store is the main interface for persisting and querying enriched rows
type Store interface {
	Close() error

	// PutRow inserts or overwrites a row by ID. The creation time of an
	// existing row is preserved.
	PutRow(ctx context.Context, r Row) error
	// GetRow returns internalerr.ErrNotFound when the ID is absent.
	GetRow(ctx context.Context, id string) (Row, error)
	// ListRows returns matching rows, newest first.
	ListRows(ctx context.Context, f Filter) ([]Row, error)
	// ReplaceRow updates an existing row in place, keeping its creation
	// time and returning internalerr.ErrNotFound when the ID is absent.
	ReplaceRow(ctx context.Context, r Row) error

	CountRows(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
	CountBySentiment(ctx context.Context) (map[string]int64, error)
}

// Row is one stored record with its enrichment fields.
type Row struct {
	ID        string
	ImportID  string
	Kind      string
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter narrows ListRows. Zero values match everything.
type Filter struct {
	Category  string
	Sentiment string
	Kind      string
	ImportID  string
	Limit     int
}

// Labels pulls the enrichment labels out of a record's fields for
// indexing. The sentiment value is a sentiment.Result in memory and a
// generic map after a JSON round trip; both forms are handled.
func Labels(fields map[string]any) (category, sentimentLabel string) {
	if c, ok := fields["ai_category"].(string); ok {
		category = c
	}
	switch v := fields["ai_sentiment"].(type) {
	case sentiment.Result:
		sentimentLabel = v.Label
	case map[string]any:
		if l, ok := v["label"].(string); ok {
			sentimentLabel = l
		}
	}
	return category, sentimentLabel
}
