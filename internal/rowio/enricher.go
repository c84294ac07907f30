package rowio

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/analytics"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
)

const defaultWorkers = 4

// Options configures an Enricher. Pipeline is required; everything else
// has a workable zero value.
type Options struct {
	Pipeline  *autotag.Pipeline
	Store     store.Store         // nil disables persistence
	Analyzer  *analytics.Analyzer // nil disables stats collection
	TextField string              // "" means the pipeline default
	Kind      string              // "" means transaction
	Workers   int                 // <= 0 means 4
}

// Enricher pushes record batches through a pipeline, assigns row IDs,
// and persists the results. The pipeline's own batch call is
// sequential; the concurrency lives here and only here.
type Enricher struct {
	opts    Options
	entropy *ulid.MonotonicEntropy
}

// Summary reports what one Enrich call produced.
type Summary struct {
	Rows       int            `json:"rows"`
	Categories map[string]int `json:"categories"`
}

// NewEnricher creates an Enricher from options.
func NewEnricher(opts Options) *Enricher {
	if opts.Kind == "" {
		opts.Kind = store.KindTransaction
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	return &Enricher{
		opts:    opts,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Enrich processes the records concurrently, persisting each as a row
// under importID when a store is configured. Records are mutated in
// place, so callers keep their enriched batch either way. Empty input
// returns a zero summary and no error.
//
// Row IDs are monotonic ULIDs assigned in input order before the
// concurrent phase, so IDs sort the way the batch arrived.
func (e *Enricher) Enrich(ctx context.Context, recs []autotag.Record, importID string) (Summary, error) {
	var sum Summary
	if e.opts.Pipeline == nil {
		return sum, errors.New("rowio: enricher needs a pipeline")
	}
	if len(recs) == 0 {
		return sum, nil
	}

	ids := make([]string, len(recs))
	for i := range ids {
		ids[i] = ulid.MustNew(ulid.Now(), e.entropy).String()
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i := range recs {
		i := i
		g.Go(func() error {
			e.opts.Pipeline.ProcessRow(recs[i], e.opts.TextField)
			if e.opts.Store == nil {
				return nil
			}
			row := store.Row{
				ID:       ids[i],
				ImportID: importID,
				Kind:     e.opts.Kind,
				Fields:   recs[i],
			}
			if err := e.opts.Store.PutRow(gCtx, row); err != nil {
				return fmt.Errorf("persist row %d: %w", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}

	sum.Rows = len(recs)
	sum.Categories = make(map[string]int)
	for _, rec := range recs {
		if cat, ok := rec[autotag.FieldCategory].(string); ok {
			sum.Categories[cat]++
		}
	}

	// The analyzer is single-goroutine by contract, so stats are a
	// sequential pass after the workers finish.
	if e.opts.Analyzer != nil {
		field := e.opts.TextField
		if field == "" {
			field = autotag.DefaultTextField
		}
		for _, rec := range recs {
			text, _ := rec[field].(string)
			cat, _ := rec[autotag.FieldCategory].(string)
			var label string
			if res, ok := rec[autotag.FieldSentiment].(sentiment.Result); ok {
				label = res.Label
			}
			matches := e.opts.Pipeline.Categories().Explain(text)
			e.opts.Analyzer.Observe(cat, label, matches, sentiment.Tokens(text))
		}
	}
	return sum, nil
}
