package maintenance

import (
	"context"
	"errors"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
)

// RowSource abstracts how stored rows are iterated for a sweep.
type RowSource interface {
	Next(ctx context.Context) (store.Row, bool, error)
}

// Retagger replays stored rows through a pipeline after taxonomy or
// lexicon changes.
type Retagger struct {
	Pipeline  *autotag.Pipeline
	TextField string
}

// Stats summarizes a retagging sweep.
type Stats struct {
	Scanned int
	Changed int
	Errors  int
}

// Run re-enriches every row from src and hands rows whose category or
// sentiment label changed to apply. A source error aborts the sweep; an
// apply error is counted and the sweep moves on. Context cancellation
// stops the sweep between rows.
func (r *Retagger) Run(ctx context.Context, src RowSource, apply func(store.Row) error) (Stats, error) {
	var st Stats
	if r.Pipeline == nil || src == nil || apply == nil {
		return st, errors.New("retagger: invalid configuration")
	}

	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}

		row, ok, err := src.Next(ctx)
		if err != nil {
			return st, err
		}
		if !ok {
			break
		}
		st.Scanned++

		beforeCat, beforeSent := store.Labels(row.Fields)
		r.Pipeline.ProcessRow(row.Fields, r.TextField)
		afterCat, afterSent := store.Labels(row.Fields)
		if afterCat == beforeCat && afterSent == beforeSent {
			continue
		}

		if err := apply(row); err != nil {
			st.Errors++
			continue
		}
		st.Changed++
	}
	return st, nil
}
