package content

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/classify"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
)

// Tagger derives content-type and sentiment tags for items and
// persists them as content rows.
type Tagger struct {
	types   *classify.Classifier
	scorer  *sentiment.Scorer
	store   store.Store // nil allows Tag but not Ingest
	entropy *ulid.MonotonicEntropy
}

// NewTagger wires a tagger over a content-type classifier and a
// sentiment scorer.
func NewTagger(types *classify.Classifier, scorer *sentiment.Scorer, st store.Store) *Tagger {
	return &Tagger{
		types:   types,
		scorer:  scorer,
		store:   st,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Tag derives the stored fields for one item. Classification runs over
// the item text only; for HTML files the title is already part of the
// visible text.
func (t *Tagger) Tag(item Item) autotag.Record {
	rec := autotag.Record{
		"path":  item.Path,
		"title": item.Title,
		"text":  item.Text,
	}
	rec[autotag.FieldContentType] = t.types.Classify(item.Text)
	rec[autotag.FieldSentiment] = t.scorer.Analyze(item.Text)
	return rec
}

// Ingest tags one item and persists it as a Kind "content" row,
// returning the stored row.
func (t *Tagger) Ingest(ctx context.Context, item Item) (store.Row, error) {
	if t.store == nil {
		return store.Row{}, errors.New("content: tagger has no store")
	}
	row := store.Row{
		ID:     ulid.MustNew(ulid.Now(), t.entropy).String(),
		Kind:   store.KindContent,
		Fields: t.Tag(item),
	}
	if err := t.store.PutRow(ctx, row); err != nil {
		return store.Row{}, fmt.Errorf("store content row: %w", err)
	}
	return row, nil
}
