package content

import (
	"context"
	"testing"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store/memstore"
)

func TestTaggerTag(t *testing.T) {
	tagger := NewTagger(autotag.DefaultContentTypes(), sentiment.Default(), nil)

	item := Item{
		Path:  "posts/promo.html",
		Title: "Spring Promo",
		Text:  "Limited time offer: save big on our amazing new plans.",
	}
	rec := tagger.Tag(item)

	if rec[autotag.FieldContentType] != "promotional" {
		t.Errorf("content_type = %v, want promotional", rec[autotag.FieldContentType])
	}
	if rec["path"] != item.Path || rec["title"] != item.Title || rec["text"] != item.Text {
		t.Errorf("item fields not carried: %v", rec)
	}

	res := rec[autotag.FieldSentiment].(sentiment.Result)
	if res.Label != sentiment.LabelPositive {
		t.Errorf("sentiment = %+v, want positive from 'amazing'", res)
	}
}

func TestTaggerTagFallback(t *testing.T) {
	tagger := NewTagger(autotag.DefaultContentTypes(), sentiment.Default(), nil)

	rec := tagger.Tag(Item{Text: "quarterly numbers attached"})
	if rec[autotag.FieldContentType] != "general" {
		t.Errorf("content_type = %v, want general fallback", rec[autotag.FieldContentType])
	}
}

func TestTaggerIngest(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	tagger := NewTagger(autotag.DefaultContentTypes(), sentiment.Default(), st)

	row, err := tagger.Ingest(ctx, Item{
		Path: "posts/howto.html",
		Text: "How to learn keyword tagging",
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if len(row.ID) != 26 {
		t.Errorf("row ID %q is not a ULID", row.ID)
	}
	if row.Kind != store.KindContent {
		t.Errorf("kind = %q, want content", row.Kind)
	}

	got, err := st.GetRow(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetRow: %v", err)
	}
	if got.Fields[autotag.FieldContentType] != "educational" {
		t.Errorf("stored content_type = %v, want educational", got.Fields[autotag.FieldContentType])
	}
}

func TestTaggerIngestNeedsStore(t *testing.T) {
	tagger := NewTagger(autotag.DefaultContentTypes(), sentiment.Default(), nil)
	if _, err := tagger.Ingest(context.Background(), Item{Text: "x"}); err == nil {
		t.Error("Ingest should fail without a store")
	}
}
