package rowio

import (
	"context"
	"errors"
	"testing"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/analytics"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store/memstore"
)

func sampleBatch() []autotag.Record {
	return []autotag.Record{
		{"description": "Stripe payout received"},
		{"description": "Team lunch downtown"},
		{"description": "Invoice paid by Acme"},
	}
}

func TestEnrichPersistsRows(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	e := NewEnricher(Options{Pipeline: autotag.Default(), Store: st})

	sum, err := e.Enrich(ctx, sampleBatch(), "import-1")
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if sum.Rows != 3 {
		t.Errorf("Rows = %d, want 3", sum.Rows)
	}
	if sum.Categories["Revenue"] != 2 || sum.Categories["Travel & Meals"] != 1 {
		t.Errorf("Categories = %v", sum.Categories)
	}

	rows, err := st.ListRows(ctx, store.Filter{ImportID: "import-1"})
	if err != nil {
		t.Fatalf("ListRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("stored rows = %d, want 3", len(rows))
	}
	for _, r := range rows {
		if len(r.ID) != 26 {
			t.Errorf("row ID %q is not a ULID", r.ID)
		}
		if r.Kind != store.KindTransaction {
			t.Errorf("row kind = %q, want transaction", r.Kind)
		}
		if _, ok := r.Fields[autotag.FieldCategory]; !ok {
			t.Errorf("row %s was stored unenriched", r.ID)
		}
	}
}

func TestEnrichIDsSortByInputOrder(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	e := NewEnricher(Options{Pipeline: autotag.Default(), Store: st})

	batch := sampleBatch()
	if _, err := e.Enrich(ctx, batch, ""); err != nil {
		t.Fatalf("Enrich: %v", err)
	}

	rows, err := st.ListRows(ctx, store.Filter{})
	if err != nil {
		t.Fatalf("ListRows: %v", err)
	}
	idByDesc := make(map[string]string, len(rows))
	for _, r := range rows {
		idByDesc[r.Fields["description"].(string)] = r.ID
	}

	prev := ""
	for _, rec := range batch {
		id := idByDesc[rec["description"].(string)]
		if id <= prev {
			t.Fatalf("IDs out of input order: %q after %q", id, prev)
		}
		prev = id
	}
}

func TestEnrichWithoutStore(t *testing.T) {
	e := NewEnricher(Options{Pipeline: autotag.Default()})

	batch := sampleBatch()
	sum, err := e.Enrich(context.Background(), batch, "")
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if sum.Rows != 3 {
		t.Errorf("Rows = %d, want 3", sum.Rows)
	}
	if batch[0][autotag.FieldCategory] != "Revenue" {
		t.Errorf("records must be enriched in place, got %v", batch[0][autotag.FieldCategory])
	}
}

func TestEnrichFeedsAnalyzer(t *testing.T) {
	analyzer := analytics.NewAnalyzer(nil)
	e := NewEnricher(Options{Pipeline: autotag.Default(), Analyzer: analyzer})

	if _, err := e.Enrich(context.Background(), sampleBatch(), ""); err != nil {
		t.Fatalf("Enrich: %v", err)
	}

	stats := analyzer.Snapshot()
	if stats.TotalRows != 3 {
		t.Errorf("analyzer rows = %d, want 3", stats.TotalRows)
	}
	if stats.Categories["Revenue"] != 2 {
		t.Errorf("analyzer categories = %v", stats.Categories)
	}
	if stats.KeywordRows["Revenue"]["stripe"] != 1 {
		t.Errorf("keyword rows = %v", stats.KeywordRows["Revenue"])
	}
}

func TestEnrichCustomTextFieldAndKind(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	e := NewEnricher(Options{
		Pipeline:  autotag.Default(),
		Store:     st,
		TextField: "notes",
		Kind:      store.KindContent,
	})

	recs := []autotag.Record{{"notes": "hotel and airfare"}}
	if _, err := e.Enrich(ctx, recs, ""); err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if recs[0][autotag.FieldCategory] != "Travel & Meals" {
		t.Errorf("ai_category = %v, want Travel & Meals", recs[0][autotag.FieldCategory])
	}

	rows, _ := st.ListRows(ctx, store.Filter{Kind: store.KindContent})
	if len(rows) != 1 {
		t.Errorf("content rows = %d, want 1", len(rows))
	}
}

func TestEnrichEmptyBatch(t *testing.T) {
	e := NewEnricher(Options{Pipeline: autotag.Default()})
	sum, err := e.Enrich(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if sum.Rows != 0 {
		t.Errorf("Rows = %d, want 0", sum.Rows)
	}
}

func TestEnrichRequiresPipeline(t *testing.T) {
	e := NewEnricher(Options{})
	if _, err := e.Enrich(context.Background(), sampleBatch(), ""); err == nil {
		t.Error("Enrich should fail without a pipeline")
	}
}

type failingStore struct{ store.Store }

func (failingStore) PutRow(context.Context, store.Row) error {
	return errors.New("disk full")
}

func TestEnrichStoreErrorPropagates(t *testing.T) {
	e := NewEnricher(Options{Pipeline: autotag.Default(), Store: failingStore{}})
	if _, err := e.Enrich(context.Background(), sampleBatch(), ""); err == nil {
		t.Error("Enrich should surface store failures")
	}
}
