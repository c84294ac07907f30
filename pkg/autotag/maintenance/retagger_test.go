package maintenance

import (
	"context"
	"errors"
	"testing"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
)

type fakeSource struct {
	rows []store.Row
	idx  int
	err  error
}

func (f *fakeSource) Next(ctx context.Context) (store.Row, bool, error) {
	if f.err != nil {
		return store.Row{}, false, f.err
	}
	if f.idx >= len(f.rows) {
		return store.Row{}, false, nil
	}
	row := f.rows[f.idx]
	f.idx++
	return row, true, nil
}

func staleRow(id, description, category string) store.Row {
	return store.Row{
		ID: id,
		Fields: map[string]any{
			"description":  description,
			"ai_category":  category,
			"ai_sentiment": sentiment.Result{Label: "neutral", Confidence: 0.5},
		},
	}
}

func TestRetaggerAppliesChangedRows(t *testing.T) {
	src := &fakeSource{rows: []store.Row{
		// Stale category: the new table puts this under Revenue
		staleRow("r1", "invoice paid in full", "Office & Supplies"),
		// Already correct: category and sentiment both hold
		staleRow("r2", "printer paper supplies", "Office & Supplies"),
	}}

	var applied []store.Row
	r := &Retagger{Pipeline: autotag.Default()}
	st, err := r.Run(context.Background(), src, func(row store.Row) error {
		applied = append(applied, row)
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if st.Scanned != 2 || st.Changed != 1 || st.Errors != 0 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	if len(applied) != 1 || applied[0].ID != "r1" {
		t.Fatalf("applied rows = %+v, want only r1", applied)
	}
	if applied[0].Fields["ai_category"] != "Revenue" {
		t.Errorf("ai_category = %v, want re-tagged Revenue", applied[0].Fields["ai_category"])
	}
}

func TestRetaggerDetectsSentimentChange(t *testing.T) {
	src := &fakeSource{rows: []store.Row{
		// Category stays on fallback but the lexicon now sees "awful"
		staleRow("r1", "awful experience overall", "Uncategorized"),
	}}

	r := &Retagger{Pipeline: autotag.Default()}
	var applied int
	st, err := r.Run(context.Background(), src, func(store.Row) error {
		applied++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if st.Changed != 1 || applied != 1 {
		t.Errorf("sentiment-only changes must be applied: %+v", st)
	}
}

func TestRetaggerHandlesDecodedRows(t *testing.T) {
	// Rows straight out of the sqlite store carry sentiment as a map
	src := &fakeSource{rows: []store.Row{{
		ID: "r1",
		Fields: map[string]any{
			"description":  "plain text here",
			"ai_category":  "Uncategorized",
			"ai_sentiment": map[string]any{"label": "neutral", "score": 0.0},
		},
	}}}

	r := &Retagger{Pipeline: autotag.Default()}
	st, err := r.Run(context.Background(), src, func(store.Row) error {
		t.Error("unchanged row must not be applied")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if st.Scanned != 1 || st.Changed != 0 {
		t.Errorf("unexpected stats: %+v", st)
	}
}

func TestRetaggerCountsApplyErrors(t *testing.T) {
	src := &fakeSource{rows: []store.Row{
		staleRow("r1", "invoice paid", "Travel & Meals"),
		staleRow("r2", "stripe payout", "Travel & Meals"),
	}}

	r := &Retagger{Pipeline: autotag.Default()}
	st, err := r.Run(context.Background(), src, func(row store.Row) error {
		if row.ID == "r1" {
			return errors.New("boom")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if st.Errors != 1 || st.Changed != 1 {
		t.Errorf("unexpected stats: %+v", st)
	}
}

func TestRetaggerSourceErrorAborts(t *testing.T) {
	wantErr := errors.New("source broken")
	src := &fakeSource{err: wantErr}

	r := &Retagger{Pipeline: autotag.Default()}
	_, err := r.Run(context.Background(), src, func(store.Row) error { return nil })
	if !errors.Is(err, wantErr) {
		t.Errorf("Run should abort on source errors, got %v", err)
	}
}

func TestRetaggerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{rows: []store.Row{staleRow("r1", "invoice", "X")}}
	r := &Retagger{Pipeline: autotag.Default()}

	st, err := r.Run(ctx, src, func(store.Row) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if st.Scanned != 0 {
		t.Errorf("canceled run should not scan, got %+v", st)
	}
}

func TestRetaggerInvalidConfiguration(t *testing.T) {
	r := &Retagger{}
	if _, err := r.Run(context.Background(), &fakeSource{}, func(store.Row) error { return nil }); err == nil {
		t.Error("Run should fail without a pipeline")
	}

	r = &Retagger{Pipeline: autotag.Default()}
	if _, err := r.Run(context.Background(), nil, func(store.Row) error { return nil }); err == nil {
		t.Error("Run should fail without a source")
	}
}
