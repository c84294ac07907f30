package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/internal/rowio"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
)

func TestCSVColumns_DerivedFieldsLast(t *testing.T) {
	recs := []autotag.Record{
		{"vendor": "Acme", "description": "x", "ai_category": "Revenue"},
		{"description": "y", "amount_note": "z"},
	}
	cols := csvColumns(recs)

	want := []string{"amount_note", "description", "vendor",
		"ai_category", "ai_entities", "ai_sentiment", "customer"}
	if len(cols) != len(want) {
		t.Fatalf("columns = %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, cols[i], want[i])
		}
	}
}

func TestSliceSource_Exhausts(t *testing.T) {
	src := &sliceSource{rows: nil}
	_, ok, err := src.Next(context.Background())
	if ok || err != nil {
		t.Errorf("empty source: ok=%v err=%v, want false nil", ok, err)
	}
}

func TestEnrichCommand_CSVToJSONL(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "rows.csv")
	out := filepath.Join(dir, "rows.jsonl")

	csv := "description\n" +
		"google ads campaign spend\n" +
		"invoice paid by Jane Smith\n"
	if err := os.WriteFile(in, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	defer rootCmd.SetArgs(nil)
	rootCmd.SetArgs([]string{"enrich", "--in", in, "--out", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("enrich: %v", err)
	}

	recs, err := rowio.ReadJSONL(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	for i, rec := range recs {
		if _, ok := rec["ai_category"]; !ok {
			t.Errorf("record %d missing ai_category: %v", i, rec)
		}
	}
	if recs[1]["customer"] != "Jane Smith" {
		t.Errorf("customer = %v, want Jane Smith", recs[1]["customer"])
	}
}

func TestEnrichCommand_MissingInput(t *testing.T) {
	defer rootCmd.SetArgs(nil)
	rootCmd.SetArgs([]string{"enrich", "--in", ""})
	if err := rootCmd.Execute(); err == nil {
		t.Error("enrich without --in should fail")
	}
}
