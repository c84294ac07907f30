package autotag

import (
	"reflect"
	"testing"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
)

func TestExplainWinningCategory(t *testing.T) {
	p := Default()

	expl := p.Explain("stripe payout for consulting")

	if expl.Category != "Revenue" {
		t.Errorf("Category = %q, want Revenue", expl.Category)
	}
	if len(expl.Breakdown) != len(p.Categories().Categories()) {
		t.Fatalf("Breakdown has %d entries, want one per category", len(expl.Breakdown))
	}
	if expl.Breakdown[0].Category != "Revenue" || expl.Breakdown[0].Score != 2 {
		t.Errorf("Breakdown[0] = %+v, want Revenue with score 2", expl.Breakdown[0])
	}
	if !reflect.DeepEqual(expl.Breakdown[0].Keywords, []string{"payout", "stripe"}) {
		t.Errorf("Revenue keywords = %v, want [payout stripe]", expl.Breakdown[0].Keywords)
	}
}

func TestExplainFallback(t *testing.T) {
	p := Default()

	expl := p.Explain("zzz qqq")

	if expl.Category != "Uncategorized" {
		t.Errorf("Category = %q, want fallback", expl.Category)
	}
	for _, m := range expl.Breakdown {
		if m.Score != 0 {
			t.Errorf("category %q scored %d on unmatched text", m.Category, m.Score)
		}
	}
}

func TestExplainAgreesWithProcessRow(t *testing.T) {
	p := Default()

	texts := []string{
		"Invoice paid by Jane Smith, ref INV-4521, amount $1,250.00 on 2024-03-15. Great service!",
		"rapid deployment",
		"flight and hotel for the conference",
		"",
	}
	for _, text := range texts {
		rec := Record{"description": text}
		p.ProcessRow(rec, "")
		if expl := p.Explain(text); expl.Category != rec[FieldCategory] {
			t.Errorf("Explain(%q).Category = %q, ProcessRow wrote %q",
				text, expl.Category, rec[FieldCategory])
		}
	}
}

func TestExplainSentimentWords(t *testing.T) {
	p := Default()

	expl := p.Explain("Great service but slow support")

	if !reflect.DeepEqual(expl.PositiveWords, []string{"great"}) {
		t.Errorf("PositiveWords = %v, want [great]", expl.PositiveWords)
	}
	if !reflect.DeepEqual(expl.NegativeWords, []string{"slow"}) {
		t.Errorf("NegativeWords = %v, want [slow]", expl.NegativeWords)
	}
	want := sentiment.Result{Score: 0.0, Label: sentiment.LabelNeutral, Confidence: 0.4}
	if expl.Sentiment != want {
		t.Errorf("Sentiment = %+v, want %+v", expl.Sentiment, want)
	}
}

func TestExplainEntities(t *testing.T) {
	p := Default()

	expl := p.Explain("Invoice INV-4521 from Acme for $99")

	want := map[string]any{
		"person":    "Acme",
		"amount":    99.0,
		"reference": "INV-4521",
	}
	if !reflect.DeepEqual(expl.Entities, want) {
		t.Errorf("Entities = %v, want %v", expl.Entities, want)
	}
}
