package autotag

import (
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/classify"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
)

// Explanation shows why a text was tagged the way it was: the winning
// category with the full per-category breakdown, the extracted
// entities, and the sentiment result with the lexicon words behind it.
type Explanation struct {
	Category      string           `json:"category"`
	Breakdown     []classify.Match `json:"breakdown"`
	Entities      map[string]any   `json:"entities"`
	Sentiment     sentiment.Result `json:"sentiment"`
	PositiveWords []string         `json:"positive_words,omitempty"`
	NegativeWords []string         `json:"negative_words,omitempty"`
}

// Explain runs every stage over a plain text, touching no record, and
// reports the full reasoning. The category pick matches what
// ProcessRow would write.
func (p *Pipeline) Explain(text string) Explanation {
	expl := Explanation{
		Category:  p.categories.Fallback(),
		Breakdown: p.categories.Explain(text),
		Entities:  p.entities.Extract(text),
		Sentiment: p.sentiment.Analyze(text),
	}

	best := 0
	for _, m := range expl.Breakdown {
		if m.Score > best {
			expl.Category = m.Category
			best = m.Score
		}
	}

	expl.PositiveWords, expl.NegativeWords = p.sentiment.Words(text)
	return expl
}
