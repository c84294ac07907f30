// Package analytics aggregates tagging statistics over enriched rows.
package analytics

import (
	"context"
	"strings"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/classify"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/drift"
)

// Analyzer aggregates row-level category, sentiment, keyword and token
// stats. Not safe for concurrent use; callers observe rows from one
// goroutine.
type Analyzer struct {
	totalRows   int64
	categories  map[string]int64
	sentiments  map[string]int64
	keywordRows map[string]map[string]int64
	tokenDF     map[string]int64
	tokenCats   map[string]map[string]int64
	stop        map[string]struct{}
}

// NewAnalyzer creates an empty analyzer. Stopwords are dropped from the
// token statistics.
func NewAnalyzer(stopwords []string) *Analyzer {
	a := &Analyzer{
		categories:  make(map[string]int64),
		sentiments:  make(map[string]int64),
		keywordRows: make(map[string]map[string]int64),
		tokenDF:     make(map[string]int64),
		tokenCats:   make(map[string]map[string]int64),
		stop:        make(map[string]struct{}, len(stopwords)),
	}
	for _, w := range stopwords {
		a.stop[strings.ToLower(w)] = struct{}{}
	}
	return a
}

// Observe consumes one enriched row: its final category, its sentiment
// label, the per-category match breakdown, and its tokens.
func (a *Analyzer) Observe(category, sentimentLabel string, matches []classify.Match, tokens []string) {
	a.totalRows++

	if category != "" {
		a.categories[category]++
	}
	if sentimentLabel != "" {
		a.sentiments[sentimentLabel]++
	}

	tagged := false
	for _, m := range matches {
		if m.Score == 0 {
			continue
		}
		tagged = true
		if a.keywordRows[m.Category] == nil {
			a.keywordRows[m.Category] = make(map[string]int64)
		}
		for _, kw := range m.Keywords {
			a.keywordRows[m.Category][kw]++
		}
	}

	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := a.stop[tok]; ok {
			continue
		}
		a.tokenDF[tok]++
		// Token-category association only counts rows that earned a
		// real tag; fallback rows carry no signal
		if tagged && category != "" {
			if a.tokenCats[tok] == nil {
				a.tokenCats[tok] = make(map[string]int64)
			}
			a.tokenCats[tok][category]++
		}
	}
}

// Stats exposes the aggregated counts.
type Stats struct {
	TotalRows   int64
	Categories  map[string]int64
	Sentiments  map[string]int64
	KeywordRows map[string]map[string]int64
	TokenDF     map[string]int64
	TokenCats   map[string]map[string]int64
}

// Snapshot returns a copy of the accumulated statistics.
func (a *Analyzer) Snapshot() Stats {
	return Stats{
		TotalRows:   a.totalRows,
		Categories:  copyCounts(a.categories),
		Sentiments:  copyCounts(a.sentiments),
		KeywordRows: copyNested(a.keywordRows),
		TokenDF:     copyCounts(a.tokenDF),
		TokenCats:   copyNested(a.tokenCats),
	}
}

// CorpusStats converts a snapshot into the drift detector's input.
func (s Stats) CorpusStats() drift.CorpusStats {
	return drift.CorpusStats{
		TotalRows:    s.TotalRows,
		CategoryRows: s.Categories,
		KeywordRows:  s.KeywordRows,
		TokenDF:      s.TokenDF,
		TokenCats:    s.TokenCats,
	}
}

// DriftProvider adapts a stats snapshot to the drift detector.
type DriftProvider struct {
	stats Stats
}

func NewDriftProvider(stats Stats) *DriftProvider {
	return &DriftProvider{stats: stats}
}

func (p *DriftProvider) CorpusStats(ctx context.Context) (drift.CorpusStats, error) {
	return p.stats.CorpusStats(), nil
}

func copyCounts(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyNested(in map[string]map[string]int64) map[string]map[string]int64 {
	out := make(map[string]map[string]int64, len(in))
	for k, inner := range in {
		out[k] = copyCounts(inner)
	}
	return out
}
