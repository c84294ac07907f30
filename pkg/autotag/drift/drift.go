// Package drift flags taxonomy staleness over a tagged corpus: keywords
// that stopped pulling their weight, and frequent tokens no keyword
// covers.
package drift

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/classify"
)

// Drift type constants.
const (
	DriftLowCoverage = "low_coverage" // existing keyword losing relevance
	DriftOrphan      = "orphan"       // frequent token not covered by any keyword
)

// CorpusStats carries the usage counts a detector run works from.
type CorpusStats struct {
	TotalRows    int64
	CategoryRows map[string]int64            // rows tagged with each category
	KeywordRows  map[string]map[string]int64 // category -> keyword -> rows where it matched
	TokenDF      map[string]int64            // rows containing each token
	TokenCats    map[string]map[string]int64 // token -> tagged-category co-occurrence rows
}

// StatsProvider supplies corpus statistics.
type StatsProvider interface {
	CorpusStats(ctx context.Context) (CorpusStats, error)
}

// Suggestion represents a proposed taxonomy change. Suggestions are
// advisory; nothing applies them automatically.
type Suggestion struct {
	Type       string  `json:"type"`
	Category   string  `json:"category,omitempty"`
	Keyword    string  `json:"keyword"`
	Confidence float64 `json:"confidence"`
	Rows       int64   `json:"rows"`
}

// Thresholds control sensitivity.
type Thresholds struct {
	StaleShare      float64 // low_coverage: hit-row share of category rows below this
	MinCategoryRows int64   // skip categories with fewer tagged rows
	OrphanShare     float64 // orphan: token row share at or above this
	MinAssociation  float64 // orphan: minimum NPMI to pin a suggested category
}

// DefaultThresholds returns the tuning used for fields left zero.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StaleShare:      0.02,
		MinCategoryRows: 10,
		OrphanShare:     0.10,
		MinAssociation:  0.2,
	}
}

// Detector generates taxonomy suggestions from corpus statistics.
type Detector struct {
	Classifier *classify.Classifier
	Provider   StatsProvider
	Thresholds Thresholds
	Stopwords  []string
}

// Run executes the detector. Low-coverage suggestions come first, in
// table order, followed by orphans from most to least frequent.
func (d *Detector) Run(ctx context.Context) ([]Suggestion, error) {
	if d.Provider == nil {
		return nil, errors.New("drift: nil stats provider")
	}
	if d.Classifier == nil {
		return nil, errors.New("drift: nil classifier")
	}

	stats, err := d.Provider.CorpusStats(ctx)
	if err != nil {
		return nil, err
	}

	th := d.thresholdsOrDefault()
	suggestions := d.lowCoverage(stats, th)
	suggestions = append(suggestions, d.orphans(stats, th)...)
	return suggestions, nil
}

func (d *Detector) thresholdsOrDefault() Thresholds {
	th := d.Thresholds
	def := DefaultThresholds()
	if th.StaleShare == 0 {
		th.StaleShare = def.StaleShare
	}
	if th.MinCategoryRows == 0 {
		th.MinCategoryRows = def.MinCategoryRows
	}
	if th.OrphanShare == 0 {
		th.OrphanShare = def.OrphanShare
	}
	if th.MinAssociation == 0 {
		th.MinAssociation = def.MinAssociation
	}
	return th
}

// lowCoverage flags keywords whose hit share of their category's rows
// fell under StaleShare. Confidence rises as the share approaches zero.
func (d *Detector) lowCoverage(stats CorpusStats, th Thresholds) []Suggestion {
	var out []Suggestion
	for _, cat := range d.Classifier.Categories() {
		catRows := stats.CategoryRows[cat]
		if catRows < th.MinCategoryRows {
			continue
		}
		for _, kw := range d.Classifier.Keywords(cat) {
			hits := stats.KeywordRows[cat][kw]
			share := float64(hits) / float64(catRows)
			if share >= th.StaleShare {
				continue
			}
			out = append(out, Suggestion{
				Type:       DriftLowCoverage,
				Category:   cat,
				Keyword:    kw,
				Confidence: 1 - share/th.StaleShare,
				Rows:       hits,
			})
		}
	}
	return out
}

// orphans flags frequent tokens no keyword covers. When the token
// associates strongly with one category's rows, that category is
// suggested and the association doubles as the confidence.
func (d *Detector) orphans(stats CorpusStats, th Thresholds) []Suggestion {
	if stats.TotalRows == 0 {
		return nil
	}

	stop := make(map[string]struct{}, len(d.Stopwords))
	for _, w := range d.Stopwords {
		stop[strings.ToLower(w)] = struct{}{}
	}

	tokens := make([]string, 0, len(stats.TokenDF))
	for tok := range stats.TokenDF {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if stats.TokenDF[tokens[i]] != stats.TokenDF[tokens[j]] {
			return stats.TokenDF[tokens[i]] > stats.TokenDF[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	var out []Suggestion
	for _, tok := range tokens {
		df := stats.TokenDF[tok]
		share := float64(df) / float64(stats.TotalRows)
		if share < th.OrphanShare {
			// Sorted by row count, so every later token is rarer
			break
		}
		if _, ok := stop[tok]; ok {
			continue
		}
		if d.Classifier.Classify(tok) != d.Classifier.Fallback() {
			// Some keyword already covers this token
			continue
		}

		category, assoc := bestAssociation(tok, stats)
		confidence := assoc
		if category == "" || assoc < th.MinAssociation {
			category = ""
			confidence = 1 - math.Exp(-share/th.OrphanShare)
		}

		out = append(out, Suggestion{
			Type:       DriftOrphan,
			Category:   category,
			Keyword:    tok,
			Confidence: confidence,
			Rows:       df,
		})
	}
	return out
}

// bestAssociation scores the token against each category it co-occurs
// with and returns the strongest by normalized PMI. Ties resolve to the
// alphabetically first category.
func bestAssociation(tok string, stats CorpusStats) (string, float64) {
	cats := stats.TokenCats[tok]
	if len(cats) == 0 {
		return "", 0
	}

	names := make([]string, 0, len(cats))
	for cat := range cats {
		names = append(names, cat)
	}
	sort.Strings(names)

	best, bestScore := "", math.Inf(-1)
	for _, cat := range names {
		score := npmi(cats[cat], stats.TokenDF[tok], stats.CategoryRows[cat], stats.TotalRows)
		if score > bestScore {
			best, bestScore = cat, score
		}
	}
	return best, bestScore
}
