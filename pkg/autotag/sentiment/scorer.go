package sentiment

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Labels assigned by Analyze.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Result is the outcome of scoring one text against the lexicons.
type Result struct {
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Scorer scores text against a fixed pair of word lexicons. Duplicate
// words in the text carry no extra weight; scoring is over the set of
// distinct tokens. A built scorer is read-only and safe for concurrent
// use.
type Scorer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// New creates a scorer over the given word lists. Words are lowercased.
// The two lists must be disjoint; overlap is undefined behavior (the
// config loader rejects it, and a test pins the built-in lists).
func New(positive, negative []string) *Scorer {
	s := &Scorer{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, w := range positive {
		s.positive[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range negative {
		s.negative[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Default returns a scorer over the built-in lexicons.
func Default() *Scorer {
	return New(PositiveWords, NegativeWords)
}

// Analyze scores the text. With no lexicon words present the result is
// exactly {0.0, neutral, 0.5}. Otherwise the score is
// (pos-neg)/(pos+neg) rounded to two decimals; labels flip outside the
// ±0.2 band; confidence is (pos+neg)/5 capped at 1.0, saturating at
// five distinct sentiment words.
func (s *Scorer) Analyze(text string) Result {
	pos, neg := 0, 0
	for tok := range tokenSet(text) {
		if _, ok := s.positive[tok]; ok {
			pos++
		}
		if _, ok := s.negative[tok]; ok {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return Result{Score: 0.0, Label: LabelNeutral, Confidence: 0.5}
	}

	score := round2(float64(pos-neg) / float64(total))

	label := LabelNeutral
	switch {
	case score > 0.2:
		label = LabelPositive
	case score < -0.2:
		label = LabelNegative
	}

	return Result{
		Score:      score,
		Label:      label,
		Confidence: round2(math.Min(float64(total)/5, 1.0)),
	}
}

// Words reports which lexicon words the text contains, sorted, for
// explain output.
func (s *Scorer) Words(text string) (positive, negative []string) {
	for tok := range tokenSet(text) {
		if _, ok := s.positive[tok]; ok {
			positive = append(positive, tok)
		}
		if _, ok := s.negative[tok]; ok {
			negative = append(negative, tok)
		}
	}
	sort.Strings(positive)
	sort.Strings(negative)
	return positive, negative
}

// Tokens returns the distinct lowercase alphanumeric runs in the text,
// sorted. These are the same tokens Analyze scores against.
func Tokens(text string) []string {
	set := tokenSet(text)
	out := make([]string, 0, len(set))
	for tok := range set {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// tokenSet splits text into lowercase alphanumeric runs and keeps the
// distinct tokens.
func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else {
			if current.Len() > 0 {
				set[current.String()] = struct{}{}
				current.Reset()
			}
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		set[current.String()] = struct{}{}
	}

	return set
}

// round2 rounds to two decimals, halves away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
