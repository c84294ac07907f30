package classify

import (
	"regexp"
	"strings"
)

// Classifier scores free text against an ordered table of category
// keyword lists. The category with the most distinct keyword hits wins;
// ties go to the category defined first. Matching is case-insensitive
// and bounded at word edges, so "api" never fires inside "rapid".
//
// Build the table with Add before sharing the classifier; once built it
// is read-only and safe for concurrent use.
type Classifier struct {
	entries  []entry
	index    map[string]int // category name → position in entries
	fallback string
}

type entry struct {
	name     string
	keywords []keywordPattern
}

// keywordPattern pairs a keyword with its compiled whole-word matcher.
type keywordPattern struct {
	keyword string
	re      *regexp.Regexp
}

// Match reports one category's score against a text.
type Match struct {
	Category string   `json:"category"`
	Score    int      `json:"score"`
	Keywords []string `json:"keywords,omitempty"` // keywords that hit, in table order
}

// New creates an empty classifier that answers with the given fallback
// label when no category scores above zero.
func New(fallback string) *Classifier {
	return &Classifier{
		index:    make(map[string]int),
		fallback: fallback,
	}
}

// Add registers a category with its trigger keywords. Definition order is
// preserved and decides tie-breaking. Adding to an existing category
// appends keywords without changing its position.
func (c *Classifier) Add(name string, keywords []string) {
	pos, ok := c.index[name]
	if !ok {
		pos = len(c.entries)
		c.index[name] = pos
		c.entries = append(c.entries, entry{name: name})
	}
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		c.entries[pos].keywords = append(c.entries[pos].keywords, keywordPattern{
			keyword: kw,
			re:      compileKeyword(kw),
		})
	}
}

// compileKeyword builds the whole-word, case-insensitive pattern for a
// keyword or phrase. Interior whitespace matches any whitespace run, so
// "google ads" also hits "google  ads" and "google\tads".
func compileKeyword(kw string) *regexp.Regexp {
	quoted := strings.Join(strings.Fields(regexp.QuoteMeta(kw)), `\s+`)
	return regexp.MustCompile(`(?i)\b` + quoted + `\b`)
}

// Classify returns the best-scoring category for the text, or the
// fallback label when no keyword matches. Each keyword counts once no
// matter how often it occurs.
func (c *Classifier) Classify(text string) string {
	best := c.fallback
	bestScore := 0
	for _, e := range c.entries {
		score := 0
		for _, kp := range e.keywords {
			if kp.re.MatchString(text) {
				score++
			}
		}
		if score > bestScore {
			best = e.name
			bestScore = score
		}
	}
	return best
}

// Explain scores every category against the text, in table order,
// reporting which keywords hit. The winning category is the first entry
// with the maximum positive score.
func (c *Classifier) Explain(text string) []Match {
	matches := make([]Match, 0, len(c.entries))
	for _, e := range c.entries {
		m := Match{Category: e.name}
		for _, kp := range e.keywords {
			if kp.re.MatchString(text) {
				m.Score++
				m.Keywords = append(m.Keywords, kp.keyword)
			}
		}
		matches = append(matches, m)
	}
	return matches
}

// Categories returns the category names in definition order.
func (c *Classifier) Categories() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.name
	}
	return names
}

// Keywords returns a copy of the keywords registered for a category,
// lowercased, in definition order.
func (c *Classifier) Keywords(name string) []string {
	pos, ok := c.index[name]
	if !ok {
		return nil
	}
	kws := make([]string, len(c.entries[pos].keywords))
	for i, kp := range c.entries[pos].keywords {
		kws[i] = kp.keyword
	}
	return kws
}

// Fallback returns the label used when no category matches.
func (c *Classifier) Fallback() string {
	return c.fallback
}
