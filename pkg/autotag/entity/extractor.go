package entity

import (
	"regexp"
	"strconv"
	"strings"
)

// Extractor pulls structured values out of free text using five
// independent single-match patterns: person, email, amount, date and
// reference. Each pattern scans the whole text on its own; matches may
// overlap and never exclude each other's spans.
//
// Patterns are compiled once in NewExtractor; the extractor is read-only
// afterwards and safe for concurrent use.
type Extractor struct {
	person    *regexp.Regexp
	email     *regexp.Regexp
	amount    *regexp.Regexp
	date      *regexp.Regexp
	reference *regexp.Regexp
}

// NewExtractor compiles the entity patterns.
func NewExtractor() *Extractor {
	return &Extractor{
		// A capitalized name (one or two words, optionally hyphenated)
		// right after a linking word. The linking word is case-insensitive,
		// the name is not.
		person: regexp.MustCompile(`\b(?i:from|to|by|for|client|customer|vendor|paid)\s+([A-Z][a-z]+(?:-[A-Z][a-z]+)?(?:\s+[A-Z][a-z]+(?:-[A-Z][a-z]+)?)?)\b`),

		email: regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`),

		// A number with a currency marker on either side. Bare numbers are
		// never amounts; without the marker they would collide with dates
		// and reference digits.
		amount: regexp.MustCompile(`(?:[$£€]|\b(?i:USD|GBP|EUR))\s*(\d[\d,]*(?:\.\d+)?)|(\d[\d,]*(?:\.\d+)?)\s*(?i:USD|GBP|EUR)\b`),

		// ISO, US slash, or long month-name form. The raw substring is
		// kept as matched, never normalized.
		date: regexp.MustCompile(`\b(?:\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/(?:\d{4}|\d{2})|(?i:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4})\b`),

		reference: regexp.MustCompile(`\b(?i:INV|REF|PO|SO|TXN)[-#:]?\s?\d{3,}\b`),
	}
}

// Extract runs the five matchers over the text and returns a map holding
// only the keys that matched: "person", "email", "date", "reference"
// (strings) and "amount" (float64). A key that found nothing is absent,
// never nil or empty. The input is read, never modified.
func (e *Extractor) Extract(text string) map[string]any {
	found := make(map[string]any)

	if m := e.person.FindStringSubmatch(text); m != nil {
		found["person"] = m[1]
	}

	if m := e.email.FindString(text); m != "" {
		found["email"] = m
	}

	if m := e.amount.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		// Commas are thousands separators; a capture that still fails to
		// parse is dropped silently.
		if v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64); err == nil {
			found["amount"] = v
		}
	}

	if m := e.date.FindString(text); m != "" {
		found["date"] = m
	}

	if m := e.reference.FindString(text); m != "" {
		found["reference"] = m
	}

	return found
}
