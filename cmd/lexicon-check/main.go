// Command lexicon-check verifies that a sentiment lexicon keeps its
// positive and negative word lists disjoint. With no --lexicon flag it
// checks the built-in lists. Exits 1 when overlap is found.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/config"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/internalerr"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
)

func main() {
	var lexiconPath = flag.String("lexicon", "", "Lexicon YAML file (default: built-in lists)")
	flag.Parse()

	positive, negative := sentiment.PositiveWords, sentiment.NegativeWords
	if *lexiconPath != "" {
		lex, err := config.LoadLexicon(*lexiconPath)
		if errors.Is(err, internalerr.ErrInvalidConfig) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *lexiconPath, err)
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("load lexicon: %v", err)
		}
		positive, negative = lex.Positive, lex.Negative
	}

	overlap := findOverlap(positive, negative)
	if len(overlap) > 0 {
		where := "built-in lexicon"
		if *lexiconPath != "" {
			where = *lexiconPath
		}
		fmt.Fprintf(os.Stderr, "overlap in %s (%d words):\n", where, len(overlap))
		for _, w := range overlap {
			fmt.Fprintf(os.Stderr, "  %s\n", w)
		}
		os.Exit(1)
	}

	fmt.Printf("ok: %d positive, %d negative, no overlap\n", len(positive), len(negative))
}

func findOverlap(positive, negative []string) []string {
	neg := make(map[string]struct{}, len(negative))
	for _, w := range negative {
		neg[strings.ToLower(w)] = struct{}{}
	}
	seen := make(map[string]struct{})
	var overlap []string
	for _, w := range positive {
		lw := strings.ToLower(w)
		if _, ok := neg[lw]; !ok {
			continue
		}
		if _, dup := seen[lw]; dup {
			continue
		}
		seen[lw] = struct{}{}
		overlap = append(overlap, lw)
	}
	sort.Strings(overlap)
	return overlap
}
