package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/internalerr"
)

// Taxonomy is the on-disk category table. Categories form a YAML
// sequence, not a map: definition order is the tie-break order and a
// map would lose it.
type Taxonomy struct {
	Fallback   string     `yaml:"fallback"`
	Categories []Category `yaml:"categories"`
}

// Category is one named keyword list.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// LoadTaxonomy loads a category table from a YAML file.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, err
	}

	for i, cat := range tax.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, fmt.Errorf("category %d has no name: %w", i, internalerr.ErrInvalidConfig)
		}
		if len(cat.Keywords) == 0 {
			return nil, fmt.Errorf("category %q has no keywords: %w", cat.Name, internalerr.ErrInvalidConfig)
		}
	}

	return &tax, nil
}

// Lexicon is the on-disk sentiment word list pair.
type Lexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// LoadLexicon loads a sentiment lexicon from a YAML file. A word
// appearing on both sides is a configuration error.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}

	pos := make(map[string]struct{}, len(lex.Positive))
	for _, w := range lex.Positive {
		pos[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	for _, w := range lex.Negative {
		if _, ok := pos[strings.ToLower(strings.TrimSpace(w))]; ok {
			return nil, fmt.Errorf("word %q is in both lexicons: %w", w, internalerr.ErrInvalidConfig)
		}
	}

	return &lex, nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Stopwords []string `yaml:"stopwords"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
