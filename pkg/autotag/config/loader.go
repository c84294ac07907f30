package config

import (
	"fmt"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/classify"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/entity"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
)

// Loader points at the optional configuration files. Empty paths fall
// back to the built-in tables.
type Loader struct {
	TaxonomyPath     string
	ContentTypesPath string
	LexiconPath      string
	StoplistPath     string
}

// Components holds the classifier stack built from configuration.
type Components struct {
	Categories   *classify.Classifier
	ContentTypes *classify.Classifier
	Sentiment    *sentiment.Scorer
	Stopwords    []string
}

// Load reads every configured file and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.TaxonomyPath != "" {
		tax, err := LoadTaxonomy(l.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		comp.Categories = buildClassifier(tax, "Uncategorized")
	} else {
		comp.Categories = autotag.DefaultCategories()
	}

	if l.ContentTypesPath != "" {
		tax, err := LoadTaxonomy(l.ContentTypesPath)
		if err != nil {
			return nil, fmt.Errorf("load content types: %w", err)
		}
		comp.ContentTypes = buildClassifier(tax, "general")
	} else {
		comp.ContentTypes = autotag.DefaultContentTypes()
	}

	if l.LexiconPath != "" {
		lex, err := LoadLexicon(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Sentiment = sentiment.New(lex.Positive, lex.Negative)
	} else {
		comp.Sentiment = sentiment.Default()
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stopwords = sl.Stopwords
	}

	return comp, nil
}

// Pipeline assembles the row pipeline from the loaded components.
func (c *Components) Pipeline() *autotag.Pipeline {
	return autotag.NewPipeline(c.Categories, entity.NewExtractor(), c.Sentiment)
}

func buildClassifier(tax *Taxonomy, fallback string) *classify.Classifier {
	if tax.Fallback != "" {
		fallback = tax.Fallback
	}
	c := classify.New(fallback)
	for _, cat := range tax.Categories {
		c.Add(cat.Name, cat.Keywords)
	}
	return c
}
