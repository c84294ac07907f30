package autotag

import (
	"fmt"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/classify"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/entity"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
)

// Record is one unit of caller data, an open field→value mapping. The
// pipeline mutates the record it is given and returns the same map; it
// never copies.
type Record map[string]any

// DefaultTextField is the field the pipeline reads when the caller
// names none.
const DefaultTextField = "description"

// Fields the pipeline writes into records.
const (
	FieldCategory  = "ai_category"
	FieldEntities  = "ai_entities"
	FieldSentiment = "ai_sentiment"
	FieldCustomer  = "customer"
)

// FieldContentType is written by content tagging, never by the row
// pipeline; the two taxonomies stay separate.
const FieldContentType = "content_type"

// Pipeline orchestrates the enrichment flow over caller records:
// category classification → entity extraction → sentiment scoring,
// then derived-field promotion. All lookup tables are immutable after
// construction, so one pipeline serves any number of goroutines; only
// concurrent calls against the same record need caller-side care.
type Pipeline struct {
	categories *classify.Classifier
	entities   *entity.Extractor
	sentiment  *sentiment.Scorer
}

// NewPipeline creates a pipeline from the given components.
func NewPipeline(categories *classify.Classifier, entities *entity.Extractor, scorer *sentiment.Scorer) *Pipeline {
	return &Pipeline{
		categories: categories,
		entities:   entities,
		sentiment:  scorer,
	}
}

// Default wires a pipeline over the built-in tables and lexicons.
func Default() *Pipeline {
	return NewPipeline(DefaultCategories(), entity.NewExtractor(), sentiment.Default())
}

// Categories exposes the category classifier for standalone calls.
func (p *Pipeline) Categories() *classify.Classifier { return p.categories }

// Entities exposes the entity extractor for standalone calls.
func (p *Pipeline) Entities() *entity.Extractor { return p.entities }

// Sentiment exposes the sentiment scorer for standalone calls.
func (p *Pipeline) Sentiment() *sentiment.Scorer { return p.sentiment }

// ProcessRow enriches one record in place and returns the same record.
// It reads the named text field ("" means "description"), writes
// ai_category, ai_entities and ai_sentiment, then promotes an extracted
// person into customer when that field is unset. All three result
// fields are always written; ai_entities may be an empty map.
func (p *Pipeline) ProcessRow(rec Record, textField string) Record {
	if textField == "" {
		textField = DefaultTextField
	}
	text := fieldText(rec, textField)

	rec[FieldCategory] = p.categories.Classify(text)

	ents := p.entities.Extract(text)
	rec[FieldEntities] = ents

	rec[FieldSentiment] = p.sentiment.Analyze(text)

	promoteCustomer(rec, ents)
	return rec
}

// ProcessBatch enriches records sequentially in input order and returns
// the same slice. Records are independent; there is no per-record
// containment.
func (p *Pipeline) ProcessBatch(recs []Record, textField string) []Record {
	for _, rec := range recs {
		p.ProcessRow(rec, textField)
	}
	return recs
}

// ClassifyBatch writes only ai_category into each record, in place.
func (p *Pipeline) ClassifyBatch(recs []Record, textField string) []Record {
	if textField == "" {
		textField = DefaultTextField
	}
	for _, rec := range recs {
		rec[FieldCategory] = p.categories.Classify(fieldText(rec, textField))
	}
	return recs
}

// ExtractBatch writes only ai_entities into each record, applying the
// person→customer promotion.
func (p *Pipeline) ExtractBatch(recs []Record, textField string) []Record {
	if textField == "" {
		textField = DefaultTextField
	}
	for _, rec := range recs {
		ents := p.entities.Extract(fieldText(rec, textField))
		rec[FieldEntities] = ents
		promoteCustomer(rec, ents)
	}
	return recs
}

// promoteCustomer copies an extracted person into the customer field.
// One-way: an existing customer value is never overwritten, whatever it
// holds.
func promoteCustomer(rec Record, ents map[string]any) {
	person, ok := ents["person"]
	if !ok {
		return
	}
	if _, exists := rec[FieldCustomer]; !exists {
		rec[FieldCustomer] = person
	}
}

// fieldText reads a record field leniently: missing or nil is empty,
// strings pass through, anything else renders with %v.
func fieldText(rec Record, field string) string {
	switch v := rec[field].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
