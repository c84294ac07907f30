package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/internalerr"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
)

// Store is an in-memory implementation of store.Store for tests and
// the no-database serve mode.
type Store struct {
	mu   sync.RWMutex
	rows map[string]store.Row
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{rows: make(map[string]store.Row)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// PutRow inserts or overwrites a row, keyed by ID.
func (s *Store) PutRow(ctx context.Context, r store.Row) error {
	if r.ID == "" {
		return fmt.Errorf("row has no id: %w", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := s.rows[r.ID]; ok {
		r.CreatedAt = existing.CreatedAt
	} else if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	s.rows[r.ID] = copyRow(r)
	return nil
}

// GetRow returns a row by ID.
func (s *Store) GetRow(ctx context.Context, id string) (store.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.rows[id]; ok {
		return copyRow(r), nil
	}
	return store.Row{}, fmt.Errorf("row %q: %w", id, internalerr.ErrNotFound)
}

// ListRows returns matching rows, newest first.
func (s *Store) ListRows(ctx context.Context, f store.Filter) ([]store.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []store.Row
	for _, r := range s.rows {
		if matches(r, f) {
			results = append(results, copyRow(r))
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID > results[j].ID
	})

	if f.Limit > 0 && len(results) > f.Limit {
		results = results[:f.Limit]
	}
	return results, nil
}

// ReplaceRow updates an existing row, keeping its creation time.
func (s *Store) ReplaceRow(ctx context.Context, r store.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.rows[r.ID]
	if !ok {
		return fmt.Errorf("row %q: %w", r.ID, internalerr.ErrNotFound)
	}

	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now().UTC()
	s.rows[r.ID] = copyRow(r)
	return nil
}

// CountRows returns the total number of stored rows.
func (s *Store) CountRows(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.rows)), nil
}

// CountByCategory returns row counts keyed by ai_category. Rows
// without a category are excluded.
func (s *Store) CountByCategory(ctx context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, r := range s.rows {
		cat, _ := store.Labels(r.Fields)
		if cat == "" {
			continue
		}
		counts[cat]++
	}
	return counts, nil
}

// CountBySentiment returns row counts keyed by sentiment label. Rows
// without one are excluded.
func (s *Store) CountBySentiment(ctx context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, r := range s.rows {
		_, label := store.Labels(r.Fields)
		if label == "" {
			continue
		}
		counts[label]++
	}
	return counts, nil
}

func matches(r store.Row, f store.Filter) bool {
	if f.Kind != "" && r.Kind != f.Kind {
		return false
	}
	if f.ImportID != "" && r.ImportID != f.ImportID {
		return false
	}
	cat, label := store.Labels(r.Fields)
	if f.Category != "" && cat != f.Category {
		return false
	}
	if f.Sentiment != "" && label != f.Sentiment {
		return false
	}
	return true
}

// copyRow clones a row one field-map level deep, plus nested maps such
// as ai_entities.
func copyRow(r store.Row) store.Row {
	fields := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		if nested, ok := v.(map[string]any); ok {
			inner := make(map[string]any, len(nested))
			for nk, nv := range nested {
				inner[nk] = nv
			}
			fields[k] = inner
			continue
		}
		fields[k] = v
	}

	return store.Row{
		ID:        r.ID,
		ImportID:  r.ImportID,
		Kind:      r.Kind,
		Fields:    fields,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
