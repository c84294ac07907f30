package httpapi

import (
	"context"
	"crypto/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
)

// persistRecord stores one enriched record as a transaction row.
func persistRecord(ctx context.Context, st store.Store, rec autotag.Record, importID string) (store.Row, error) {
	row := store.Row{
		ID:       ulid.MustNew(ulid.Now(), rand.Reader).String(),
		ImportID: importID,
		Kind:     store.KindTransaction,
		Fields:   rec,
	}
	if err := st.PutRow(ctx, row); err != nil {
		return store.Row{}, err
	}
	return row, nil
}

type rowJSON struct {
	ID        string         `json:"id"`
	ImportID  string         `json:"import_id,omitempty"`
	Kind      string         `json:"kind"`
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"created_at"`
}

func toRowJSON(r store.Row) rowJSON {
	return rowJSON{
		ID:        r.ID,
		ImportID:  r.ImportID,
		Kind:      r.Kind,
		Fields:    r.Fields,
		CreatedAt: r.CreatedAt,
	}
}

func handleListRows(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Store == nil {
			httpError(w, http.StatusServiceUnavailable, "store_unavailable", "no store configured")
			return
		}
		f := store.Filter{
			Category:  r.URL.Query().Get("category"),
			Sentiment: r.URL.Query().Get("sentiment"),
			Kind:      r.URL.Query().Get("kind"),
			ImportID:  r.URL.Query().Get("import_id"),
			Limit:     parseLimit(r, 50, 500),
		}
		rows, err := deps.Store.ListRows(r.Context(), f)
		if err != nil {
			status, code := errStatus(err)
			httpError(w, status, code, "list rows: %v", err)
			return
		}
		out := make([]rowJSON, 0, len(rows))
		for _, row := range rows {
			out = append(out, toRowJSON(row))
		}
		writeJSON(w, http.StatusOK, map[string]any{"rows": out})
	}
}

func handleGetRow(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Store == nil {
			httpError(w, http.StatusServiceUnavailable, "store_unavailable", "no store configured")
			return
		}
		row, err := deps.Store.GetRow(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			status, code := errStatus(err)
			httpError(w, status, code, "get row: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, toRowJSON(row))
	}
}

func handleStats(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Store == nil {
			httpError(w, http.StatusServiceUnavailable, "store_unavailable", "no store configured")
			return
		}
		total, err := deps.Store.CountRows(r.Context())
		if err != nil {
			status, code := errStatus(err)
			httpError(w, status, code, "count rows: %v", err)
			return
		}
		byCat, err := deps.Store.CountByCategory(r.Context())
		if err != nil {
			status, code := errStatus(err)
			httpError(w, status, code, "count by category: %v", err)
			return
		}
		bySent, err := deps.Store.CountBySentiment(r.Context())
		if err != nil {
			status, code := errStatus(err)
			httpError(w, status, code, "count by sentiment: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"rows":       total,
			"categories": byCat,
			"sentiments": bySent,
		})
	}
}
