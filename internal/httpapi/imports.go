package httpapi

import (
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/internal/rowio"
)

// handleImport accepts a CSV upload — either a raw body or a multipart
// "file" part — enriches every row, persists the batch under one
// import ID, and returns the summary.
func handleImport(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Store == nil {
			httpError(w, http.StatusServiceUnavailable, "store_unavailable", "no store configured")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

		body, err := importBody(r)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request", "read upload: %v", err)
			return
		}
		defer body.Close()

		recs, err := rowio.ReadCSV(body)
		if err != nil {
			status, code := errStatus(err)
			httpError(w, status, code, "parse csv: %v", err)
			return
		}
		if len(recs) == 0 {
			httpError(w, http.StatusBadRequest, "invalid_request", "csv contains no data rows")
			return
		}

		importID := uuid.New().String()
		enricher := rowio.NewEnricher(rowio.Options{
			Pipeline: deps.Pipeline,
			Store:    deps.Store,
		})
		sum, err := enricher.Enrich(r.Context(), recs, importID)
		if err != nil {
			status, code := errStatus(err)
			httpError(w, status, code, "enrich import: %v", err)
			return
		}

		deps.Logger.Info("import complete", "import_id", importID, "rows", sum.Rows)
		writeJSON(w, http.StatusOK, map[string]any{
			"import_id":  importID,
			"rows":       sum.Rows,
			"categories": sum.Categories,
		})
	}
}

// importBody picks the CSV stream out of the request: the "file" part
// for multipart uploads, the raw body otherwise.
func importBody(r *http.Request) (io.ReadCloser, error) {
	ct := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err == nil && strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxBodySize); err != nil {
			return nil, err
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return r.Body, nil
}
