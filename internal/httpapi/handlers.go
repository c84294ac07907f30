package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
)

type textRequest struct {
	Text string `json:"text"`
}

// handleText adapts the standalone classifiers: {text} in, the
// classifier's own result shape out. Empty text is valid input and
// yields the no-signal result.
func handleText(fn func(text string) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request", "invalid request body: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, fn(req.Text))
	}
}

type enrichRequest struct {
	Record    autotag.Record `json:"record"`
	TextField string         `json:"text_field"`
}

func handleEnrich(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		var req enrichRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request", "invalid request body: %v", err)
			return
		}
		if req.Record == nil {
			httpError(w, http.StatusBadRequest, "invalid_request", "record is required")
			return
		}

		rec := deps.Pipeline.ProcessRow(req.Record, req.TextField)

		if r.URL.Query().Get("persist") == "1" {
			if deps.Store == nil {
				httpError(w, http.StatusServiceUnavailable, "store_unavailable", "no store configured")
				return
			}
			row, err := persistRecord(r.Context(), deps.Store, rec, "")
			if err != nil {
				status, code := errStatus(err)
				httpError(w, status, code, "persist row: %v", err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"record": rec, "row_id": row.ID})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"record": rec})
	}
}

type enrichBatchRequest struct {
	Records   []autotag.Record `json:"records"`
	TextField string           `json:"text_field"`
}

func handleEnrichBatch(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		var req enrichBatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request", "invalid request body: %v", err)
			return
		}
		if len(req.Records) == 0 {
			httpError(w, http.StatusBadRequest, "invalid_request", "records is required")
			return
		}
		// A JSON null element decodes to a nil map the pipeline cannot
		// write into.
		for i, rec := range req.Records {
			if rec == nil {
				httpError(w, http.StatusBadRequest, "invalid_request", "records[%d] is null", i)
				return
			}
		}

		recs := deps.Pipeline.ProcessBatch(req.Records, req.TextField)
		writeJSON(w, http.StatusOK, map[string]any{"records": recs})
	}
}

func parseLimit(r *http.Request, def, max int) int {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}
