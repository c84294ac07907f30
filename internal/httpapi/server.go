// Package httpapi exposes the enrichment pipeline over HTTP. The
// server is a host around the pure library: it validates request
// shapes, calls the pipeline, and maps sentinel errors to statuses.
// Nothing here makes an outbound call.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/classify"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
)

const maxBodySize = 10 << 20 // 10MB

// Deps wires the handler. Pipeline and ContentTypes are required;
// Store may be nil, which turns the persistence endpoints into 503s.
// An empty Token disables bearer auth.
type Deps struct {
	Pipeline     *autotag.Pipeline
	ContentTypes *classify.Classifier
	Store        store.Store
	Logger       *slog.Logger
	Token        string
}

// NewHandler builds the router. All /v1 routes sit behind the optional
// bearer auth; /healthz does not.
func NewHandler(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLog(deps.Logger))

	r.Get("/healthz", handleHealth(deps))

	r.Route("/v1", func(r chi.Router) {
		r.Use(bearerAuth(deps.Token))

		r.Post("/enrich", handleEnrich(deps))
		r.Post("/enrich/batch", handleEnrichBatch(deps))
		r.Post("/classify/category", handleText(func(text string) any {
			return map[string]string{"category": deps.Pipeline.Categories().Classify(text)}
		}))
		r.Post("/classify/content-type", handleText(func(text string) any {
			return map[string]string{"content_type": deps.ContentTypes.Classify(text)}
		}))
		r.Post("/sentiment", handleText(func(text string) any {
			return deps.Pipeline.Sentiment().Analyze(text)
		}))
		r.Post("/entities", handleText(func(text string) any {
			return map[string]any{"entities": deps.Pipeline.Entities().Extract(text)}
		}))
		r.Post("/explain", handleText(func(text string) any {
			return deps.Pipeline.Explain(text)
		}))

		r.Post("/imports", handleImport(deps))
		r.Get("/rows", handleListRows(deps))
		r.Get("/rows/{id}", handleGetRow(deps))
		r.Get("/stats", handleStats(deps))
	})

	return r
}

func handleHealth(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		if deps.Store != nil {
			if _, err := deps.Store.CountRows(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
					"store":  err.Error(),
				})
				return
			}
		}
		writeJSON(w, http.StatusOK, status)
	}
}
