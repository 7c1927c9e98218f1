package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter wires every route of the HTTP API.
// Audio files are served from audioDir when it is set.
func NewRouter(words *WordHandler, practice *PracticeHandler, backup *BackupHandler, audioDir string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(Logging(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", words.Stats)
		r.Delete("/data", words.Clear)

		r.Route("/words", func(r chi.Router) {
			r.Get("/", words.List)
			r.Post("/", words.Add)
			r.Post("/import", words.Import)
			r.Delete("/{word}", words.Delete)
			r.Put("/{word}/sentence", words.SetSentence)
		})

		r.Route("/practice", func(r chi.Router) {
			r.Post("/", practice.Start)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", practice.Get)
				r.Post("/submit", practice.Submit)
				r.Post("/skip", practice.Skip)
				r.Post("/next", practice.Next)
				r.Post("/replay", practice.Replay)
				r.Post("/replay-example", practice.ReplayExample)
				r.Post("/end", practice.End)
				r.Post("/retry-missed", practice.RetryMissed)
			})
		})

		r.Get("/backup", backup.Export)
		r.Post("/backup", backup.Import)
	})

	if audioDir != "" {
		r.Handle("/audio/*", http.StripPrefix("/audio/", http.FileServer(http.Dir(audioDir))))
	}

	return r
}
