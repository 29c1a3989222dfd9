package rest

import (
	"NewBostonBank/internal/core/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter wires the bank handlers and a health check into a chi router.
func NewRouter(svc ports.BankService, baseLogger *zerolog.Logger) http.Handler {
	h := NewBankHandler(svc, baseLogger)

	r := chi.NewRouter()
	r.Use(RequestLogger(baseLogger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/banks", func(r chi.Router) {
		r.Get("/", h.GetBanks)
		r.Post("/", h.AddBank)
		r.Patch("/", h.UpdateBank)
		r.Get("/{accountNumber}", h.GetBank)
		r.Delete("/{accountNumber}", h.DeleteBank)
	})

	return r
}
