package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/lljaworski/invoicing/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors, mw.Metrics)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.Handle("/metrics", promhttp.Handler())
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/invoices", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Invoices)
			r.Post("/", h.CreateInvoice)
			r.Get("/next-number", h.NextNumber)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Invoice)
				r.Put("/", h.UpdateInvoice)
				r.Delete("/", h.DeleteInvoice)
				r.Post("/issue", h.IssueInvoice)
				r.Post("/pay", h.MarkInvoicePaid)
				r.Post("/cancel", h.CancelInvoice)
				r.Get("/totals/validation", h.ValidateTotals)
				r.Get("/vat-breakdown", h.VatBreakdown)
			})
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/number-format", h.NumberFormat)
			r.Get("/number-format/parse", h.ParseNumber)

			r.Group(func(r chi.Router) {
				r.Use(mw.APIKeyAuth)
				r.Put("/number-format", h.SetNumberFormat)
			})
		})
	})

	return mux
}
