package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/care-sa/booking/docs"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.Log)
	r.Use(mw.Recover)
	r.Use(mw.Cors)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)
		r.Get("/swagger/*", httpSwagger.Handler())

		// Gateways call these, not users.
		r.Group(func(r chi.Router) {
			r.Use(mw.AlrajhiIPWL)
			r.Post("/payments/callbacks/alrajhi", h.AlrajhiCallback)
		})
		r.Group(func(r chi.Router) {
			r.Use(mw.TamaraWebhookAuth)
			r.Post("/payments/callbacks/tamara", h.TamaraWebhook)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.CreateOrder)
				r.Get("/", h.Orders)
				r.Get("/{id}", h.Order)
				r.Post("/{id}/approve", h.ApproveOrder)
				r.Post("/{id}/disapprove", h.DisapproveOrder)
				r.Post("/{id}/complete", h.CompleteOrder)
				r.Post("/{id}/offer/verify", h.VerifyOffer)
				r.Get("/{id}/invoice", h.OrderInvoice)
			})

			r.Route("/availabilities", func(r chi.Router) {
				r.Post("/", h.CreateAvailability)
				r.Get("/{id}/slots", h.FreeSlots)
			})

			r.Route("/offers", func(r chi.Router) {
				r.Post("/", h.CreateOffer)
				r.Post("/{id}/activate", h.ActivateOffer)
			})
			r.Get("/vendors/{vendor_id}/offers", h.ActiveOffers)

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.Wallet)
				r.Get("/transactions", h.WalletTransactions)
				r.Post("/deposit", h.DepositWallet)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/wallet", h.PayWithWallet)
				r.Post("/alrajhi", h.CreateAlrajhiPage)
				r.Post("/tamara", h.CreateTamaraCheckout)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", h.Invoices)
				r.Get("/{id}", h.Invoice)
				r.Post("/{id}/cancel", h.CancelInvoice)
			})

			r.Post("/push-tokens", h.RegisterPushToken)
		})
	})

	return r
}
