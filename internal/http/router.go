package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rifasve/rifas/internal/auth"
	authHandler "github.com/rifasve/rifas/internal/http/auth"
	customerHandler "github.com/rifasve/rifas/internal/http/customer"
	raffleHandler "github.com/rifasve/rifas/internal/http/raffle"
	ticketHandler "github.com/rifasve/rifas/internal/http/ticket"
)

func New(
	sessions *auth.Service,
	allowedOrigins []string,
	authV1 *authHandler.Handler,
	rafflesV1 *raffleHandler.Handler,
	ticketsV1 *ticketHandler.Handler,
	customersV1 *customerHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{auth.RefreshHeader, "Content-Disposition"},
		AllowCredentials: false,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", authV1.Routes)

		// Everything below requires a live operator session.
		r.Group(func(r chi.Router) {
			r.Use(sessions.Middleware)

			r.Route("/raffles", func(r chi.Router) {
				rafflesV1.Routes(r)
				r.Route("/{id}/tickets", ticketsV1.RaffleRoutes)
			})

			r.Route("/tickets", ticketsV1.Routes)

			r.Route("/customers", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				customersV1.Routes(r)
			})
		})
	})

	return router
}
