package router

import (
	"github.com/go-chi/chi/v5"

	"bagpackers/internal/handlers/auth"
	"bagpackers/internal/handlers/booking"
	"bagpackers/internal/handlers/partner"
	"bagpackers/internal/handlers/payment"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Payment payment.Handler
	Partner partner.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Partner.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
