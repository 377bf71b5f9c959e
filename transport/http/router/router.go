package router

import (
	"grandromeo/internal/handlers/auth"
	"grandromeo/internal/handlers/dashboard"
	"grandromeo/internal/handlers/guest"
	"grandromeo/internal/handlers/payment"
	"grandromeo/internal/handlers/reservation"
	"grandromeo/internal/handlers/room"
	"grandromeo/internal/handlers/staff"
	"grandromeo/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Dashboard   dashboard.Handler
	Guest       guest.Handler
	Payment     payment.Handler
	Reservation reservation.Handler
	Room        room.Handler
	Staff       staff.Handler
	User        user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
