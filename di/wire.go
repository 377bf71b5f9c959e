//go:build wireinject
// +build wireinject

package di

import (
	"grandromeo/config"
	"grandromeo/infras/jwt"
	"grandromeo/infras/otel"
	"grandromeo/infras/postgres"
	"grandromeo/infras/redis"
	"grandromeo/infras/s3"
	"grandromeo/permissions"
	"grandromeo/shared/cache"
	"grandromeo/transport/http"
	"grandromeo/transport/http/middleware"
	"grandromeo/transport/http/router"

	"github.com/google/wire"

	authService "grandromeo/internal/domains/auth/service"
	dashboardService "grandromeo/internal/domains/dashboard/service"
	guestRepository "grandromeo/internal/domains/guest/repository"
	guestService "grandromeo/internal/domains/guest/service"
	paymentRepository "grandromeo/internal/domains/payment/repository"
	paymentService "grandromeo/internal/domains/payment/service"
	reservationRepository "grandromeo/internal/domains/reservation/repository"
	reservationService "grandromeo/internal/domains/reservation/service"
	roomRepository "grandromeo/internal/domains/room/repository"
	roomService "grandromeo/internal/domains/room/service"
	staffRepository "grandromeo/internal/domains/staff/repository"
	staffService "grandromeo/internal/domains/staff/service"
	userRepository "grandromeo/internal/domains/user/repository"
	userService "grandromeo/internal/domains/user/service"

	authHandler "grandromeo/internal/handlers/auth"
	dashboardHandler "grandromeo/internal/handlers/dashboard"
	guestHandler "grandromeo/internal/handlers/guest"
	paymentHandler "grandromeo/internal/handlers/payment"
	reservationHandler "grandromeo/internal/handlers/reservation"
	roomHandler "grandromeo/internal/handlers/room"
	staffHandler "grandromeo/internal/handlers/staff"
	userHandler "grandromeo/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomDomain,
	staffDomain,
	reservationDomain,
	paymentDomain,
	userDomain,
	authDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	dashboardHandler.New,
	guestHandler.New,
	paymentHandler.New,
	reservationHandler.New,
	roomHandler.New,
	staffHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
