//go:build wireinject
// +build wireinject

package di

import (
	"bagpackers/config"
	"bagpackers/infras/jwt"
	"bagpackers/infras/kafka"
	"bagpackers/infras/otel"
	"bagpackers/infras/postgres"
	"bagpackers/infras/razorpay"
	"bagpackers/infras/redis"
	"bagpackers/shared/cache"
	"bagpackers/transport/http"
	"bagpackers/transport/http/middleware"
	"bagpackers/transport/http/router"

	"github.com/google/wire"

	authService "bagpackers/internal/domains/auth/service"
	bookingRepository "bagpackers/internal/domains/booking/repository"
	bookingService "bagpackers/internal/domains/booking/service"
	locationRepository "bagpackers/internal/domains/location/repository"
	partnerRepository "bagpackers/internal/domains/partner/repository"
	partnerService "bagpackers/internal/domains/partner/service"
	paymentRepository "bagpackers/internal/domains/payment/repository"
	paymentService "bagpackers/internal/domains/payment/service"
	userRepository "bagpackers/internal/domains/user/repository"
	authHandler "bagpackers/internal/handlers/auth"
	bookingHandler "bagpackers/internal/handlers/booking"
	partnerHandler "bagpackers/internal/handlers/partner"
	paymentHandler "bagpackers/internal/handlers/payment"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	razorpay.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	locationRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var partnerDomain = wire.NewSet(
	partnerRepository.New,
	partnerService.New,
)

var domains = wire.NewSet(
	authDomain,
	bookingDomain,
	paymentDomain,
	partnerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	partnerHandler.New,
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
