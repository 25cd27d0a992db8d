package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"bagpackers/config"
	"bagpackers/infras/otel"
	"bagpackers/internal/domains/booking/model/dto"
	"bagpackers/internal/domains/booking/repository"
	locationModel "bagpackers/internal/domains/location/model"
	locationRepo "bagpackers/internal/domains/location/repository"
	"bagpackers/shared"
	"bagpackers/shared/cache"
	"bagpackers/shared/constant"
	gDto "bagpackers/shared/dto"
	"bagpackers/shared/failure"
)

const (
	// CacheMyBookings is shared with the payment service, which invalidates
	// booking lists after a confirmation.
	CacheMyBookings = "booking:mybookings"

	cacheCountBooking = "booking:count"
	cacheGetLocations = "booking:locations"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetLocations(ctx context.Context, region, city string) (dto.GetLocationsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	locationRepo locationRepo.Location
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Booking, locationRepo locationRepo.Location, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		locationRepo: locationRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return res, failure.Unauthorized("missing authenticated user") // nolint:wrapcheck
	}

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("booking request rejected")

		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, CacheMyBookings)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(CacheMyBookings, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save bookings cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return total, nil
}

func (s *serviceImpl) GetLocations(ctx context.Context, region, city string) (res dto.GetLocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLocations")
	defer scope.End()
	defer scope.TraceIfError(err)

	if region == "" {
		return res, failure.BadRequestFromString("region is required") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetLocations, region, city)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for locations")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    locationModel.FieldRegion,
				Operator: gDto.FilterOperatorEq,
				Value:    region,
				Table:    locationModel.TableName,
			},
		},
	}

	if city != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    locationModel.FieldCity,
			Operator: gDto.FilterOperatorEq,
			Value:    city,
			Table:    locationModel.TableName,
		})
	}

	models, err := s.locationRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get partner locations")

		return res, fmt.Errorf("failed to get partner locations: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save locations cache")
		}
	}()

	return res, nil
}
