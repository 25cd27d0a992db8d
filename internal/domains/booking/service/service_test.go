package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bagpackers/config"
	"bagpackers/infras/otel/mocks"
	bookingMocks "bagpackers/internal/domains/booking/mocks"
	"bagpackers/internal/domains/booking/model"
	"bagpackers/internal/domains/booking/model/dto"
	"bagpackers/internal/domains/booking/service"
	locationMocks "bagpackers/internal/domains/location/mocks"
	locationModel "bagpackers/internal/domains/location/model"
	cacheMocks "bagpackers/shared/cache/mocks"
	"bagpackers/shared/constant"
	gDto "bagpackers/shared/dto"
	"bagpackers/shared/failure"
	"bagpackers/shared/timezone"
)

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *locationMocks.MockLocation, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockLocationRepo := locationMocks.NewMockLocation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockLocationRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockLocationRepo, mockCache
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func datePlusDays(days int) string {
	return timezone.Now().AddDate(0, 0, days).Format(constant.DateOnlyFormat)
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		Region:       "Karnataka",
		City:         "Bengaluru",
		NumberOfBags: 2,
		DropOffDate:  datePlusDays(1),
		PickupDate:   datePlusDays(3),
	}

	tests := []struct {
		name       string
		ctx        context.Context
		req        dto.CreateBookingRequest
		setupMock  func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantErr    error
		wantAnyErr bool
	}{
		{
			name: "successful creation",
			ctx:  userContext("user-1"),
			req:  validReq,
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, "user-1", booking.UserID)
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, "60.00", booking.TotalCost)
						assert.NotEmpty(t, booking.ID)

						return nil
					})

				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name:       "missing authenticated user",
			ctx:        context.Background(),
			req:        validReq,
			wantAnyErr: true,
		},
		{
			name: "zero bags",
			ctx:  userContext("user-1"),
			req: dto.CreateBookingRequest{
				Region:       "Karnataka",
				City:         "Bengaluru",
				NumberOfBags: 0,
				DropOffDate:  datePlusDays(1),
				PickupDate:   datePlusDays(3),
			},
			wantErr: dto.ErrBagCount,
		},
		{
			name: "negative bags",
			ctx:  userContext("user-1"),
			req: dto.CreateBookingRequest{
				Region:       "Karnataka",
				City:         "Bengaluru",
				NumberOfBags: -3,
				DropOffDate:  datePlusDays(1),
				PickupDate:   datePlusDays(3),
			},
			wantErr: dto.ErrBagCount,
		},
		{
			name: "unparseable drop-off date",
			ctx:  userContext("user-1"),
			req: dto.CreateBookingRequest{
				Region:       "Karnataka",
				City:         "Bengaluru",
				NumberOfBags: 2,
				DropOffDate:  "not-a-date",
				PickupDate:   datePlusDays(3),
			},
			wantErr: dto.ErrInvalidDate,
		},
		{
			name: "drop-off in the past",
			ctx:  userContext("user-1"),
			req: dto.CreateBookingRequest{
				Region:       "Karnataka",
				City:         "Bengaluru",
				NumberOfBags: 2,
				DropOffDate:  datePlusDays(-1),
				PickupDate:   datePlusDays(3),
			},
			wantErr: dto.ErrDropOffInPast,
		},
		{
			name: "pickup equal to drop-off",
			ctx:  userContext("user-1"),
			req: dto.CreateBookingRequest{
				Region:       "Karnataka",
				City:         "Bengaluru",
				NumberOfBags: 2,
				DropOffDate:  datePlusDays(2),
				PickupDate:   datePlusDays(2),
			},
			wantErr: dto.ErrPickupNotAfterDropOff,
		},
		{
			name: "pickup before drop-off",
			ctx:  userContext("user-1"),
			req: dto.CreateBookingRequest{
				Region:       "Karnataka",
				City:         "Bengaluru",
				NumberOfBags: 2,
				DropOffDate:  datePlusDays(3),
				PickupDate:   datePlusDays(1),
			},
			wantErr: dto.ErrPickupNotAfterDropOff,
		},
		{
			name: "repository error",
			ctx:  userContext("user-1"),
			req:  validReq,
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockCache := newService(t)

			if tt.setupMock != nil {
				tt.setupMock(mockRepo, mockCache)
			}

			res, err := svc.Create(tt.ctx, tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 400, failure.GetCode(err))
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, model.StatusPending, res.Status)
				assert.Equal(t, "60.00", res.TotalCost)
			}
		})
	}
}

func TestBookingService_CreateTodayDropOffAllowed(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.Create(userContext("user-1"), dto.CreateBookingRequest{
		Region:       "Karnataka",
		City:         "Bengaluru",
		NumberOfBags: 1,
		DropOffDate:  datePlusDays(0),
		PickupDate:   datePlusDays(1),
	})

	assert.NoError(t, err)
	assert.Equal(t, "30.00", res.TotalCost)
}

func TestBookingService_GetMine(t *testing.T) {
	ownerFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    "user-1",
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{Page: 1, Limit: 10}

	tests := []struct {
		name      string
		setupMock func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, fetched from db",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						{
							ID:           "booking-1",
							UserID:       "user-1",
							Region:       "Karnataka",
							City:         "Bengaluru",
							NumberOfBags: 2,
							DropOffDate:  timezone.Now(),
							PickupDate:   timezone.Now().Add(48 * time.Hour),
							TotalCost:    "60.00",
							Status:       model.StatusPending,
						},
					}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockCache := newService(t)

			tt.setupMock(mockRepo, mockCache)

			res, err := svc.GetMine(context.Background(), params, ownerFilter)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
		})
	}
}

func TestBookingService_GetLocations(t *testing.T) {
	tests := []struct {
		name      string
		region    string
		city      string
		setupMock func(repo *locationMocks.MockLocation, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
		wantCount int
	}{
		{
			name:     "region required",
			region:   "",
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:   "locations by region",
			region: "Karnataka",
			setupMock: func(repo *locationMocks.MockLocation, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]locationModel.PartnerLocation{
						{ID: "loc-1", Region: "Karnataka", City: "Bengaluru", AvailableSpaces: 12},
						{ID: "loc-2", Region: "Karnataka", City: "Mysuru", AvailableSpaces: 4},
					}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantCount: 2,
		},
		{
			name:   "cache hit",
			region: "Karnataka",
			city:   "Bengaluru",
			setupMock: func(repo *locationMocks.MockLocation, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "repository error",
			region: "Karnataka",
			setupMock: func(repo *locationMocks.MockLocation, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockLocationRepo, mockCache := newService(t)

			if tt.setupMock != nil {
				tt.setupMock(mockLocationRepo, mockCache)
			}

			res, err := svc.GetLocations(context.Background(), tt.region, tt.city)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Locations, tt.wantCount)
		})
	}
}
