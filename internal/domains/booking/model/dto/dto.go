package dto

import (
	"time"

	"github.com/google/uuid"

	"bagpackers/internal/domains/booking/model"
	locationModel "bagpackers/internal/domains/location/model"
	"bagpackers/shared"
	"bagpackers/shared/constant"
	gDto "bagpackers/shared/dto"
	"bagpackers/shared/failure"
	gModel "bagpackers/shared/model"
	"bagpackers/shared/money"
	"bagpackers/shared/timezone"
)

// pricePerBagMinor is the flat storage rate per bag in paise (30.00).
const pricePerBagMinor int64 = 3000

var (
	ErrInvalidDate           = failure.BadRequestFromString("dates must use the YYYY-MM-DD format")
	ErrBagCount              = failure.BadRequestFromString("number of bags must be a positive integer")
	ErrDropOffInPast         = failure.BadRequestFromString("drop-off date cannot be in the past")
	ErrPickupNotAfterDropOff = failure.BadRequestFromString("pickup date must be after the drop-off date")
)

type CreateBookingRequest struct {
	Region       string `json:"region"         validate:"required,max=100"`
	City         string `json:"city"           validate:"required,max=100"`
	NumberOfBags int    `json:"number_of_bags" validate:"required"`
	DropOffDate  string `json:"drop_off_date"  validate:"required"`
	PickupDate   string `json:"pickup_date"    validate:"required"`
}

// ToModel applies the booking business rules: positive bag count, parseable
// calendar dates, drop-off not in the past and pickup strictly after drop-off.
// Date comparisons are calendar-day comparisons in the app timezone.
func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	if c.NumberOfBags <= 0 {
		return model.Booking{}, ErrBagCount
	}

	dropOff, err := time.ParseInLocation(constant.DateOnlyFormat, c.DropOffDate, timezone.GetLocation())
	if err != nil {
		return model.Booking{}, ErrInvalidDate
	}

	pickup, err := time.ParseInLocation(constant.DateOnlyFormat, c.PickupDate, timezone.GetLocation())
	if err != nil {
		return model.Booking{}, ErrInvalidDate
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())

	if dropOff.Before(today) {
		return model.Booking{}, ErrDropOffInPast
	}

	if !pickup.After(dropOff) {
		return model.Booking{}, ErrPickupNotAfterDropOff
	}

	return model.Booking{
		ID:           uuid.NewString(),
		UserID:       user,
		Region:       c.Region,
		City:         c.City,
		NumberOfBags: c.NumberOfBags,
		DropOffDate:  dropOff,
		PickupDate:   pickup,
		TotalCost:    money.FromMinorUnits(int64(c.NumberOfBags) * pricePerBagMinor),
		Status:       model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Region       string `json:"region"`
	City         string `json:"city"`
	NumberOfBags int    `json:"number_of_bags"`
	DropOffDate  string `json:"drop_off_date"`
	PickupDate   string `json:"pickup_date"`
	TotalCost    string `json:"total_cost"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Region = model.Region
	r.City = model.City
	r.NumberOfBags = model.NumberOfBags
	r.DropOffDate = model.DropOffDate.Format(constant.DateOnlyFormat)
	r.PickupDate = model.PickupDate.Format(constant.DateOnlyFormat)
	r.TotalCost = model.TotalCost
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type LocationResponse struct {
	ID              string  `json:"id"`
	PartnerID       string  `json:"partner_id"`
	Region          string  `json:"region"`
	City            string  `json:"city"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	AvailableSpaces int     `json:"available_spaces"`
	PricePerBag     string  `json:"price_per_bag"`
}

func (r *LocationResponse) FromModel(model locationModel.PartnerLocation) {
	r.ID = model.ID
	r.PartnerID = model.PartnerID
	r.Region = model.Region
	r.City = model.City
	r.Latitude = model.Latitude
	r.Longitude = model.Longitude
	r.AvailableSpaces = model.AvailableSpaces
	r.PricePerBag = model.PricePerBag
}

type GetLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

func (r *GetLocationsResponse) FromModels(models []locationModel.PartnerLocation) {
	r.Locations = make([]LocationResponse, len(models))
	for i, mod := range models {
		r.Locations[i].FromModel(mod)
	}
}
