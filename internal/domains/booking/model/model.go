package model

import (
	"time"

	"bagpackers/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldRegion       = "region"
	FieldCity         = "city"
	FieldNumberOfBags = "number_of_bags"
	FieldDropOffDate  = "drop_off_date"
	FieldPickupDate   = "pickup_date"
	FieldTotalCost    = "total_cost"
	FieldStatus       = "status"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	Region       string    `db:"region"`
	City         string    `db:"city"`
	NumberOfBags int       `db:"number_of_bags"`
	DropOffDate  time.Time `db:"drop_off_date"`
	PickupDate   time.Time `db:"pickup_date"`
	TotalCost    string    `db:"total_cost"`
	Status       string    `db:"status"`
	model.Metadata
}
