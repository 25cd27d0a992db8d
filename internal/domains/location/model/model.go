package model

import "bagpackers/shared/model"

const (
	TableName  = "partner_locations"
	EntityName = "partner location"

	FieldID              = "id"
	FieldPartnerID       = "partner_id"
	FieldRegion          = "region"
	FieldCity            = "city"
	FieldAvailableSpaces = "available_spaces"
)

type PartnerLocation struct {
	ID              string  `db:"id"`
	PartnerID       string  `db:"partner_id"`
	Region          string  `db:"region"`
	City            string  `db:"city"`
	Latitude        float64 `db:"latitude"`
	Longitude       float64 `db:"longitude"`
	AvailableSpaces int     `db:"available_spaces"`
	PricePerBag     string  `db:"price_per_bag"`
	model.Metadata
}
