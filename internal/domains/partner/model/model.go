package model

import "bagpackers/shared/model"

const (
	TableName  = "partners"
	EntityName = "partner"

	FieldID           = "id"
	FieldFullName     = "full_name"
	FieldRegion       = "region"
	FieldMobileNumber = "mobile_number"
	FieldStatus       = "status"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Partner struct {
	ID           string `db:"id"`
	FullName     string `db:"full_name"`
	Region       string `db:"region"`
	MobileNumber string `db:"mobile_number"`
	Address      string `db:"address"`
	Status       string `db:"status"`
	model.Metadata
}
