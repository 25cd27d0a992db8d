package model

import "bagpackers/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPassword  = "password"

	AuthProviderLocal = "local"
)

type User struct {
	ID           string `db:"id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Email        string `db:"email"`
	Password     string `db:"password"`
	AuthProvider string `db:"auth_provider"`
	model.Metadata
}
