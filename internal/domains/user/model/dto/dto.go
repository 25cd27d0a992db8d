package dto

import (
	"bagpackers/internal/domains/user/model"
	gDto "bagpackers/shared/dto"
)

type UserResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	AuthProvider string `json:"auth_provider"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.AuthProvider = model.AuthProvider
	r.Metadata.FromModel(model.Metadata)
}
