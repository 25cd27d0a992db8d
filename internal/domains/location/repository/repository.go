package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bagpackers/infras/otel"
	"bagpackers/infras/postgres"
	"bagpackers/internal/domains/location/model"
	gDto "bagpackers/shared/dto"
	gRepo "bagpackers/shared/repository"
)

type Location interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PartnerLocation, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PartnerLocation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Location {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PartnerLocation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
