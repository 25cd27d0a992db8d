package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bagpackers/infras/otel"
	"bagpackers/infras/postgres"
	"bagpackers/internal/domains/partner/model"
	gRepo "bagpackers/shared/repository"
)

type Partner interface {
	Insert(ctx context.Context, model model.Partner) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Partner]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Partner {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Partner](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
