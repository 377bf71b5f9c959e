package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"grandromeo/infras/otel"
	"grandromeo/infras/postgres"
	"grandromeo/internal/domains/staff/model"
	gDto "grandromeo/shared/dto"
	gRepo "grandromeo/shared/repository"
)

type Staff interface {
	Insert(ctx context.Context, model model.Staff) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Staff, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Staff, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Staff]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Staff {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Staff](model.EntityName, model.TableName, model.FieldStaffID, db, otel),
		db:         db,
		otel:       otel,
	}
}
