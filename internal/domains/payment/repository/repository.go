package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"grandromeo/infras/otel"
	"grandromeo/infras/postgres"
	"grandromeo/internal/domains/payment/model"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/logger"
	gRepo "grandromeo/shared/repository"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	SumPaidSince(ctx context.Context, since string) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldPaymentID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumPaidSince totals amount_paid for payments dated on or after since.
// Mirrors the revenue figure on the dashboard, which counts every recorded
// payment regardless of its status.
func (r *repositoryImpl) SumPaidSince(ctx context.Context, since string) (total float64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.SumPaidSince")
	defer scope.End()

	query := fmt.Sprintf("SELECT COALESCE(SUM(amount_paid), 0) FROM %s WHERE payment_date >= $1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &total, query, since); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}

	return total, nil
}
