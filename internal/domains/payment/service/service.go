package service

import (
	"context"
	"fmt"

	"grandromeo/config"
	"grandromeo/infras/otel"
	"grandromeo/internal/domains/payment/model"
	"grandromeo/internal/domains/payment/model/dto"
	"grandromeo/internal/domains/payment/repository"
	reservationModel "grandromeo/internal/domains/reservation/model"
	"grandromeo/shared"
	"grandromeo/shared/cache"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPayment    = "payment:get"
	cacheGetAllPayment = "payment:gets"
	cacheCountPayment  = "payment:count"
)

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	GetByReservation(ctx context.Context, reservationID string) (dto.GetPaymentsResponse, error)
	Update(ctx context.Context, req dto.UpdatePaymentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type reservationChecker interface {
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type serviceImpl struct {
	repo         repository.Payment
	reservations reservationChecker
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Payment, reservations reservationChecker, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:         repo,
		reservations: reservations,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create records a payment against an existing reservation. The reservation
// status is left alone: moving a 'Pending Payment' reservation forward is a
// separate, manual step.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.reservations.Exist(ctx, shared.FilterByID(req.ReservationID, reservationModel.FieldReservationID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return res, fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	payment := req.ToModel(user)

	if err = s.repo.Insert(ctx, payment); err != nil {
		return res, err
	}

	res.FromModel(payment)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheCountPayment)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPayment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment")

		return res, nil
	}

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldPaymentID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.PaymentID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	res.FromModel(payment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByReservation(ctx context.Context, reservationID string) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(reservationID, model.FieldReservationID, model.TableName)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments for reservation")

		return res, fmt.Errorf("failed to get payments for reservation: %w", err)
	}

	res.FromModels(models, len(models), 0)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldPaymentID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment exists")

		return fmt.Errorf("failed to check if payment exists: %w", err)
	}

	if !exists {
		log.Error().Msg("payment not found")

		return failure.NotFound("payment not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment")

		return fmt.Errorf("failed to update payment: %w", err)
	}

	s.invalidatePayment(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldPaymentID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment exists")

		return fmt.Errorf("failed to check if payment exists: %w", err)
	}

	if !exists {
		log.Error().Msg("payment not found")

		return failure.NotFound("payment not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete payment")

		return fmt.Errorf("failed to delete payment: %w", err)
	}

	s.invalidatePayment(ctx, id)

	return nil
}

func (s *serviceImpl) invalidatePayment(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPayment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete payment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheCountPayment)
	}()
}
