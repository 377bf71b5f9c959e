package service

import (
	"context"
	"fmt"

	"grandromeo/config"
	"grandromeo/infras/otel"
	"grandromeo/internal/domains/staff/model"
	"grandromeo/internal/domains/staff/model/dto"
	"grandromeo/internal/domains/staff/repository"
	"grandromeo/shared"
	"grandromeo/shared/cache"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetStaff    = "staff:get"
	cacheGetAllStaff = "staff:gets"
	cacheCountStaff  = "staff:count"
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Staff
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Staff, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Staff {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	staff := req.ToModel(user)

	if err = s.repo.Insert(ctx, staff); err != nil {
		return res, err
	}

	res.FromModel(staff)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staffs")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staffs")

		return res, fmt.Errorf("failed to count staffs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staffs")

		return res, fmt.Errorf("failed to get staffs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staffs to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staffs")

		return res, fmt.Errorf("failed to count staffs: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStaff, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff")

		return res, nil
	}

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldStaffID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.StaffID == constant.Empty {
		return res, failure.NotFound("staff not found") // nolint:wrapcheck
	}

	res.FromModel(staff)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldStaffID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff exists")

		return fmt.Errorf("failed to check if staff exists: %w", err)
	}

	if !exists {
		log.Error().Msg("staff not found")

		return failure.NotFound("staff not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update staff")

		return fmt.Errorf("failed to update staff: %w", err)
	}

	s.invalidateStaff(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldStaffID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff exists")

		return fmt.Errorf("failed to check if staff exists: %w", err)
	}

	if !exists {
		log.Error().Msg("staff not found")

		return failure.NotFound("staff not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete staff")

		return fmt.Errorf("failed to delete staff: %w", err)
	}

	s.invalidateStaff(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateStaff(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStaff, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete staff from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()
}
