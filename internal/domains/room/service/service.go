package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	"grandromeo/config"
	"grandromeo/infras/otel"
	"grandromeo/infras/s3"
	"grandromeo/internal/domains/room/model"
	"grandromeo/internal/domains/room/model/dto"
	"grandromeo/internal/domains/room/repository"
	"grandromeo/shared"
	"grandromeo/shared/cache"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/failure"
	"grandromeo/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, roomNumber string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, roomNumber string) error
	SetMaintenance(ctx context.Context, roomNumber string, maintenance bool) error
	Delete(ctx context.Context, roomNumber string) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(req.RoomNumber, model.FieldRoomNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if exists {
		return failure.Conflict("room number already exists") // nolint:wrapcheck
	}

	imageURL := constant.Empty
	var uploadedObjectName string
	if req.Image != nil {
		imageURL, uploadedObjectName, err = s.uploadImage(ctx, req.ImageFile, req.Image)
		if err != nil {
			return err
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, roomNumber string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, roomNumber)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(roomNumber, model.FieldRoomNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.RoomNumber == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, roomNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(roomNumber, model.FieldRoomNumber, model.TableName)

	currentRoom, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return err
	}

	if currentRoom.RoomNumber == constant.Empty {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Image != nil {
		imageURL, _, err := s.uploadImage(ctx, req.ImageFile, req.Image)
		if err != nil {
			return err
		}

		if currentRoom.ImageURL != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			oldObject := s.s3.GetObjectNameFromURL(bucketName, currentRoom.ImageURL)

			if oldObject != constant.Empty {
				_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObject)
			}
		}

		updatedFields[model.FieldImageURL] = imageURL
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidateRoom(ctx, roomNumber)

	return nil
}

// SetMaintenance toggles the maintenance flag. This is the only room-status
// write outside the reservation lifecycle: maintenance is a housekeeping
// concern, not a booking one.
func (s *serviceImpl) SetMaintenance(ctx context.Context, roomNumber string, maintenance bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetMaintenance")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(roomNumber, model.FieldRoomNumber, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exists {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusAvailable,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if maintenance {
		updatedFields[model.FieldStatus] = model.StatusMaintenance
		updatedFields[model.FieldLastMaintenanceDate] = timezone.Format(timezone.Now(), constant.CalendarFormat)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room maintenance status")

		return fmt.Errorf("failed to update room maintenance status: %w", err)
	}

	s.invalidateRoom(ctx, roomNumber)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, roomNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(roomNumber, model.FieldRoomNumber, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if room.RoomNumber == constant.Empty {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if room.ImageURL != constant.Empty {
		bucketName := s.cfg.External.S3.BucketName
		object := s.s3.GetObjectNameFromURL(bucketName, room.ImageURL)

		if object != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, object)
		}
	}

	s.invalidateRoom(ctx, roomNumber)

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (url, objectName string, err error) {
	bucketName := s.cfg.External.S3.BucketName

	ext := path.Ext(header.Filename)
	objectName = uuid.NewString() + ext

	url, err = s.s3.UploadFile(ctx, bucketName, model.EntityName, file, header, objectName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return url, objectName, nil
}

func (s *serviceImpl) invalidateRoom(ctx context.Context, roomNumber string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, roomNumber)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}
