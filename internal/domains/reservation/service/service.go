package service

import (
	"context"
	"fmt"
	"time"

	"grandromeo/config"
	"grandromeo/infras/otel"
	guestModel "grandromeo/internal/domains/guest/model"
	"grandromeo/internal/domains/reservation/availability"
	"grandromeo/internal/domains/reservation/model"
	"grandromeo/internal/domains/reservation/model/dto"
	"grandromeo/internal/domains/reservation/repository"
	roomModel "grandromeo/internal/domains/room/model"
	roomRepo "grandromeo/internal/domains/room/repository"
	"grandromeo/shared"
	"grandromeo/shared/cache"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/failure"
	"grandromeo/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	// Room caches are invalidated here too: lifecycle transitions write
	// room status behind the room service's back.
	cacheRoomPrefix = "room"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	AvailableRooms(ctx context.Context, checkIn, checkOut, roomType string) (dto.AvailableRoomsResponse, error)
}

type guestChecker interface {
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type serviceImpl struct {
	repo   repository.Reservation
	rooms  roomRepo.Room
	guests guestChecker
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.Reservation, rooms roomRepo.Room, guests guestChecker, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:   repo,
		rooms:  rooms,
		guests: guests,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleGuest {
		// Guests can only book for themselves.
		guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)
		if guestID == constant.Empty {
			return res, failure.Forbidden("no guest profile linked to this account") // nolint:wrapcheck
		}

		req.GuestID = guestID
	}

	if req.CheckInDate != nil && req.CheckOutDate != nil && *req.CheckOutDate <= *req.CheckInDate {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	guestExists, err := s.guests.Exist(ctx, shared.FilterByID(req.GuestID, guestModel.FieldGuestID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	rooms, err := s.getRooms(ctx, req.RoomNumbers)
	if err != nil {
		return res, err
	}

	if role == constant.RoleGuest {
		if err = s.checkAvailability(ctx, req, rooms); err != nil {
			return res, err
		}
	}

	reservation := req.ToModel(user)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		return res, err
	}

	if err = s.repo.InsertRooms(ctx, reservation.ReservationID, req.RoomNumbers); err != nil {
		return res, err
	}

	if err = s.setRoomsStatus(ctx, req.RoomNumbers, roomModel.StatusReserved, user); err != nil {
		return res, err
	}

	if err = s.repo.InsertStaff(ctx, reservation.ReservationID, req.StaffIDs); err != nil {
		return res, err
	}

	res.FromModel(reservation, req.RoomNumbers, req.StaffIDs)

	s.invalidateReservation(ctx, reservation.ReservationID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	for i := range res.Reservations {
		if err = s.attachAssignments(ctx, &res.Reservations[i]); err != nil {
			return res, err
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation, nil, nil)

	if err = s.attachAssignments(ctx, &res); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	checkIn := reservation.CheckInDate
	if req.CheckInDate != nil {
		checkIn = req.CheckInDate
	}

	checkOut := reservation.CheckOutDate
	if req.CheckOutDate != nil {
		checkOut = req.CheckOutDate
	}

	if checkIn != nil && checkOut != nil && *checkOut <= *checkIn {
		return failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	if req.RoomNumbers != nil {
		if _, err = s.getRooms(ctx, req.RoomNumbers); err != nil {
			return err
		}

		// Release the old assignment before binding the new one.
		oldRooms, err := s.repo.GetRoomNumbers(ctx, id)
		if err != nil {
			return err
		}

		if err = s.setRoomsStatus(ctx, oldRooms, roomModel.StatusAvailable, user); err != nil {
			return err
		}

		if err = s.repo.DeleteRooms(ctx, id); err != nil {
			return err
		}

		if err = s.repo.InsertRooms(ctx, id, req.RoomNumbers); err != nil {
			return err
		}

		if err = s.setRoomsStatus(ctx, req.RoomNumbers, roomModel.StatusReserved, user); err != nil {
			return err
		}
	}

	if req.StaffIDs != nil {
		if err = s.repo.DeleteStaff(ctx, id); err != nil {
			return err
		}

		if err = s.repo.InsertStaff(ctx, id, req.StaffIDs); err != nil {
			return err
		}
	}

	updatedFields := shared.TransformFields(req, user)

	filter := shared.FilterByID(id, model.FieldReservationID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidateReservation(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if !model.IsValidStatus(req.Status) {
		return failure.BadRequestFromString("unknown reservation status") // nolint:wrapcheck
	}

	if _, err = s.getReservation(ctx, id); err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	switch req.Status {
	case model.StatusCheckedIn:
		updatedFields[model.FieldCheckInTime] = timezone.Now().Format(time.RFC3339)

		if err = s.setAssignedRoomsStatus(ctx, id, roomModel.StatusOccupied, user); err != nil {
			return err
		}
	case model.StatusCheckedOut:
		updatedFields[model.FieldCheckOutTime] = timezone.Now().Format(time.RFC3339)

		if err = s.setAssignedRoomsStatus(ctx, id, roomModel.StatusAvailable, user); err != nil {
			return err
		}
	case model.StatusCancelled, model.StatusNoShow:
		if err = s.setAssignedRoomsStatus(ctx, id, roomModel.StatusAvailable, user); err != nil {
			return err
		}
	}

	filter := shared.FilterByID(id, model.FieldReservationID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	s.invalidateReservation(ctx, id)

	return nil
}

// Cancel is the guest-facing exit. It is idempotent: cancelling an already
// cancelled reservation succeeds without touching the rooms again.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	if role == constant.RoleGuest {
		guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)
		if reservation.GuestID != guestID {
			return failure.Forbidden("reservation belongs to another guest") // nolint:wrapcheck
		}
	}

	if reservation.Status == model.StatusCancelled {
		return nil
	}

	if model.IsTerminalStatus(reservation.Status) {
		return failure.Conflict("reservation is already closed") // nolint:wrapcheck
	}

	return s.UpdateStatus(ctx, id, dto.UpdateStatusRequest{Status: model.StatusCancelled})
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getReservation(ctx, id); err != nil {
		return err
	}

	// Free the rooms before the junction rows disappear.
	if err = s.setAssignedRoomsStatus(ctx, id, roomModel.StatusAvailable, user); err != nil {
		return err
	}

	if err = s.repo.DeleteRooms(ctx, id); err != nil {
		return err
	}

	if err = s.repo.DeleteStaff(ctx, id); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldReservationID, model.TableName)
	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidateReservation(ctx, id)

	return nil
}

func (s *serviceImpl) AvailableRooms(ctx context.Context, checkIn, checkOut, roomType string) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	var checkInDate, checkOutDate time.Time

	if checkIn != constant.Empty {
		if checkInDate, err = availability.ParseDate(checkIn); err != nil {
			return res, failure.BadRequestFromString("invalid check-in date") // nolint:wrapcheck
		}
	}

	if checkOut != constant.Empty {
		if checkOutDate, err = availability.ParseDate(checkOut); err != nil {
			return res, failure.BadRequestFromString("invalid check-out date") // nolint:wrapcheck
		}
	}

	if !checkInDate.IsZero() && !checkOutDate.IsZero() && !checkOutDate.After(checkInDate) {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    roomModel.StatusMaintenance,
				Table:    roomModel.TableName,
			},
		},
	}

	if roomType != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    roomModel.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    roomModel.TableName,
		})
	}

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	roomNumbers := make([]string, len(rooms))
	for i, room := range rooms {
		roomNumbers[i] = room.RoomNumber
	}

	stays, err := s.repo.GetActiveStays(ctx)
	if err != nil {
		return res, err
	}

	res.RoomNumbers = availability.FilterAvailable(roomNumbers, checkInDate, checkOutDate, stays)

	return res, nil
}

func (s *serviceImpl) getReservation(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldReservationID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ReservationID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) getRooms(ctx context.Context, roomNumbers []string) ([]roomModel.Room, error) {
	rooms := make([]roomModel.Room, 0, len(roomNumbers))

	for _, number := range roomNumbers {
		room, err := s.rooms.Get(ctx, shared.FilterByID(number, roomModel.FieldRoomNumber, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("room", number).Msg("failed to get room")

			return nil, fmt.Errorf("failed to get room: %w", err)
		}

		if room.RoomNumber == constant.Empty {
			return nil, failure.NotFound("room not found") // nolint:wrapcheck
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}

// checkAvailability is the advisory pre-insert check for guest bookings.
// Staff can overbook on purpose, guests cannot.
func (s *serviceImpl) checkAvailability(ctx context.Context, req dto.CreateReservationRequest, rooms []roomModel.Room) error {
	for _, room := range rooms {
		if room.Status == roomModel.StatusMaintenance {
			return failure.Conflict(fmt.Sprintf("room %s is under maintenance", room.RoomNumber)) // nolint:wrapcheck
		}
	}

	if req.CheckInDate == nil || req.CheckOutDate == nil {
		return nil
	}

	checkIn, err := availability.ParseDate(*req.CheckInDate)
	if err != nil {
		return failure.BadRequestFromString("invalid check-in date") // nolint:wrapcheck
	}

	checkOut, err := availability.ParseDate(*req.CheckOutDate)
	if err != nil {
		return failure.BadRequestFromString("invalid check-out date") // nolint:wrapcheck
	}

	stays, err := s.repo.GetActiveStays(ctx)
	if err != nil {
		return err
	}

	for _, number := range req.RoomNumbers {
		if !availability.RoomAvailable(number, checkIn, checkOut, stays) {
			return failure.Conflict(fmt.Sprintf("room %s is not available for the selected dates", number)) // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) setAssignedRoomsStatus(ctx context.Context, reservationID, status, user string) error {
	roomNumbers, err := s.repo.GetRoomNumbers(ctx, reservationID)
	if err != nil {
		return err
	}

	return s.setRoomsStatus(ctx, roomNumbers, status, user)
}

func (s *serviceImpl) setRoomsStatus(ctx context.Context, roomNumbers []string, status, user string) error {
	updatedFields := map[string]any{
		roomModel.FieldStatus:    status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	for _, number := range roomNumbers {
		filter := shared.FilterByID(number, roomModel.FieldRoomNumber, roomModel.TableName)

		if err := s.rooms.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Str("room", number).Msg("failed to update room status")

			return fmt.Errorf("failed to update room status: %w", err)
		}
	}

	return nil
}

func (s *serviceImpl) attachAssignments(ctx context.Context, res *dto.ReservationResponse) error {
	roomNumbers, err := s.repo.GetRoomNumbers(ctx, res.ReservationID)
	if err != nil {
		return err
	}

	staffIDs, err := s.repo.GetStaffIDs(ctx, res.ReservationID)
	if err != nil {
		return err
	}

	res.RoomNumbers = roomNumbers
	res.StaffIDs = staffIDs

	return nil
}

func (s *serviceImpl) invalidateReservation(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()
}
