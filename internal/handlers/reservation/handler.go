package reservation

import (
	"net/http"

	"grandromeo/infras/otel"
	"grandromeo/internal/domains/reservation/model"
	"grandromeo/internal/domains/reservation/model/dto"
	"grandromeo/internal/domains/reservation/service"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/validator"
	"grandromeo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/available-rooms", handler.GetAvailableRooms)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}", handler.UpdateReservation)
		routerGroup.Patch("/{id}/status", handler.UpdateReservationStatus)
		routerGroup.Post("/{id}/cancel", handler.CancelReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
	})
}

// CreateReservation handles the creation of a new reservation.
// @Summary Create a new reservation
// @Description Create a new reservation and assign its rooms.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Created reservation"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, reservation)
}

// GetReservations retrieves all reservations based on query parameters.
// Guests only ever see their own reservations.
// @Summary Get all reservations
// @Description Retrieve all reservations with optional filtering and pagination.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param guest_id query string false "Filter by guest"
// @Param check_in_date query string false "Filter by check-in date"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if checkIn := r.URL.Query().Get(model.FieldCheckInDate); checkIn != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCheckInDate,
			Operator: gDto.FilterOperatorEq,
			Value:    checkIn,
			Table:    model.TableName,
		})
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleGuest {
		guestID, _ := ctx.Value(constant.ContextKeyGuestID).(string)
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGuestID,
			Operator: gDto.FilterOperatorEq,
			Value:    guestID,
			Table:    model.TableName,
		})
	} else if guestID := r.URL.Query().Get(model.FieldGuestID); guestID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGuestID,
			Operator: gDto.FilterOperatorEq,
			Value:    guestID,
			Table:    model.TableName,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetAvailableRooms lists the rooms free for a stay window.
// @Summary Get available rooms
// @Description List rooms that can take a stay between the given dates.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param room_type query string false "Restrict to a room type"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/available-rooms [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	checkIn := r.URL.Query().Get(constant.RequestParamCheckIn)
	checkOut := r.URL.Query().Get(constant.RequestParamCheckOut)
	roomType := r.URL.Query().Get(constant.RequestParamRoomType)

	rooms, err := handler.service.AvailableRooms(ctx, checkIn, checkOut, roomType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetReservationByID retrieves a reservation by ID.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation with its rooms and assigned staff.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservation updates an existing reservation by ID.
// @Summary Update a reservation by ID
// @Description Update reservation details and room or staff assignments. Status is not updated here.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Reservation details"
// @Success 200 {object} response.Message "Reservation updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Reservation updated successfully")
}

// UpdateReservationStatus moves a reservation through its lifecycle.
// @Summary Update a reservation's status
// @Description Transition a reservation to a new status, applying room side effects.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} response.Message "Reservation status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Reservation status updated successfully")
}

// CancelReservation cancels a reservation.
// @Summary Cancel a reservation
// @Description Cancel a reservation and release its rooms. Guests may only cancel their own.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation cancelled successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Reservation cancelled successfully")
}

// DeleteReservation deletes a reservation by ID.
// @Summary Delete a reservation by ID
// @Description Delete a reservation and free its rooms.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Reservation deleted successfully")
}
