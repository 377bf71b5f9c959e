package room

import (
	"net/http"

	"grandromeo/infras/otel"
	"grandromeo/internal/domains/room/model"
	"grandromeo/internal/domains/room/model/dto"
	"grandromeo/internal/domains/room/service"
	"grandromeo/shared"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/validator"
	"grandromeo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{number}", handler.GetRoomByNumber)
		routerGroup.Patch("/{number}", handler.UpdateRoom)
		routerGroup.Patch("/{number}/maintenance", handler.SetMaintenance)
		routerGroup.Delete("/{number}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room with the provided details.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param room_number formData string true "Room number"
// @Param room_type formData string true "Room type"
// @Param bed_type formData string true "Bed type"
// @Param capacity formData integer true "Room capacity"
// @Param daily_rate formData number true "Daily rate"
// @Param status formData string false "Initial status"
// @Param description formData string false "Description"
// @Param floor_number formData integer false "Floor number"
// @Param room_size_sqft formData integer false "Room size in sqft"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomRequest{
		RoomNumber: request.FormValue(model.FieldRoomNumber),
		RoomType:   request.FormValue(model.FieldRoomType),
		BedType:    request.FormValue(model.FieldBedType),
		Status:     request.FormValue(model.FieldStatus),
	}

	if capStr := request.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = c
		}
	}

	if rateStr := request.FormValue(model.FieldDailyRate); rateStr != "" {
		if rate, err := shared.ConvertStringToFloat(rateStr); err == nil {
			req.DailyRate = rate
		}
	}

	if desc := request.FormValue(model.FieldDescription); desc != "" {
		req.Description = &desc
	}

	if floorStr := request.FormValue(model.FieldFloorNumber); floorStr != "" {
		if floor, err := shared.ConvertStringToInt(floorStr); err == nil {
			req.FloorNumber = &floor
		}
	}

	if sizeStr := request.FormValue(model.FieldRoomSizeSqft); sizeStr != "" {
		if size, err := shared.ConvertStringToInt(sizeStr); err == nil {
			req.RoomSizeSqft = &size
		}
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_number query string false "Filter by room number"
// @Param room_type query string false "Filter by room type"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldRoomNumber),
				Table:    model.TableName,
			},
		},
	}

	if roomType := r.URL.Query().Get(model.FieldRoomType); roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByNumber retrieves a room by its number.
// @Summary Get a room by number
// @Description Retrieve a room by its room number.
// @Tags Room
// @Accept json
// @Produce json
// @Param number path string true "Room number"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{number} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByNumber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByNumber")
	defer scope.End()

	number := chi.URLParam(r, constant.RequestParamRoomNumber)

	room, err := handler.service.Get(ctx, number)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by number")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its number.
// @Summary Update a room by number
// @Description Update the details of an existing room. Room status cannot be changed here.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param number path string true "Room number"
// @Param room_type formData string false "Room type"
// @Param bed_type formData string false "Bed type"
// @Param capacity formData integer false "Room capacity"
// @Param daily_rate formData number false "Daily rate"
// @Param description formData string false "Description"
// @Param floor_number formData integer false "Floor number"
// @Param room_size_sqft formData integer false "Room size in sqft"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{number} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	number := chi.URLParam(r, constant.RequestParamRoomNumber)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		RoomType: r.FormValue(model.FieldRoomType),
		BedType:  r.FormValue(model.FieldBedType),
	}

	if capStr := r.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = &c
		}
	}

	if rateStr := r.FormValue(model.FieldDailyRate); rateStr != "" {
		if rate, err := shared.ConvertStringToFloat(rateStr); err == nil {
			req.DailyRate = &rate
		}
	}

	if desc := r.FormValue(model.FieldDescription); desc != "" {
		req.Description = &desc
	}

	if floorStr := r.FormValue(model.FieldFloorNumber); floorStr != "" {
		if floor, err := shared.ConvertStringToInt(floorStr); err == nil {
			req.FloorNumber = &floor
		}
	}

	if sizeStr := r.FormValue(model.FieldRoomSizeSqft); sizeStr != "" {
		if size, err := shared.ConvertStringToInt(sizeStr); err == nil {
			req.RoomSizeSqft = &size
		}
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, number); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// SetMaintenance flags a room in or out of maintenance.
// @Summary Set room maintenance flag
// @Description Move a room into maintenance or bring it back to available.
// @Tags Room
// @Accept json
// @Produce json
// @Param number path string true "Room number"
// @Param request body dto.SetMaintenanceRequest true "Maintenance flag"
// @Success 200 {object} response.Message "Room maintenance updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{number}/maintenance [patch]
// @Security BearerAuth
func (handler *Handler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetMaintenance")
	defer scope.End()

	number := chi.URLParam(r, constant.RequestParamRoomNumber)

	req := dto.SetMaintenanceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetMaintenance(ctx, number, req.Maintenance); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set room maintenance")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room maintenance updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room maintenance updated successfully")
}

// DeleteRoom deletes a room by its number.
// @Summary Delete a room by number
// @Description Delete a room using its room number.
// @Tags Room
// @Accept json
// @Produce json
// @Param number path string true "Room number"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{number} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	number := chi.URLParam(r, constant.RequestParamRoomNumber)

	if err := handler.service.Delete(ctx, number); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
