package staff

import (
	"net/http"

	"grandromeo/infras/otel"
	"grandromeo/internal/domains/staff/model"
	"grandromeo/internal/domains/staff/model/dto"
	"grandromeo/internal/domains/staff/service"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/validator"
	"grandromeo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Staff
	otel    otel.Otel
}

func New(service service.Staff, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStaff)
		routerGroup.Get("/", handler.GetStaff)
		routerGroup.Get("/{id}", handler.GetStaffByID)
		routerGroup.Patch("/{id}", handler.UpdateStaff)
		routerGroup.Delete("/{id}", handler.DeleteStaff)
	})
}

// CreateStaff handles the creation of a new staff member.
// @Summary Create a new staff member
// @Description Create a new staff profile with the provided details.
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} response.Data[dto.StaffResponse] "Created staff"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [post]
// @Security BearerAuth
func (handler *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	req := dto.CreateStaffRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create staff")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Staff created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, staff)
}

// GetStaff retrieves all staff members based on query parameters.
// @Summary Get all staff members
// @Description Retrieve all staff members with optional filtering and pagination.
// @Tags Staff
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param first_name query string false "Filter by first name"
// @Param last_name query string false "Filter by last name"
// @Param role query string false "Filter by role"
// @Success 200 {object} response.Data[dto.GetStaffResponse] "List of staff"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [get]
// @Security BearerAuth
func (handler *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFirstName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldFirstName),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLastName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldLastName),
				Table:    model.TableName,
			},
		},
	}

	if role := r.URL.Query().Get(model.FieldRole); role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	staff, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// GetStaffByID retrieves a staff member by ID.
// @Summary Get a staff member by ID
// @Description Retrieve a staff by their unique identifier.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Data[dto.StaffResponse] "Staff details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStaffByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	staff, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// UpdateStaff updates an existing staff by ID.
// @Summary Update a staff member by ID
// @Description Update the details of an existing staff record.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Staff details"
// @Success 200 {object} response.Message "Staff updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStaffRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Staff updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Staff updated successfully")
}

// DeleteStaff deletes a staff member by ID.
// @Summary Delete a staff member by ID
// @Description Delete a staff record using its unique identifier.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Message "Staff deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Staff deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Staff deleted successfully")
}
