package guest

import (
	"net/http"

	"grandromeo/infras/otel"
	"grandromeo/internal/domains/guest/model"
	"grandromeo/internal/domains/guest/model/dto"
	"grandromeo/internal/domains/guest/service"
	"grandromeo/shared"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/validator"
	"grandromeo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Patch("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
	})
}

// CreateGuest handles the creation of a new guest profile.
// @Summary Create a new guest
// @Description Create a new guest profile with the provided details.
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Guest details"
// @Success 201 {object} response.Data[dto.GuestResponse] "Created guest"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests [post]
// @Security BearerAuth
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, guest)
}

// GetGuests retrieves all guests based on query parameters.
// @Summary Get all guests
// @Description Retrieve all guests with optional filtering and pagination.
// @Tags Guest
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param first_name query string false "Filter by first name"
// @Param last_name query string false "Filter by last name"
// @Param email query string false "Filter by email"
// @Param vip_status query boolean false "Filter by VIP status"
// @Success 200 {object} response.Data[dto.GetGuestsResponse] "List of guests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
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
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldEmail),
				Table:    model.TableName,
			},
		},
	}

	if vip := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldVIPStatus)); vip != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldVIPStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    *vip,
			Table:    model.TableName,
		})
	}

	guests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuestByID retrieves a guest by ID.
// @Summary Get a guest by ID
// @Description Retrieve a guest by their unique identifier.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest retrieved successfully")

	response.WithJSON(w, http.StatusOK, guest)
}

// UpdateGuest updates an existing guest by ID.
// @Summary Update a guest by ID
// @Description Update the details of an existing guest profile.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Guest details"
// @Success 200 {object} response.Message "Guest updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest updated successfully")
}

// DeleteGuest deletes a guest by ID.
// @Summary Delete a guest by ID
// @Description Delete a guest profile using its unique identifier.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Message "Guest deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}
