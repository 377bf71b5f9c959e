package payment

import (
	"net/http"

	"grandromeo/infras/otel"
	"grandromeo/internal/domains/payment/model"
	"grandromeo/internal/domains/payment/model/dto"
	"grandromeo/internal/domains/payment/service"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/validator"
	"grandromeo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePayment)
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/{id}", handler.GetPaymentByID)
		routerGroup.Patch("/{id}", handler.UpdatePayment)
		routerGroup.Delete("/{id}", handler.DeletePayment)
	})
	router.Get("/reservations/{id}/payments", handler.GetPaymentsByReservation)
}

// CreatePayment records a payment against a reservation.
// @Summary Record a payment
// @Description Record a payment for an existing reservation.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} response.Data[dto.PaymentResponse] "Recorded payment"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [post]
// @Security BearerAuth
func (handler *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePayment")
	defer scope.End()

	req := dto.CreatePaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	payment, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment recorded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, payment)
}

// GetPayments retrieves all payments based on query parameters.
// @Summary Get all payments
// @Description Retrieve all payments with optional filtering and pagination.
// @Tags Payment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param reservation_id query string false "Filter by reservation"
// @Param payment_status query string false "Filter by payment status"
// @Param payment_method query string false "Filter by payment method"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldReservationID, model.FieldPaymentStatus, model.FieldPaymentMethod} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	payments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payments retrieved successfully")

	response.WithJSON(w, http.StatusOK, payments)
}

// GetPaymentByID retrieves a payment by ID.
// @Summary Get a payment by ID
// @Description Retrieve a payment by its unique identifier.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Payment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	payment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment retrieved successfully")

	response.WithJSON(w, http.StatusOK, payment)
}

// GetPaymentsByReservation lists every payment recorded for one reservation.
// @Summary Get payments for a reservation
// @Description Retrieve all payments recorded against a reservation.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "Payments for the reservation"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentsByReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentsByReservation")
	defer scope.End()

	reservationID := chi.URLParam(r, constant.RequestParamID)

	payments, err := handler.service.GetByReservation(ctx, reservationID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments by reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payments retrieved successfully")

	response.WithJSON(w, http.StatusOK, payments)
}

// UpdatePayment updates an existing payment by ID.
// @Summary Update a payment by ID
// @Description Update the details of a recorded payment.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body dto.UpdatePaymentRequest true "Payment details"
// @Success 200 {object} response.Message "Payment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Payment updated successfully")
}

// DeletePayment deletes a payment by ID.
// @Summary Delete a payment by ID
// @Description Delete a recorded payment using its unique identifier.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Message "Payment deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Payment deleted successfully")
}
