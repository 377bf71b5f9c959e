package dashboard

import (
	"net/http"

	"grandromeo/infras/otel"
	"grandromeo/internal/domains/dashboard/service"
	"grandromeo/shared/constant"
	"grandromeo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/stats", handler.GetStats)
	})
}

// GetStats returns the front-desk dashboard counters.
// @Summary Get dashboard statistics
// @Description Retrieve occupancy, reservation and revenue statistics for the dashboard.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardStatsResponse] "Dashboard statistics"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.GetStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}
