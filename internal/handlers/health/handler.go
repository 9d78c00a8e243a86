package health

import (
	"net/http"
	"tasktracker/internal/domains/health/service"
	"tasktracker/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Health
}

func New(service service.Health) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health/", handler.Health)
}

// Health reports whether the service and its database are reachable.
// @Summary Health check
// @Description Always answers 200. A database that cannot be pinged marks the report as degraded.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health/ [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.Check(request.Context()))
}
