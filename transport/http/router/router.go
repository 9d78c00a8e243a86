package router

import (
	"net/http"
	"tasktracker/internal/handlers/health"
	"tasktracker/internal/handlers/task"
	"tasktracker/shared/failure"
	"tasktracker/transport/http/middleware"
	"tasktracker/transport/http/response"
	"tasktracker/transport/http/view"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "tasktracker/docs" // registers the swagger spec
)

const swaggerDocURL = "/swagger/doc.json"

type DomainHandlers struct {
	Task   task.Handler
	Health health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	middleware     middleware.AppMiddleware
	view           view.Renderer
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.middleware.RequestID,
		r.middleware.Logger,
		chiMiddleware.Recoverer,
		r.middleware.CORS(),
		r.middleware.Tracing,
		r.middleware.RateLimit,
	)

	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		response.WithErrorPage(writer, r.view, failure.PageNotFound)
	})

	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		response.WithStatusPage(writer, r.view, http.StatusMethodNotAllowed, "This page does not accept that kind of request.")
	})

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerDocURL)))

	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Task.Router(router)
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware, renderer view.Renderer) Router {
	return Router{
		DomainHandlers: domainHandlers,
		middleware:     middleware,
		view:           renderer,
	}
}
