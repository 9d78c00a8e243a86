//go:build wireinject
// +build wireinject

package di

import (
	"tasktracker/config"
	"tasktracker/infras/database"
	"tasktracker/infras/kafka"
	"tasktracker/infras/otel"
	"tasktracker/infras/redis"
	healthHandler "tasktracker/internal/handlers/health"
	taskHandler "tasktracker/internal/handlers/task"
	"tasktracker/shared/cache"
	"tasktracker/transport/http"
	"tasktracker/transport/http/middleware"
	"tasktracker/transport/http/router"
	"tasktracker/transport/http/view"

	healthService "tasktracker/internal/domains/health/service"
	taskRepository "tasktracker/internal/domains/task/repository"
	taskService "tasktracker/internal/domains/task/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	view.MustNew,
)

var taskDomain = wire.NewSet(
	taskRepository.New,
	taskService.New,
)

var healthDomain = wire.NewSet(
	healthService.New,
)

var domains = wire.NewSet(
	taskDomain,
	healthDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	taskHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
