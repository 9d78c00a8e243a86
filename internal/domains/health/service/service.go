package service

import (
	"context"
	"tasktracker/infras/database"
	"tasktracker/infras/otel"
	"tasktracker/internal/domains/health/model/dto"
	"tasktracker/shared/constant"
	"tasktracker/shared/failure"

	"github.com/rs/zerolog/log"
)

// Pinger is the part of the store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Health interface {
	// Check never fails: an unreachable store degrades the report instead.
	Check(ctx context.Context) dto.HealthResponse
}

type serviceImpl struct {
	db   Pinger
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Health {
	return NewWithPinger(db, otel)
}

func NewWithPinger(db Pinger, otel otel.Otel) Health {
	return &serviceImpl{
		db:   db,
		otel: otel,
	}
}

func (s *serviceImpl) Check(ctx context.Context) dto.HealthResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".health.Check")
	defer scope.End()

	res := dto.HealthResponse{
		Status:   constant.HealthStatusOK,
		Database: constant.HealthStatusOK,
	}

	ctx, cancel := context.WithTimeout(ctx, constant.HealthCheckTimeout)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		err = failure.StoreUnavailable(err)

		scope.TraceError(err)
		log.Warn().Err(err).Msg("database health check failed")

		res.Status = constant.HealthDegraded
		res.Database = constant.HealthStatusError
	}

	scope.SetAttributes(map[string]any{
		"health.status":   res.Status,
		"health.database": res.Database,
	})

	return res
}
