package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"tasktracker/config"
	"tasktracker/infras/database"
	"tasktracker/infras/kafka"
	"tasktracker/infras/otel"
	"tasktracker/shared/constant"
	"tasktracker/transport/http/response"
	"tasktracker/transport/http/router"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const developmentShutdownTimeout = 5 * time.Second

type HTTP struct {
	Config *config.Config
	Router router.Router

	state   atomic.Int32
	handler http.Handler
	server  *http.Server
	done    chan struct{}

	db    *database.Connection
	redis *goRedis.Client
	otel  otel.Otel
	kafka kafka.Client
}

func New(cfg *config.Config, r router.Router, db *database.Connection, redis *goRedis.Client, otel otel.Otel, kafka kafka.Client) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		done:   make(chan struct{}),
		db:     db,
		redis:  redis,
		otel:   otel,
		kafka:  kafka,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

// Serve blocks until the server has shut down and every resource is released.
func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.handler,
		ReadTimeout:       time.Duration(h.Config.Server.ReadTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(h.Config.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(h.Config.Server.WriteTimeoutSeconds) * time.Second,
	}

	log.Info().Str("host", h.Config.Server.Host).Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.done
}

// Handler returns the fully routed handler without starting a listener.
func (h *HTTP) Handler() http.Handler {
	h.setup()

	return h.handler
}

func (h *HTTP) setup() {
	if h.handler != nil {
		return
	}

	mux := chi.NewRouter()
	mux.Use(h.shutdownGate)

	h.Router.SetupRoutes(mux)

	h.handler = mux
	h.setState(ServerStateReady)
}

// shutdownGate turns requests away once shutdown has begun.
func (h *HTTP) shutdownGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() != ServerStateReady {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.done)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.shutdown(developmentShutdownTimeout)

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	h.shutdown(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to drain HTTP server")
		}
	}

	h.release(ctx)
}

func (h *HTTP) release(ctx context.Context) {
	if err := h.kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close kafka writer")
	}

	if err := h.redis.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close redis client")
	}

	if err := h.db.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}

	if err := h.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
