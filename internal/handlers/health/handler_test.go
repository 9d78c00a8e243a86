package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"tasktracker/infras/otel/mocks"
	"tasktracker/internal/domains/health/service"
	"tasktracker/internal/handlers/health"
	"tasktracker/shared/constant"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantBody string
	}{
		{
			name:     "healthy",
			wantBody: `{"status":"ok","database":"ok"}`,
		},
		{
			name:     "database down still answers 200",
			pingErr:  errors.New("connection refused"),
			wantBody: `{"status":"degraded","database":"error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewWithPinger(pingerFunc(func(context.Context) error { return tt.pingErr }), mocks.NewOtel())
			handler := health.New(svc)

			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
