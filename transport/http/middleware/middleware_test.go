package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"tasktracker/config"
	otelMocks "tasktracker/infras/otel/mocks"
	"tasktracker/shared/cache/mocks"
	"tasktracker/shared/constant"
	"tasktracker/transport/http/middleware"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func newMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *mocks.MockRedisCache, *otelMocks.Recorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cache := mocks.NewMockRedisCache(ctrl)
	recorder := otelMocks.NewRecorder()

	return middleware.NewAppMiddleware(recorder, cfg, cache), cache, recorder
}

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setup         func(cache *mocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:     "disabled skips the cache",
			enable:   false,
			setup:    func(_ *mocks.MockRedisCache) {},
			wantCode: http.StatusOK,
		},
		{
			name:   "under the limit",
			enable: true,
			setup: func(cache *mocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), "limiter:203.0.113.7:test-agent", 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "over the limit",
			enable: true,
			setup: func(cache *mocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:   "cache failure fails open",
			enable: true,
			setup: func(cache *mocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis down"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, cache, _ := newMiddleware(t, limiterConfig(tt.enable))
			tt.setup(cache)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

			rec := httptest.NewRecorder()
			mw.RateLimit(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRequestID(t *testing.T) {
	mw, _, _ := newMiddleware(t, &config.Config{})

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "abc-123")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestTracing(t *testing.T) {
	mw, _, recorder := newMiddleware(t, &config.Config{})

	failing := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	mw.Tracing(okHandler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"GET /"}, recorder.Spans())
	assert.Empty(t, recorder.Errors())

	mw.Tracing(failing).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/1/delete/", nil))
	assert.Equal(t, []string{"GET /", "POST /1/delete/"}, recorder.Spans())
	assert.Len(t, recorder.Errors(), 1)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	mw, _, _ := newMiddleware(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/health/", nil)
	req.Header.Set("Origin", "https://example.com")

	rec := httptest.NewRecorder()
	mw.CORS()(okHandler).ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	rec = httptest.NewRecorder()
	mw.CORS()(okHandler).ServeHTTP(rec, req)
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogger(t *testing.T) {
	mw, _, _ := newMiddleware(t, &config.Config{})

	rec := httptest.NewRecorder()
	mw.Logger(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
