package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID       = "id"
	RequestParamQuery    = "q"
	RequestParamStatus   = "status"
	RequestParamPriority = "priority"
	RequestParamSort     = "sort"
	RequestMaxMemory     = 1 << 20 // 1 MB
)

const (
	FilterAll        = "all"
	FilterStatusOpen = "open"
	FilterStatusDone = "done"
)

const (
	DefaultValueSortBy = "created_at"
	SortDescPrefix     = "-"
)

const (
	FieldCreatedAt = "created_at"
)

const (
	DateFormat      = time.RFC3339
	DateInputFormat = "02/01/2006"
	DateInputHint   = "DD/MM/YYYY"
)

const (
	HealthCheckTimeout = 2 * time.Second
	HealthStatusOK     = "ok"
	HealthStatusError  = "error"
	HealthDegraded     = "degraded"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderLocation           = "Location"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
