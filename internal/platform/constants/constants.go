// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Remote API: Page sizes and outbound pacing for the Data API client.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "tubecache-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// Import runs stream no response body until complete, so this must cover a
	// full channel import including remote round-trips.
	DefaultWriteTimeout = 5 * time.Minute

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 5 * time.Minute

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting (inbound)

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Remote Data API (outbound)

const (
	// APIMaxPageSize is the maxResults value sent on collection endpoints.
	// 50 is the documented upper bound for the Data API.
	APIMaxPageSize = 50

	// APIMaxPages caps token-chained pagination as a defensive stop against
	// server-side token loops.
	APIMaxPages = 200

	// APIRequestsPerSecond paces outbound requests to stay clear of
	// per-second quota enforcement.
	APIRequestsPerSecond = 8.0

	// APIRequestBurst is the outbound limiter's burst capacity.
	APIRequestBurst = 8

	// APIRequestTimeout bounds each individual remote round-trip.
	APIRequestTimeout = 30 * time.Second
)

// # HTTP Headers

const (
	// HeaderXRequestID carries the correlation ID between services.
	HeaderXRequestID = "X-Request-ID"

	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaYouTube = "yt"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixPage prefixes cached raw API pages, keyed by kind/key/token.
	RedisPrefixPage = "yt:page:"
)
