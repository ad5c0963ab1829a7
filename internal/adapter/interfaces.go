// Package adapter captures client metadata for session records.
//
// The primary abstraction is [GeoLocator], which decouples session creation
// from the concrete geolocation provider. The package ships an HTTP/REST
// implementation backed by the ipapi.co service ([NewGeoClient]) and a
// [RequestInfoProvider] that assembles the full per-request metadata triple
// (IP address, user agent, human-readable location) from proxy headers with
// the geolocation lookup as a fallback.
//
// Every lookup here is best-effort. Session creation must never fail because
// an upstream geolocation service is down, so all failure paths degrade to
// an absent location rather than an error.
package adapter

import (
	"context"
	"net/http"

	"github.com/osavchuk/todostack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GeoLocator resolves an IP address to a human-readable location string.
type GeoLocator interface {
	// Locate returns a "City, Region, Country" style description for ip, or
	// nil when the address is private, unresolvable, or the provider is
	// unavailable. A nil result is not an error.
	Locate(ctx context.Context, ip string) *string
}

// RequestInfoProvider extracts the client metadata recorded on every new
// session from an incoming request.
type RequestInfoProvider interface {
	// RequestInfo returns the client IP, user agent and location for r.
	// Fields that cannot be determined hold models.UnknownValue.
	RequestInfo(r *http.Request) models.RequestInfo
}
