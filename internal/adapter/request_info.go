package adapter

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/models"
)

type requestInfoProvider struct {
	geo    GeoLocator
	logger *logger.Logger
}

// NewRequestInfoProvider constructs a RequestInfoProvider that reads proxy
// headers first and falls back to geo for the location.
func NewRequestInfoProvider(geo GeoLocator, logger *logger.Logger) RequestInfoProvider {
	return &requestInfoProvider{geo: geo, logger: logger}
}

// RequestInfo implements [RequestInfoProvider]. Edge-platform headers are
// preferred for the location because they are free; the geolocation service
// is consulted only when no edge header is present.
func (p *requestInfoProvider) RequestInfo(r *http.Request) models.RequestInfo {
	ipAddress := clientIP(r)

	userAgent := r.Header.Get("User-Agent")
	if userAgent == "" {
		userAgent = models.UnknownValue
	}

	location := locationFromHeaders(r)
	if location == "" {
		if resolved := p.geo.Locate(r.Context(), ipAddress); resolved != nil {
			location = *resolved
		}
	}
	if location == "" {
		location = models.UnknownValue
	}

	return models.RequestInfo{
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Location:  location,
	}
}

// clientIP walks the common proxy headers in trust order. X-Forwarded-For may
// carry a chain; only the first (client-most) entry is used.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	if cfIP := r.Header.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}

	if clientIP := r.Header.Get("X-Client-IP"); clientIP != "" {
		return clientIP
	}

	return models.UnknownValue
}

// locationFromHeaders reads the location injected by CDN/edge platforms:
// Cloudflare, then Vercel, then AWS CloudFront. Returns "" when no platform
// header is present.
func locationFromHeaders(r *http.Request) string {
	if country := r.Header.Get("CF-IPCountry"); country != "" {
		if city := decodeHeaderValue(r.Header.Get("CF-IPCity")); city != "" {
			return city + ", " + country
		}
		return country
	}

	if country := r.Header.Get("X-Vercel-IP-Country"); country != "" {
		if city := decodeHeaderValue(r.Header.Get("X-Vercel-IP-City")); city != "" {
			return city + ", " + country
		}
		return country
	}

	if country := r.Header.Get("CloudFront-Viewer-Country"); country != "" {
		return country
	}

	return ""
}

// decodeHeaderValue undoes the percent-encoding some platforms apply to city
// names ("S%C3%A3o%20Paulo"). Values that fail to decode are used as-is.
func decodeHeaderValue(value string) string {
	if value == "" {
		return ""
	}

	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}
