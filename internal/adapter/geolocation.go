package adapter

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/osavchuk/todostack/internal/config"
	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/models"
)

const (
	defaultGeoBaseURL = "https://ipapi.co"
	defaultGeoTimeout = 5 * time.Second
)

// geoResponse is the subset of the ipapi.co JSON payload the client reads.
// The provider signals lookup failures in-band with an "error" field rather
// than a non-2xx status.
type geoResponse struct {
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryName string `json:"country_name"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

type geoClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewGeoClient constructs a GeoLocator backed by the ipapi.co HTTP API.
// Empty config fields fall back to the public endpoint and a 5s timeout.
func NewGeoClient(cfg config.Adapter, logger *logger.Logger) GeoLocator {
	baseURL := strings.TrimRight(cfg.GeoBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGeoBaseURL
	}

	timeout := cfg.GeoTimeout
	if timeout <= 0 {
		timeout = defaultGeoTimeout
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &geoClient{client: cli, logger: logger}
}

// Locate implements [GeoLocator]. Private, loopback and unparseable addresses
// are skipped without a network call; provider failures of any kind resolve
// to nil.
func (g *geoClient) Locate(ctx context.Context, ip string) *string {
	if !isPublicIP(ip) {
		return nil
	}

	var body geoResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/" + ip + "/json/")
	if err != nil {
		g.logger.Debug().Err(err).Str("ip", ip).Msg("geolocation request failed")
		return nil
	}
	if resp.IsError() || body.Error {
		g.logger.Debug().Str("ip", ip).Str("reason", body.Reason).Msg("geolocation lookup rejected")
		return nil
	}

	location := joinLocationParts(body.City, body.Region, body.CountryName)
	if location == "" {
		return nil
	}

	return &location
}

func isPublicIP(ip string) bool {
	if ip == "" || ip == models.UnknownValue {
		return false
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}

	return !parsed.IsPrivate() && !parsed.IsLoopback() && !parsed.IsLinkLocalUnicast() && !parsed.IsUnspecified()
}

func joinLocationParts(parts ...string) string {
	filled := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			filled = append(filled, part)
		}
	}

	return strings.Join(filled, ", ")
}
