package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/osavchuk/todostack/internal/config"
	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeoStub(t *testing.T, handler http.HandlerFunc) GeoLocator {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGeoClient(config.Adapter{GeoBaseURL: srv.URL, GeoTimeout: time.Second}, logger.Nop())
}

func TestRequestInfo_ClientIPHeaderOrder(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		wantIP  string
	}{
		{
			name: "x-forwarded-for wins and takes first entry",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
				"X-Real-IP":       "198.51.100.1",
			},
			wantIP: "203.0.113.7",
		},
		{
			name:    "x-real-ip second",
			headers: map[string]string{"X-Real-IP": "198.51.100.1"},
			wantIP:  "198.51.100.1",
		},
		{
			name:    "cf-connecting-ip third",
			headers: map[string]string{"CF-Connecting-IP": "198.51.100.2"},
			wantIP:  "198.51.100.2",
		},
		{
			name:    "x-client-ip last",
			headers: map[string]string{"X-Client-IP": "198.51.100.3"},
			wantIP:  "198.51.100.3",
		},
		{
			name:    "no headers",
			headers: nil,
			wantIP:  models.UnknownValue,
		},
	}

	geo := newGeoStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": true, "reason": "should not be called"}`))
	})
	provider := NewRequestInfoProvider(geo, logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for name, value := range tt.headers {
				req.Header.Set(name, value)
			}

			info := provider.RequestInfo(req)
			assert.Equal(t, tt.wantIP, info.IPAddress)
		})
	}
}

func TestRequestInfo_LocationFromEdgeHeaders(t *testing.T) {
	tests := []struct {
		name         string
		headers      map[string]string
		wantLocation string
	}{
		{
			name: "cloudflare with encoded city",
			headers: map[string]string{
				"CF-IPCountry": "BR",
				"CF-IPCity":    "S%C3%A3o%20Paulo",
			},
			wantLocation: "São Paulo, BR",
		},
		{
			name:         "cloudflare country only",
			headers:      map[string]string{"CF-IPCountry": "DE"},
			wantLocation: "DE",
		},
		{
			name: "vercel",
			headers: map[string]string{
				"X-Vercel-IP-Country": "US",
				"X-Vercel-IP-City":    "Seattle",
			},
			wantLocation: "Seattle, US",
		},
		{
			name:         "cloudfront",
			headers:      map[string]string{"CloudFront-Viewer-Country": "FR"},
			wantLocation: "FR",
		},
	}

	geoCalled := false
	geo := newGeoStub(t, func(w http.ResponseWriter, r *http.Request) {
		geoCalled = true
		w.Write([]byte(`{}`))
	})
	provider := NewRequestInfoProvider(geo, logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for name, value := range tt.headers {
				req.Header.Set(name, value)
			}

			info := provider.RequestInfo(req)
			assert.Equal(t, tt.wantLocation, info.Location)
		})
	}

	assert.False(t, geoCalled, "edge headers should preempt the geolocation lookup")
}

func TestRequestInfo_LocationFromGeoLookup(t *testing.T) {
	geo := newGeoStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/203.0.113.7/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"city": "Lisbon", "region": "Lisboa", "country_name": "Portugal"}`))
	})
	provider := NewRequestInfoProvider(geo, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	info := provider.RequestInfo(req)

	assert.Equal(t, "203.0.113.7", info.IPAddress)
	assert.Equal(t, "Mozilla/5.0", info.UserAgent)
	assert.Equal(t, "Lisbon, Lisboa, Portugal", info.Location)
}

func TestRequestInfo_GeoFailureFallsBackToUnknown(t *testing.T) {
	geo := newGeoStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": true, "reason": "RateLimited"}`))
	})
	provider := NewRequestInfoProvider(geo, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "203.0.113.9")

	info := provider.RequestInfo(req)
	assert.Equal(t, models.UnknownValue, info.Location)
}

func TestGeoClient_SkipsPrivateAddresses(t *testing.T) {
	geoCalled := false
	geo := newGeoStub(t, func(w http.ResponseWriter, r *http.Request) {
		geoCalled = true
	})

	for _, ip := range []string{"192.168.1.10", "10.0.0.5", "127.0.0.1", "not-an-ip", models.UnknownValue, ""} {
		assert.Nil(t, geo.Locate(context.Background(), ip), ip)
	}

	assert.False(t, geoCalled)
}

func TestGeoClient_PartialLocationParts(t *testing.T) {
	geo := newGeoStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"city": "", "region": "", "country_name": "Iceland"}`))
	})

	location := geo.Locate(context.Background(), "203.0.113.20")
	require.NotNil(t, location)
	assert.Equal(t, "Iceland", *location)
}
