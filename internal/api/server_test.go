package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-tracker-api/infrastructure/datasource/mock"
	"github.com/vfg2006/campaign-tracker-api/internal/api/handler"
	"github.com/vfg2006/campaign-tracker-api/internal/config"
	"github.com/vfg2006/campaign-tracker-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.Server{Host: "localhost", Port: "0"},
		CORS:      config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
		RateLimit: config.RateLimit{Requests: 0, Window: time.Minute},
		Theme: config.Theme{
			Title:           "Marketing Campaign Tracker",
			CurrencySymbol:  "₦",
			Locale:          "en",
			ShowCTR:         true,
			ShowImpressions: true,
		},
	}
}

func newTestHandler() http.Handler {
	cfg := testConfig()
	source := mock.New(42, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 30)
	return NewHandler(cfg, campaigning.NewService(source, cfg.Theme), handler.CronJobServices{})
}

func TestNewHandler_EndToEnd(t *testing.T) {
	log.SetupTestLogger()

	h := newTestHandler()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		contains   string
	}{
		{"healthcheck", "/healthcheck", http.StatusOK, `"status":"ok"`},
		{"lista de campanhas", "/v1/campaigns", http.StatusOK, "Social Media Blast"},
		{"métricas de uma campanha", "/v1/campaigns/Google%20Ads/metrics", http.StatusOK, `"roi_percent"`},
		{"campanha inexistente", "/v1/campaigns/TikTok/metrics", http.StatusNotFound, "CMP_001"},
		{"resumo do portfólio", "/v1/portfolio/summary", http.StatusOK, `"campaign_count":5`},
		{"dashboard", "/v1/dashboard", http.StatusOK, "Daily Revenue Performance"},
		{"métricas prometheus", "/metrics", http.StatusOK, "campaign_tracker_http_request_duration_seconds"},
		{"rota inexistente", "/v1/nope", http.StatusNotFound, "VAL_005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestNewHandler_Headers(t *testing.T) {
	log.SetupTestLogger()

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()

	newTestHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
