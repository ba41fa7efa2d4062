package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"league-logos/internal/api"
	"league-logos/internal/config"
	"league-logos/internal/database"
	fxmodules "league-logos/internal/fx"
	"league-logos/internal/metrics"
	"league-logos/internal/repository"
	"league-logos/internal/server"
	"league-logos/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, withMetrics bool) http.Handler {
	t.Helper()
	cfg := &config.Config{
		DBPath:         filepath.Join(t.TempDir(), "logos.db"),
		RosterCacheTTL: time.Hour,
		ImageWidth:     1024,
		ImageHeight:    1024,
	}
	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rec, handler, _, err := metrics.Setup(t.Context(), metrics.TelemetryConfig{Enabled: withMetrics})
	require.NoError(t, err)

	repo := repository.NewLeagueRepository(db, zerolog.Nop())
	leagues := service.NewLeagueService(api.NewSleeperClient(&config.Config{SleeperBaseURL: "http://127.0.0.1:1"}), repo, rec, cfg, zerolog.Nop())
	logos := service.NewLogoService(leagues, repo, cfg, rec, zerolog.Nop())

	return newRouter(server.NewLogoServer(leagues, logos), &fxmodules.Telemetry{Recorder: rec, Handler: handler}, cfg, db, zerolog.Nop())
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, false)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_requests_total")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMetricsDisabled(t *testing.T) {
	router := newTestRouter(t, false)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPreviewRoute(t *testing.T) {
	router := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodPost, server.PreviewTeamProcedure, strings.NewReader(`{"teamName":"Bay Area Bears"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"mascot":"Bear"`)
	assert.Contains(t, rr.Body.String(), `"bankKey":"bear"`)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodOptions, server.GenerateLogoProcedure, nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
