package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"league-logos/internal/metrics"
	"league-logos/internal/server"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var seen string
	handler := RequestID(logger, metrics.NewRecorder())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		zerolog.Ctx(r.Context()).Info().Msg("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	logs := buf.String()
	assert.Contains(t, logs, `"request_id":"`+seen+`"`)
	assert.Contains(t, logs, "inside handler")
	assert.Contains(t, logs, `"status":418`)
}

func TestRequestIDHonoursIncomingHeader(t *testing.T) {
	handler := RequestID(zerolog.Nop(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", 65))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Len(t, rr.Header().Get("X-Request-ID"), 36)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/healthz", normalizePath("/healthz"))
	assert.Equal(t, "/leaguelogos.v1.LogoService/GenerateLogo", normalizePath("/leaguelogos.v1.LogoService/GenerateLogo"))
	assert.Equal(t, "/mcp", normalizePath("/mcp"))
	assert.Equal(t, "other", normalizePath("/wp-admin"))
	assert.Equal(t, "other", normalizePath("/leaguelogos.v1.LogoService/"))

	for _, p := range server.Procedures {
		assert.Equal(t, p, normalizePath(p))
	}
}

func TestNormalizePathBoundsUnknownProcedures(t *testing.T) {
	labels := map[string]struct{}{}
	for i := range 1000 {
		labels[normalizePath(fmt.Sprintf("/leaguelogos.v1.LogoService/junk-%d", i))] = struct{}{}
	}
	assert.Equal(t, map[string]struct{}{"other": {}}, labels)
}
