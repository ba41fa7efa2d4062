package fx

import (
	"path/filepath"
	"testing"

	"league-logos/internal/config"
	"league-logos/internal/server"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModuleResolves(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "logos.db"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("METRICS_ENABLED", "false")

	var srv *server.LogoServer
	var tel *Telemetry
	var cfg *config.Config
	app := fxtest.New(t, Module, fx.NopLogger, fx.Populate(&srv, &tel, &cfg))
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	require.NotNil(t, srv)
	require.NotNil(t, tel.Recorder)
	require.Nil(t, tel.Handler)
	require.Equal(t, "error", cfg.LogLevel)
}
