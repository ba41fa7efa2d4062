package service

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"league-logos/internal/api"
	"league-logos/internal/config"
	"league-logos/internal/database"
	"league-logos/internal/metrics"
	"league-logos/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	league  *api.League
	users   []api.User
	rosters []api.Roster
	err     error
	calls   atomic.Int32
}

func (f *fakeSource) GetLeague(ctx context.Context, leagueID string) (*api.League, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.league, nil
}

func (f *fakeSource) GetUsers(ctx context.Context, leagueID string) ([]api.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeSource) GetRosters(ctx context.Context, leagueID string) ([]api.Roster, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rosters, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		league: &api.League{LeagueID: "L1", Name: "Dynasty Degens", Season: "2025", Sport: "nfl"},
		users: []api.User{
			{UserID: "u1", DisplayName: "alice", Metadata: api.UserMetadata{TeamName: "The Riverside Foxes"}},
			{UserID: "u2", DisplayName: "bob"},
		},
		rosters: []api.Roster{
			{RosterID: 1, OwnerID: "u1"},
			{RosterID: 2, OwnerID: "u2"},
			{RosterID: 3},
		},
	}
}

type fixture struct {
	source   *fakeSource
	repo     *repository.LeagueRepository
	recorder *metrics.Recorder
	leagues  *LeagueService
	logos    *LogoService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{
		DBPath:         filepath.Join(t.TempDir(), "logos.db"),
		RosterCacheTTL: time.Hour,
		ImageBaseURL:   "https://img.test/prompt/",
		ImageModel:     "flux",
		ImageWidth:     1024,
		ImageHeight:    1024,
	}
	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		source:   newFakeSource(),
		repo:     repository.NewLeagueRepository(db, zerolog.Nop()),
		recorder: metrics.NewRecorder(),
	}
	f.leagues = NewLeagueService(f.source, f.repo, f.recorder, cfg, zerolog.Nop())
	f.logos = NewLogoService(f.leagues, f.repo, cfg, f.recorder, zerolog.Nop())
	return f
}
