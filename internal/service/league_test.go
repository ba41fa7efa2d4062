package service

import (
	"context"
	"errors"
	"testing"

	"league-logos/internal/api"
	"league-logos/internal/branding"
	"league-logos/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeagueBuildsTeams(t *testing.T) {
	f := newFixture(t)

	roster, err := f.leagues.GetLeague(context.Background(), "L1", false)
	require.NoError(t, err)

	assert.Equal(t, "Dynasty Degens", roster.League.Name)
	require.Len(t, roster.Teams, 3)

	foxes := roster.Teams[0]
	assert.Equal(t, "1", foxes.TeamID)
	assert.Equal(t, "alice", foxes.Owner)
	assert.Equal(t, "The Riverside Foxes", foxes.TeamName)
	assert.Equal(t, "The Riverside Foxes", foxes.Mascot)
	want := branding.ColorsFor("The Riverside Foxes", "The Riverside Foxes")
	assert.Equal(t, want.Primary, foxes.Primary)
	assert.Equal(t, want.Secondary, foxes.Secondary)

	assert.Equal(t, "Dynasty Degens Team 2", roster.Teams[1].TeamName)
	assert.Equal(t, "bob", roster.Teams[1].Owner)

	assert.Equal(t, "Dynasty Degens Team 3", roster.Teams[2].TeamName)
	assert.Equal(t, constants.UnknownOwner, roster.Teams[2].Owner)

	assert.Equal(t, 3, f.recorder.Snapshot(constants.SleeperProvider).Calls)
}

func TestGetLeagueServesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.leagues.GetLeague(ctx, "L1", false)
	require.NoError(t, err)
	_, err = f.leagues.GetLeague(ctx, "L1", false)
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.source.calls.Load())

	_, err = f.leagues.GetLeague(ctx, "L1", true)
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.source.calls.Load())
}

func TestGetLeagueRefreshKeepsEdits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.leagues.GetLeague(ctx, "L1", false)
	require.NoError(t, err)

	mascot := "Fox"
	_, err = f.logos.UpdateTeam(ctx, "L1", "1", TeamPatch{Mascot: &mascot})
	require.NoError(t, err)

	f.source.users[0].Metadata.TeamName = "Riverside Foxes FC"
	roster, err := f.leagues.GetLeague(ctx, "L1", true)
	require.NoError(t, err)
	assert.Equal(t, "Riverside Foxes FC", roster.Teams[0].TeamName)
	assert.Equal(t, "Fox", roster.Teams[0].Mascot)
}

func TestGetLeagueRefreshRenamesUneditedTeam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.leagues.GetLeague(ctx, "L1", false)
	require.NoError(t, err)

	f.source.users[0].Metadata.TeamName = "Northside Wolves"
	roster, err := f.leagues.GetLeague(ctx, "L1", true)
	require.NoError(t, err)

	team := roster.Teams[0]
	want := branding.ColorsFor("Northside Wolves", "Northside Wolves")
	assert.Equal(t, "Northside Wolves", team.Mascot)
	assert.Equal(t, want.Primary, team.Primary)
	assert.Equal(t, want.Secondary, team.Secondary)
	assert.Equal(t, "Wolf", branding.DepictTerm(team.TeamName, team.Mascot))
}

func TestGetLeagueNotFound(t *testing.T) {
	f := newFixture(t)
	f.source.err = api.ErrNotFound

	_, err := f.leagues.GetLeague(context.Background(), "L1", false)
	assert.ErrorIs(t, err, ErrLeagueNotFound)
}

func TestGetLeagueServesStaleOnUpstreamFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.leagues.GetLeague(ctx, "L1", false)
	require.NoError(t, err)

	f.source.err = &api.StatusError{StatusCode: 503}
	roster, err := f.leagues.GetLeague(ctx, "L1", true)
	require.NoError(t, err)
	assert.Len(t, roster.Teams, 3)
	assert.Equal(t, 3, f.recorder.Snapshot(constants.SleeperProvider).Errors)
}

func TestGetLeagueUpstreamFailureWithoutCache(t *testing.T) {
	f := newFixture(t)
	f.source.err = errors.New("connection refused")

	_, err := f.leagues.GetLeague(context.Background(), "L1", false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLeagueNotFound)
}

func TestGetLeagueRequiresID(t *testing.T) {
	f := newFixture(t)
	_, err := f.leagues.GetLeague(context.Background(), "  ", false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
