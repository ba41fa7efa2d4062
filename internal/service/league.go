package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"league-logos/internal/api"
	"league-logos/internal/branding"
	"league-logos/internal/config"
	"league-logos/internal/constants"
	"league-logos/internal/domain"
	"league-logos/internal/metrics"
	"league-logos/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// RosterSource is the upstream fantasy platform. *api.SleeperClient
// satisfies it.
type RosterSource interface {
	GetLeague(ctx context.Context, leagueID string) (*api.League, error)
	GetUsers(ctx context.Context, leagueID string) ([]api.User, error)
	GetRosters(ctx context.Context, leagueID string) ([]api.Roster, error)
}

type LeagueService struct {
	source   RosterSource
	repo     *repository.LeagueRepository
	recorder *metrics.Recorder
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewLeagueService(source RosterSource, repo *repository.LeagueRepository, recorder *metrics.Recorder, cfg *config.Config, logger zerolog.Logger) *LeagueService {
	return &LeagueService{
		source:   source,
		repo:     repo,
		recorder: recorder,
		ttl:      cfg.RosterCacheTTL,
		logger:   logger,
	}
}

// GetLeague returns the cached roster while it is fresh and refetches it
// otherwise or when refresh is set. A failed refetch falls back to a stale
// cached copy unless the league is gone upstream.
func (s *LeagueService) GetLeague(ctx context.Context, leagueID string, refresh bool) (*domain.LeagueRoster, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidArgument)
	}

	s.logger.Info().Str("league_id", leagueID).Bool("refresh", refresh).Msg("getting league")

	shouldRefresh := refresh
	if !shouldRefresh {
		var err error
		shouldRefresh, err = s.repo.ShouldRefresh(ctx, leagueID, s.ttl)
		if err != nil {
			return nil, err
		}
	}

	if !shouldRefresh {
		roster, err := s.repo.GetRoster(ctx, leagueID)
		if err == nil {
			s.logger.Info().Str("league_id", leagueID).Int("teams", len(roster.Teams)).Msg("returning cached league")
			return roster, nil
		}
		s.logger.Debug().Err(err).Str("league_id", leagueID).Msg("cached league unreadable, fetching")
	}

	league, teams, err := s.fetch(ctx, leagueID)
	if err != nil {
		if errors.Is(err, ErrLeagueNotFound) {
			return nil, err
		}
		if cached, cacheErr := s.repo.GetRoster(ctx, leagueID); cacheErr == nil {
			s.logger.Warn().Err(err).Str("league_id", leagueID).Msg("refetch failed, serving stale league")
			return cached, nil
		}
		return nil, err
	}

	if err := s.repo.SaveRoster(ctx, league, teams); err != nil {
		s.logger.Error().Err(err).Str("league_id", leagueID).Msg("failed to save roster")
		return nil, fmt.Errorf("failed to save roster: %w", err)
	}

	roster, err := s.repo.GetRoster(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("league_id", leagueID).Int("teams", len(roster.Teams)).Msg("league refreshed")
	return roster, nil
}

func (s *LeagueService) fetch(ctx context.Context, leagueID string) (domain.League, []domain.Team, error) {
	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	league, teams, err := FetchRoster(apiCtx, s.source, s.recorder, leagueID)
	if err != nil && !errors.Is(err, ErrLeagueNotFound) {
		s.logger.Error().Err(err).Str("league_id", leagueID).Msg("failed to fetch league")
	}
	return league, teams, err
}

// FetchRoster loads a league with its users and rosters concurrently and
// joins them into teams. Unknown leagues yield ErrLeagueNotFound.
func FetchRoster(ctx context.Context, source RosterSource, recorder *metrics.Recorder, leagueID string) (domain.League, []domain.Team, error) {
	var (
		league  *api.League
		users   []api.User
		rosters []api.Roster
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		league, err = observe(recorder, func() (*api.League, error) { return source.GetLeague(gctx, leagueID) })
		return err
	})
	g.Go(func() error {
		var err error
		users, err = observe(recorder, func() ([]api.User, error) { return source.GetUsers(gctx, leagueID) })
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = observe(recorder, func() ([]api.Roster, error) { return source.GetRosters(gctx, leagueID) })
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return domain.League{}, nil, fmt.Errorf("%w: %s", ErrLeagueNotFound, leagueID)
		}
		return domain.League{}, nil, fmt.Errorf("failed to fetch league: %w", err)
	}

	name := strings.TrimSpace(league.Name)
	out := domain.League{
		LeagueID:    leagueID,
		Name:        name,
		Season:      league.Season,
		Sport:       league.Sport,
		LastFetchAt: time.Now().UTC(),
	}
	return out, RosterTeams(leagueID, name, users, rosters), nil
}

func observe[T any](recorder *metrics.Recorder, call func() (T, error)) (T, error) {
	start := time.Now()
	v, err := call()
	recorder.RecordProviderAttempt(constants.SleeperProvider, time.Since(start), err)
	return v, err
}

// RosterTeams joins rosters with their owners. The mascot starts as the team
// name and the colors as its deterministic palette.
func RosterTeams(leagueID, leagueName string, users []api.User, rosters []api.Roster) []domain.Team {
	byID := make(map[string]api.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}

	teams := make([]domain.Team, 0, len(rosters))
	for _, r := range rosters {
		user, ok := byID[r.OwnerID]

		teamName := ""
		if ok {
			teamName = strings.TrimSpace(user.Metadata.TeamName)
		}
		if teamName == "" {
			teamName = fmt.Sprintf("%s Team %d", leagueName, r.RosterID)
		}

		owner := constants.UnknownOwner
		if ok && user.DisplayName != "" {
			owner = user.DisplayName
		}

		colors := branding.ColorsFor(teamName, teamName)
		teams = append(teams, domain.Team{
			LeagueID:  leagueID,
			TeamID:    strconv.Itoa(r.RosterID),
			Owner:     owner,
			OwnerID:   r.OwnerID,
			TeamName:  teamName,
			Mascot:    teamName,
			Primary:   colors.Primary,
			Secondary: colors.Secondary,
		})
	}
	return teams
}
