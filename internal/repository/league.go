package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"league-logos/internal/constants"
	"league-logos/internal/domain"

	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("not found")

type LeagueRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewLeagueRepository(sqlDB *sql.DB, logger zerolog.Logger) *LeagueRepository {
	return &LeagueRepository{
		db:     sqlDB,
		logger: logger,
	}
}

const teamColumns = `league_id, team_id, owner, owner_id, team_name, mascot, primary_color, secondary_color,
	logo_url, logo_seed, remix_tick, mascot_edited, colors_edited, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (domain.Team, error) {
	var (
		t        domain.Team
		logoURL  sql.NullString
		logoSeed sql.NullString
	)
	err := row.Scan(
		&t.LeagueID, &t.TeamID, &t.Owner, &t.OwnerID, &t.TeamName, &t.Mascot, &t.Primary, &t.Secondary,
		&logoURL, &logoSeed, &t.RemixTick, &t.MascotEdited, &t.ColorsEdited, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Team{}, err
	}
	t.LogoURL = logoURL.String
	t.LogoSeed = logoSeed.String
	return t, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// SaveRoster upserts the league and its teams. Owner and team name always
// follow the roster source. Mascot and colors follow it too until the owner
// edits them. Teams no longer on the roster are removed.
func (r *LeagueRepository) SaveRoster(ctx context.Context, league domain.League, teams []domain.Team) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if league.LastFetchAt.IsZero() {
		league.LastFetchAt = now
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO leagues (league_id, name, season, sport, last_fetch_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (league_id) DO UPDATE SET
			name = excluded.name,
			season = excluded.season,
			sport = excluded.sport,
			last_fetch_at = excluded.last_fetch_at,
			updated_at = excluded.updated_at`,
		league.LeagueID, league.Name, league.Season, league.Sport, league.LastFetchAt, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert league %s: %w", league.LeagueID, err)
	}

	keep := make([]any, 0, len(teams)+1)
	keep = append(keep, league.LeagueID)

	for i := 0; i < len(teams); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(teams))

		for _, team := range teams[i:end] {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO teams (`+teamColumns+`)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (league_id, team_id) DO UPDATE SET
					owner = excluded.owner,
					owner_id = excluded.owner_id,
					team_name = excluded.team_name,
					mascot = CASE WHEN teams.mascot_edited THEN teams.mascot ELSE excluded.mascot END,
					primary_color = CASE WHEN teams.colors_edited THEN teams.primary_color ELSE excluded.primary_color END,
					secondary_color = CASE WHEN teams.colors_edited THEN teams.secondary_color ELSE excluded.secondary_color END,
					updated_at = excluded.updated_at`,
				league.LeagueID, team.TeamID, team.Owner, team.OwnerID, team.TeamName, team.Mascot,
				team.Primary, team.Secondary, nullable(team.LogoURL), nullable(team.LogoSeed), team.RemixTick,
				team.MascotEdited, team.ColorsEdited, now, now,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert team %s/%s: %w", league.LeagueID, team.TeamID, err)
			}
			keep = append(keep, team.TeamID)
		}
	}

	prune := `DELETE FROM teams WHERE league_id = ?`
	if len(keep) > 1 {
		prune += ` AND team_id NOT IN (?` + strings.Repeat(", ?", len(keep)-2) + `)`
	}
	res, err := tx.ExecContext(ctx, prune, keep...)
	if err != nil {
		return fmt.Errorf("failed to prune teams for league %s: %w", league.LeagueID, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		r.logger.Debug().Str("league_id", league.LeagueID).Int64("removed", n).Msg("pruned teams no longer on roster")
	}

	return tx.Commit()
}

func (r *LeagueRepository) GetLeague(ctx context.Context, leagueID string) (*domain.League, error) {
	var l domain.League
	err := r.db.QueryRowContext(ctx, `
		SELECT league_id, name, season, sport, last_fetch_at, created_at, updated_at
		FROM leagues WHERE league_id = ?`, leagueID,
	).Scan(&l.LeagueID, &l.Name, &l.Season, &l.Sport, &l.LastFetchAt, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("league %s: %w", leagueID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeagueRepository) ListTeams(ctx context.Context, leagueID string) ([]domain.Team, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+teamColumns+`
		FROM teams WHERE league_id = ?
		ORDER BY CAST(team_id AS INTEGER), team_id`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *LeagueRepository) GetRoster(ctx context.Context, leagueID string) (*domain.LeagueRoster, error) {
	league, err := r.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	teams, err := r.ListTeams(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return &domain.LeagueRoster{League: *league, Teams: teams}, nil
}

func (r *LeagueRepository) GetTeam(ctx context.Context, leagueID, teamID string) (*domain.Team, error) {
	t, err := scanTeam(r.db.QueryRowContext(ctx, `
		SELECT `+teamColumns+`
		FROM teams WHERE league_id = ? AND team_id = ?`, leagueID, teamID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %s/%s: %w", leagueID, teamID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTeam loads a team, lets fn edit it and writes the editable fields
// back in one transaction.
func (r *LeagueRepository) UpdateTeam(ctx context.Context, leagueID, teamID string, fn func(*domain.Team) error) (*domain.Team, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := scanTeam(tx.QueryRowContext(ctx, `
		SELECT `+teamColumns+`
		FROM teams WHERE league_id = ? AND team_id = ?`, leagueID, teamID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %s/%s: %w", leagueID, teamID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := fn(&t); err != nil {
		return nil, err
	}
	t.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		UPDATE teams SET
			mascot = ?, primary_color = ?, secondary_color = ?,
			logo_url = ?, logo_seed = ?, remix_tick = ?,
			mascot_edited = ?, colors_edited = ?, updated_at = ?
		WHERE league_id = ? AND team_id = ?`,
		t.Mascot, t.Primary, t.Secondary, nullable(t.LogoURL), nullable(t.LogoSeed), t.RemixTick,
		t.MascotEdited, t.ColorsEdited, t.UpdatedAt,
		leagueID, teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update team %s/%s: %w", leagueID, teamID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *LeagueRepository) ShouldRefresh(ctx context.Context, leagueID string, ttl time.Duration) (bool, error) {
	var lastFetchAt time.Time
	err := r.db.QueryRowContext(ctx, `SELECT last_fetch_at FROM leagues WHERE league_id = ?`, leagueID).Scan(&lastFetchAt)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("league_id", leagueID).Msg("league not cached, should refresh")
		return true, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("league_id", leagueID).Msg("failed to get league")
		return false, err
	}

	timeSince := time.Since(lastFetchAt)
	shouldRefresh := timeSince > ttl
	r.logger.Debug().
		Str("league_id", leagueID).
		Time("last_fetch_at", lastFetchAt).
		Dur("time_since", timeSince).
		Dur("ttl", ttl).
		Bool("should_refresh", shouldRefresh).
		Msg("checking if league should refresh")

	return shouldRefresh, nil
}
