package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"league-logos/internal/branding"
	"league-logos/internal/config"
	"league-logos/internal/constants"
	"league-logos/internal/domain"
	"league-logos/internal/metrics"
	"league-logos/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type LogoService struct {
	leagues  *LeagueService
	repo     *repository.LeagueRepository
	builder  branding.RequestBuilder
	width    int
	height   int
	recorder *metrics.Recorder
	logger   zerolog.Logger
}

func NewLogoService(leagues *LeagueService, repo *repository.LeagueRepository, cfg *config.Config, recorder *metrics.Recorder, logger zerolog.Logger) *LogoService {
	return &LogoService{
		leagues:  leagues,
		repo:     repo,
		builder:  branding.RequestBuilder{BaseURL: cfg.ImageBaseURL, Model: cfg.ImageModel},
		width:    cfg.ImageWidth,
		height:   cfg.ImageHeight,
		recorder: recorder,
		logger:   logger,
	}
}

type GenerateInput struct {
	LeagueID       string
	TeamID         string
	TeamName       string
	Mascot         string
	PrimaryColor   string
	SecondaryColor string
	Seed           string
	Width          int
	Height         int
}

func (in GenerateInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.TeamName) == "" {
		missing = append(missing, "teamName")
	}
	if strings.TrimSpace(in.Mascot) == "" {
		missing = append(missing, "mascot")
	}
	if strings.TrimSpace(in.PrimaryColor) == "" {
		missing = append(missing, "primaryColor")
	}
	if strings.TrimSpace(in.SecondaryColor) == "" {
		missing = append(missing, "secondaryColor")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidArgument, strings.Join(missing, ", "))
	}
	if in.Width < 0 || in.Height < 0 {
		return fmt.Errorf("%w: width and height must not be negative", ErrInvalidArgument)
	}
	return nil
}

// Generate builds the image request for one team. When LeagueID and TeamID
// name a cached team the resulting URL and seed are stored on it.
func (s *LogoService) Generate(ctx context.Context, in GenerateInput) (*domain.LogoResult, error) {
	res, err := s.generate(ctx, in)
	s.recorder.RecordGeneration(branding.DefaultProvider, err)
	return res, err
}

func (s *LogoService) generate(ctx context.Context, in GenerateInput) (*domain.LogoResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	seed := strings.TrimSpace(in.Seed)
	if seed == "" {
		seed = strconv.Itoa(rand.IntN(constants.MaxRandomSeed))
	}
	width, height := in.Width, in.Height
	if width == 0 {
		width = s.width
	}
	if height == 0 {
		height = s.height
	}

	prompt := branding.BuildPrompt(branding.PromptInput{
		TeamName:       in.TeamName,
		Mascot:         in.Mascot,
		PrimaryColor:   in.PrimaryColor,
		SecondaryColor: in.SecondaryColor,
	})
	req := s.builder.Build(prompt, seed, width, height)

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	model := req.Model
	if model == "" {
		model = branding.DefaultImageModel
	}

	result := &domain.LogoResult{
		GenerationID:   id,
		LeagueID:       in.LeagueID,
		TeamID:         in.TeamID,
		TeamName:       in.TeamName,
		Mascot:         in.Mascot,
		DepictedMascot: branding.DeriveMascot(in.TeamName),
		Primary:        in.PrimaryColor,
		Secondary:      in.SecondaryColor,
		Provider:       req.Provider,
		Model:          model,
		Prompt:         req.Prompt,
		Seed:           req.Seed,
		ImageURL:       req.URL,
		Width:          req.Width,
		Height:         req.Height,
	}

	if in.LeagueID != "" && in.TeamID != "" {
		_, err := s.repo.UpdateTeam(ctx, in.LeagueID, in.TeamID, func(t *domain.Team) error {
			t.LogoURL = req.URL
			t.LogoSeed = req.Seed
			return nil
		})
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.logger.Debug().Str("league_id", in.LeagueID).Str("team_id", in.TeamID).Msg("team not cached, logo not recorded")
		case err != nil:
			s.logger.Error().Err(err).Str("league_id", in.LeagueID).Str("team_id", in.TeamID).Msg("failed to record logo")
			return nil, fmt.Errorf("failed to record logo: %w", err)
		}
	}

	s.logger.Info().
		Str("generation_id", id).
		Str("team_name", in.TeamName).
		Str("depicted", result.DepictedMascot).
		Str("seed", seed).
		Msg("logo request built")

	return result, nil
}

// GenerateLeague builds one logo per roster team using each team's current
// mascot and colors. Results follow roster order.
func (s *LogoService) GenerateLeague(ctx context.Context, leagueID, seed string) ([]domain.LogoResult, error) {
	roster, err := s.leagues.GetLeague(ctx, leagueID, false)
	if err != nil {
		return nil, err
	}

	results := make([]domain.LogoResult, len(roster.Teams))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.GenerateConcurrency)
	for i, team := range roster.Teams {
		g.Go(func() error {
			res, err := s.Generate(gctx, GenerateInput{
				LeagueID:       team.LeagueID,
				TeamID:         team.TeamID,
				TeamName:       team.TeamName,
				Mascot:         team.Mascot,
				PrimaryColor:   team.Primary,
				SecondaryColor: team.Secondary,
				Seed:           seed,
			})
			if err != nil {
				return fmt.Errorf("team %s: %w", team.TeamID, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info().Str("league_id", roster.League.LeagueID).Int("logos", len(results)).Msg("league logos built")
	return results, nil
}

// Remix applies the next suggested palette to a team and advances its tick.
func (s *LogoService) Remix(ctx context.Context, leagueID, teamID string) (*domain.Team, error) {
	team, err := s.repo.UpdateTeam(ctx, leagueID, teamID, func(t *domain.Team) error {
		p := branding.SuggestColors(t.TeamName, t.Mascot, t.RemixTick)
		t.Primary = p.Primary
		t.Secondary = p.Secondary
		t.RemixTick++
		t.ColorsEdited = true
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s/%s", ErrTeamNotFound, leagueID, teamID)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("league_id", leagueID).
		Str("team_id", teamID).
		Int("tick", team.RemixTick).
		Str("primary", team.Primary).
		Str("secondary", team.Secondary).
		Msg("colors remixed")
	return team, nil
}

// TeamPatch holds optional edits; nil fields are left unchanged.
type TeamPatch struct {
	Mascot    *string
	Primary   *string
	Secondary *string
}

func (s *LogoService) UpdateTeam(ctx context.Context, leagueID, teamID string, patch TeamPatch) (*domain.Team, error) {
	if patch.Mascot != nil && strings.TrimSpace(*patch.Mascot) == "" {
		return nil, fmt.Errorf("%w: mascot must not be empty", ErrInvalidArgument)
	}
	for _, c := range []*string{patch.Primary, patch.Secondary} {
		if c != nil && strings.TrimSpace(*c) == "" {
			return nil, fmt.Errorf("%w: colors must not be empty", ErrInvalidArgument)
		}
	}

	team, err := s.repo.UpdateTeam(ctx, leagueID, teamID, func(t *domain.Team) error {
		if patch.Mascot != nil {
			t.Mascot = strings.TrimSpace(*patch.Mascot)
			t.MascotEdited = true
		}
		if patch.Primary != nil {
			t.Primary = NormalizeHex(*patch.Primary)
			t.ColorsEdited = true
		}
		if patch.Secondary != nil {
			t.Secondary = NormalizeHex(*patch.Secondary)
			t.ColorsEdited = true
		}
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s/%s", ErrTeamNotFound, leagueID, teamID)
	}
	if err != nil {
		return nil, err
	}
	return team, nil
}

// NormalizeHex trims a color and adds the leading '#' to bare 3 or 6 digit
// hex values. Anything else passes through trimmed.
func NormalizeHex(color string) string {
	c := strings.TrimSpace(color)
	body := strings.TrimPrefix(c, "#")
	if (len(body) != 3 && len(body) != 6) || strings.IndexFunc(body, notHex) >= 0 {
		return c
	}
	return "#" + strings.ToLower(body)
}

func notHex(r rune) bool {
	return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F')
}

// Preview is the branding pipeline output for one team. DisplayMascot is the
// given mascot, or the derived one when it is blank or still the team name.
type Preview struct {
	CleanedName   string
	Mascot        string
	DisplayMascot string
	BankKey       string
	Primary       string
	Secondary     string
	Prompt        string
}

// Preview runs the branding pipeline without touching storage. An empty
// mascot stands for the team name itself. A nil remix gives the default
// palette; otherwise the palette suggested at that tick.
func (s *LogoService) Preview(teamName, mascot string, remix *int) (Preview, error) {
	return BuildPreview(teamName, mascot, remix)
}

func BuildPreview(teamName, mascot string, remix *int) (Preview, error) {
	if strings.TrimSpace(teamName) == "" {
		return Preview{}, fmt.Errorf("%w: teamName is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(mascot) == "" {
		mascot = teamName
	}

	colors := branding.ColorsFor(teamName, mascot)
	if remix != nil {
		if *remix < 0 {
			return Preview{}, fmt.Errorf("%w: remix must not be negative", ErrInvalidArgument)
		}
		colors = branding.SuggestColors(teamName, mascot, *remix)
	}

	return Preview{
		CleanedName:   branding.Clean(teamName),
		Mascot:        branding.DeriveMascot(teamName),
		DisplayMascot: branding.DepictTerm(teamName, mascot),
		BankKey:       branding.BankKeyFor(teamName, mascot),
		Primary:       colors.Primary,
		Secondary:     colors.Secondary,
		Prompt: branding.BuildPrompt(branding.PromptInput{
			TeamName:       teamName,
			Mascot:         mascot,
			PrimaryColor:   colors.Primary,
			SecondaryColor: colors.Secondary,
		}),
	}, nil
}
