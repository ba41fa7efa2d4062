package server

import (
	"context"
	"errors"

	"league-logos/internal/domain"
	"league-logos/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

type LogoServer struct {
	leagueSvc *service.LeagueService
	logoSvc   *service.LogoService
}

func NewLogoServer(leagueSvc *service.LeagueService, logoSvc *service.LogoService) *LogoServer {
	return &LogoServer{leagueSvc: leagueSvc, logoSvc: logoSvc}
}

var _ LogoServiceHandler = (*LogoServer)(nil)

func (s *LogoServer) GetLeague(ctx context.Context, req *connect.Request[GetLeagueRequest]) (*connect.Response[GetLeagueResponse], error) {
	roster, err := s.leagueSvc.GetLeague(ctx, req.Msg.LeagueID, req.Msg.Refresh)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	teams := make([]Team, 0, len(roster.Teams))
	for i := range roster.Teams {
		teams = append(teams, toTeam(&roster.Teams[i]))
	}

	return connect.NewResponse(&GetLeagueResponse{
		LeagueID: roster.League.LeagueID,
		Name:     roster.League.Name,
		Season:   roster.League.Season,
		Sport:    roster.League.Sport,
		Teams:    teams,
	}), nil
}

func (s *LogoServer) UpdateTeam(ctx context.Context, req *connect.Request[UpdateTeamRequest]) (*connect.Response[TeamResponse], error) {
	team, err := s.logoSvc.UpdateTeam(ctx, req.Msg.LeagueID, req.Msg.TeamID, service.TeamPatch{
		Mascot:    req.Msg.Mascot,
		Primary:   req.Msg.Primary,
		Secondary: req.Msg.Secondary,
	})
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&TeamResponse{Team: toTeam(team)}), nil
}

func (s *LogoServer) RemixColors(ctx context.Context, req *connect.Request[RemixColorsRequest]) (*connect.Response[TeamResponse], error) {
	team, err := s.logoSvc.Remix(ctx, req.Msg.LeagueID, req.Msg.TeamID)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&TeamResponse{Team: toTeam(team)}), nil
}

func (s *LogoServer) GenerateLogo(ctx context.Context, req *connect.Request[GenerateLogoRequest]) (*connect.Response[Logo], error) {
	m := req.Msg
	res, err := s.logoSvc.Generate(ctx, service.GenerateInput{
		LeagueID:       m.LeagueID,
		TeamID:         m.TeamID,
		TeamName:       m.TeamName,
		Mascot:         m.Mascot,
		PrimaryColor:   m.PrimaryColor,
		SecondaryColor: m.SecondaryColor,
		Seed:           m.Seed,
		Width:          m.Width,
		Height:         m.Height,
	})
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	logo := toLogo(res)
	return connect.NewResponse(&logo), nil
}

func (s *LogoServer) GenerateLeagueLogos(ctx context.Context, req *connect.Request[GenerateLeagueLogosRequest]) (*connect.Response[GenerateLeagueLogosResponse], error) {
	results, err := s.logoSvc.GenerateLeague(ctx, req.Msg.LeagueID, req.Msg.Seed)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	logos := make([]Logo, 0, len(results))
	for i := range results {
		logos = append(logos, toLogo(&results[i]))
	}
	return connect.NewResponse(&GenerateLeagueLogosResponse{Logos: logos}), nil
}

func (s *LogoServer) PreviewTeam(ctx context.Context, req *connect.Request[PreviewTeamRequest]) (*connect.Response[PreviewTeamResponse], error) {
	p, err := s.logoSvc.Preview(req.Msg.TeamName, req.Msg.Mascot, req.Msg.Remix)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&PreviewTeamResponse{
		CleanedName:   p.CleanedName,
		Mascot:        p.Mascot,
		DisplayMascot: p.DisplayMascot,
		BankKey:       p.BankKey,
		Primary:       p.Primary,
		Secondary:     p.Secondary,
		Prompt:        p.Prompt,
	}), nil
}

func toConnectError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, service.ErrLeagueNotFound), errors.Is(err, service.ErrTeamNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		zerolog.Ctx(ctx).Error().Err(err).Msg("request failed")
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toTeam(t *domain.Team) Team {
	return Team{
		LeagueID:  t.LeagueID,
		TeamID:    t.TeamID,
		Owner:     t.Owner,
		TeamName:  t.TeamName,
		Mascot:    t.Mascot,
		Primary:   t.Primary,
		Secondary: t.Secondary,
		LogoURL:   t.LogoURL,
		LogoSeed:  t.LogoSeed,
		RemixTick: t.RemixTick,
	}
}

func toLogo(r *domain.LogoResult) Logo {
	return Logo{
		GenerationID:   r.GenerationID,
		LeagueID:       r.LeagueID,
		TeamID:         r.TeamID,
		TeamName:       r.TeamName,
		Mascot:         r.Mascot,
		DepictedMascot: r.DepictedMascot,
		Primary:        r.Primary,
		Secondary:      r.Secondary,
		Provider:       r.Provider,
		Model:          r.Model,
		Prompt:         r.Prompt,
		Seed:           r.Seed,
		ImageURL:       r.ImageURL,
		Width:          r.Width,
		Height:         r.Height,
	}
}
