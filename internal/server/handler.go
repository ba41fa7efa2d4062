package server

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const LogoServiceName = "leaguelogos.v1.LogoService"

const (
	GetLeagueProcedure           = "/" + LogoServiceName + "/GetLeague"
	UpdateTeamProcedure          = "/" + LogoServiceName + "/UpdateTeam"
	RemixColorsProcedure         = "/" + LogoServiceName + "/RemixColors"
	GenerateLogoProcedure        = "/" + LogoServiceName + "/GenerateLogo"
	GenerateLeagueLogosProcedure = "/" + LogoServiceName + "/GenerateLeagueLogos"
	PreviewTeamProcedure         = "/" + LogoServiceName + "/PreviewTeam"
)

// Procedures lists every mounted procedure path.
var Procedures = []string{
	GetLeagueProcedure,
	UpdateTeamProcedure,
	RemixColorsProcedure,
	GenerateLogoProcedure,
	GenerateLeagueLogosProcedure,
	PreviewTeamProcedure,
}

type LogoServiceHandler interface {
	GetLeague(context.Context, *connect.Request[GetLeagueRequest]) (*connect.Response[GetLeagueResponse], error)
	UpdateTeam(context.Context, *connect.Request[UpdateTeamRequest]) (*connect.Response[TeamResponse], error)
	RemixColors(context.Context, *connect.Request[RemixColorsRequest]) (*connect.Response[TeamResponse], error)
	GenerateLogo(context.Context, *connect.Request[GenerateLogoRequest]) (*connect.Response[Logo], error)
	GenerateLeagueLogos(context.Context, *connect.Request[GenerateLeagueLogosRequest]) (*connect.Response[GenerateLeagueLogosResponse], error)
	PreviewTeam(context.Context, *connect.Request[PreviewTeamRequest]) (*connect.Response[PreviewTeamResponse], error)
}

// NewLogoServiceHandler mounts every procedure under the service path.
func NewLogoServiceHandler(svc LogoServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(GetLeagueProcedure, connect.NewUnaryHandler(GetLeagueProcedure, svc.GetLeague, opts...))
	mux.Handle(UpdateTeamProcedure, connect.NewUnaryHandler(UpdateTeamProcedure, svc.UpdateTeam, opts...))
	mux.Handle(RemixColorsProcedure, connect.NewUnaryHandler(RemixColorsProcedure, svc.RemixColors, opts...))
	mux.Handle(GenerateLogoProcedure, connect.NewUnaryHandler(GenerateLogoProcedure, svc.GenerateLogo, opts...))
	mux.Handle(GenerateLeagueLogosProcedure, connect.NewUnaryHandler(GenerateLeagueLogosProcedure, svc.GenerateLeagueLogos, opts...))
	mux.Handle(PreviewTeamProcedure, connect.NewUnaryHandler(PreviewTeamProcedure, svc.PreviewTeam, opts...))

	return "/" + LogoServiceName + "/", mux
}

type LogoServiceClient struct {
	getLeague           *connect.Client[GetLeagueRequest, GetLeagueResponse]
	updateTeam          *connect.Client[UpdateTeamRequest, TeamResponse]
	remixColors         *connect.Client[RemixColorsRequest, TeamResponse]
	generateLogo        *connect.Client[GenerateLogoRequest, Logo]
	generateLeagueLogos *connect.Client[GenerateLeagueLogosRequest, GenerateLeagueLogosResponse]
	previewTeam         *connect.Client[PreviewTeamRequest, PreviewTeamResponse]
}

func NewLogoServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LogoServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &LogoServiceClient{
		getLeague:           connect.NewClient[GetLeagueRequest, GetLeagueResponse](httpClient, baseURL+GetLeagueProcedure, opts...),
		updateTeam:          connect.NewClient[UpdateTeamRequest, TeamResponse](httpClient, baseURL+UpdateTeamProcedure, opts...),
		remixColors:         connect.NewClient[RemixColorsRequest, TeamResponse](httpClient, baseURL+RemixColorsProcedure, opts...),
		generateLogo:        connect.NewClient[GenerateLogoRequest, Logo](httpClient, baseURL+GenerateLogoProcedure, opts...),
		generateLeagueLogos: connect.NewClient[GenerateLeagueLogosRequest, GenerateLeagueLogosResponse](httpClient, baseURL+GenerateLeagueLogosProcedure, opts...),
		previewTeam:         connect.NewClient[PreviewTeamRequest, PreviewTeamResponse](httpClient, baseURL+PreviewTeamProcedure, opts...),
	}
}

func (c *LogoServiceClient) GetLeague(ctx context.Context, req *connect.Request[GetLeagueRequest]) (*connect.Response[GetLeagueResponse], error) {
	return c.getLeague.CallUnary(ctx, req)
}

func (c *LogoServiceClient) UpdateTeam(ctx context.Context, req *connect.Request[UpdateTeamRequest]) (*connect.Response[TeamResponse], error) {
	return c.updateTeam.CallUnary(ctx, req)
}

func (c *LogoServiceClient) RemixColors(ctx context.Context, req *connect.Request[RemixColorsRequest]) (*connect.Response[TeamResponse], error) {
	return c.remixColors.CallUnary(ctx, req)
}

func (c *LogoServiceClient) GenerateLogo(ctx context.Context, req *connect.Request[GenerateLogoRequest]) (*connect.Response[Logo], error) {
	return c.generateLogo.CallUnary(ctx, req)
}

func (c *LogoServiceClient) GenerateLeagueLogos(ctx context.Context, req *connect.Request[GenerateLeagueLogosRequest]) (*connect.Response[GenerateLeagueLogosResponse], error) {
	return c.generateLeagueLogos.CallUnary(ctx, req)
}

func (c *LogoServiceClient) PreviewTeam(ctx context.Context, req *connect.Request[PreviewTeamRequest]) (*connect.Response[PreviewTeamResponse], error) {
	return c.previewTeam.CallUnary(ctx, req)
}
