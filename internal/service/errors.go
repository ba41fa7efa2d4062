package service

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrLeagueNotFound  = errors.New("league not found")
	ErrTeamNotFound    = errors.New("team not found")
)
