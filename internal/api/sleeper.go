package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"league-logos/internal/config"
	"league-logos/internal/constants"

	"github.com/valyala/fasthttp"
)

// ErrNotFound is returned when Sleeper has no such league. Sleeper answers
// unknown ids with either a 404 or a literal null body.
var ErrNotFound = errors.New("sleeper: not found")

type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sleeper API error: %d (%s)", e.StatusCode, e.URL)
}

type SleeperClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewSleeperClient(cfg *config.Config) *SleeperClient {
	return &SleeperClient{
		baseURL: cfg.SleeperBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *SleeperClient) GetLeague(ctx context.Context, leagueID string) (*League, error) {
	return doRequest[League](ctx, c, fmt.Sprintf("%s/league/%s", c.baseURL, url.PathEscape(leagueID)))
}

func (c *SleeperClient) GetUsers(ctx context.Context, leagueID string) ([]User, error) {
	users, err := doRequest[[]User](ctx, c, fmt.Sprintf("%s/league/%s/users", c.baseURL, url.PathEscape(leagueID)))
	if err != nil {
		return nil, err
	}
	return *users, nil
}

func (c *SleeperClient) GetRosters(ctx context.Context, leagueID string) ([]Roster, error) {
	rosters, err := doRequest[[]Roster](ctx, c, fmt.Sprintf("%s/league/%s/rosters", c.baseURL, url.PathEscape(leagueID)))
	if err != nil {
		return nil, err
	}
	return *rosters, nil
}

func doRequest[T any](ctx context.Context, client *SleeperClient, url string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.DoTimeout(req, resp, constants.ExternalAPITimeout); err != nil {
			return nil, err
		}
	}

	switch status := resp.StatusCode(); {
	case status == fasthttp.StatusNotFound:
		return nil, ErrNotFound
	case status != fasthttp.StatusOK:
		return nil, &StatusError{URL: url, StatusCode: status}
	}

	var result *T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	if result == nil {
		return nil, ErrNotFound
	}
	return result, nil
}

type League struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Sport        string `json:"sport"`
	Status       string `json:"status"`
	TotalRosters int    `json:"total_rosters"`
}

type User struct {
	UserID      string       `json:"user_id"`
	DisplayName string       `json:"display_name"`
	Metadata    UserMetadata `json:"metadata"`
}

type UserMetadata struct {
	TeamName string `json:"team_name"`
}

type Roster struct {
	RosterID int    `json:"roster_id"`
	OwnerID  string `json:"owner_id"`
}
