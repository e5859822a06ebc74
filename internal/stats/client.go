package stats

import (
	"context"
	"fmt"
	"log/slog"

	jsoniter "github.com/json-iterator/go"

	"github.com/statside/statside/internal/fetcher"
	"github.com/statside/statside/internal/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client retrieves sports statistics from the JSON endpoints. Like the
// recruiting side it is stateless per call; a fetch failure propagates
// unchanged.
type Client struct {
	fetcher   fetcher.Fetcher
	endpoints *Endpoints
	logger    *slog.Logger
}

// NewClient creates a stats client.
func NewClient(f fetcher.Fetcher, baseURL string, logger *slog.Logger) *Client {
	return &Client{
		fetcher:   f,
		endpoints: NewEndpoints(baseURL),
		logger:    logger.With("component", "stats_client"),
	}
}

// Scoreboard returns the games for a league and params.
func (c *Client) Scoreboard(ctx context.Context, league League, p ScoreboardParams) (*Scoreboard, error) {
	var out Scoreboard
	u, err := c.endpoints.Scoreboard(league, p)
	if err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Teams returns the flattened team list for a league.
func (c *Client) Teams(ctx context.Context, league League) ([]Team, error) {
	var out TeamList
	u, err := c.endpoints.Teams(league)
	if err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return out.Flatten(), nil
}

// Team returns one team's profile.
func (c *Client) Team(ctx context.Context, league League, teamID string) (*Team, error) {
	var out TeamDetail
	u, err := c.endpoints.Team(league, teamID)
	if err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out.Team, nil
}

// Roster returns a team's athletes.
func (c *Client) Roster(ctx context.Context, league League, teamID string) ([]Athlete, error) {
	var out Roster
	u, err := c.endpoints.Roster(league, teamID)
	if err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return out.Athletes, nil
}

// Schedule returns a team's schedule for a season.
func (c *Client) Schedule(ctx context.Context, league League, teamID string, season int) (*Schedule, error) {
	var out Schedule
	u, err := c.endpoints.Schedule(league, teamID, season)
	if err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Standings returns the standings groups for a season.
func (c *Client) Standings(ctx context.Context, league League, season int) (*StandingsGroups, error) {
	var out StandingsGroups
	u, err := c.endpoints.Standings(league, season)
	if err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rankings returns the poll rankings for a league.
func (c *Client) Rankings(ctx context.Context, league League) (*Rankings, error) {
	var out Rankings
	u, err := c.endpoints.Rankings(league)
	if err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BoxScore returns the box score for a game.
func (c *Client) BoxScore(ctx context.Context, league League, eventID string) (*BoxScore, error) {
	summary, err := c.summary(ctx, league, eventID)
	if err != nil {
		return nil, err
	}
	return &summary.BoxScore, nil
}

// PlayByPlay returns the play list for a game.
func (c *Client) PlayByPlay(ctx context.Context, league League, eventID string) ([]Play, error) {
	summary, err := c.summary(ctx, league, eventID)
	if err != nil {
		return nil, err
	}
	return summary.Plays, nil
}

func (c *Client) summary(ctx context.Context, league League, eventID string) (*Summary, error) {
	var out Summary
	u, err := c.endpoints.Summary(league, eventID)
	if err != nil {
		return nil, err
	}
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON fetches a URL and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := types.NewRequest(rawURL)
	if err != nil {
		return err
	}
	req.Headers.Set("Accept", "application/json")

	resp, err := c.fetcher.Fetch(ctx, req)
	if err != nil {
		return err
	}
	if len(resp.Body) == 0 {
		return types.ErrEmptyResponse
	}

	if err := json.Unmarshal(resp.Body, v); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}

	c.logger.Debug("stats fetch decoded", "url", rawURL, "size", len(resp.Body))
	return nil
}
