package stats

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/statside/statside/internal/types"
)

// League identifies a sports-media vertical. The values mirror the
// recruiting verticals at their college level.
type League string

const (
	CollegeFootball         League = "college-football"
	MensCollegeBasketball   League = "mens-college-basketball"
	WomensCollegeBasketball League = "womens-college-basketball"
)

// DefaultBaseURL is the sports-media site API root.
const DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// leaguePaths maps a league to its sport/league URL segment.
var leaguePaths = map[League]string{
	CollegeFootball:         "football/college-football",
	MensCollegeBasketball:   "basketball/mens-college-basketball",
	WomensCollegeBasketball: "basketball/womens-college-basketball",
}

// ScoreboardParams narrows a scoreboard request. Zero values are omitted.
type ScoreboardParams struct {
	// Date in YYYYMMDD form.
	Date string

	// Group is the conference group identifier.
	Group string

	// Limit caps the number of events returned.
	Limit int
}

// Endpoints assembles fully parameterized source URLs for the JSON
// endpoints. Pure; no I/O.
type Endpoints struct {
	baseURL string
}

// NewEndpoints creates an endpoint builder rooted at the given base URL.
// An empty base falls back to DefaultBaseURL.
func NewEndpoints(baseURL string) *Endpoints {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Endpoints{baseURL: baseURL}
}

func (e *Endpoints) leaguePath(league League) (string, error) {
	path, ok := leaguePaths[league]
	if !ok {
		return "", &types.ConfigError{Param: "league", Value: string(league)}
	}
	return path, nil
}

// Scoreboard builds the scoreboard URL for a league and params.
func (e *Endpoints) Scoreboard(league League, p ScoreboardParams) (string, error) {
	path, err := e.leaguePath(league)
	if err != nil {
		return "", err
	}
	params := url.Values{}
	if p.Date != "" {
		params.Set("dates", p.Date)
	}
	if p.Group != "" {
		params.Set("groups", p.Group)
	}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	u := fmt.Sprintf("%s/%s/scoreboard", e.baseURL, path)
	if q := params.Encode(); q != "" {
		u += "?" + q
	}
	return u, nil
}

// Teams builds the team-list URL for a league.
func (e *Endpoints) Teams(league League) (string, error) {
	path, err := e.leaguePath(league)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/teams", e.baseURL, path), nil
}

// Team builds the team-detail URL.
func (e *Endpoints) Team(league League, teamID string) (string, error) {
	path, err := e.leaguePath(league)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/teams/%s", e.baseURL, path, url.PathEscape(teamID)), nil
}

// Roster builds the team-roster URL.
func (e *Endpoints) Roster(league League, teamID string) (string, error) {
	path, err := e.leaguePath(league)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/teams/%s/roster", e.baseURL, path, url.PathEscape(teamID)), nil
}

// Schedule builds the team-schedule URL. A zero season means the current
// one upstream.
func (e *Endpoints) Schedule(league League, teamID string, season int) (string, error) {
	path, err := e.leaguePath(league)
	if err != nil {
		return "", err
	}
	u := fmt.Sprintf("%s/%s/teams/%s/schedule", e.baseURL, path, url.PathEscape(teamID))
	if season > 0 {
		u += "?season=" + strconv.Itoa(season)
	}
	return u, nil
}

// Standings builds the standings URL. A zero season means the current one
// upstream.
func (e *Endpoints) Standings(league League, season int) (string, error) {
	path, err := e.leaguePath(league)
	if err != nil {
		return "", err
	}
	u := fmt.Sprintf("%s/%s/standings", e.baseURL, path)
	if season > 0 {
		u += "?season=" + strconv.Itoa(season)
	}
	return u, nil
}

// Rankings builds the poll-rankings URL.
func (e *Endpoints) Rankings(league League) (string, error) {
	path, err := e.leaguePath(league)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/rankings", e.baseURL, path), nil
}

// Summary builds the game-summary URL; the response carries both the box
// score and the play-by-play list.
func (e *Endpoints) Summary(league League, eventID string) (string, error) {
	path, err := e.leaguePath(league)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/summary?event=%s", e.baseURL, path, url.QueryEscape(eventID)), nil
}
