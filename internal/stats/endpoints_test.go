package stats

import (
	"errors"
	"testing"

	"github.com/statside/statside/internal/types"
)

func TestScoreboardURL(t *testing.T) {
	e := NewEndpoints("")

	got, err := e.Scoreboard(CollegeFootball, ScoreboardParams{Date: "20260905", Group: "80", Limit: 200})
	if err != nil {
		t.Fatalf("scoreboard: %v", err)
	}
	want := DefaultBaseURL + "/football/college-football/scoreboard?dates=20260905&groups=80&limit=200"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestScoreboardURLNoParams(t *testing.T) {
	e := NewEndpoints("http://localhost:9999")

	got, err := e.Scoreboard(MensCollegeBasketball, ScoreboardParams{})
	if err != nil {
		t.Fatalf("scoreboard: %v", err)
	}
	want := "http://localhost:9999/basketball/mens-college-basketball/scoreboard"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestTeamEndpoints(t *testing.T) {
	e := NewEndpoints("")

	cases := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"teams", func() (string, error) { return e.Teams(WomensCollegeBasketball) },
			DefaultBaseURL + "/basketball/womens-college-basketball/teams"},
		{"team", func() (string, error) { return e.Team(CollegeFootball, "194") },
			DefaultBaseURL + "/football/college-football/teams/194"},
		{"roster", func() (string, error) { return e.Roster(CollegeFootball, "194") },
			DefaultBaseURL + "/football/college-football/teams/194/roster"},
		{"schedule", func() (string, error) { return e.Schedule(CollegeFootball, "194", 2026) },
			DefaultBaseURL + "/football/college-football/teams/194/schedule?season=2026"},
		{"standings", func() (string, error) { return e.Standings(CollegeFootball, 2026) },
			DefaultBaseURL + "/football/college-football/standings?season=2026"},
		{"rankings", func() (string, error) { return e.Rankings(CollegeFootball) },
			DefaultBaseURL + "/football/college-football/rankings"},
		{"summary", func() (string, error) { return e.Summary(CollegeFootball, "401520281") },
			DefaultBaseURL + "/football/college-football/summary?event=401520281"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.got()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestUnknownLeagueFailsFast(t *testing.T) {
	e := NewEndpoints("")

	_, err := e.Scoreboard(League("nhl"), ScoreboardParams{})
	if err == nil {
		t.Fatal("expected error")
	}
	var cfgErr *types.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError, got %T: %v", err, err)
	}
}
