package stats

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/statside/statside/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

type stubFetcher struct {
	body    []byte
	err     error
	lastURL string
}

func (s *stubFetcher) Fetch(ctx context.Context, req *types.Request) (*types.Response, error) {
	s.lastURL = req.URLString()
	if s.err != nil {
		return nil, s.err
	}
	return &types.Response{
		StatusCode:  200,
		Body:        s.body,
		Request:     req,
		ContentType: "application/json",
		FinalURL:    req.URLString(),
		FetchedAt:   time.Now(),
	}, nil
}

func (s *stubFetcher) Close() error { return nil }
func (s *stubFetcher) Type() string { return "stub" }

const scoreboardJSON = `{
  "events": [
    {
      "id": "401520281",
      "date": "2026-09-05T19:30Z",
      "name": "Georgia Bulldogs at Alabama Crimson Tide",
      "shortName": "UGA @ ALA",
      "competitions": [
        {
          "id": "401520281",
          "competitors": [
            {"homeAway": "home", "score": "24", "winner": false,
             "team": {"id": "333", "location": "Alabama", "name": "Crimson Tide", "abbreviation": "ALA", "displayName": "Alabama Crimson Tide"}},
            {"homeAway": "away", "score": "27", "winner": true,
             "team": {"id": "61", "location": "Georgia", "name": "Bulldogs", "abbreviation": "UGA", "displayName": "Georgia Bulldogs"}}
          ],
          "status": {"displayClock": "0:00", "period": 4,
                     "type": {"name": "STATUS_FINAL", "state": "post", "completed": true, "detail": "Final"}}
        }
      ]
    }
  ]
}`

const summaryJSON = `{
  "boxscore": {
    "teams": [
      {"team": {"id": "333", "abbreviation": "ALA"},
       "statistics": [{"name": "totalYards", "displayValue": "398"}]}
    ]
  },
  "plays": [
    {"id": "1", "text": "Kickoff", "period": {"number": 1}, "clock": {"displayValue": "15:00"},
     "scoringPlay": false, "awayScore": 0, "homeScore": 0},
    {"id": "2", "text": "TD pass", "period": {"number": 1}, "clock": {"displayValue": "11:42"},
     "scoringPlay": true, "awayScore": 7, "homeScore": 0}
  ]
}`

const rosterJSON = `{
  "athletes": [
    {"id": "4430802", "fullName": "Caleb Downs", "displayName": "Caleb Downs",
     "jersey": "2", "displayHeight": "6' 0\"", "displayWeight": "205 lbs",
     "position": {"abbreviation": "S"}}
  ]
}`

func TestScoreboardDecode(t *testing.T) {
	stub := &stubFetcher{body: []byte(scoreboardJSON)}
	c := NewClient(stub, "", testLogger)

	sb, err := c.Scoreboard(context.Background(), CollegeFootball, ScoreboardParams{Date: "20260905"})
	if err != nil {
		t.Fatalf("scoreboard: %v", err)
	}
	if len(sb.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sb.Events))
	}

	event := sb.Events[0]
	if event.ID != "401520281" || event.ShortName != "UGA @ ALA" {
		t.Errorf("unexpected event: %+v", event)
	}
	comp := event.Competitions[0]
	if len(comp.Competitors) != 2 {
		t.Fatalf("expected 2 competitors, got %d", len(comp.Competitors))
	}
	if !comp.Status.Type.Completed || comp.Status.Period != 4 {
		t.Errorf("unexpected status: %+v", comp.Status)
	}
	away := comp.Competitors[1]
	if away.Team.Abbreviation != "UGA" || away.Score != "27" || !away.Winner {
		t.Errorf("unexpected away competitor: %+v", away)
	}
}

func TestBoxScoreAndPlayByPlay(t *testing.T) {
	stub := &stubFetcher{body: []byte(summaryJSON)}
	c := NewClient(stub, "", testLogger)

	box, err := c.BoxScore(context.Background(), CollegeFootball, "401520281")
	if err != nil {
		t.Fatalf("box score: %v", err)
	}
	if len(box.Teams) != 1 || box.Teams[0].Statistics[0].DisplayValue != "398" {
		t.Errorf("unexpected box score: %+v", box)
	}

	plays, err := c.PlayByPlay(context.Background(), CollegeFootball, "401520281")
	if err != nil {
		t.Fatalf("play by play: %v", err)
	}
	if len(plays) != 2 {
		t.Fatalf("expected 2 plays, got %d", len(plays))
	}
	if !plays[1].ScoringPlay || plays[1].AwayScore != 7 {
		t.Errorf("unexpected play: %+v", plays[1])
	}
}

func TestRosterDecode(t *testing.T) {
	stub := &stubFetcher{body: []byte(rosterJSON)}
	c := NewClient(stub, "", testLogger)

	athletes, err := c.Roster(context.Background(), CollegeFootball, "194")
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(athletes) != 1 {
		t.Fatalf("expected 1 athlete, got %d", len(athletes))
	}
	a := athletes[0]
	if a.FullName != "Caleb Downs" || a.Position.Abbreviation != "S" || a.Jersey != "2" {
		t.Errorf("unexpected athlete: %+v", a)
	}
}

func TestMissingFieldsTolerated(t *testing.T) {
	stub := &stubFetcher{body: []byte(`{"events":[{"id":"1"}]}`)}
	c := NewClient(stub, "", testLogger)

	sb, err := c.Scoreboard(context.Background(), MensCollegeBasketball, ScoreboardParams{})
	if err != nil {
		t.Fatalf("scoreboard: %v", err)
	}
	if len(sb.Events) != 1 || sb.Events[0].Name != "" {
		t.Errorf("expected tolerant decode, got %+v", sb.Events)
	}
}

func TestFetchErrorPropagates(t *testing.T) {
	fetchErr := &types.FetchError{URL: "x", StatusCode: 502}
	stub := &stubFetcher{err: fetchErr}
	c := NewClient(stub, "", testLogger)

	_, err := c.Rankings(context.Background(), CollegeFootball)
	if err != fetchErr {
		t.Fatalf("fetch error must propagate unchanged, got %v", err)
	}
}
