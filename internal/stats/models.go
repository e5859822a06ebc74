package stats

// Response models for the sports-media JSON endpoints. Only the fields the
// callers consume are declared; anything the upstream omits decodes to its
// zero value.

// Scoreboard is the response of the scoreboard endpoint.
type Scoreboard struct {
	Events []Event `json:"events"`
}

// Event is one game on a scoreboard or schedule.
type Event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Competitions []Competition `json:"competitions"`
}

// Competition holds the two competitors and game status.
type Competition struct {
	ID          string       `json:"id"`
	Competitors []Competitor `json:"competitors"`
	Status      Status       `json:"status"`
}

// Competitor is one side of a competition.
type Competitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Winner   bool   `json:"winner"`
	Team     Team   `json:"team"`
}

// Team is the flat team shape shared across endpoints.
type Team struct {
	ID           string `json:"id"`
	Location     string `json:"location"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

// Status describes game state.
type Status struct {
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
	Type         StatusType `json:"type"`
}

// StatusType names the game state.
type StatusType struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
	Detail    string `json:"detail"`
}

// TeamList is the response of the teams endpoint.
type TeamList struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team Team `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

// Flatten returns the teams without the envelope nesting.
func (tl *TeamList) Flatten() []Team {
	var out []Team
	for _, s := range tl.Sports {
		for _, l := range s.Leagues {
			for _, t := range l.Teams {
				out = append(out, t.Team)
			}
		}
	}
	return out
}

// TeamDetail is the response of the team endpoint.
type TeamDetail struct {
	Team Team `json:"team"`
}

// Roster is the response of the roster endpoint.
type Roster struct {
	Athletes []Athlete `json:"athletes"`
}

// Athlete is one roster entry.
type Athlete struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	DisplayName string `json:"displayName"`
	Jersey      string `json:"jersey"`
	Height      string `json:"displayHeight"`
	Weight      string `json:"displayWeight"`
	Position    struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
}

// Schedule is the response of the team-schedule endpoint.
type Schedule struct {
	Team   Team    `json:"team"`
	Events []Event `json:"events"`
}

// StandingsGroups is the response of the standings endpoint.
type StandingsGroups struct {
	Children []struct {
		Name      string `json:"name"`
		Standings struct {
			Entries []StandingEntry `json:"entries"`
		} `json:"standings"`
	} `json:"children"`
}

// StandingEntry is one team's row in the standings.
type StandingEntry struct {
	Team  Team `json:"team"`
	Stats []struct {
		Name         string `json:"name"`
		DisplayValue string `json:"displayValue"`
	} `json:"stats"`
}

// Rankings is the response of the rankings endpoint.
type Rankings struct {
	Rankings []Poll `json:"rankings"`
}

// Poll is one ranking poll (AP, Coaches, ...).
type Poll struct {
	Name  string `json:"name"`
	Ranks []Rank `json:"ranks"`
}

// Rank is one poll entry.
type Rank struct {
	Current       int    `json:"current"`
	Previous      int    `json:"previous"`
	Points        float64 `json:"points"`
	RecordSummary string `json:"recordSummary"`
	Team          Team   `json:"team"`
}

// Summary is the response of the game-summary endpoint.
type Summary struct {
	BoxScore BoxScore `json:"boxscore"`
	Plays    []Play   `json:"plays"`
}

// BoxScore carries per-team statistics for one game.
type BoxScore struct {
	Teams []BoxTeam `json:"teams"`
}

// BoxTeam is one team's box-score column.
type BoxTeam struct {
	Team       Team `json:"team"`
	Statistics []struct {
		Name         string `json:"name"`
		DisplayValue string `json:"displayValue"`
	} `json:"statistics"`
}

// Play is one play-by-play entry.
type Play struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Period struct {
		Number int `json:"number"`
	} `json:"period"`
	Clock struct {
		DisplayValue string `json:"displayValue"`
	} `json:"clock"`
	ScoringPlay bool `json:"scoringPlay"`
	AwayScore   int  `json:"awayScore"`
	HomeScore   int  `json:"homeScore"`
}
