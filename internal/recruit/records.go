package recruit

// Uncommitted is the sentinel college value for prospects without a
// committed school on the rankings page.
const Uncommitted = "uncommitted"

// PlayerRanking is one row of a national player-rankings page. Incomplete
// rows are kept with zero values; only the listed fields exist.
type PlayerRanking struct {
	Ranking    int    `json:"ranking"`
	Name       string `json:"name"`
	HighSchool string `json:"highSchool"`
	Position   string `json:"position"`
	Height     string `json:"height"`
	Weight     string `json:"weight"`
	Stars      int    `json:"stars"`
	Rating     string `json:"rating"`
	College    string `json:"college"`
}

// SchoolRanking is one row of a team-rankings page. The source renders
// every column as text, so the fields stay strings.
type SchoolRanking struct {
	Rank          string `json:"rank"`
	School        string `json:"school"`
	TotalCommits  string `json:"totalCommits"`
	FiveStars     string `json:"fiveStars"`
	FourStars     string `json:"fourStars"`
	ThreeStars    string `json:"threeStars"`
	AverageRating string `json:"averageRating"`
	Points        string `json:"points"`
}

// Commit is one row of a school's commit list. Rows with an empty name or
// rating are layout artifacts and never appear in output.
type Commit struct {
	Name         string `json:"name"`
	HighSchool   string `json:"highSchool"`
	Position     string `json:"position"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	Stars        int    `json:"stars"`
	Rating       string `json:"rating"`
	NationalRank string `json:"nationalRank"`
	StateRank    string `json:"stateRank"`
	PositionRank string `json:"positionRank"`
}
