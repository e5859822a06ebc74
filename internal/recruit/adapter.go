package recruit

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/statside/statside/internal/extract"
	"github.com/statside/statside/internal/types"
)

// Sport identifies a recruiting vertical.
type Sport string

const (
	Football         Sport = "football"
	MensBasketball   Sport = "mens-basketball"
	WomensBasketball Sport = "womens-basketball"
)

// InstitutionGroup narrows player rankings to a class of institution.
type InstitutionGroup string

const (
	HighSchool    InstitutionGroup = "HighSchool"
	JuniorCollege InstitutionGroup = "JuniorCollege"
	PrepSchool    InstitutionGroup = "PrepSchool"
)

// Kind identifies a record shape.
type Kind string

const (
	PlayerRankings Kind = "player-rankings"
	SchoolRankings Kind = "school-rankings"
	Commits        Kind = "commits"
)

// DefaultBaseURL is the recruiting site root. Overridable in config so
// tests can point at a local server.
const DefaultBaseURL = "https://247sports.com"

// sportPaths maps a sport to its URL path segment on the recruiting site.
var sportPaths = map[Sport]string{
	Football:         "Football",
	MensBasketball:   "Basketball",
	WomensBasketball: "WomensBasketball",
}

// Query carries the per-call parameters for one recruiting page.
type Query struct {
	Sport Sport

	// Year is the recruiting class year. Required; callers supply it
	// explicitly so results are reproducible.
	Year int

	// Page is the listing page, starting at 1.
	Page int

	// InstitutionGroup defaults to HighSchool.
	InstitutionGroup InstitutionGroup

	// Position and State are optional player-rankings filters.
	Position string
	State    string

	// School is the institution slug for commit lists.
	School string
}

// Adapter turns a (sport, kind, query) triple into the source URL plus the
// extraction schema and context for the engine. Pure; no I/O.
type Adapter struct {
	baseURL string
}

// NewAdapter creates an adapter rooted at the given base URL. An empty
// base falls back to DefaultBaseURL.
func NewAdapter(baseURL string) *Adapter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Adapter{baseURL: baseURL}
}

// BuildURL assembles the fully parameterized source URL for a record kind.
// Unknown enum values fail fast, before any network call.
func (a *Adapter) BuildURL(kind Kind, q Query) (string, error) {
	if q.Year == 0 {
		return "", types.ErrMissingYear
	}
	path, ok := sportPaths[q.Sport]
	if !ok {
		return "", &types.ConfigError{Param: "sport", Value: string(q.Sport)}
	}

	group := q.InstitutionGroup
	if group == "" {
		group = HighSchool
	}
	switch group {
	case HighSchool, JuniorCollege, PrepSchool:
	default:
		return "", &types.ConfigError{Param: "institution group", Value: string(group)}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	switch kind {
	case PlayerRankings:
		params := url.Values{}
		params.Set("InstitutionGroup", string(group))
		params.Set("Page", strconv.Itoa(page))
		if q.Position != "" {
			params.Set("Position", q.Position)
		}
		if q.State != "" {
			params.Set("State", q.State)
		}
		return fmt.Sprintf("%s/Season/%d-%s/CompositeRecruitRankings/?%s",
			a.baseURL, q.Year, path, params.Encode()), nil

	case SchoolRankings:
		params := url.Values{}
		params.Set("Page", strconv.Itoa(page))
		return fmt.Sprintf("%s/Season/%d-%s/CompositeTeamRankings/?%s",
			a.baseURL, q.Year, path, params.Encode()), nil

	case Commits:
		if q.School == "" {
			return "", &types.ConfigError{Param: "school", Value: ""}
		}
		return fmt.Sprintf("%s/college/%s/Season/%d-%s/Commits/",
			a.baseURL, url.PathEscape(q.School), q.Year, path), nil

	default:
		return "", &types.ConfigError{Param: "record kind", Value: string(kind)}
	}
}

// SchemaFor returns the extraction schema for a record kind. The traversal
// is identical for every kind and sport; only these tables differ.
func (a *Adapter) SchemaFor(kind Kind) (extract.Schema, error) {
	switch kind {
	case PlayerRankings:
		return playerRankingSchema(), nil
	case SchoolRankings:
		return schoolRankingSchema(), nil
	case Commits:
		return commitSchema(), nil
	default:
		return extract.Schema{}, &types.ConfigError{Param: "record kind", Value: string(kind)}
	}
}

// ContextFor returns the engine context for a query.
func (a *Adapter) ContextFor(q Query) extract.Context {
	return extract.Context{
		Page:     q.Page,
		PageSize: extract.DefaultPageSize,
	}
}
