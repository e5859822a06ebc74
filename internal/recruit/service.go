package recruit

import (
	"context"
	"log/slog"

	"github.com/statside/statside/internal/extract"
	"github.com/statside/statside/internal/fetcher"
	"github.com/statside/statside/internal/types"
)

// Service retrieves recruiting pages and turns them into typed records.
// It is stateless across calls; concurrent use needs no coordination.
type Service struct {
	fetcher fetcher.Fetcher
	engine  *extract.Engine
	adapter *Adapter
	logger  *slog.Logger
}

// NewService creates a recruiting service.
func NewService(f fetcher.Fetcher, baseURL string, logger *slog.Logger) *Service {
	return &Service{
		fetcher: f,
		engine:  extract.NewEngine(logger),
		adapter: NewAdapter(baseURL),
		logger:  logger.With("component", "recruit_service"),
	}
}

// PlayerRankings returns the national player rankings page for a query.
// Incomplete rows are kept; rankings are continuous across pages at the
// fixed page size.
func (s *Service) PlayerRankings(ctx context.Context, q Query) ([]PlayerRanking, error) {
	records, err := s.extract(ctx, PlayerRankings, q)
	if err != nil {
		return nil, err
	}

	out := make([]PlayerRanking, 0, len(records))
	for _, rec := range records {
		out = append(out, PlayerRanking{
			Ranking:    rec.GetInt("ranking"),
			Name:       rec.GetString("name"),
			HighSchool: rec.GetString("highSchool"),
			Position:   rec.GetString("position"),
			Height:     rec.GetString("height"),
			Weight:     rec.GetString("weight"),
			Stars:      rec.GetInt("stars"),
			Rating:     rec.GetString("rating"),
			College:    rec.GetString("college"),
		})
	}
	return out, nil
}

// SchoolRankings returns the team rankings page for a query.
func (s *Service) SchoolRankings(ctx context.Context, q Query) ([]SchoolRanking, error) {
	records, err := s.extract(ctx, SchoolRankings, q)
	if err != nil {
		return nil, err
	}

	out := make([]SchoolRanking, 0, len(records))
	for _, rec := range records {
		out = append(out, SchoolRanking{
			Rank:          rec.GetString("rank"),
			School:        rec.GetString("school"),
			TotalCommits:  rec.GetString("totalCommits"),
			FiveStars:     rec.GetString("fiveStars"),
			FourStars:     rec.GetString("fourStars"),
			ThreeStars:    rec.GetString("threeStars"),
			AverageRating: rec.GetString("averageRating"),
			Points:        rec.GetString("points"),
		})
	}
	return out, nil
}

// Commits returns a school's commit list for a query. Rows failing the
// validity predicate are dropped silently.
func (s *Service) Commits(ctx context.Context, q Query) ([]Commit, error) {
	records, err := s.extract(ctx, Commits, q)
	if err != nil {
		return nil, err
	}

	out := make([]Commit, 0, len(records))
	for _, rec := range records {
		out = append(out, Commit{
			Name:         rec.GetString("name"),
			HighSchool:   rec.GetString("highSchool"),
			Position:     rec.GetString("position"),
			Height:       rec.GetString("height"),
			Weight:       rec.GetString("weight"),
			Stars:        rec.GetInt("stars"),
			Rating:       rec.GetString("rating"),
			NationalRank: rec.GetString("nationalRank"),
			StateRank:    rec.GetString("stateRank"),
			PositionRank: rec.GetString("positionRank"),
		})
	}
	return out, nil
}

// Records runs one extraction for any record kind and returns the raw
// engine records, for callers that export rather than bind.
func (s *Service) Records(ctx context.Context, kind Kind, q Query) ([]*extract.Record, error) {
	return s.extract(ctx, kind, q)
}

// extract performs the one fetch, one parse, one extraction pass for a
// call. Fetch and parse failures propagate untouched; an empty candidate
// set is a valid empty result.
func (s *Service) extract(ctx context.Context, kind Kind, q Query) ([]*extract.Record, error) {
	rawURL, err := s.adapter.BuildURL(kind, q)
	if err != nil {
		return nil, err
	}
	schema, err := s.adapter.SchemaFor(kind)
	if err != nil {
		return nil, err
	}

	req, err := types.NewRequest(rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	doc, err := resp.Document()
	if err != nil {
		return nil, err
	}

	records := s.engine.Extract(doc, schema, s.adapter.ContextFor(q))

	s.logger.Debug("recruiting page extracted",
		"kind", string(kind),
		"sport", string(q.Sport),
		"year", q.Year,
		"page", q.Page,
		"records", len(records),
	)
	return records, nil
}
