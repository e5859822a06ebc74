package recruit

import "github.com/statside/statside/internal/extract"

// Schema tables for the three record kinds. The recruiting site renders
// football and both basketball verticals with the same markup, so one
// table per kind covers every sport.

func playerRankingSchema() extract.Schema {
	return extract.Schema{
		ItemSelector: "ul.rankings-page__list li.rankings-page__list-item",
		Fields: []extract.FieldRule{
			{Name: "name", Selector: "a.rankings-page__name-link", Mode: extract.ModeText},
			{Name: "highSchool", Selector: "span.meta", Mode: extract.ModeText},
			{Name: "position", Selector: "div.position", Mode: extract.ModeText},
			{Name: "height", Selector: "div.metrics", Mode: extract.ModeSplit, Delim: "/", Index: 0},
			{Name: "weight", Selector: "div.metrics", Mode: extract.ModeSplit, Delim: "/", Index: 1},
			{Name: "stars", Selector: "span.icon-starsolid.yellow", Mode: extract.ModeCount},
			{Name: "rating", Selector: "span.score", Mode: extract.ModeText},
			{Name: "college", Selector: "div.img-link img", Mode: extract.ModeAttr, Attr: "title", Default: Uncommitted},
		},
		Derived: []extract.DerivedRule{
			{Name: "ranking", Kind: extract.KindSequentialRank},
		},
		// Incomplete player rows stay in the output; only commit lists
		// filter (observed source behavior, preserved).
	}
}

func schoolRankingSchema() extract.Schema {
	return extract.Schema{
		ItemSelector: "ul.rankings-page__list li.rankings-page__list-item",
		Fields: []extract.FieldRule{
			{Name: "rank", Selector: "div.rank-column div.primary", Mode: extract.ModeText},
			{Name: "school", Selector: "a.rankings-page__name-link", Mode: extract.ModeText},
			{Name: "totalCommits", Selector: "div.total a", Mode: extract.ModeText},
			{Name: "fiveStars", Selector: "ul.star-commits-list li:nth-child(1) div", Mode: extract.ModeText},
			{Name: "fourStars", Selector: "ul.star-commits-list li:nth-child(2) div", Mode: extract.ModeText},
			{Name: "threeStars", Selector: "ul.star-commits-list li:nth-child(3) div", Mode: extract.ModeText},
			{Name: "averageRating", Selector: "div.avg", Mode: extract.ModeText},
			{Name: "points", Selector: "div.points a.number", Mode: extract.ModeText},
		},
	}
}

func commitSchema() extract.Schema {
	return extract.Schema{
		ItemSelector: "ul.ri-page__list li.ri-page__list-item",
		Fields: []extract.FieldRule{
			{Name: "name", Selector: "a.ri-page__name-link", Mode: extract.ModeText},
			{Name: "highSchool", Selector: "span.meta", Mode: extract.ModeText},
			{Name: "position", Selector: "div.position", Mode: extract.ModeText},
			{Name: "height", Selector: "div.metrics", Mode: extract.ModeSplit, Delim: "/", Index: 0},
			{Name: "weight", Selector: "div.metrics", Mode: extract.ModeSplit, Delim: "/", Index: 1},
			{Name: "stars", Selector: "span.icon-starsolid.yellow", Mode: extract.ModeCount},
			{Name: "rating", Selector: "span.score", Mode: extract.ModeText},
			{Name: "nationalRank", Selector: "a.natrank", Mode: extract.ModeText},
			{Name: "stateRank", Selector: "a.sttrank", Mode: extract.ModeText},
			{Name: "positionRank", Selector: "a.posrank", Mode: extract.ModeText},
		},
		// Rows with no name or rating are layout artifacts, not recruits.
		Valid: func(r *extract.Record) bool {
			return r.GetString("name") != "" && r.GetString("rating") != ""
		},
	}
}
