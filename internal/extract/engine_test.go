package extract

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

const prospectHTML = `<!DOCTYPE html>
<html>
<body>
<ul class="prospects">
  <li class="prospect">
    <a class="name">Amari Dawson</a>
    <span class="meta">Central HS (Akron, OH)</span>
    <div class="position">QB</div>
    <div class="metrics">6-2 / 195</div>
    <div class="stars">
      <span class="star on"></span><span class="star on"></span>
      <span class="star on"></span><span class="star on"></span>
      <span class="star"></span>
    </div>
    <span class="score">0.9852</span>
    <div class="commit"><img title="Ohio State" src="osu.png"></div>
  </li>
  <li class="prospect">
    <a class="name">Trey Holcomb</a>
    <span class="meta">Lakeside HS (Tampa, FL)</span>
    <div class="position">WR</div>
    <div class="metrics">6-0 / 178</div>
    <div class="stars">
      <span class="star on"></span><span class="star on"></span>
      <span class="star on"></span>
    </div>
    <span class="score">0.8910</span>
    <div class="commit"><img src="blank.png"></div>
  </li>
  <li class="prospect">
    <a class="name">Marcus Ellison</a>
    <span class="meta">Jesuit HS (Dallas, TX)</span>
    <div class="position">CB</div>
    <div class="metrics">5-11</div>
    <span class="score"></span>
    <div class="commit"></div>
  </li>
</ul>
</body>
</html>`

func makeDoc(t testing.TB, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func prospectSchema() Schema {
	return Schema{
		ItemSelector: "li.prospect",
		Fields: []FieldRule{
			{Name: "name", Selector: "a.name", Mode: ModeText},
			{Name: "highSchool", Selector: "span.meta", Mode: ModeText},
			{Name: "position", Selector: "div.position", Mode: ModeText},
			{Name: "height", Selector: "div.metrics", Mode: ModeSplit, Delim: "/", Index: 0},
			{Name: "weight", Selector: "div.metrics", Mode: ModeSplit, Delim: "/", Index: 1},
			{Name: "stars", Selector: "span.star.on", Mode: ModeCount},
			{Name: "rating", Selector: "span.score", Mode: ModeText},
			{Name: "college", Selector: "div.commit img", Mode: ModeAttr, Attr: "title", Default: "uncommitted"},
		},
		Derived: []DerivedRule{
			{Name: "ranking", Kind: KindSequentialRank},
		},
	}
}

func TestExtractFieldModes(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)

	records := e.Extract(doc, prospectSchema(), Context{Page: 1})
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if got := first.GetString("name"); got != "Amari Dawson" {
		t.Errorf("name: expected 'Amari Dawson', got %q", got)
	}
	if got := first.GetString("height"); got != "6-2" {
		t.Errorf("height: expected '6-2', got %q", got)
	}
	if got := first.GetString("weight"); got != "195" {
		t.Errorf("weight: expected '195', got %q", got)
	}
	if got := first.GetInt("stars"); got != 4 {
		t.Errorf("stars: expected 4, got %d", got)
	}
	if got := first.GetString("college"); got != "Ohio State" {
		t.Errorf("college: expected 'Ohio State', got %q", got)
	}
}

func TestExtractAttrDefault(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)

	records := e.Extract(doc, prospectSchema(), Context{})
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	// Second record has an <img> without a title attribute; third has no
	// <img> at all. Both fall back to the configured default.
	for _, i := range []int{1, 2} {
		if got := records[i].GetString("college"); got != "uncommitted" {
			t.Errorf("record %d college: expected 'uncommitted', got %q", i, got)
		}
	}
}

func TestExtractMissingSubElements(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)

	records := e.Extract(doc, prospectSchema(), Context{})
	third := records[2]

	// No star spans at all: count is 0, not an error.
	if got := third.GetInt("stars"); got != 0 {
		t.Errorf("stars: expected 0, got %d", got)
	}
	// "5-11" has no "/": index 1 is out of range and yields "".
	if got := third.GetString("height"); got != "5-11" {
		t.Errorf("height: expected '5-11', got %q", got)
	}
	if got := third.GetString("weight"); got != "" {
		t.Errorf("weight: expected empty, got %q", got)
	}
}

func TestExtractStarsBounds(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)

	for _, rec := range e.Extract(doc, prospectSchema(), Context{}) {
		stars := rec.GetInt("stars")
		if stars < 0 || stars > 5 {
			t.Errorf("record %d: stars %d out of [0,5]", rec.Index, stars)
		}
	}
}

func TestExtractSequentialRankFirstPage(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)

	records := e.Extract(doc, prospectSchema(), Context{Page: 1, PageSize: 50})
	for i, rec := range records {
		want := i + 1
		if got := rec.GetInt("ranking"); got != want {
			t.Errorf("record %d: expected ranking %d, got %d", i, want, got)
		}
	}
}

func TestExtractSequentialRankPageOffset(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)

	records := e.Extract(doc, prospectSchema(), Context{Page: 2, PageSize: 50})
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []int{51, 52, 53} {
		if got := records[i].GetInt("ranking"); got != want {
			t.Errorf("record %d: expected ranking %d, got %d", i, want, got)
		}
	}
}

func TestExtractRankStrictlyIncreasing(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)

	records := e.Extract(doc, prospectSchema(), Context{Page: 3})
	for i := 1; i < len(records); i++ {
		if records[i].GetInt("ranking") <= records[i-1].GetInt("ranking") {
			t.Fatalf("ranking not strictly increasing at %d: %d then %d",
				i, records[i-1].GetInt("ranking"), records[i].GetInt("ranking"))
		}
	}
}

func TestExtractValidityFilterKeepsRanks(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)

	schema := prospectSchema()
	// Drop records without a rating, the way commit lists do.
	schema.Valid = func(r *Record) bool {
		return r.GetString("name") != "" && r.GetString("rating") != ""
	}

	records := e.Extract(doc, schema, Context{Page: 1})
	if len(records) != 2 {
		t.Fatalf("expected 2 surviving records, got %d", len(records))
	}
	for _, rec := range records {
		if rec.GetString("rating") == "" {
			t.Errorf("record %d survived with empty rating", rec.Index)
		}
	}
	// Filtering shortens the output but never renumbers survivors.
	if got := records[0].GetInt("ranking"); got != 1 {
		t.Errorf("expected ranking 1, got %d", got)
	}
	if got := records[1].GetInt("ranking"); got != 2 {
		t.Errorf("expected ranking 2, got %d", got)
	}
}

func TestExtractOutputBoundedByCandidates(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)

	candidates := doc.Find("li.prospect").Length()
	records := e.Extract(doc, prospectSchema(), Context{})
	if len(records) > candidates {
		t.Fatalf("output %d exceeds candidate count %d", len(records), candidates)
	}
}

func TestExtractNoCandidates(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, `<html><body><p>Nothing to see.</p></body></html>`)

	records := e.Extract(doc, prospectSchema(), Context{})
	if len(records) != 0 {
		t.Fatalf("expected empty sequence, got %d records", len(records))
	}
}

func TestExtractIdempotent(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)
	schema := prospectSchema()

	first := e.Extract(doc, schema, Context{Page: 2})
	second := e.Extract(doc, schema, Context{Page: 2})

	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, _ := first[i].ToJSON()
		b, _ := second[i].ToJSON()
		if string(a) != string(b) {
			t.Errorf("record %d differs between runs:\n%s\n%s", i, a, b)
		}
	}
}

func TestExtractXPathRules(t *testing.T) {
	e := NewEngine(testLogger)
	doc := makeDoc(t, prospectHTML)

	schema := Schema{
		ItemSelector: "li.prospect",
		Fields: []FieldRule{
			{Name: "name", XPath: `.//a[@class="name"]`, Mode: ModeText},
			{Name: "stars", XPath: `.//span[contains(@class,"on")]`, Mode: ModeCount},
			{Name: "college", XPath: `.//div[@class="commit"]/img`, Mode: ModeAttr, Attr: "title", Default: "uncommitted"},
		},
	}

	records := e.Extract(doc, schema, Context{})
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if got := records[0].GetString("name"); got != "Amari Dawson" {
		t.Errorf("xpath name: expected 'Amari Dawson', got %q", got)
	}
	if got := records[0].GetInt("stars"); got != 4 {
		t.Errorf("xpath stars: expected 4, got %d", got)
	}
	if got := records[1].GetString("college"); got != "uncommitted" {
		t.Errorf("xpath college: expected 'uncommitted', got %q", got)
	}
}

func TestContextDefaults(t *testing.T) {
	c := Context{}.normalized()
	if c.Page != 1 {
		t.Errorf("expected page 1, got %d", c.Page)
	}
	if c.PageSize != DefaultPageSize {
		t.Errorf("expected page size %d, got %d", DefaultPageSize, c.PageSize)
	}
}

func BenchmarkExtract(b *testing.B) {
	e := NewEngine(testLogger)
	doc := makeDoc(b, prospectHTML)
	schema := prospectSchema()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Extract(doc, schema, Context{Page: 1})
	}
}
