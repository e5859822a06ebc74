package extract

// Mode determines how a field rule pulls its value out of a candidate
// element.
type Mode string

const (
	// ModeText takes the trimmed text content of the first matching
	// sub-element. No match yields "".
	ModeText Mode = "text"

	// ModeAttr reads a named attribute of the first matching sub-element.
	// A missing element or attribute yields the rule's Default.
	ModeAttr Mode = "attr"

	// ModeCount counts the sub-elements matching the selector. No match
	// yields 0. The value is stored as an int.
	ModeCount Mode = "count"

	// ModeSplit takes the trimmed text as ModeText does, splits it on
	// Delim, and keeps the piece at Index. An out-of-range index yields "".
	ModeSplit Mode = "split"
)

// FieldRule describes how to populate one output field from a candidate
// element. Selector is a CSS selector evaluated relative to the candidate;
// when Selector is empty and XPath is set, the expression is evaluated
// against the candidate's node instead. Both empty means the rule applies
// to the candidate element itself.
type FieldRule struct {
	Name     string
	Selector string
	XPath    string
	Mode     Mode
	Attr     string // attribute name for ModeAttr
	Default  string // substituted when ModeAttr finds nothing
	Delim    string // delimiter for ModeSplit
	Index    int    // zero-based piece index for ModeSplit
}

// DerivedKind identifies a computed field not read from markup.
type DerivedKind string

// KindSequentialRank assigns pageSize*(page-1) + 1 + candidateIndex.
// The index is the candidate's position in the document, so filtering a
// record out later never renumbers the survivors.
const KindSequentialRank DerivedKind = "sequential_rank"

// DerivedRule describes one computed field.
type DerivedRule struct {
	Name string
	Kind DerivedKind
}

// Schema is the configuration turning one HTML document into records of
// one kind.
type Schema struct {
	// ItemSelector identifies each candidate element representing one
	// record. Header and decorative rows are excluded by selector
	// specificity, not by code.
	ItemSelector string

	// Fields are applied to every candidate in order.
	Fields []FieldRule

	// Derived are computed after all field rules.
	Derived []DerivedRule

	// Valid, when set, decides whether a constructed record is kept.
	// Records failing it are dropped from the output silently.
	Valid func(*Record) bool
}

// DefaultPageSize is the listing page size assumed for rank derivation.
// It is never reconciled with how many items a page actually contains.
const DefaultPageSize = 50

// Context carries the per-call parameters needed for derived fields.
type Context struct {
	Page     int
	PageSize int
}

// normalized returns a copy with defaults applied.
func (c Context) normalized() Context {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	return c
}
