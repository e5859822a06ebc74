package extract

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Engine walks the elements matching a schema's item selector and produces
// an ordered sequence of records. It holds no state between calls: the same
// document and schema always yield the same output.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a new extraction engine.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger.With("component", "extract_engine"),
	}
}

// Extract applies the schema to a parsed document and returns the surviving
// records in document order. Zero matching candidates is a valid empty
// result, not an error; only the document-level fetch/parse can fail a call.
func (e *Engine) Extract(doc *goquery.Document, schema Schema, ectx Context) []*Record {
	ectx = ectx.normalized()

	candidates := doc.Find(schema.ItemSelector)

	records := make([]*Record, 0, candidates.Length())
	dropped := 0

	candidates.Each(func(i int, sel *goquery.Selection) {
		rec := NewRecord(i)

		for _, rule := range schema.Fields {
			e.applyField(rec, sel, rule)
		}
		for _, rule := range schema.Derived {
			e.applyDerived(rec, rule, ectx, i)
		}

		if schema.Valid != nil && !schema.Valid(rec) {
			dropped++
			return
		}
		records = append(records, rec)
	})

	e.logger.Debug("extraction complete",
		"candidates", candidates.Length(),
		"records", len(records),
		"dropped", dropped,
	)

	return records
}

// applyField evaluates one field rule against a candidate element.
func (e *Engine) applyField(rec *Record, sel *goquery.Selection, rule FieldRule) {
	if rule.Selector == "" && rule.XPath != "" {
		e.applyFieldXPath(rec, sel, rule)
		return
	}

	target := sel
	if rule.Selector != "" {
		target = sel.Find(rule.Selector)
	}

	switch rule.Mode {
	case ModeCount:
		rec.Set(rule.Name, target.Length())

	case ModeAttr:
		val, exists := target.First().Attr(rule.Attr)
		if !exists || val == "" {
			val = rule.Default
		}
		rec.Set(rule.Name, val)

	case ModeSplit:
		text := strings.TrimSpace(target.First().Text())
		rec.Set(rule.Name, splitIndex(text, rule.Delim, rule.Index))

	default: // ModeText
		rec.Set(rule.Name, strings.TrimSpace(target.First().Text()))
	}
}

// applyFieldXPath evaluates a field rule whose selector is an XPath
// expression, against the candidate element's node.
func (e *Engine) applyFieldXPath(rec *Record, sel *goquery.Selection, rule FieldRule) {
	if len(sel.Nodes) == 0 {
		rec.Set(rule.Name, zeroValue(rule))
		return
	}
	root := sel.Nodes[0]

	switch rule.Mode {
	case ModeCount:
		nodes, err := htmlquery.QueryAll(root, rule.XPath)
		if err != nil {
			e.logger.Warn("invalid xpath", "expr", rule.XPath, "error", err)
			rec.Set(rule.Name, 0)
			return
		}
		rec.Set(rule.Name, len(nodes))

	case ModeAttr:
		node := queryFirst(root, rule.XPath)
		val := ""
		if node != nil {
			val = htmlquery.SelectAttr(node, rule.Attr)
		}
		if val == "" {
			val = rule.Default
		}
		rec.Set(rule.Name, val)

	case ModeSplit:
		text := ""
		if node := queryFirst(root, rule.XPath); node != nil {
			text = strings.TrimSpace(htmlquery.InnerText(node))
		}
		rec.Set(rule.Name, splitIndex(text, rule.Delim, rule.Index))

	default: // ModeText
		text := ""
		if node := queryFirst(root, rule.XPath); node != nil {
			text = strings.TrimSpace(htmlquery.InnerText(node))
		}
		rec.Set(rule.Name, text)
	}
}

// applyDerived computes one derived field.
func (e *Engine) applyDerived(rec *Record, rule DerivedRule, ectx Context, index int) {
	switch rule.Kind {
	case KindSequentialRank:
		base := ectx.PageSize*(ectx.Page-1) + 1
		rec.Set(rule.Name, base+index)
	}
}

// splitIndex splits text on delim and returns the trimmed piece at index,
// or "" when the index is out of range.
func splitIndex(text, delim string, index int) string {
	if text == "" || delim == "" {
		return ""
	}
	parts := strings.Split(text, delim)
	if index < 0 || index >= len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[index])
}

// queryFirst returns the first node matching the expression, or nil. An
// invalid expression is treated as no match.
func queryFirst(root *html.Node, expr string) *html.Node {
	node, err := htmlquery.Query(root, expr)
	if err != nil {
		return nil
	}
	return node
}

// zeroValue returns the empty value a rule produces when the candidate has
// no usable node.
func zeroValue(rule FieldRule) any {
	if rule.Mode == ModeCount {
		return 0
	}
	if rule.Mode == ModeAttr {
		return rule.Default
	}
	return ""
}
