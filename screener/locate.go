package screener

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/exp/slices"
)

// Strategy selects one structural region of the page to search.
type Strategy int

const (
	// StrategyRatioList matches the compact key/value rows of the
	// top-ratios summary block and reads their number span.
	StrategyRatioList Strategy = iota
	// StrategyTableRow matches table rows and scans cells from the last
	// one backward for the first value-looking cell.
	StrategyTableRow
	// StrategyListItem matches plain list items, preferring a number
	// span and falling back to the first digit run after the label.
	StrategyListItem
	// StrategyFreeText matches generic containers and takes the last
	// numeric run in their text.
	StrategyFreeText
)

// strategyOrder is the fixed precedence in which enabled strategies are
// tried; Query.Strategies only narrows this set, it never reorders it.
var strategyOrder = []Strategy{StrategyRatioList, StrategyTableRow, StrategyListItem, StrategyFreeText}

// Query is one field's search plan: synonym groups in fallback order and
// the strategies the field allows. Constructed per field, never mutated.
type Query struct {
	Groups     [][]string
	Strategies []Strategy
}

// a digit run with optional thousands separators and decimal point
var numberRunRe = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// Locate searches root for the first raw value matching q. Groups are
// tried in order, and within a group every enabled strategy in fixed
// precedence; the first non-empty hit wins, with no reconciliation of
// conflicting matches.
func Locate(root *goquery.Selection, q Query) (string, bool) {
	for _, group := range q.Groups {
		for _, strategy := range strategyOrder {
			if !slices.Contains(q.Strategies, strategy) {
				continue
			}
			var value string
			var ok bool
			switch strategy {
			case StrategyRatioList:
				value, ok = ratioListValue(root, group)
			case StrategyTableRow:
				value, ok = tableRowValue(root, group)
			case StrategyListItem:
				value, ok = listItemValue(root, group)
			case StrategyFreeText:
				value, ok = freeTextValue(root, group)
			}
			if ok {
				return value, true
			}
		}
	}
	return "", false
}

// matchSynonym reports the first synonym of group contained in text,
// case-insensitively. The returned offset is a byte offset into
// strings.ToLower(text), not into text: lowering can change byte lengths,
// so callers slicing from it must slice the lowered string.
func matchSynonym(text string, group []string) (string, int) {
	lower := strings.ToLower(text)
	for _, synonym := range group {
		if idx := strings.Index(lower, strings.ToLower(synonym)); idx >= 0 {
			return synonym, idx
		}
	}
	return "", -1
}

func ratioListValue(root *goquery.Selection, group []string) (string, bool) {
	var value string
	root.Find("li.flex.flex-space-between").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if _, idx := matchSynonym(li.Text(), group); idx < 0 {
			return true
		}
		if v := strings.TrimSpace(li.Find("span.number").First().Text()); v != "" {
			value = v
			return false
		}
		return true
	})
	return value, value != ""
}

func tableRowValue(root *goquery.Selection, group []string) (string, bool) {
	var value string
	root.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if _, idx := matchSynonym(row.Text(), group); idx < 0 {
			return true
		}
		// Labels and secondary figures precede the primary value, so the
		// rightmost usable cell wins.
		cells := row.Find("td, th")
		for i := cells.Length() - 1; i >= 0; i-- {
			cell := strings.TrimSpace(cells.Eq(i).Text())
			if cell == "" || cell == "-" || labelOnly(cell) {
				continue
			}
			value = cell
			return false
		}
		return true
	})
	return value, value != ""
}

func listItemValue(root *goquery.Selection, group []string) (string, bool) {
	var value string
	root.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		text := li.Text()
		synonym, idx := matchSynonym(text, group)
		if idx < 0 {
			return true
		}
		if v := strings.TrimSpace(li.Find("span.number").First().Text()); v != "" {
			value = v
			return false
		}
		tail := strings.ToLower(text)[idx+len(strings.ToLower(synonym)):]
		if v := numberRunRe.FindString(tail); v != "" {
			value = v
			return false
		}
		return true
	})
	return value, value != ""
}

func freeTextValue(root *goquery.Selection, group []string) (string, bool) {
	var value string
	root.Find("div, p, span").EachWithBreak(func(_ int, container *goquery.Selection) bool {
		text := container.Text()
		if _, idx := matchSynonym(text, group); idx < 0 {
			return true
		}
		runs := numberRunRe.FindAllString(text, -1)
		if len(runs) == 0 {
			return true
		}
		value = runs[len(runs)-1]
		return false
	})
	return value, value != ""
}

// labelOnly reports whether a cell holds label text rather than a value:
// every rune is a letter, space or period ("Promoters", "No. of shares").
func labelOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '.' {
			return false
		}
	}
	return true
}

// class-like metadata marking a section worth sweeping in the secondary
// pass
var sectionMetaRe = regexp.MustCompile(`(?i)financial|ratio|balance`)

// FinancialSections returns the looser section-level containers consulted
// by the secondary pass for fields the primary strategies missed.
func FinancialSections(doc *goquery.Document) *goquery.Selection {
	return doc.Find("section, div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		return sectionMetaRe.MatchString(class) || sectionMetaRe.MatchString(id)
	})
}

// LocateInSections runs the broader sweep: table rows and list items of
// each candidate section are searched for the same synonym groups,
// regardless of the field's primary strategy subset. First match wins.
func LocateInSections(sections *goquery.Selection, groups [][]string) (string, bool) {
	var value string
	sections.EachWithBreak(func(_ int, section *goquery.Selection) bool {
		for _, group := range groups {
			if v, ok := tableRowValue(section, group); ok {
				value = v
				return false
			}
			if v, ok := listItemValue(section, group); ok {
				value = v
				return false
			}
		}
		return true
	})
	return value, value != ""
}
