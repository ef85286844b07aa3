package screener

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var errorTitleMarkers = []string{"404", "not found", "error"}

// Classify decides whether doc is a real company page and returns the
// company name when it is. Heuristic: screener.in serves no reliable
// not-found signal beyond the markup itself, so the page title is checked
// for error markers and a usable top-level heading is treated as the de
// facto existence proof. False negatives are possible if the site changes
// its markup.
func Classify(doc *goquery.Document) (string, bool) {
	title := strings.ToLower(doc.Find("title").First().Text())
	for _, marker := range errorTitleMarkers {
		if strings.Contains(title, marker) {
			return "", false
		}
	}

	name := strings.TrimSpace(doc.Find("h1").First().Text())
	if name == "" {
		doc.Find("h1, h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
			text := strings.TrimSpace(h.Text())
			if utf8.RuneCountInString(text) > 2 {
				name = text
				return false
			}
			return true
		})
	}

	if utf8.RuneCountInString(name) < 2 {
		return "", false
	}
	return name, true
}
