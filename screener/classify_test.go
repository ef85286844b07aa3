package screener

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestClassifyValidPage(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Reliance Industries Ltd share price</title></head>
		<body><h1>Reliance Industries Ltd</h1></body></html>`)

	name, ok := Classify(doc)
	require.True(t, ok)
	require.Equal(t, "Reliance Industries Ltd", name)
}

// A 404 title always classifies invalid, even when a heading is present.
func TestClassifyErrorTitleWins(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>404 - Screener</title></head>
		<body><h1>Some Heading</h1></body></html>`)

	_, ok := Classify(doc)
	require.False(t, ok)
}

func TestClassifyNotFoundTitle(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Page Not Found</title></head><body><h1>Oops</h1></body></html>`)

	_, ok := Classify(doc)
	require.False(t, ok)
}

func TestClassifyHeadingFallback(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Tata Consultancy Services</title></head>
		<body><h2>TCS Ltd</h2></body></html>`)

	name, ok := Classify(doc)
	require.True(t, ok)
	require.Equal(t, "TCS Ltd", name)
}

// Heading presence is the de facto existence proof: no usable heading
// means the symbol does not exist. This is a heuristic, not a guarantee;
// it breaks if the remote site changes its markup.
// Heading length is counted in runes, so a lone multibyte symbol is not a
// usable name even though it spans several bytes.
func TestClassifyMultibyteHeadingTooShort(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Screener</title></head>
		<body><h1>₹</h1></body></html>`)

	_, ok := Classify(doc)
	require.False(t, ok)

	doc = parseDoc(t, `<html><head><title>Screener</title></head>
		<body><h2>₹₹</h2></body></html>`)

	_, ok = Classify(doc)
	require.False(t, ok)
}

func TestClassifyNoUsableHeading(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Screener</title></head>
		<body><h2>ab</h2><p>nothing here</p></body></html>`)

	_, ok := Classify(doc)
	require.False(t, ok)
}
