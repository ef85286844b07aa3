package screener

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// FetchStatus tags the outcome of a document fetch.
type FetchStatus int

const (
	FetchOK FetchStatus = iota
	FetchNotFound
	FetchTransport
	FetchTimeout
)

// FetchResult carries the parsed document on FetchOK. Err is kept for
// logging only and is never shown to API callers verbatim.
type FetchResult struct {
	Status FetchStatus
	Doc    *goquery.Document
	Err    error
}

// Fetcher downloads company pages. The HTTP client is injected so its
// timeout is configured once at startup.
type Fetcher struct {
	client  *http.Client
	baseURL string
}

func NewFetcher(client *http.Client, baseURL string) *Fetcher {
	return &Fetcher{
		client:  client,
		baseURL: baseURL,
	}
}

// Fetch downloads and parses the consolidated company page for symbol.
// Idempotent, safe to retry.
func (f *Fetcher) Fetch(ctx context.Context, symbol string) FetchResult {
	url := fmt.Sprintf("%s/company/%s/consolidated/", f.baseURL, strings.ToUpper(symbol))

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return FetchResult{Status: FetchTransport, Err: err}
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br, zstd")
	req.Header.Set("Referer", "https://www.google.com/")
	req.Header.Set("Connection", "keep-alive")

	resp, err := f.client.Do(req)
	if err != nil {
		var netErr net.Error
		if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
			return FetchResult{Status: FetchTimeout, Err: err}
		}
		return FetchResult{Status: FetchTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return FetchResult{Status: FetchNotFound}
	}
	if resp.StatusCode != http.StatusOK {
		return FetchResult{Status: FetchTransport, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	var reader io.Reader
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return FetchResult{Status: FetchTransport, Err: err}
		}
		defer gzipReader.Close()
		reader = gzipReader
	case "deflate":
		flateReader := flate.NewReader(resp.Body)
		defer flateReader.Close()
		reader = flateReader
	case "br":
		reader = brotli.NewReader(resp.Body)
	case "zstd":
		zstdReader, err := zstd.NewReader(resp.Body)
		if err != nil {
			return FetchResult{Status: FetchTransport, Err: err}
		}
		defer zstdReader.Close()
		reader = zstdReader
	default:
		reader = resp.Body
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return FetchResult{Status: FetchTransport, Err: fmt.Errorf("failed to parse HTML: %w", err)}
	}

	return FetchResult{Status: FetchOK, Doc: doc}
}
