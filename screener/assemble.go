package screener

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"screenerscraper/logo"
)

// Engine orchestrates fetch, classification, field location and logo
// resolution into a Record. All working state is request-local; a single
// Engine is safe for concurrent use.
type Engine struct {
	fetcher *Fetcher
	logos   *logo.Resolver
	log     *slog.Logger
}

func NewEngine(client *http.Client, baseURL string, logos *logo.Resolver, logger *slog.Logger) *Engine {
	return &Engine{
		fetcher: NewFetcher(client, baseURL),
		logos:   logos,
		log:     logger,
	}
}

// Build fetches the company page for symbol and extracts the full metric
// record. Field-level misses degrade to the sentinel; only document-level
// failures return an error.
func (e *Engine) Build(ctx context.Context, symbol string) (Record, error) {
	symbol = strings.ToUpper(symbol)

	result := e.fetcher.Fetch(ctx, symbol)
	switch result.Status {
	case FetchNotFound:
		return Record{}, ErrNotFound
	case FetchTimeout:
		e.log.Warn("fetch timed out", "symbol", symbol, "err", result.Err)
		return Record{}, ErrTimeout
	case FetchTransport:
		e.log.Warn("fetch failed", "symbol", symbol, "err", result.Err)
		return Record{}, ErrUpstream
	}

	name, ok := Classify(result.Doc)
	if !ok {
		return Record{}, ErrNotFound
	}

	// Price absence doubles as a second not-found signal: a company page
	// without a current price row is treated as a missing symbol. This can
	// misfire for delisted instruments whose price is genuinely absent.
	price, ok := Locate(result.Doc.Selection, priceQuery)
	if !ok {
		return Record{}, ErrNotFound
	}

	record := Record{
		Name:  name,
		Price: Normalize(price),
		Link:  fmt.Sprintf("%s/company/%s/", e.fetcher.baseURL, symbol),
	}

	var unresolved []FieldSpec
	for _, spec := range fieldSpecs {
		raw, ok := Locate(result.Doc.Selection, spec.Query)
		if !ok {
			unresolved = append(unresolved, spec)
			continue
		}
		record.setField(spec.Name, Normalize(raw))
	}

	if len(unresolved) > 0 {
		sections := FinancialSections(result.Doc)
		for _, spec := range unresolved {
			raw, ok := LocateInSections(sections, spec.Query.Groups)
			if !ok {
				record.setField(spec.Name, Sentinel)
				e.log.Debug("field unavailable", "symbol", symbol, "field", spec.Name)
				continue
			}
			record.setField(spec.Name, Normalize(raw))
		}
	}

	record.Logo = e.logos.Resolve(ctx, symbol)

	return record, nil
}
