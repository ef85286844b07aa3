// Package screener extracts named financial metrics for a stock symbol
// from its screener.in company page.
package screener

import "errors"

// Sentinel marks a metric the page did not yield. A record carrying
// sentinels is still a success; only document-level failures surface as
// errors.
const Sentinel = "N/A"

var (
	ErrNotFound = errors.New("stock not found")
	ErrTimeout  = errors.New("timed out fetching stock data")
	ErrUpstream = errors.New("failed to fetch stock data")
)

// Record is the extracted metric set for one symbol. String-valued on
// purpose: the source page carries formatted figures (commas, Cr. units)
// and formatting is the frontend's concern.
type Record struct {
	Name            string `json:"name"`
	Price           string `json:"price"`
	MarketCap       string `json:"market_cap"`
	PERatio         string `json:"pe_ratio"`
	IndustryPE      string `json:"industry_pe"`
	ROE             string `json:"roe"`
	BookValue       string `json:"book_value"`
	DividendYield   string `json:"dividend_yield"`
	CurrentRatio    string `json:"current_ratio"`
	DebtToEquity    string `json:"debt_to_equity"`
	PromoterHolding string `json:"promoter_holding"`
	PromoterChange  string `json:"promoter_change"`
	FIIHolding      string `json:"fii_holding"`
	Logo            string `json:"logo"`
	Link            string `json:"link"`
}

func (r *Record) setField(name, value string) {
	switch name {
	case "market_cap":
		r.MarketCap = value
	case "pe_ratio":
		r.PERatio = value
	case "industry_pe":
		r.IndustryPE = value
	case "roe":
		r.ROE = value
	case "book_value":
		r.BookValue = value
	case "dividend_yield":
		r.DividendYield = value
	case "current_ratio":
		r.CurrentRatio = value
	case "debt_to_equity":
		r.DebtToEquity = value
	case "promoter_holding":
		r.PromoterHolding = value
	case "promoter_change":
		r.PromoterChange = value
	case "fii_holding":
		r.FIIHolding = value
	}
}
