// Package chart proxies chart data requests to the external charting
// provider, relaying its response verbatim.
package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"screenerscraper/cache"

	"github.com/gorilla/mux"
)

var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,15}$`)

const chartTTL = 5 * time.Minute

// relayed is the cached form of a provider response.
type relayed struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Proxy forwards chart requests to the provider's charts endpoint.
type Proxy struct {
	client *http.Client
	apiURL string
}

func NewProxy(client *http.Client, apiURL string) *Proxy {
	return &Proxy{
		client: client,
		apiURL: apiURL,
	}
}

// Handler serves GET /api/chart/{symbol}. The provider's status and raw
// body are relayed as-is, including provider-side errors.
func (p *Proxy) Handler(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	if !symbolPattern.MatchString(symbol) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid stock symbol"})
		return
	}

	days := r.URL.Query().Get("days")
	if days == "" {
		days = "365"
	}

	cacheKey := fmt.Sprintf("stock-chart:%s:%s", strings.ToUpper(symbol), days)
	resp, err := cache.Memoize(cacheKey, chartTTL, func() (relayed, error) {
		return p.fetch(r, strings.ToUpper(symbol), days)
	})
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "failed to fetch chart data"})
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.Status)
	w.Write(resp.Body)
}

func (p *Proxy) fetch(r *http.Request, symbol, days string) (relayed, error) {
	requestBody, err := json.Marshal(map[string]interface{}{
		"stockFilters": []map[string]string{
			{
				"days":       days,
				"tickerId":   symbol,
				"tickerType": "bse",
			},
		},
	})
	if err != nil {
		return relayed{}, err
	}

	req, err := http.NewRequestWithContext(r.Context(), "POST", p.apiURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return relayed{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:135.0) Gecko/20100101 Firefox/135.0")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.client.Do(req)
	if err != nil {
		return relayed{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return relayed{}, err
	}

	return relayed{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
