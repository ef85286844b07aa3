package screener

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"screenerscraper/cache"

	"github.com/gorilla/mux"
)

var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,15}$`)

const recordTTL = 5 * time.Minute

// MetricsHandler serves GET /api/metrics/{symbol}. Malformed symbols are
// rejected before any network call is made.
func (e *Engine) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	if !symbolPattern.MatchString(symbol) {
		writeError(w, http.StatusBadRequest, "invalid stock symbol")
		return
	}

	cacheKey := fmt.Sprintf("metrics:%s", strings.ToUpper(symbol))
	record, err := cache.Memoize(cacheKey, recordTTL, func() (Record, error) {
		return e.Build(r.Context(), symbol)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, "stock not found or page unavailable")
		case errors.Is(err, ErrTimeout):
			writeError(w, http.StatusInternalServerError, "timed out fetching stock data")
		default:
			writeError(w, http.StatusInternalServerError, "failed to fetch stock data")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
