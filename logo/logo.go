// Package logo resolves a displayable logo URL for a stock symbol.
package logo

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const probeTimeout = 3 * time.Second

// Resolver probes the primary logo provider and falls back to a generated
// avatar when the probe fails.
type Resolver struct {
	client  *resty.Client
	baseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{
		client:  resty.New().SetTimeout(probeTimeout),
		baseURL: baseURL,
	}
}

// Resolve returns a usable logo URL for symbol. The existence check is a
// HEAD request with a hard timeout; any failure means "unavailable" and
// yields the deterministic avatar URL. Never returns an error.
func (r *Resolver) Resolve(ctx context.Context, symbol string) string {
	symbol = strings.ToUpper(symbol)
	probeURL := fmt.Sprintf("%s/%s.com", r.baseURL, strings.ToLower(symbol))

	resp, err := r.client.R().SetContext(ctx).Head(probeURL)
	if err != nil || resp.StatusCode() != http.StatusOK {
		return AvatarURL(symbol)
	}
	return probeURL
}

// AvatarURL builds the generated-avatar fallback keyed by the uppercased
// symbol text.
func AvatarURL(symbol string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=39CC89&color=fff&size=64", strings.ToUpper(symbol))
}
