package logo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveProbeHit(t *testing.T) {
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	resolver := NewResolver(srv.URL)
	url := resolver.Resolve(context.Background(), "tcs")

	require.Equal(t, http.MethodHead, method)
	require.Equal(t, srv.URL+"/tcs.com", url)
}

func TestResolveProbeMissFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	resolver := NewResolver(srv.URL)
	url := resolver.Resolve(context.Background(), "tcs")

	require.Equal(t, AvatarURL("TCS"), url)
}

func TestResolveUnreachableProviderFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	resolver := NewResolver(srv.URL)
	url := resolver.Resolve(context.Background(), "itc")

	require.Equal(t, AvatarURL("ITC"), url)
}

// the fallback is keyed by the exact uppercased symbol
func TestAvatarURL(t *testing.T) {
	require.Equal(t,
		"https://ui-avatars.com/api/?name=INFY&background=39CC89&color=fff&size=64",
		AvatarURL("infy"))
}
