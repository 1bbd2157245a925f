package urlcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLhausOutbound_Lookup(t *testing.T) {
	const body = `{"query_status":"ok","url_status":"online","threat":"malware_download"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/url/", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "linkguard-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "key-123", r.Header.Get("Auth-Key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "http://evil.example/payload.exe", r.PostForm.Get("url"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	c := NewURLhausOutbound(URLhausOptions{
		Endpoint:  server.URL + "/v1/url/",
		AuthKey:   "key-123",
		UserAgent: "linkguard-test",
	})

	qr, err := c.Lookup(context.Background(), "http://evil.example/payload.exe")
	require.NoError(t, err)
	assert.Equal(t, "ok", qr.QueryStatus)
	assert.Equal(t, "online", qr.URLStatus)
	assert.JSONEq(t, body, string(qr.Raw))
}

func TestURLhausOutbound_OmitsEmptyAuthKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Auth-Key"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"query_status":"no_results"}`))
	}))
	defer server.Close()

	c := NewURLhausOutbound(URLhausOptions{Endpoint: server.URL, UserAgent: "ua"})
	qr, err := c.Lookup(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "no_results", qr.QueryStatus)
}

func TestURLhausOutbound_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"server error", http.StatusInternalServerError, `{"query_status":"ok"}`},
		{"unauthorized", http.StatusUnauthorized, `Unauthorized`},
		{"not json", http.StatusOK, `<html>maintenance</html>`},
		{"json without status", http.StatusOK, `{"foo":"bar"}`},
		{"json array", http.StatusOK, `[]`},
		{"empty body", http.StatusOK, ``},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.payload))
			}))
			defer server.Close()

			c := NewURLhausOutbound(URLhausOptions{Endpoint: server.URL})
			_, err := c.Lookup(context.Background(), "https://example.com")
			assert.ErrorIs(t, err, ErrServiceUnavailable)
		})
	}
}

func TestURLhausOutbound_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	c := NewURLhausOutbound(URLhausOptions{Endpoint: server.URL, Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := c.Lookup(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Less(t, time.Since(start), time.Second)
}

func TestURLhausOutbound_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	c := NewURLhausOutbound(URLhausOptions{Endpoint: endpoint})
	_, err := c.Lookup(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestNewURLhausOutbound_DefaultTimeout(t *testing.T) {
	c := NewURLhausOutbound(URLhausOptions{Endpoint: "http://localhost"})
	assert.Equal(t, 10*time.Second, c.client.Timeout)
}
