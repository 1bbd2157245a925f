package urlcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultLookupTimeout = 10 * time.Second
	maxLookupBody        = 1 << 20
)

type URLhausOutbound struct {
	endpoint  string
	authKey   string
	userAgent string
	timeout   time.Duration
	client    *http.Client
}

type URLhausOptions struct {
	Endpoint  string
	AuthKey   string
	UserAgent string
	Timeout   time.Duration
}

func NewURLhausOutbound(opts URLhausOptions) *URLhausOutbound {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}

	return &URLhausOutbound{
		endpoint:  opts.Endpoint,
		authKey:   opts.AuthKey,
		userAgent: opts.UserAgent,
		timeout:   timeout,
		client:    &http.Client{Timeout: timeout},
	}
}

// Lookup posts the URL form-encoded, once, with no retry.
func (c *URLhausOutbound) Lookup(ctx context.Context, target string) (QueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{"url": {target}}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return QueryResult{}, fmt.Errorf("%w: build request: %v", ErrServiceUnavailable, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.authKey != "" {
		req.Header.Set("Auth-Key", c.authKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return QueryResult{}, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLookupBody))
	if err != nil {
		return QueryResult{}, fmt.Errorf("%w: read body: %v", ErrServiceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return QueryResult{}, fmt.Errorf("%w: urlhaus api error: %s", ErrServiceUnavailable, resp.Status)
	}

	var qr QueryResult
	if err := json.Unmarshal(body, &qr); err != nil {
		return QueryResult{}, fmt.Errorf("%w: decode body: %v", ErrServiceUnavailable, err)
	}
	if qr.QueryStatus == "" {
		return QueryResult{}, fmt.Errorf("%w: response has no query_status", ErrServiceUnavailable)
	}
	qr.Raw = json.RawMessage(body)

	return qr, nil
}
