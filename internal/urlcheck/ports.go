package urlcheck

import (
	"context"
	"encoding/json"
	"errors"
)

type Verdict string

const (
	VerdictSafe       Verdict = "safe"
	VerdictMalicious  Verdict = "malicious"
	VerdictSuspicious Verdict = "suspicious"
	VerdictUnknown    Verdict = "unknown"
)

// URLhaus query_status / url_status values the mapper knows about.
const (
	QueryStatusNoResults = "no_results"
	QueryStatusOK        = "ok"

	URLStatusOnline  = "online"
	URLStatusOffline = "offline"
)

var (
	ErrInvalidFormat      = errors.New("urlcheck: invalid URL format")
	ErrServiceUnavailable = errors.New("urlcheck: reputation service unavailable")
	ErrFallbackFailed     = errors.New("urlcheck: heuristic fallback failed")
)

// QueryResult is the reputation service answer. Raw keeps the body as received.
type QueryResult struct {
	QueryStatus string          `json:"query_status"`
	URLStatus   string          `json:"url_status,omitempty"`
	Raw         json.RawMessage `json:"-"`
}

// Lookup queries the external reputation service for a validated URL.
// Every failure must wrap ErrServiceUnavailable.
type Lookup interface {
	Lookup(ctx context.Context, target string) (QueryResult, error)
}

// Service runs the validate -> lookup -> verdict pipeline.
type Service interface {
	Check(ctx context.Context, rawURL string) (Result, error)
}

// Result is the /api/check-url response body on the 200 paths.
type Result struct {
	Verdict     Verdict         `json:"verdict"`
	Explanation string          `json:"explanation"`
	Details     json.RawMessage `json:"details,omitempty"`
	Error       string          `json:"error,omitempty"`
	Fallback    bool            `json:"fallback,omitempty"`
}

type Request struct {
	URL string `json:"url"`
}

type errorBody struct {
	Error string `json:"error"`
}

type failureBody struct {
	Verdict Verdict `json:"verdict"`
	Error   string  `json:"error"`
	Details string  `json:"details"`
}
