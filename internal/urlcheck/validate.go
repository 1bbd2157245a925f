package urlcheck

import (
	"net/url"
	"strings"
)

// ParseTarget accepts only absolute http(s) URLs with a host.
func ParseTarget(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, ErrInvalidFormat
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ErrInvalidFormat
	}
	if u.Hostname() == "" {
		return nil, ErrInvalidFormat
	}
	return u, nil
}
