package urlcheck

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
)

type service struct {
	lookup     Lookup
	heuristics *Heuristics
}

func NewService(lookup Lookup, heuristics *Heuristics) Service {
	if heuristics == nil {
		heuristics = NewHeuristics()
	}
	return &service{lookup: lookup, heuristics: heuristics}
}

// Check validates rawURL, then either maps the reputation answer or falls back
// to heuristics. It only errors with ErrInvalidFormat or ErrFallbackFailed.
func (s *service) Check(ctx context.Context, rawURL string) (Result, error) {
	target, err := ParseTarget(rawURL)
	if err != nil {
		return Result{}, err
	}

	qr, err := s.lookup.Lookup(ctx, target.String())
	if err != nil {
		if !errors.Is(err, ErrServiceUnavailable) {
			err = fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}
		log.Printf("[urlcheck] lookup failed, using heuristics: %v", err)
		return s.fallback(target.String())
	}

	res := MapVerdict(qr)
	log.Printf("[urlcheck] query_status=%q url_status=%q verdict=%s", qr.QueryStatus, qr.URLStatus, res.Verdict)
	return res, nil
}

func (s *service) fallback(target string) (res Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("[urlcheck] heuristic fallback panic: %v", p)
			res, err = Result{}, fmt.Errorf("%w: %v", ErrFallbackFailed, p)
		}
	}()

	u, perr := url.Parse(target)
	if perr != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFallbackFailed, perr)
	}
	host := u.Hostname()
	if host == "" {
		return Result{}, fmt.Errorf("%w: empty hostname", ErrFallbackFailed)
	}

	res = s.heuristics.Classify(host)
	log.Printf("[urlcheck] fallback host=%q verdict=%s", host, res.Verdict)
	return res, nil
}
