package urlcheck

import (
	"regexp"
	"strings"
)

// Rule is one suspicion pattern tested against a lowercased hostname.
type Rule struct {
	Name  string
	Match func(host string) bool
}

var (
	dottedQuadRe = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
	longLabelRe  = regexp.MustCompile(`[a-z0-9-]{20,}`)
	mixedAlnumRe = regexp.MustCompile(`[0-9]+[a-z]+[0-9]+`)
)

var shortenerDomains = []string{
	"bit.ly",
	"tinyurl.com",
	"goo.gl",
	"t.co",
	"ow.ly",
	"is.gd",
	"buff.ly",
	"rebrand.ly",
	"cutt.ly",
}

// DefaultRules are evaluated in order; every rule is tried, matches are not exclusive.
var DefaultRules = []Rule{
	{Name: "ip-address", Match: dottedQuadRe.MatchString},
	{Name: "long-label", Match: longLabelRe.MatchString},
	{Name: "url-shortener", Match: isShortener},
	{Name: "mixed-alnum", Match: mixedAlnumRe.MatchString},
}

func isShortener(host string) bool {
	for _, d := range shortenerDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

type Heuristics struct {
	rules []Rule
}

// NewHeuristics uses DefaultRules when no rules are given.
func NewHeuristics(rules ...Rule) *Heuristics {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Heuristics{rules: rules}
}

// Matches returns the names of every rule the host trips, in rule order.
func (h *Heuristics) Matches(host string) []string {
	host = strings.ToLower(host)
	var out []string
	for _, r := range h.rules {
		if r.Match(host) {
			out = append(out, r.Name)
		}
	}
	return out
}

// Classify builds the degraded-path verdict for a host.
func (h *Heuristics) Classify(host string) Result {
	if matched := h.Matches(host); len(matched) > 0 {
		return Result{
			Verdict:     VerdictSuspicious,
			Explanation: "Heuristic analysis flagged this URL as suspicious (" + strings.Join(matched, ", ") + ")",
			Error:       fallbackErrorMessage,
			Fallback:    true,
		}
	}
	return Result{
		Verdict:     VerdictUnknown,
		Explanation: "Unable to verify URL safety: reputation service unavailable and no heuristic red flags found",
		Error:       fallbackErrorMessage,
		Fallback:    true,
	}
}

const fallbackErrorMessage = "URLhaus service unavailable, used heuristic analysis"
