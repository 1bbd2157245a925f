package urlcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristics_Matches(t *testing.T) {
	h := NewHeuristics()

	tests := []struct {
		host    string
		matched []string
	}{
		{"123.45.67.89", []string{"ip-address"}},
		{"example.com", nil},
		{"EXAMPLE.COM", nil},
		{"www.google.com", nil},
		{"bit.ly", []string{"url-shortener"}},
		{"BIT.LY", []string{"url-shortener"}},
		{"www.tinyurl.com", []string{"url-shortener"}},
		{"notbit.ly", nil},
		{"secure-login-verify-account.example.com", []string{"long-label"}},
		{"abcdefghij0123456789.net", []string{"long-label"}},
		{"login-secure-0000abc0000-verify.com", []string{"long-label", "mixed-alnum"}},
		{"paypal123login456.com", []string{"mixed-alnum"}},
		{"web2.0.example", nil},
		{"a1b2c.io", []string{"mixed-alnum"}},
	}

	for _, tc := range tests {
		t.Run(tc.host, func(t *testing.T) {
			assert.Equal(t, tc.matched, h.Matches(tc.host))
		})
	}
}

func TestHeuristics_Classify(t *testing.T) {
	h := NewHeuristics()

	res := h.Classify("123.45.67.89")
	assert.Equal(t, VerdictSuspicious, res.Verdict)
	assert.True(t, res.Fallback)
	assert.Contains(t, res.Explanation, "Heuristic")
	assert.Contains(t, res.Explanation, "ip-address")
	assert.NotEmpty(t, res.Error)

	res = h.Classify("example.com")
	assert.Equal(t, VerdictUnknown, res.Verdict)
	assert.True(t, res.Fallback)
	assert.Contains(t, res.Explanation, "reputation service unavailable")
	assert.NotEmpty(t, res.Error)
}

func TestHeuristics_CustomRules(t *testing.T) {
	h := NewHeuristics(
		Rule{Name: "onion", Match: func(host string) bool { return len(host) > 6 && host[len(host)-6:] == ".onion" }},
	)

	assert.Equal(t, []string{"onion"}, h.Matches("abc.ONION"))
	assert.Nil(t, h.Matches("123.45.67.89"), "custom rule set replaces the defaults")
}
