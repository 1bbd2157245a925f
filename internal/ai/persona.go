package ai

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultSystemPrompt = `You are LinkGuard, a friendly cybersecurity assistant.
Help users understand online threats such as phishing, malware and scam links.
Give short, practical answers. If a user asks whether a specific link is safe,
suggest running it through the URL checker instead of guessing.`

const (
	DefaultTemperature float32 = 0.7
	DefaultMaxTokens           = 500
)

// Persona is the fixed preamble and sampling style sent with every chat request.
type Persona struct {
	System string `yaml:"system"`
	Style  struct {
		Temperature float32 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
	} `yaml:"style"`
}

func DefaultPersona() Persona {
	var p Persona
	p.System = DefaultSystemPrompt
	p.Style.Temperature = DefaultTemperature
	p.Style.MaxTokens = DefaultMaxTokens
	return p
}

// LoadPersona reads a persona YAML file. Empty fields keep their defaults.
func LoadPersona(path string) (Persona, error) {
	p := DefaultPersona()
	if path == "" {
		return p, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read persona: %w", err)
	}

	var raw Persona
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return p, fmt.Errorf("parse persona: %w", err)
	}

	if s := strings.TrimSpace(raw.System); s != "" {
		p.System = s
	}
	if raw.Style.Temperature > 0 {
		p.Style.Temperature = raw.Style.Temperature
	}
	if raw.Style.MaxTokens > 0 {
		p.Style.MaxTokens = raw.Style.MaxTokens
	}
	return p, nil
}
