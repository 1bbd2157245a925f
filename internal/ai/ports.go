package ai

import (
	"context"
	"errors"
)

// ErrUpstream wraps every failure of the completion service.
var ErrUpstream = errors.New("ai: upstream request failed")

// AI is the completion service; it knows nothing about HTTP handlers.
type AI interface {
	GetReply(ctx context.Context, history []Message) (string, error)
}

// Message is the provider-neutral dialogue format.
type Message struct {
	Role string // "user" | "assistant" | "system"
	Text string
}
