package chat

import (
	"context"
	"errors"
	"log"

	"github.com/Vovarama1992/linkguard/internal/ai"
)

var ErrEmptyMessage = errors.New("chat: empty message")

type service struct {
	ai ai.AI
}

func NewService(aiClient ai.AI) Service {
	return &service{ai: aiClient}
}

func (s *service) Reply(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}

	log.Printf("[chat] relaying message len=%d", len(message))

	reply, err := s.ai.GetReply(ctx, []ai.Message{{Role: "user", Text: message}})
	if err != nil {
		if !errors.Is(err, ai.ErrUpstream) {
			err = errors.Join(ai.ErrUpstream, err)
		}
		return "", err
	}
	return reply, nil
}
