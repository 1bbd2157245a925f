package chat

import "context"

// Service relays one user message to the completion service.
type Service interface {
	Reply(ctx context.Context, message string) (string, error)
}

type Request struct {
	Message string `json:"message"`
}

type Reply struct {
	Reply string `json:"reply"`
}

type errorBody struct {
	Error string `json:"error"`
}
