package ai

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client  *openai.Client
	model   string
	persona Persona
}

type OpenAIOptions struct {
	APIKey  string
	Model   string
	BaseURL string
	Persona Persona
}

func NewOpenAIClient(opts OpenAIOptions) *OpenAIClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	model := opts.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	persona := opts.Persona
	if persona.System == "" {
		persona = DefaultPersona()
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		persona: persona,
	}
}

// GetReply sends the persona as the first system message, then the history.
func (c *OpenAIClient) GetReply(ctx context.Context, history []Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: c.persona.System,
	})
	for _, m := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		MaxTokens:   c.persona.Style.MaxTokens,
		Temperature: c.persona.Style.Temperature,
	})
	if err != nil {
		log.Println("[ai] OpenAI error:", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		log.Println("[ai] empty choices")
		return "", fmt.Errorf("%w: empty choices", ErrUpstream)
	}

	return resp.Choices[0].Message.Content, nil
}
