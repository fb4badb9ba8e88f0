package generator

import "context"

// LLMClient abstracts the chat-completion backend so providers can be swapped
// and tests can script responses.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries the provider-independent configuration.
type LLMSettings struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
}
