package generator

import (
	"context"
	"errors"

	"linkedin_post_generator/pillar"
)

// Agent turns a pillar plus topic context into one generated Result. Every
// call is a fresh, independent request; there is no retry loop.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

func (a *Agent) Generate(ctx context.Context, p pillar.Pillar, topicContext string) (Result, error) {
	prompt := BuildPostPrompt(p, topicContext)

	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return Result{}, backendError(err)
	}
	return ParseResult(raw)
}
