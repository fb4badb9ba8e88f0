package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin_post_generator/pillar"
)

// scriptedLLM returns canned output and records the prompt it was given.
type scriptedLLM struct {
	out        string
	err        error
	calls      int
	lastPrompt Prompt
}

func (s *scriptedLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	return s.out, s.err
}

func trendPillar() pillar.Pillar {
	for _, p := range pillar.Catalog() {
		if p.Name == pillar.TrendPillarName {
			return p
		}
	}
	panic("trend pillar missing from catalog")
}

func TestNewAgentRequiresClient(t *testing.T) {
	_, err := NewAgent(nil)
	require.Error(t, err)
}

func TestAgentGenerateBuildsStructuredPrompt(t *testing.T) {
	llm := &scriptedLLM{out: validDoc}
	agent, err := NewAgent(llm)
	require.NoError(t, err)

	p := trendPillar()
	_, err = agent.Generate(context.Background(), p, "Global News: something happened")
	require.NoError(t, err)
	require.Equal(t, 1, llm.calls)

	assert.Contains(t, llm.lastPrompt.System, "LinkedIn ghostwriter")
	assert.Contains(t, llm.lastPrompt.System, "Digvijay Chaudhari")

	user := llm.lastPrompt.User
	assert.Contains(t, user, "**Pillar Name**: "+p.Name)
	assert.Contains(t, user, p.Description)
	assert.Contains(t, user, "Global News: something happened")
	assert.Contains(t, user, "STRICT FORMAT RULES")
	assert.Contains(t, user, "NAPKIN AI IMAGE PROMPT")
	assert.Contains(t, user, "10-slide carousel")
	for _, key := range []string{"headline", "linkedin_post", "image_prompt", "carousel_script", "claude_prompt"} {
		assert.Contains(t, user, `"`+key+`"`)
	}
}

func TestAgentGenerateWrapsBackendFailure(t *testing.T) {
	llm := &scriptedLLM{err: errors.New("connection refused")}
	agent, err := NewAgent(llm)
	require.NoError(t, err)

	_, err = agent.Generate(context.Background(), trendPillar(), "ctx")
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "backend", genErr.Kind)
}

func TestAgentGenerateParsesMockOutput(t *testing.T) {
	agent, err := NewAgent(MockLLM{})
	require.NoError(t, err)

	res, err := agent.Generate(context.Background(), trendPillar(), "ctx")
	require.NoError(t, err)
	assert.NotEmpty(t, res.LinkedInPost)
	assert.Len(t, res.CarouselScript, CarouselLen)
	assert.Contains(t, res.ClaudePrompt, "SLIDE 10 — CTA:")
}
