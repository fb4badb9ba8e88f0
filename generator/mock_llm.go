package generator

import (
	"context"
	"encoding/json"
	"fmt"
)

// MockLLM is an offline stand-in that always returns a well-formed five-key
// document. Useful for local runs without API keys and for server tests.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	slides := make([]Slide, CarouselLen)
	for i := range slides {
		slides[i] = Slide{
			SlideNumber: i + 1,
			Emoji:       "🔧",
			Headline:    fmt.Sprintf("Mock slide %d", i+1),
			BulletPoints: []string{
				"First mock point",
				"Second mock point",
				"Third mock point",
			},
		}
	}

	result := Result{
		Headline:       "Mock topic",
		LinkedInPost:   "I shipped a mock post.\n\nNo API calls. No cost.\n\n#Mock\n#Testing\n#Go\n#LLM\n#Builders",
		ImagePrompt:    "Clean modern tech illustration of a mock pipeline.",
		CarouselScript: slides,
		ClaudePrompt:   RenderClaudePrompt("Mock topic", slides),
	}

	data, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
