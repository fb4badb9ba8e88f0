package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
	"headline": "RAG accuracy",
	"linkedin_post": "I built a RAG chatbot.\n\n#RAG",
	"image_prompt": "clean tech visual",
	"carousel_script": [
		{"slide_number": 1, "emoji": "🚀", "headline": "Cover", "bullet_points": ["a", "b", "c"]},
		{"slide_number": 2, "emoji": "🔍", "headline": "Problem", "bullet_points": ["x", "y", "z"]}
	],
	"claude_prompt": "Make me a LinkedIn carousel PDF with this script: ..."
}`

func TestParseResultAcceptsPlainJSON(t *testing.T) {
	res, err := ParseResult(validDoc)
	require.NoError(t, err)
	assert.Equal(t, "RAG accuracy", res.Headline)
	assert.Equal(t, "clean tech visual", res.ImagePrompt)
	assert.Len(t, res.CarouselScript, CarouselLen, "carousel is padded to the fixed length")
}

func TestParseResultStripsMarkdownFences(t *testing.T) {
	fenced := "```json\n" + validDoc + "\n```"
	res, err := ParseResult(fenced)
	require.NoError(t, err)
	assert.Equal(t, "RAG accuracy", res.Headline)
}

func TestParseResultIgnoresSurroundingProse(t *testing.T) {
	wrapped := "Here is your post:\n" + validDoc + "\nHope that helps!"
	res, err := ParseResult(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "RAG accuracy", res.Headline)
}

func TestParseResultRepairsAlmostJSON(t *testing.T) {
	// Trailing comma: rejected by a strict parser, fixed by the repair pass.
	broken := `{"headline": "fixable", "linkedin_post": "post", "image_prompt": "img", "carousel_script": [], "claude_prompt": "cp",}`
	res, err := ParseResult(broken)
	require.NoError(t, err)
	assert.Equal(t, "fixable", res.Headline)
}

func TestParseResultRejectsNonJSON(t *testing.T) {
	_, err := ParseResult("Sorry, I cannot help with that.")
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "parse", genErr.Kind)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	res, err := ParseResult(`{"linkedin_post": "just a post"}`)
	require.NoError(t, err)

	assert.Equal(t, "just a post", res.LinkedInPost)
	assert.Len(t, res.CarouselScript, CarouselLen)
	for i, slide := range res.CarouselScript {
		assert.Equal(t, i+1, slide.SlideNumber)
		assert.NotEmpty(t, slide.Headline)
		assert.Len(t, slide.BulletPoints, 3)
	}
	assert.NotEmpty(t, res.Headline)
	assert.NotEmpty(t, res.ClaudePrompt, "claude_prompt re-rendered when missing")
}

func TestNormalizeTruncatesOversizedCarousel(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"headline": "h", "carousel_script": [`)
	for i := 0; i < 14; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"slide_number": 99, "headline": "s", "bullet_points": ["1","2","3","4"]}`)
	}
	sb.WriteString(`]}`)

	res, err := ParseResult(sb.String())
	require.NoError(t, err)
	assert.Len(t, res.CarouselScript, CarouselLen)
	for i, slide := range res.CarouselScript {
		assert.Equal(t, i+1, slide.SlideNumber, "slide numbers resequenced")
		assert.Len(t, slide.BulletPoints, 3)
	}
}

func TestRenderClaudePromptRoundTrip(t *testing.T) {
	res, err := ParseResult(validDoc)
	require.NoError(t, err)

	prompt := RenderClaudePrompt(res.Headline, res.CarouselScript)

	assert.Equal(t, CarouselLen, strings.Count(prompt, "SLIDE "), "exactly 10 slide blocks")
	assert.Contains(t, prompt, "SLIDE 1 — COVER:")
	assert.Contains(t, prompt, "SLIDE 10 — CTA:")
	assert.Contains(t, prompt, "TOPIC: RAG accuracy")
	assert.Contains(t, prompt, "BRAND: "+brandLine)
	assert.Contains(t, prompt, "BRAND COLORS: "+brandColor)
	for i := 2; i <= 9; i++ {
		assert.Contains(t, prompt, "SLIDE "+string(rune('0'+i))+":")
	}
	assert.Contains(t, prompt, "Found this useful?")
}
