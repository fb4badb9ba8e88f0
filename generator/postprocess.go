package generator

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaptinlin/jsonrepair"
)

// ParseResult turns the raw model output into a normalized Result. Models
// routinely wrap JSON in markdown fences or emit slightly broken documents, so
// parsing is: strip wrapping, strict parse, then one repair attempt. Anything
// still unparseable is a GenerationError; the original parse error is kept.
func ParseResult(raw string) (Result, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return Result{}, parseError(errors.New("model returned no JSON object"))
	}

	var res Result
	err := jsoniter.UnmarshalFromString(jsonStr, &res)
	if err == nil {
		normalize(&res)
		return res, nil
	}
	originalErr := err

	repaired, repErr := jsonrepair.JSONRepair(jsonStr)
	if repErr != nil {
		return Result{}, parseError(fmt.Errorf("invalid JSON response: %w", originalErr))
	}
	if err := jsoniter.UnmarshalFromString(repaired, &res); err != nil {
		return Result{}, parseError(fmt.Errorf("invalid JSON response: %w", originalErr))
	}

	normalize(&res)
	return res, nil
}

// extractJSON drops markdown fences and any prose around the outermost object.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}

// normalize fills defaults for missing or short keys so callers can render the
// result without per-field nil checks: the carousel always has exactly
// CarouselLen slides with sequential numbers and three bullet slots, and a
// missing claude_prompt is re-rendered locally from the carousel.
func normalize(res *Result) {
	if len(res.CarouselScript) > CarouselLen {
		res.CarouselScript = res.CarouselScript[:CarouselLen]
	}
	for len(res.CarouselScript) < CarouselLen {
		res.CarouselScript = append(res.CarouselScript, Slide{
			Headline: fmt.Sprintf("Slide %d", len(res.CarouselScript)+1),
		})
	}
	for i := range res.CarouselScript {
		slide := &res.CarouselScript[i]
		slide.SlideNumber = i + 1
		if slide.Headline == "" {
			slide.Headline = fmt.Sprintf("Slide %d", i+1)
		}
		if len(slide.BulletPoints) > 3 {
			slide.BulletPoints = slide.BulletPoints[:3]
		}
		for len(slide.BulletPoints) < 3 {
			slide.BulletPoints = append(slide.BulletPoints, "")
		}
	}

	if strings.TrimSpace(res.Headline) == "" {
		res.Headline = res.CarouselScript[0].Headline
	}
	if strings.TrimSpace(res.ClaudePrompt) == "" {
		res.ClaudePrompt = RenderClaudePrompt(res.Headline, res.CarouselScript)
	}
}
