package generator

import (
	"fmt"
	"strings"
)

const (
	brandLine  = "Digvijay Chaudhari — AI Systems Engineer & Consultant"
	brandColor = "Navy #0F172A, Blue #3B82F6, Purple #8B5CF6, Green #10B981, White #F8FAFC"
	brandFont  = "Modern, minimal, tech professional"
)

// claudePromptTemplateHint is the template shown to the model inside the
// generation prompt. RenderClaudePrompt produces the same shape locally when
// the model omits or mangles the claude_prompt key.
const claudePromptTemplateHint = `Make me a LinkedIn carousel PDF with this script:

TOPIC: [the topic]
BRAND: ` + brandLine + `
BRAND COLORS: ` + brandColor + `
FONT STYLE: ` + brandFont + `

SLIDE 1 — COVER:
Headline: [headline]
Subtext: [subtext]

SLIDE 2:
Headline: [headline]
• [point 1]
• [point 2]
• [point 3]

[... slides 3-9 same format ...]

SLIDE 10 — CTA:
Headline: Found this useful?
• Follow Digvijay Chaudhari for daily AI builds
• DM "BUILD" for AI consulting
• Like + Repost to help other builders
`

// RenderClaudePrompt builds the export prompt from the carousel script using
// the fixed brand template: slide 1 is the cover, slides 2-9 repeat the
// headline-plus-bullets structure, slide 10 is the fixed call to action.
// Slides are assumed normalized to CarouselLen entries.
func RenderClaudePrompt(topic string, slides []Slide) string {
	var sb strings.Builder

	sb.WriteString("Make me a LinkedIn carousel PDF with this script:\n\n")
	fmt.Fprintf(&sb, "TOPIC: %s\n", topic)
	fmt.Fprintf(&sb, "BRAND: %s\n", brandLine)
	fmt.Fprintf(&sb, "BRAND COLORS: %s\n", brandColor)
	fmt.Fprintf(&sb, "FONT STYLE: %s\n", brandFont)

	for i, slide := range slides {
		sb.WriteString("\n")
		switch i {
		case 0:
			sb.WriteString("SLIDE 1 — COVER:\n")
			fmt.Fprintf(&sb, "Headline: %s\n", slide.Headline)
			fmt.Fprintf(&sb, "Subtext: %s\n", coverSubtext(slide))
		case CarouselLen - 1:
			sb.WriteString("SLIDE 10 — CTA:\n")
			sb.WriteString("Headline: Found this useful?\n")
			sb.WriteString("• Follow Digvijay Chaudhari for daily AI builds\n")
			sb.WriteString("• DM \"BUILD\" for AI consulting\n")
			sb.WriteString("• Like + Repost to help other builders\n")
		default:
			fmt.Fprintf(&sb, "SLIDE %d:\n", i+1)
			fmt.Fprintf(&sb, "Headline: %s\n", slide.Headline)
			for _, point := range slide.BulletPoints {
				fmt.Fprintf(&sb, "• %s\n", point)
			}
		}
	}

	return sb.String()
}

func coverSubtext(slide Slide) string {
	if len(slide.BulletPoints) > 0 && strings.TrimSpace(slide.BulletPoints[0]) != "" {
		return slide.BulletPoints[0]
	}
	return brandLine
}
