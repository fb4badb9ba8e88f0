package generator

import (
	"fmt"
	"strings"

	"linkedin_post_generator/pillar"
)

// Prompt is the pair of messages sent to the model for one generation.
type Prompt struct {
	System string
	User   string
}

const userProfile = `
Name: Digvijay Chaudhari
Role: AI Systems Engineer & Consultant
Stack: Python, LangChain, RAG Pipelines, LLM Orchestration, n8n, AWS, Voice Agents
Projects:
  1. Alumniare — Multi-college alumni management SaaS
  2. RAG Chatbot — 98% accuracy, built with LangChain & Google Gemini
  3. AI Voice Agent — Autonomous meeting booking with custom knowledge base
  4. Taught AI to 300+ students at JSW Foundation (Microsoft/SBI funded)
Tone: Confident, technical, builder-focused, zero fluff
`

const postFormat = `
STRICT FORMAT RULES (NO EXCEPTIONS):

1. HOOK (Line 1-2):
   - Maximum 10 words
   - Bold claim or shocking stat
   - Stand alone on its own line
   - No full stops at end

2. STRUCTURE:
   - NO long paragraphs ever
   - Maximum 2 sentences per block
   - Every new point = new line
   - Add empty line between every point
   - Use numbered steps with emojis when explaining process:
     1️⃣ Step one
     2️⃣ Step two
     3️⃣ Step three

3. SENTENCES:
   - Maximum 12 words per sentence
   - If a sentence is longer → break it into 2
   - Use fragments intentionally:
     "No hallucinations. No excuses."
     "This is the difference."

4. NUMBERS AND STATS:
   - Always on their own line
   - Never buried in paragraphs

5. CTA (Last 3 lines always):
   - Line 1: Question or bold statement
   - Line 2: What to do (DM, connect, comment)
   - Line 3: What they get

6. HASHTAGS:
   - Exactly 5
   - One per line
   - Most specific first, broad last

7. TONE:
   - Reads like tweets stacked together
   - Confident, direct, zero fluff
   - Builder talking to builders
`

// BuildPostPrompt assembles the single structured prompt for a generation:
// profile, active pillar, trend context (or fallback), format rules, the three
// extra artifacts, and the JSON-only output contract.
func BuildPostPrompt(p pillar.Pillar, topicContext string) Prompt {
	var sb strings.Builder

	sb.WriteString("Create a LinkedIn post based on the following Active Pillar:\n\n")
	fmt.Fprintf(&sb, "**Pillar Name**: %s\n", p.Name)
	fmt.Fprintf(&sb, "**Pillar Description**: %s\n\n", p.Description)
	fmt.Fprintf(&sb, "**Context/Trend Info**:\n%s\n\n", topicContext)
	fmt.Fprintf(&sb, "**Format Requirements**:\n%s\n", postFormat)

	sb.WriteString(`
**Specific Instructions for 'AI Trend + My Take' Pillar (if active)**:
- Reference the LinkedIn article opinion/topic provided in the context.
- Either agree with a unique angle OR respectfully disagree.
- Make it feel like a response to the LinkedIn community.
- Keep the tone confident, technical, and builder-focused.

**ADDITIONAL REQUIREMENT 1: NAPKIN AI IMAGE PROMPT**:
Generate a detailed image prompt optimized for Napkin AI.
- The prompt should describe a clean, modern, tech-style visual.
- Should match the post topic exactly.

**ADDITIONAL REQUIREMENT 2: CAROUSEL GENERATOR**:
Generate a 10-slide carousel script based on the post topic.

Structure each slide object with:
- slide_number
- emoji
- headline (max 8 words)
- bullet_points (3 points, max 10 words each)

**ADDITIONAL REQUIREMENT 3: CLAUDE AI PROMPT**:
Generate ONE section called "claude_prompt" which contains the entire carousel
script formatted exactly as a prompt for Claude AI, using this template:
`)
	sb.WriteString("---\n")
	sb.WriteString(claudePromptTemplateHint)
	sb.WriteString("---\n")

	sb.WriteString(`
Output strictly in JSON format with the following keys:
- "headline": (A short internal headline/topic for the post)
- "linkedin_post": (The actual post content including hashtags)
- "image_prompt": (The Napkin AI image prompt)
- "carousel_script": (List of objects, each with "slide_number", "emoji", "headline", "bullet_points")
- "claude_prompt": (The formatted prompt string for Claude)

Return ONLY the JSON object. No markdown fences, no commentary.
`)

	return Prompt{
		System: fmt.Sprintf("You are an expert LinkedIn ghostwriter for %s. You write viral, high-value content.", strings.TrimSpace(userProfile)),
		User:   sb.String(),
	}
}
