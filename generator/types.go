package generator

// Slide is one entry of the carousel script.
type Slide struct {
	SlideNumber  int      `json:"slide_number"`
	Emoji        string   `json:"emoji"`
	Headline     string   `json:"headline"`
	BulletPoints []string `json:"bullet_points"`
}

// Result is the five-key document the model must return for one generation.
// Field names match the wire contract exactly; postprocessing fills defaults
// for anything the model leaves out.
type Result struct {
	Headline       string  `json:"headline"`
	LinkedInPost   string  `json:"linkedin_post"`
	ImagePrompt    string  `json:"image_prompt"`
	CarouselScript []Slide `json:"carousel_script"`
	ClaudePrompt   string  `json:"claude_prompt"`
}

// CarouselLen is the fixed carousel length the format demands.
const CarouselLen = 10
