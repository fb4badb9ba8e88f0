package pillar

// Pillar is a named content theme; the active pillar decides what kind of post
// gets generated on a given day.
type Pillar struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TrendPillarName marks the pillar that pulls in live trend context before
// generating.
const TrendPillarName = "AI Trend + My Take"

var catalog = [4]Pillar{
	{
		Name:        "Technical Deep Dive",
		Description: "How I built something technical. Focus on architecture, code, or specific implementation details.",
	},
	{
		Name:        "Business ROI",
		Description: "How AI saves time or money. Focus on metrics, efficiency, and business value.",
	},
	{
		Name:        TrendPillarName,
		Description: "Latest AI news/trend with my personal professional opinion.",
	},
	{
		Name:        "Project Build Log",
		Description: "Update on what I am currently building (Alumniare, RAG Chatbot, or Voice Agent). Challenges faced, wins, progress.",
	},
}

// Catalog returns the fixed rotation order.
func Catalog() []Pillar {
	return catalog[:]
}

// Count is the catalog length; the rotation index wraps modulo Count.
const Count = len(catalog)
