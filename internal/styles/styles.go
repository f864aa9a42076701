// Package styles holds the fixed table of rewrite styles and their system
// prompts. Lookups are total: any key outside the table resolves to Standard.
package styles

// Style identifies a rewriting instruction.
type Style string

const (
	Standard Style = "standard"
	Academic Style = "academic"
	Simple   Style = "simple"
	Formal   Style = "formal"
	Informal Style = "informal"
	Expand   Style = "expand"
	Shorten  Style = "shorten"
)

// Default is the style used for unknown or missing keys.
const Default = Standard

var order = []Style{Standard, Academic, Simple, Formal, Informal, Expand, Shorten}

var prompts = map[Style]string{
	Standard: "You are an expert at transforming AI-generated text into natural, human-like writing. " +
		"Rewrite the following text to sound more authentic, conversational, and natural while maintaining the original meaning. " +
		"Add subtle variations in sentence structure, use more natural transitions, and include minor imperfections that make it sound genuinely human-written.",
	Academic: "You are an expert at transforming AI-generated text into academic, scholarly writing. " +
		"Rewrite the following text using formal language, precise terminology, and structured arguments appropriate for academic papers. " +
		"Maintain objectivity and include appropriate transitions.",
	Simple: "You are an expert at simplifying complex text. " +
		"Rewrite the following text using simple, clear language that anyone can understand. " +
		"Use short sentences, common words, and straightforward explanations.",
	Formal: "You are an expert at transforming text into formal, professional writing. " +
		"Rewrite the following text using formal language, proper structure, and professional tone suitable for business or official communications.",
	Informal: "You are an expert at transforming text into casual, conversational writing. " +
		"Rewrite the following text using informal language, contractions, and a friendly, relaxed tone as if talking to a friend.",
	Expand: "You are an expert at expanding and elaborating on text. " +
		"Take the following text and expand it with more details, examples, explanations, and depth while maintaining the original message.",
	Shorten: "You are an expert at condensing text. " +
		"Take the following text and make it more concise while preserving all key information and the original meaning.",
}

// Resolve maps a caller-supplied key to a known Style. Unknown keys,
// including the empty string, resolve to Default. Matching is exact.
func Resolve(key string) Style {
	s := Style(key)
	if _, ok := prompts[s]; ok {
		return s
	}
	return Default
}

// Prompt returns the system prompt for key, falling back to the Standard prompt.
func Prompt(key string) string {
	return prompts[Resolve(key)]
}

// Prompt returns the system prompt for s.
func (s Style) Prompt() string {
	return Prompt(string(s))
}

// Valid reports whether s is one of the table's keys.
func (s Style) Valid() bool {
	_, ok := prompts[s]
	return ok
}

// All returns every style in table order.
func All() []Style {
	out := make([]Style, len(order))
	copy(out, order)
	return out
}
