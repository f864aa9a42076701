package models

// ChatMessage represents a single message in a completion conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "system" | "user" | "assistant"
	Content string `json:"content"`
}

// CompletionRequest is the OpenAI-compatible body sent to the AI gateway.
type CompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// CompletionResponse is the subset of the gateway reply we read.
// Content is a pointer so a missing field can be told apart from an empty one.
type CompletionResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// FirstContent returns choices[0].message.content, or "" when the path is absent.
func (r *CompletionResponse) FirstContent() string {
	if r == nil || len(r.Choices) == 0 || r.Choices[0].Message.Content == nil {
		return ""
	}
	return *r.Choices[0].Message.Content
}
