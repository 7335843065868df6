package generation_model

// Message is one turn of a conversation payload.
type Message struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ConversationRequest is the body for conversation and code generation.
type ConversationRequest struct {
	Messages []Message `json:"messages" validate:"required,min=1,dive"`
}

// Last returns the content of the final message, the prompt the models see.
func (r ConversationRequest) Last() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1].Content
}

// PromptRequest is the body for image and video generation.
type PromptRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// MusicRequest is the body for asynchronous music composition.
type MusicRequest struct {
	Prompt  string `json:"prompt" validate:"required"`
	Format  string `json:"format" validate:"omitempty,oneof=wav mp3 aac"`
	Looping bool   `json:"looping"`
}

// ConversationResponse is the reply shape for text and code generation.
type ConversationResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
