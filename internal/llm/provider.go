package llm

import "context"

// Provider is a chat completion backend.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Name() string
}

// Role is the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest asks for the next assistant turn. The last message
// must be from the user.
type CompletionRequest struct {
	Model string
	// System is the persona instruction sent ahead of the conversation.
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Usage counts the tokens billed for one completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Cost estimates the price of u in USD for model.
func (u Usage) Cost(model string) float64 {
	return EstimateCost(model, u.InputTokens, u.OutputTokens)
}

// CompletionResponse is the assistant's reply.
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}
