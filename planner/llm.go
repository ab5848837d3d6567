package planner

import "context"

// Chunk is one streamed fragment of a completion. A non-nil Err terminates
// the sequence; producers send it as the final chunk and close the channel.
type Chunk struct {
	Text string
	Err  error
}

// CompletionClient abstracts the chat-completion backend so the pipeline can
// run against any OpenAI-compatible API or an offline mock.
type CompletionClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
	Stream(ctx context.Context, prompt Prompt) (<-chan Chunk, error)
}

// LLMSettings provides the base configuration for a concrete client.
type LLMSettings struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}
