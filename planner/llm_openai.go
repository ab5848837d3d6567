package planner

import (
	"context"
	"errors"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAILLM implements CompletionClient using the official openai-go SDK
// (chat completions). Any OpenAI-compatible endpoint works via BaseURL.
type OpenAILLM struct {
	Model string
	Opts  []option.RequestOption
}

func NewOpenAILLMFromConfig(cfg *LLMSettings) (*OpenAILLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, providerErr(KindUnauthenticated, errors.New("api key missing; set OPENAI_API_KEY or llm.api_key"))
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAILLM{Model: cfg.Model, Opts: opts}, nil
}

func (o *OpenAILLM) params(prompt Prompt) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
	}
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.Opts...)

	resp, err := client.Chat.Completions.New(ctx, o.params(prompt))
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", providerErr(KindMalformedResponse, errors.New("empty completion"))
	}
	return resp.Choices[0].Message.Content, nil
}

// Stream starts a streaming completion and forwards content deltas on the
// returned channel. The channel is closed when the stream ends; abnormal
// termination delivers a final Chunk carrying the classified error.
func (o *OpenAILLM) Stream(ctx context.Context, prompt Prompt) (<-chan Chunk, error) {
	client := openai.NewClient(o.Opts...)

	stream := client.Chat.Completions.NewStreaming(ctx, o.params(prompt))
	out := make(chan Chunk, 64)
	go func() {
		defer close(out)
		defer stream.Close()
		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			if delta := chunk.Choices[0].Delta.Content; delta != "" {
				out <- Chunk{Text: delta}
			}
		}
		if err := stream.Err(); err != nil {
			out <- Chunk{Err: classifyOpenAIError(err)}
		}
	}()
	return out, nil
}

// classifyOpenAIError maps SDK failures onto the ProviderError taxonomy.
// Context cancellation passes through unwrapped so callers can detect a user
// interrupt with errors.Is.
func classifyOpenAIError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == 401 || apierr.StatusCode == 403:
			return providerErr(KindUnauthenticated, err)
		case apierr.StatusCode == 429:
			return providerErr(KindRateLimited, err)
		default:
			return providerErr(KindUnavailable, err)
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return providerErr(KindUnavailable, err)
}
