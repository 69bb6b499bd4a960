package ai

import (
	"context"
	"errors"
	"io"

	"github.com/dicky/portfolio/internal/domain/chat"
	openaiapi "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no model is configured
const DefaultOpenAIModel = openaiapi.GPT4oMini

// OpenAIProvider streams completions from an OpenAI-compatible endpoint
type OpenAIProvider struct {
	api   *openaiapi.Client
	model string
}

// NewOpenAIProvider creates the client. baseURL selects a compatible
// endpoint and defaults to the OpenAI API.
func NewOpenAIProvider(apiKey, model, baseURL string) *OpenAIProvider {
	cfg := openaiapi.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIProvider{
		api:   openaiapi.NewClientWithConfig(cfg),
		model: model,
	}
}

// Name implements chat.Provider
func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

// Stream implements chat.Provider. The HTTP request is made up front, so
// authentication and quota errors are returned directly.
func (p *OpenAIProvider) Stream(ctx context.Context, req chat.Request) (chat.ChunkStream, error) {
	stream, err := p.api.CreateChatCompletionStream(ctx, openaiapi.ChatCompletionRequest{
		Model:    p.model,
		Stream:   true,
		Messages: toAPIMessages(req),
	})
	if err != nil {
		return nil, openAIError(err)
	}

	return func(yield func(string, error) bool) {
		defer stream.Close()
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", openAIError(err))
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			if !yield(resp.Choices[0].Delta.Content, nil) {
				return
			}
		}
	}, nil
}

func toAPIMessages(req chat.Request) []openaiapi.ChatCompletionMessage {
	conv := req.Conversation
	res := make([]openaiapi.ChatCompletionMessage, 0, len(conv.History)+2)
	res = append(res, openaiapi.ChatCompletionMessage{
		Role:    openaiapi.ChatMessageRoleSystem,
		Content: req.SystemInstruction,
	})
	for _, turn := range conv.History {
		role := openaiapi.ChatMessageRoleUser
		if turn.Role == chat.ProviderRoleModel {
			role = openaiapi.ChatMessageRoleAssistant
		}
		res = append(res, openaiapi.ChatCompletionMessage{Role: role, Content: turn.Text})
	}
	return append(res, openaiapi.ChatCompletionMessage{
		Role:    openaiapi.ChatMessageRoleUser,
		Content: conv.Prompt,
	})
}

func openAIError(err error) error {
	var apiErr *openaiapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &apiError{message: apiErr.Message, cause: err}
	}
	return err
}
