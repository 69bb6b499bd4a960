package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dicky/portfolio/internal/domain/chat"
	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.5-flash-preview-09-2025"

// GeminiProvider streams completions from the Gemini API
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini client. baseURL is optional.
func NewGeminiProvider(ctx context.Context, apiKey, model, baseURL string) (*GeminiProvider, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions.BaseURL = baseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// Name implements chat.Provider
func (p *GeminiProvider) Name() string { return ProviderGemini }

// Stream implements chat.Provider. The request is sent when the returned
// sequence is first pulled.
func (p *GeminiProvider) Stream(ctx context.Context, req chat.Request) (chat.ChunkStream, error) {
	contents := geminiContents(req.Conversation)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
	}
	responses := p.client.Models.GenerateContentStream(ctx, p.model, contents, cfg)

	return func(yield func(string, error) bool) {
		for resp, err := range responses {
			if err != nil {
				yield("", geminiError(err))
				return
			}
			if !yield(responseText(resp), nil) {
				return
			}
		}
	}, nil
}

func geminiContents(conv chat.Conversation) []*genai.Content {
	contents := make([]*genai.Content, 0, len(conv.History)+1)
	for _, turn := range conv.History {
		role := genai.Role(genai.RoleUser)
		if turn.Role == chat.ProviderRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	return append(contents, genai.NewContentFromText(conv.Prompt, genai.RoleUser))
}

// responseText concatenates the text parts of the first candidate, skipping
// thought summaries.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &apiError{message: apiErr.Message, cause: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr.Message != "" {
		return &apiError{message: apiErrPtr.Message, cause: err}
	}
	return err
}
