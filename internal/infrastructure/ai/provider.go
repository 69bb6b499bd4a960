// Package ai adapts generative-AI SDKs to the chat.Provider interface.
package ai

import (
	"context"
	"fmt"

	"github.com/dicky/portfolio/internal/domain/chat"
	"github.com/dicky/portfolio/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Provider names accepted in configuration
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// NewProvider builds the configured provider. Without an API key it returns
// a nil provider and no error; the relay then rejects chats with a
// configuration error instead of failing the whole service at startup.
func NewProvider(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (chat.Provider, error) {
	if cfg.APIKey == "" {
		logger.Warn("AI API key is not set; chat requests will fail until it is configured",
			zap.String("provider", cfg.Provider))
		return nil, nil
	}

	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiProvider(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}

// apiError carries the human-readable message of a provider API error while
// keeping the SDK error reachable through errors.As.
type apiError struct {
	message string
	cause   error
}

func (e *apiError) Error() string { return e.message }

func (e *apiError) Unwrap() error { return e.cause }
