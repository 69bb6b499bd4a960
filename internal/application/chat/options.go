package chat

import (
	"github.com/dicky/portfolio/internal/domain/chat"
	"go.uber.org/zap"
)

// Option configures a RelayService
type Option func(*RelayService)

// WithAPIKey sets the provider API key. Without one every relay fails with
// a configuration error before the provider is contacted.
func WithAPIKey(key string) Option {
	return func(s *RelayService) { s.apiKey = key }
}

// WithProvider sets the generative backend
func WithProvider(p chat.Provider) Option {
	return func(s *RelayService) { s.provider = p }
}

// WithContextSource sets where the portfolio context comes from
func WithContextSource(src ContextSource) Option {
	return func(s *RelayService) { s.contextSource = src }
}

// WithPersona replaces DefaultPersona
func WithPersona(persona string) Option {
	return func(s *RelayService) { s.persona = persona }
}

// WithMaxMessages keeps only the most recent n messages of a transcript.
// Zero disables the limit.
func WithMaxMessages(n int) Option {
	return func(s *RelayService) { s.maxMessages = n }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(s *RelayService) { s.logger = l }
}

// WithRecorder sets the relay metrics recorder
func WithRecorder(r Recorder) Option {
	return func(s *RelayService) { s.recorder = r }
}
