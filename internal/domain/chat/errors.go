package chat

import (
	"errors"

	"github.com/dicky/portfolio/internal/domain/shared"
)

// Error codes for the chat relay
const (
	CodeConfiguration     = "CONFIGURATION_ERROR"
	CodeEmptyConversation = "EMPTY_CONVERSATION"
	CodeProvider          = "PROVIDER_ERROR"
	CodeStreamInterrupted = "STREAM_INTERRUPTED"
)

// DefaultProviderMessage is reported when the provider gives no usable message
const DefaultProviderMessage = "Terjadi kesalahan pada server AI."

var (
	ErrMissingAPIKey     = shared.NewDomainError(CodeConfiguration, "Server Configuration Error: API Key missing")
	ErrEmptyConversation = shared.NewDomainError(CodeEmptyConversation, "messages must contain at least one message")
)

// ProviderRequestError is returned when the provider rejects a request before
// any chunk has been produced.
type ProviderRequestError struct {
	Provider string
	Err      error
}

func (e *ProviderRequestError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return DefaultProviderMessage
	}
	return e.Err.Error()
}

func (e *ProviderRequestError) Unwrap() error { return e.Err }

// StreamInterruptionError is returned when the provider fails after the
// response has started. It can only be signalled by aborting the stream.
type StreamInterruptionError struct {
	Provider string
	Chunks   int
	Err      error
}

func (e *StreamInterruptionError) Error() string {
	if e.Err == nil {
		return "stream interrupted"
	}
	return "stream interrupted: " + e.Err.Error()
}

func (e *StreamInterruptionError) Unwrap() error { return e.Err }

// IsStreamInterruption reports whether err aborted an already started stream
func IsStreamInterruption(err error) bool {
	var sie *StreamInterruptionError
	return errors.As(err, &sie)
}
