package chat

import (
	"context"
	"iter"
)

// Request is everything a provider needs to answer one chat turn
type Request struct {
	SystemInstruction string
	Conversation      Conversation
}

// ChunkStream yields reply text chunks in the order the provider produced
// them. A non-nil error ends the stream.
type ChunkStream = iter.Seq2[string, error]

// Provider opens a streaming completion against a generative-AI backend.
// Implementations must stop producing chunks once ctx is cancelled.
type Provider interface {
	Name() string
	Stream(ctx context.Context, req Request) (ChunkStream, error)
}
