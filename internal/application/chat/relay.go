// Package chat relays visitor conversations to a generative-AI provider and
// streams the reply back as it is produced.
package chat

import (
	"context"
	"errors"
	"io"
	"iter"
	"sync"
	"time"

	"github.com/dicky/portfolio/internal/domain/chat"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/dicky/portfolio/internal/application/chat"

// ContextSource supplies the portfolio context placed in the system
// instruction. It never fails; a degraded source returns a fallback text.
type ContextSource interface {
	PortfolioContext(ctx context.Context) string
}

// ChunkWriter receives reply chunks. Flush is called after every chunk.
type ChunkWriter interface {
	io.Writer
	Flush()
}

// Outcome classifies how a relay ended
type Outcome string

const (
	OutcomeCompleted    Outcome = "completed"
	OutcomeRejected     Outcome = "rejected"
	OutcomeInterrupted  Outcome = "interrupted"
	OutcomeCancelled    Outcome = "cancelled"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeUnconfigured Outcome = "unconfigured"
)

// Recorder observes finished relays
type Recorder interface {
	RelayFinished(provider string, outcome Outcome, chunks int, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RelayFinished(string, Outcome, int, time.Duration) {}

type staticContext string

func (s staticContext) PortfolioContext(context.Context) string { return string(s) }

// RelayService opens provider streams for chat requests
type RelayService struct {
	apiKey        string
	provider      chat.Provider
	contextSource ContextSource
	persona       string
	maxMessages   int
	logger        *zap.Logger
	recorder      Recorder
	tracer        trace.Tracer
	now           func() time.Time
}

// NewRelayService creates a RelayService
func NewRelayService(opts ...Option) *RelayService {
	s := &RelayService{
		contextSource: staticContext(""),
		persona:       DefaultPersona,
		logger:        zap.NewNop(),
		recorder:      noopRecorder{},
		tracer:        otel.Tracer(tracerName),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RelayService) providerName() string {
	if s.provider == nil {
		return "none"
	}
	return s.provider.Name()
}

// Open validates the request, starts the provider stream and waits for the
// first chunk. Every error returned by Open happens before any byte of the
// reply exists, so callers can still answer with a JSON error.
func (s *RelayService) Open(ctx context.Context, messages []chat.Message) (*Relay, error) {
	started := s.now()
	name := s.providerName()

	if s.apiKey == "" || s.provider == nil {
		s.logger.Error("Chat provider API key is not configured", zap.String("provider", name))
		s.recorder.RelayFinished(name, OutcomeUnconfigured, 0, 0)
		return nil, chat.ErrMissingAPIKey
	}

	if s.maxMessages > 0 && len(messages) > s.maxMessages {
		messages = messages[len(messages)-s.maxMessages:]
	}
	conv, err := chat.BuildConversation(messages)
	if err != nil {
		s.recorder.RelayFinished(name, OutcomeInvalid, 0, 0)
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "chat.relay", trace.WithAttributes(
		attribute.String("ai.provider", name),
		attribute.Int("chat.history_turns", len(conv.History)),
	))

	instruction := BuildSystemInstruction(s.persona, s.contextSource.PortfolioContext(ctx))
	stream, err := s.provider.Stream(ctx, chat.Request{
		SystemInstruction: instruction,
		Conversation:      conv,
	})
	if err != nil {
		return nil, s.reject(span, name, started, err)
	}

	next, stop := iter.Pull2(iter.Seq2[string, error](stream))
	r := &Relay{
		ctx:      ctx,
		next:     next,
		stop:     stop,
		provider: name,
		started:  started,
		span:     span,
		service:  s,
		outcome:  OutcomeCompleted,
	}

	// Nothing has been written yet, so a failure here is still a request
	// error rather than an interrupted stream.
	for {
		chunk, err, ok := next()
		if !ok {
			r.done = true
			break
		}
		if err != nil {
			stop()
			return nil, s.reject(span, name, started, err)
		}
		if chunk != "" {
			r.pending = chunk
			break
		}
	}
	return r, nil
}

func (s *RelayService) reject(span trace.Span, name string, started time.Time, err error) error {
	var pre *chat.ProviderRequestError
	if !errors.As(err, &pre) {
		pre = &chat.ProviderRequestError{Provider: name, Err: err}
	}
	s.logger.Error("Chat provider rejected request", zap.String("provider", name), zap.Error(err))
	span.RecordError(err)
	span.SetStatus(codes.Error, pre.Error())
	span.End()
	s.recorder.RelayFinished(name, OutcomeRejected, 0, s.now().Sub(started))
	return pre
}

// Relay is an open provider stream whose first chunk has already arrived
type Relay struct {
	ctx      context.Context
	next     func() (string, error, bool)
	stop     func()
	pending  string
	done     bool
	provider string
	chunks   int
	outcome  Outcome
	started  time.Time
	span     trace.Span
	service  *RelayService
	once     sync.Once
}

// Forward writes every non-empty chunk to w as soon as it arrives, flushing
// after each one. A provider error after the reply started is returned as a
// *chat.StreamInterruptionError. Cancellation of the Open context stops the
// relay with the context error.
func (r *Relay) Forward(w ChunkWriter) error {
	if r.pending != "" {
		chunk := r.pending
		r.pending = ""
		if err := r.emit(w, chunk); err != nil {
			return err
		}
	}
	for !r.done {
		if err := r.ctx.Err(); err != nil {
			r.outcome = OutcomeCancelled
			return err
		}
		chunk, err, ok := r.next()
		if !ok {
			r.done = true
			break
		}
		if err != nil {
			if ctxErr := r.ctx.Err(); ctxErr != nil {
				r.outcome = OutcomeCancelled
				return ctxErr
			}
			r.outcome = OutcomeInterrupted
			return &chat.StreamInterruptionError{Provider: r.provider, Chunks: r.chunks, Err: err}
		}
		if chunk == "" {
			continue
		}
		if err := r.emit(w, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (r *Relay) emit(w ChunkWriter, chunk string) error {
	if _, err := w.Write([]byte(chunk)); err != nil {
		r.outcome = OutcomeCancelled
		return err
	}
	w.Flush()
	r.chunks++
	return nil
}

// Chunks reports how many chunks have been written so far
func (r *Relay) Chunks() int { return r.chunks }

// Close stops the provider stream and records the relay. It is safe to call
// more than once.
func (r *Relay) Close() {
	r.once.Do(func() {
		r.stop()
		elapsed := r.service.now().Sub(r.started)
		r.span.SetAttributes(
			attribute.Int("chat.chunks", r.chunks),
			attribute.String("chat.outcome", string(r.outcome)),
		)
		if r.outcome == OutcomeInterrupted {
			r.span.SetStatus(codes.Error, "stream interrupted")
		}
		r.span.End()
		r.service.recorder.RelayFinished(r.provider, r.outcome, r.chunks, elapsed)
		r.service.logger.Info("Chat relay finished",
			zap.String("provider", r.provider),
			zap.String("outcome", string(r.outcome)),
			zap.Int("chunks", r.chunks),
			zap.Duration("elapsed", elapsed),
		)
	})
}
