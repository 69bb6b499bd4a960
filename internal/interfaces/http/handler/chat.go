package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	appchat "github.com/dicky/portfolio/internal/application/chat"
	"github.com/dicky/portfolio/internal/domain/chat"
	"github.com/dicky/portfolio/internal/domain/richtext"
	"github.com/dicky/portfolio/internal/domain/shared"
	"github.com/dicky/portfolio/internal/infrastructure/logger"
	"github.com/dicky/portfolio/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimitedMessage is sent to chat clients that exceed the request rate
const RateLimitedMessage = "Terlalu banyak permintaan. Silakan coba lagi sebentar lagi."

// ChatRelay opens a streamed reply for a transcript
type ChatRelay interface {
	Open(ctx context.Context, messages []chat.Message) (*appchat.Relay, error)
}

// ChatHandler serves the assistant widget
type ChatHandler struct {
	BaseHandler
	relay ChatRelay
}

// NewChatHandler creates a ChatHandler
func NewChatHandler(relay ChatRelay) *ChatHandler {
	return &ChatHandler{relay: relay}
}

// ChatRequest is the widget's request body
type ChatRequest struct {
	Messages []chat.Message `json:"messages"`
}

// RenderRequest carries assistant markup to render
type RenderRequest struct {
	Text string `json:"text" binding:"max=65536"`
}

// Stream relays the assistant reply as text/plain, chunk by chunk.
// Failures before the first byte are answered as {"error": "..."}; a
// provider failure after that drops the connection so the widget sees an
// incomplete reply.
//
// @ID           streamChat
// @Summary      Stream an assistant reply
// @Tags         chat
// @Accept       json
// @Produce      plain
// @Param        request  body  ChatRequest  true  "Conversation transcript"
// @Success      200 {string} string "Reply text, streamed in chunks"
// @Failure      400 {object} dto.ChatErrorResponse
// @Failure      429 {object} dto.ChatErrorResponse
// @Failure      500 {object} dto.ChatErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) Stream(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		chatError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	relay, err := h.relay.Open(c.Request.Context(), req.Messages)
	if err != nil {
		status, message := chatErrorFor(err)
		chatError(c, status, message)
		return
	}
	defer relay.Close()

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	err = relay.Forward(c.Writer)
	if err == nil {
		return
	}

	log := logger.FromContext(c.Request.Context())
	if chat.IsStreamInterruption(err) {
		log.Warn("Chat stream interrupted", zap.Error(err), zap.Int("chunks", relay.Chunks()))
		_ = c.Error(err)
		relay.Close()
		panic(http.ErrAbortHandler)
	}
	log.Debug("Chat client went away", zap.Error(err), zap.Int("chunks", relay.Chunks()))
}

// Render turns assistant markup into content blocks for clients that
// cannot run the renderer themselves.
//
// @ID           renderChat
// @Summary      Render assistant markup
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body  RenderRequest  true  "Assistant markup"
// @Success      200 {object} dto.Response{data=[]richtext.ContentBlock}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /chat/render [post]
func (h *ChatHandler) Render(c *gin.Context) {
	var req RenderRequest
	if !h.BindJSON(c, &req) {
		return
	}
	h.Success(c, richtext.RenderBlocks(req.Text))
}

// ChatLimitResponse answers rate limited chat requests in the widget's
// error shape
func ChatLimitResponse(c *gin.Context, _ time.Duration) {
	chatError(c, http.StatusTooManyRequests, RateLimitedMessage)
}

func chatError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ChatErrorResponse{Error: message})
}

func chatErrorFor(err error) (int, string) {
	var providerErr *chat.ProviderRequestError
	if errors.As(err, &providerErr) {
		return http.StatusInternalServerError, providerErr.Error()
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return dto.GetHTTPStatus(dto.NormalizeErrorCode(domainErr.Code)), domainErr.Message
	}
	return http.StatusInternalServerError, chat.DefaultProviderMessage
}
