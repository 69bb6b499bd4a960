package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appchat "github.com/dicky/portfolio/internal/application/chat"
	"github.com/dicky/portfolio/internal/domain/chat"
	"github.com/dicky/portfolio/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type scriptedProvider struct {
	chunks  []string
	failAt  int // index of the chunk replaced by failErr; -1 never fails
	failErr error
	openErr error
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Stream(_ context.Context, _ chat.Request) (chat.ChunkStream, error) {
	if p.openErr != nil {
		return nil, p.openErr
	}
	return func(yield func(string, error) bool) {
		for i, chunk := range p.chunks {
			if i == p.failAt {
				yield("", p.failErr)
				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}, nil
}

func chatRouter(relay ChatRelay) *gin.Engine {
	h := NewChatHandler(relay)
	r := newEngine()
	r.Use(logger.Recovery(zap.NewNop()))
	r.POST("/chat", h.Stream)
	r.POST("/chat/render", h.Render)
	return r
}

func relayWith(p chat.Provider) *appchat.RelayService {
	return appchat.NewRelayService(appchat.WithAPIKey("test-key"), appchat.WithProvider(p))
}

var helloTranscript = gin.H{"messages": []gin.H{{"role": "user", "content": "Halo, siapa kamu?"}}}

func TestChatHandler_StreamsPlainText(t *testing.T) {
	p := &scriptedProvider{chunks: []string{"Halo! ", "", "Saya asisten ", "Dicky."}, failAt: -1}

	w := doJSON(t, chatRouter(relayWith(p)), http.MethodPost, "/chat", helloTranscript)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Equal(t, "Halo! Saya asisten Dicky.", w.Body.String())
}

func TestChatHandler_PreStreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		relay      ChatRelay
		body       any
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing api key",
			relay:      appchat.NewRelayService(appchat.WithProvider(&scriptedProvider{failAt: -1})),
			body:       helloTranscript,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Server Configuration Error: API Key missing",
		},
		{
			name:       "empty conversation",
			relay:      relayWith(&scriptedProvider{failAt: -1}),
			body:       gin.H{"messages": []gin.H{}},
			wantStatus: http.StatusBadRequest,
			wantError:  chat.ErrEmptyConversation.Message,
		},
		{
			name:       "provider rejects",
			relay:      relayWith(&scriptedProvider{openErr: errors.New("quota exceeded")}),
			body:       helloTranscript,
			wantStatus: http.StatusInternalServerError,
			wantError:  "quota exceeded",
		},
		{
			name:       "provider fails before first chunk",
			relay:      relayWith(&scriptedProvider{chunks: []string{"x"}, failAt: 0, failErr: errors.New("")}),
			body:       helloTranscript,
			wantStatus: http.StatusInternalServerError,
			wantError:  chat.DefaultProviderMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, chatRouter(tt.relay), http.MethodPost, "/chat", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
			assert.Equal(t, tt.wantError, gjson.Get(w.Body.String(), "error").String())
		})
	}
}

func TestChatHandler_MalformedBody(t *testing.T) {
	r := chatRouter(relayWith(&scriptedProvider{failAt: -1}))
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, gjson.Get(w.Body.String(), "error").String())
}

func TestChatHandler_InterruptedStreamDropsConnection(t *testing.T) {
	p := &scriptedProvider{
		chunks:  []string{"Sebagian ", "jawaban", "hilang"},
		failAt:  2,
		failErr: errors.New("upstream reset"),
	}
	srv := httptest.NewServer(chatRouter(relayWith(p)))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/chat", "application/json",
		strings.NewReader(`{"messages":[{"role":"user","content":"halo"}]}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	assert.Error(t, err)
	assert.Equal(t, "Sebagian jawaban", string(body))
}

func TestChatHandler_Render(t *testing.T) {
	r := chatRouter(relayWith(&scriptedProvider{failAt: -1}))

	w := doJSON(t, r, http.MethodPost, "/chat/render", gin.H{
		"text": "### Layanan\n* **Backend** API\n* Frontend",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "heading", gjson.Get(body, "data.0.kind").String())
	assert.Equal(t, int64(3), gjson.Get(body, "data.0.level").Int())
	assert.Equal(t, "list", gjson.Get(body, "data.1.kind").String())
	assert.Equal(t, "bold", gjson.Get(body, "data.1.items.0.0.kind").String())
	assert.Equal(t, "Backend", gjson.Get(body, "data.1.items.0.0.text").String())

	w = doJSON(t, r, http.MethodPost, "/chat/render", gin.H{"text": ""})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "data").IsArray())
}

func TestChatLimitResponse(t *testing.T) {
	c, w := newTestContext(http.MethodPost, "/chat")

	ChatLimitResponse(c, 0)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, RateLimitedMessage, gjson.Get(w.Body.String(), "error").String())
	assert.True(t, c.IsAborted())
}
