package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
	return recorder
}

func attrMap(attrs []attribute.KeyValue) map[string]string {
	out := make(map[string]string, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value.Emit()
	}
	return out
}

func TestTracing(t *testing.T) {
	recorder := withRecorder(t)

	router := gin.New()
	router.Use(RequestID(), Tracing(TracingConfig{
		ServiceName: "portfolio-test",
		Enabled:     true,
		SkipPaths:   []string{"/health"},
	}), SpanEnricher())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/boom", func(c *gin.Context) {
		c.Set(JWTSubjectKey, "dicky")
		c.Status(http.StatusInternalServerError)
	})

	for _, path := range []string{"/health", "/boom"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(RequestIDHeader, "req-1")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Contains(t, span.Name(), "/boom")
	assert.Equal(t, codes.Error, span.Status().Code)
	attrs := attrMap(span.Attributes())
	assert.Equal(t, "req-1", attrs["request_id"])
	assert.Equal(t, "dicky", attrs["admin.subject"])
}

func TestTracing_Disabled(t *testing.T) {
	recorder := withRecorder(t)

	router := gin.New()
	router.Use(Tracing(TracingConfig{Enabled: false}), SpanEnricher())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, recorder.Ended())
}
