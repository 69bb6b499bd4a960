package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/dicky/portfolio/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zaptest"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	cfg := telemetry.Config{
		Enabled:           false,
		CollectorEndpoint: "localhost:14317",
		SamplingRatio:     1.0,
		ServiceName:       "test-service",
	}

	tp, err := telemetry.NewTracerProvider(ctx, cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, tp)

	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("test"))
	assert.NoError(t, tp.Shutdown(ctx))
}

func TestNewTracerProvider_Enabled(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping collector test in short mode")
	}

	logger := zaptest.NewLogger(t)
	ctx := context.Background()

	// The gRPC exporter connects lazily, so no collector is needed to start.
	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           true,
		CollectorEndpoint: "localhost:14317",
		SamplingRatio:     0.5,
		ServiceName:       "test-service",
		Insecure:          true,
	}, logger)
	require.NoError(t, err)
	assert.True(t, tp.IsEnabled())

	_, span := tp.Tracer("test").Start(ctx, "test-span")
	span.End()

	shutdownCtx, cancel := context.WithCancel(ctx)
	cancel()
	_ = tp.Shutdown(shutdownCtx)
}

func TestConfigFrom(t *testing.T) {
	cfg := telemetry.ConfigFrom(config.TelemetryConfig{
		Enabled:           true,
		CollectorEndpoint: "otel:4317",
		SamplingRatio:     0.25,
		ServiceName:       "portfolio-backend",
		Insecure:          true,
		DBTraceEnabled:    true,
	}, "1.2.0")

	assert.Equal(t, telemetry.Config{
		Enabled:           true,
		CollectorEndpoint: "otel:4317",
		SamplingRatio:     0.25,
		ServiceName:       "portfolio-backend",
		ServiceVersion:    "1.2.0",
		Insecure:          true,
	}, cfg)
}

func TestStartServiceSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	ctx, span := telemetry.StartServiceSpan(context.Background(), "media", "upload")
	telemetry.SetAttributes(span,
		telemetry.SpanAttrMediaKey, "media/misc/a.png",
		telemetry.SpanAttrMediaSize, 42,
		7, "skipped",
	)
	assert.NotEmpty(t, telemetry.GetTraceID(ctx))
	telemetry.RecordError(span, errors.New("boom"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "media.upload", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Len(t, ended[0].Attributes(), 2)
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, telemetry.GetTraceID(context.Background()))
}
