package observability

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func TestMetricsObserveUpload(t *testing.T) {
	m := NewMetrics()

	m.ObserveUpload(UploadStored, 2048)
	m.ObserveUpload(UploadStored, 10)
	m.ObserveUpload(UploadMissingFile, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.uploads.WithLabelValues(UploadStored)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.uploads.WithLabelValues(UploadMissingFile)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.uploads.WithLabelValues(UploadTimeout)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.uploadBytes))
}

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	m := NewMetrics()
	m.ObserveUpload(UploadStored, 100)
	m.ObserveRequest("POST", "/upload", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `resume_matcher_uploads_total{result="stored"} 1`)
	assert.Contains(t, string(body), `resume_matcher_http_request_duration_seconds_count{method="POST",route="/upload",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNewMetricsTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}

func TestInitTracerProvider(t *testing.T) {
	logger := zaptest.NewLogger(t)
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	tp, err := InitTracerProvider(logger)
	require.NoError(t, err)
	assert.Same(t, tp, otel.GetTracerProvider())

	_, span := otel.Tracer("test").Start(context.Background(), "save")
	span.End()

	ShutdownTracerProvider(context.Background(), tp, logger)
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		isDev     bool
		level     string
		wantLevel zapcore.Level
	}{
		{"development default", true, "", zapcore.DebugLevel},
		{"production default", false, "", zapcore.InfoLevel},
		{"production override", false, "warn", zapcore.WarnLevel},
		{"development override", true, "ERROR", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := InitLogger(tt.isDev, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, logger.Level())
		})
	}
}

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := InitLogger(false, "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "chatty"`)
}
