package monitor

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"auth-service/internal/config/env"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func hookCount(logger *logrus.Logger) int {
	n := 0
	for level := logrus.PanicLevel; level <= logrus.TraceLevel; level++ {
		n += len(logger.Hooks[level])
	}
	return n
}

// collector accepts OTLP/HTTP exports and records the paths it was sent.
type collector struct {
	mu    sync.Mutex
	paths []string
}

func (c *collector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)
	c.mu.Lock()
	c.paths = append(c.paths, r.URL.Path)
	c.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}

func (c *collector) received() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func TestNewMonitoring_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		enabled   bool
		wantHooks bool
	}{
		{name: "disabled", enabled: false, wantHooks: false},
		{name: "enabled", enabled: true, wantHooks: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &collector{}
			srv := httptest.NewServer(sink)
			defer srv.Close()

			logger := logrus.New()
			logger.SetOutput(io.Discard)

			cfg := &env.Config{}
			cfg.App.Name = "auth-test"
			cfg.Monitoring.Otel.Enabled = tc.enabled
			cfg.Monitoring.Otel.Host = strings.TrimPrefix(srv.URL, "http://")

			m := NewMonitoring(logger, cfg)
			require.NotNil(t, m)
			assert.False(t, m.sentryEnabled)

			if tc.wantHooks {
				require.NotNil(t, m.tracerProvider)
				require.NotNil(t, m.loggerProvider)
				assert.Equal(t, m.tracerProvider, otel.GetTracerProvider())
				assert.Greater(t, hookCount(logger), 0)
			} else {
				assert.Nil(t, m.tracerProvider)
				assert.Nil(t, m.loggerProvider)
				assert.Equal(t, 0, hookCount(logger))
			}

			require.NoError(t, m.Shutdown())

			if tc.wantHooks {
				// the startup log line is flushed to the collector
				assert.Contains(t, sink.received(), "/v1/logs")
			} else {
				assert.Empty(t, sink.received())
			}
		})
	}
}

func TestNewMonitoring_InvalidSentryDSN_Continues(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &env.Config{}
	cfg.Sentry.DSN = "not a dsn"

	m := NewMonitoring(logger, cfg)
	require.NotNil(t, m)
	assert.False(t, m.sentryEnabled)
	assert.NoError(t, m.Shutdown())
}
