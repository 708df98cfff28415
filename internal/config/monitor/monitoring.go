package monitor

import (
	"context"
	"errors"
	"time"

	"auth-service/internal/config/env"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/bridges/otellogrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// Monitoring owns the telemetry pipelines started at boot. Either provider
// may be nil when OTLP export is disabled.
type Monitoring struct {
	tracerProvider *trace.TracerProvider
	loggerProvider *log.LoggerProvider
	sentryEnabled  bool
}

func NewMonitoring(logger *logrus.Logger, config *env.Config) *Monitoring {
	m := &Monitoring{sentryEnabled: initSentry(logger, config)}

	if !config.Monitoring.Otel.Enabled {
		logger.Info("OTLP export disabled")
		return m
	}

	traceExporter, err := otlptrace.New(
		context.Background(),
		otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(config.Monitoring.Otel.Host),
			otlptracehttp.WithInsecure(),
		),
	)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create OTLP trace exporter")
	}

	logExporter, err := otlploghttp.New(
		context.Background(),
		otlploghttp.WithEndpoint(config.Monitoring.Otel.Host),
		otlploghttp.WithInsecure(),
	)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create OTLP log exporter")
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(config.App.Name),
	)

	m.tracerProvider = trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
	)
	m.loggerProvider = log.NewLoggerProvider(
		log.WithProcessor(log.NewBatchProcessor(logExporter)),
		log.WithResource(res),
	)

	logger.AddHook(otellogrus.NewHook(config.App.Name, otellogrus.WithLoggerProvider(m.loggerProvider)))
	otel.SetTracerProvider(m.tracerProvider)

	logger.WithField("host", config.Monitoring.Otel.Host).Info("OTLP export enabled")
	return m
}

func initSentry(logger *logrus.Logger, config *env.Config) bool {
	if config.Sentry.DSN == "" {
		return false
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.Sentry.DSN,
		Environment:      config.Sentry.Environment,
		EnableTracing:    true,
		TracesSampleRate: 0.2,
	})
	if err != nil {
		logger.WithError(err).Warn("Sentry init failed")
		return false
	}
	return true
}

// Shutdown flushes and stops every pipeline that was started.
func (m *Monitoring) Shutdown() error {
	var errs []error
	if m.tracerProvider != nil {
		errs = append(errs, m.tracerProvider.Shutdown(context.Background()))
	}
	if m.loggerProvider != nil {
		errs = append(errs, m.loggerProvider.Shutdown(context.Background()))
	}
	if m.sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
	return errors.Join(errs...)
}
