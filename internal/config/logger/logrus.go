package logger

import (
	"auth-service/internal/config/env"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// NewLogger builds the process logger. Levels outside logrus' range fall
// back to info; log.format "json" switches to structured output.
func NewLogger(config *env.Config) *logrus.Logger {
	log := logrus.New()

	level := logrus.Level(config.Log.Level)
	if config.Log.Level < int(logrus.PanicLevel) || config.Log.Level > int(logrus.TraceLevel) {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if config.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
		return log
	}

	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: timestampFormat,
		FullTimestamp:   true,
	})
	return log
}
