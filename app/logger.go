package app

import (
	"os"

	"github.com/jalexanderII/spatial-todo/config"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger from the log_level and log_format settings.
// An unknown level falls back to info.
func NewLogger(cfg *config.Config) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}
