package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

const serviceName = "chyll-api"

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// Tests have no main function, so the logger has to be usable right after import.
func init() {
	Init(os.Getenv("ENV"))
}

// Init rebuilds the global logger for the given environment. Production
// logs are JSON, everything else is human readable text.
func Init(env string) {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	if env == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}

	Log = logger.WithFields(logrus.Fields{
		"service":        serviceName,
		"is_development": env != "production",
	})
}
