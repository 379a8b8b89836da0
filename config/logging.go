package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "config")

// SetupLogging configures the global logrus logger.
func SetupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	logrus.SetLevel(lvl)
	return nil
}
