package treekv

import (
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingObserver is an Observer that writes structured debug logs for
// every request and swap retry. It is intended for development and
// debugging; the client itself never logs.
//
// Example:
//
//	logger := logrus.New()
//	logger.SetLevel(logrus.DebugLevel)
//
//	config := treekv.DefaultConfig().
//	    WithObserver(treekv.NewLoggingObserver(logger))
type LoggingObserver struct {
	logger logrus.FieldLogger
}

// NewLoggingObserver creates a LoggingObserver writing to logger. A nil
// logger falls back to the logrus standard logger.
func NewLoggingObserver(logger logrus.FieldLogger) *LoggingObserver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LoggingObserver{logger: logger}
}

// OnRequestStart logs the outgoing request.
func (o *LoggingObserver) OnRequestStart(method, path string) {
	o.logger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	}).Debug("request started")
}

// OnRequestEnd logs the completed request, at warning level on failure.
func (o *LoggingObserver) OnRequestEnd(method, path string, duration time.Duration, err error) {
	entry := o.logger.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"duration": duration,
	})
	if err != nil {
		entry.WithError(err).Warn("request failed")
		return
	}
	entry.Debug("request completed")
}

// OnSwapRetry logs a lost compare-and-swap race.
func (o *LoggingObserver) OnSwapRetry(key string, attempt int, delay time.Duration) {
	o.logger.WithFields(logrus.Fields{
		"key":     key,
		"attempt": attempt,
		"delay":   delay,
	}).Debug("swap lost race, backing off")
}
