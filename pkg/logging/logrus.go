package logging

import "github.com/sirupsen/logrus"

type logrusWrapper struct {
	logger *logrus.Entry
}

func (l logrusWrapper) WithField(key string, value interface{}) Interface {
	return logrusWrapper{logger: l.logger.WithField(key, value)}
}

func (l logrusWrapper) WithError(err error) Interface {
	return logrusWrapper{logger: l.logger.WithError(err)}
}

func (l logrusWrapper) Debug(msg string) { l.logger.Debug(msg) }
func (l logrusWrapper) Info(msg string)  { l.logger.Info(msg) }
func (l logrusWrapper) Warn(msg string)  { l.logger.Warn(msg) }
func (l logrusWrapper) Error(msg string) { l.logger.Error(msg) }

// ForLogrus wraps a logrus entry in the logging Interface.
func ForLogrus(logger *logrus.Entry) Interface {
	return logrusWrapper{logger}
}
