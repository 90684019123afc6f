package logging

import "go.uber.org/zap"

type zapWrapper struct {
	logger *zap.Logger
}

func (l zapWrapper) WithField(key string, value interface{}) Interface {
	return zapWrapper{l.logger.With(zap.Any(key, value))}
}

func (l zapWrapper) WithError(err error) Interface {
	return zapWrapper{l.logger.With(zap.Error(err))}
}

func (l zapWrapper) Debug(msg string) { l.logger.Debug(msg) }
func (l zapWrapper) Info(msg string)  { l.logger.Info(msg) }
func (l zapWrapper) Warn(msg string)  { l.logger.Warn(msg) }
func (l zapWrapper) Error(msg string) { l.logger.Error(msg) }

// ForZap wraps a zap logger in the logging Interface. The wrapper is one
// stack frame deep, so caller annotation skips one frame to land on the
// call site.
func ForZap(logger *zap.Logger) Interface {
	return zapWrapper{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}
