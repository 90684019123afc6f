package logging

// Interface decouples clients from concrete logging libraries. Library code
// (the matcher, the lister, the watcher) logs through this so callers can
// plug in zap, logrus, or nothing at all.
//
// Context travels as fields, not format verbs: build the entry with
// WithField and WithError, then emit a constant message.
type Interface interface {
	WithField(key string, value interface{}) Interface
	WithError(err error) Interface

	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
