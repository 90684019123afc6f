package logging

type discard struct {
}

func (d discard) WithField(key string, value interface{}) Interface { return d }
func (d discard) WithError(err error) Interface                     { return d }
func (d discard) Debug(msg string)                                  {}
func (d discard) Info(msg string)                                   {}
func (d discard) Warn(msg string)                                   {}
func (d discard) Error(msg string)                                  {}

// Discard constructs a logger that drops every message. It is the default
// for library callers that don't wire up diagnostics.
func Discard() Interface {
	return discard{}
}
