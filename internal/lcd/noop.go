package lcd

import "log/slog"

// noop implements Backend for systems where the driver is not loaded
type noop struct {
	logger *slog.Logger
}

// newNoop creates a new no-op backend
func newNoop(logger *slog.Logger) *noop {
	return &noop{
		logger: logger,
	}
}

// WriteParam logs the request but performs no I/O
func (n *noop) WriteParam(p Param, value string) error {
	n.logger.Debug("LCD driver not available (no-op)", "param", string(p), "value", value)
	return nil
}

// WriteText logs the request but performs no I/O
func (n *noop) WriteText(text string) error {
	n.logger.Debug("LCD driver not available (no-op)", "text", text)
	return nil
}

// ReadParam reports every parameter as zero
func (n *noop) ReadParam(_ Param) (string, error) {
	return "0", nil
}

// Name returns the backend name
func (n *noop) Name() string {
	return "noop"
}
