package schedule

import "go.uber.org/zap"

// ZapNotifier routes editor notices to a zap logger. Headless callers
// (CLI tooling, tests against a live backend) use it in place of a UI
// toast sink.
type ZapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier wraps the given logger as a Notifier.
func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

// Info logs an informational notice.
func (n *ZapNotifier) Info(title, description string) {
	n.logger.Info(title, zap.String("detalle", description))
}

// Success logs a success notice.
func (n *ZapNotifier) Success(title, description string) {
	n.logger.Info(title, zap.String("detalle", description), zap.Bool("ok", true))
}

// Error logs an error notice.
func (n *ZapNotifier) Error(title, description string) {
	n.logger.Error(title, zap.String("detalle", description))
}
