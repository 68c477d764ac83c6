package router

import (
	"io"

	"github.com/sirupsen/logrus"
)

// traceLog receives debug-level collision traces: recorded obstacles and
// search summaries. Output is discarded unless a caller installs a logger,
// keeping the hot path silent by default.
var traceLog logrus.FieldLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger installs a logger for collision tracing; nil restores the
// discarding default.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		traceLog = newDiscardLogger()
		return
	}
	traceLog = l
}
