package http

import (
	"time"

	"github.com/superbuilder/coreui/backend/internal/infrastructure/monitoring"
)

// HandlerMetrics wraps command dispatch with metrics tracking
type HandlerMetrics struct {
	metrics *monitoring.Metrics
}

// NewHandlerMetrics creates a metrics wrapper. A nil collector disables it.
func NewHandlerMetrics(metrics *monitoring.Metrics) *HandlerMetrics {
	return &HandlerMetrics{metrics: metrics}
}

// TrackCommand starts timing a command; call the result with the outcome.
func (hm *HandlerMetrics) TrackCommand(command string) func(status string) {
	start := time.Now()
	return func(status string) {
		if hm == nil || hm.metrics == nil {
			return
		}
		hm.metrics.RecordCommand(command, status, time.Since(start))
	}
}
