package clinicapi

import "time"

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics records upstream call latency and outcome. May be nil.
type Metrics interface {
	ObserveUpstreamRequest(target, operation, outcome string, duration time.Duration)
}
