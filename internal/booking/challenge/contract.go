package challenge

import "context"

// InvisibleProvider runs the background (score-based) challenge tier
// and returns a proof token. Implementations wrap the challenge vendor;
// a failure of any kind (service unavailable, low trust score) makes
// the controller fall back to the interactive tier.
type InvisibleProvider interface {
	Execute(ctx context.Context, actionTag string) (string, error)
}

// Logger is the logging surface the controller needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
