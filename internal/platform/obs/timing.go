package obs

import (
	"time"

	"go.uber.org/zap"
)

// Time logs an operation's duration when the returned func runs, tagging
// the entry with the error (if any) the operation finished with.
//
// Usage: defer obs.Time(logger, "catalog.cache.get")(&err)
func Time(logger *zap.Logger, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn("op failed",
				zap.String("op", name),
				zap.Int64("dur_ms", dur.Milliseconds()),
				zap.Error(*errp),
			)
			return
		}
		logger.Debug("op done",
			zap.String("op", name),
			zap.Int64("dur_ms", dur.Milliseconds()),
		)
	}
}
