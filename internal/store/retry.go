package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
)

// retryDelays are the pauses before each repeated attempt of a read query.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond}

// withRetry runs op and repeats it while the returned error is classified
// as [Retryable], at most len(retryDelays) more times.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	log := logger.FromContext(ctx)

	err := op()
	for attempt, delay := range retryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("retryable database error, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		err = op()
	}

	return err
}
