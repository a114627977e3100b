package retry

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"hotel-backend/internal/pkg/errs"
)

var ErrExhausted = errs.New("retries exhausted")

type Policy struct {
	MaxRetries int
	Base       time.Duration
	// Name shows up in retry logs.
	Name string
}

// Do runs fn until it succeeds, returns a non-retryable error, or the policy
// runs out of attempts. The last error is returned marked with ErrExhausted.
func Do(ctx context.Context, p Policy, isRetryable func(error) bool, fn func(ctx context.Context) error) error {
	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		if attempt >= p.MaxRetries {
			slog.Error("operation failed after max retries",
				"operation", p.Name,
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, ErrExhausted)
		}

		waitTime := Backoff(attempt, p.Base)
		slog.Warn("retrying operation due to retryable error",
			"operation", p.Name,
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(waitTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errs.Mark(ctx.Err(), err)
		case <-timer.C:
		}
	}
}

// Backoff doubles base per attempt and adds up to 20% jitter.
func Backoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

// MaxWait bounds the total time Do spends sleeping under p.
func MaxWait(p Policy) time.Duration {
	var total time.Duration
	for attempt := range p.MaxRetries {
		waitTime := time.Duration(1<<attempt) * p.Base
		total += waitTime + waitTime/5
	}
	return total
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}
