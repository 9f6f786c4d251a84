package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryProvider retries transient failures with capped exponential backoff
// and ±20% jitter. A schema-invalid reply is retried at most once.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	logger *zap.Logger

	// jitter returns a value in [0, 1).
	jitter func() float64
}

// WithRetry wraps p. logger may be nil.
func WithRetry(p Provider, cfg RetryConfig, logger *zap.Logger) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetryProvider{inner: p, config: cfg, logger: logger, jitter: rand.Float64}
}

type retryVerdict int

const (
	giveUp retryVerdict = iota
	retryTransient
	retryInvalid
)

// classify decides whether err is worth another attempt. Cancellation and
// truncation are final; unknown errors count as transient.
func classify(err error) retryVerdict {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return giveUp
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return giveUp
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryInvalid
	}
	return retryTransient
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var err error
	invalidSeen := false

	for attempt := 0; attempt < r.config.MaxAttempts; attempt++ {
		if attempt > 0 {
			wait := r.backoff(attempt-1, err)
			r.logger.Debug("retrying llm request",
				zap.String("purpose", string(PurposeFrom(ctx))),
				zap.Int("attempt", attempt+1),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classify(err) {
		case giveUp:
			return nil, err
		case retryInvalid:
			if invalidSeen {
				return nil, err
			}
			invalidSeen = true
		}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff is the wait before retry number n (zero-based). A rate limit
// with RetryAfter overrides the schedule.
func (r *RetryProvider) backoff(n int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(n))
	wait = min(wait, float64(r.config.MaxWait))
	wait *= 1 + 0.2*(2*r.jitter()-1)
	return time.Duration(max(wait, 0))
}
