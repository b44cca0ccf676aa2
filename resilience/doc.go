// Package resilience resends whole service calls that failed with a
// retryable classification, waiting an exponentially growing, jittered
// delay between attempts.
//
//	cfg := resilience.DefaultRetryConfig()
//	result, err := resilience.Retry(ctx, cfg, func(attempt int) (*Result, error) {
//	    return invoke(ctx)
//	})
//
// The callback is re-run from scratch on every attempt, so each attempt can
// carry a fresh timestamp and signature.
package resilience
