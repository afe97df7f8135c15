// Package fetch acquires rendered HTML for a URL through an ordered
// chain of retrieval strategies, each bounded by its own timeout. The
// chain degrades instead of failing: per-strategy errors are logged and
// swallowed, and only total exhaustion produces the StrategyNone
// sentinel, which callers must treat as "no document available".
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mathieu/brandscope/internal/monitoring"
)

// StrategyNone is the sentinel strategy name returned when every
// strategy in the chain failed.
const StrategyNone = "none"

// DefaultStrategyTimeout bounds each individual strategy attempt.
const DefaultStrategyTimeout = 10 * time.Second

// DefaultUserAgent is the user agent string for plain HTTP strategies.
const DefaultUserAgent = "Mozilla/5.0 (compatible; Brandscope/1.0)"

// Result holds the HTML obtained for a URL and the name of the strategy
// that produced it. Transient: one Result per extraction attempt.
type Result struct {
	URL      string
	HTML     string
	Strategy string
}

// Error represents a single strategy failure.
type Error struct {
	Strategy string
	URL      string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s via %s: %s: %v", e.URL, e.Strategy, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s via %s: %s", e.URL, e.Strategy, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Strategy is a single way of retrieving HTML for a URL. A strategy
// returns an error or a non-empty body; the chain treats an empty body
// as a failure.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, url string) (string, error)
}

// Chain tries strategies in order, stopping at the first success. The
// strategy list is fixed at construction; the chain itself is stateless
// and safe for concurrent use across URLs.
type Chain struct {
	strategies []Strategy
	timeout    time.Duration
	metrics    *monitoring.Metrics
	logger     *slog.Logger
}

// NewChain builds a chain over the given ordered strategies. A nil
// logger falls back to slog.Default; a nil metrics disables metering.
func NewChain(strategies []Strategy, timeout time.Duration, metrics *monitoring.Metrics, logger *slog.Logger) *Chain {
	if timeout <= 0 {
		timeout = DefaultStrategyTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{strategies: strategies, timeout: timeout, metrics: metrics, logger: logger}
}

// Fetch runs the chain for a URL. It never returns an error for a
// reachable host: strategy failures fall through to the next strategy,
// and exhaustion returns a Result with Strategy set to StrategyNone and
// empty HTML.
func (c *Chain) Fetch(ctx context.Context, url string) *Result {
	for _, strategy := range c.strategies {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		html, err := strategy.Fetch(attemptCtx, url)
		cancel()

		if err != nil {
			c.metrics.ObserveFetchAttempt(strategy.Name(), "failure")
			c.logger.Warn("fetch strategy failed",
				"strategy", strategy.Name(), "url", url, "error", err)
			continue
		}
		if html == "" {
			c.metrics.ObserveFetchAttempt(strategy.Name(), "empty")
			c.logger.Warn("fetch strategy returned empty body",
				"strategy", strategy.Name(), "url", url)
			continue
		}

		c.metrics.ObserveFetchAttempt(strategy.Name(), "success")
		return &Result{URL: url, HTML: html, Strategy: strategy.Name()}
	}

	c.logger.Warn("all fetch strategies exhausted", "url", url)
	return &Result{URL: url, Strategy: StrategyNone}
}
