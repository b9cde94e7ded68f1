// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run emits one immediate PollResult, then one per tick, on the provided
// channel. One goroutine per device. No overlap. No retries.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) {
	select {
	case out <- p.PollOnce(ctx):
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case out <- p.PollOnce(ctx):
			case <-ctx.Done():
				return
			}
		}
	}
}
