package rates

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartRefreshScheduler keeps the cached spot rate warm so requests
// rarely pay the provider round trip. Staleness within the interval is
// acceptable; the rate is display data only.
func (s *RateService) StartRefreshScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(cacheTTL),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if rate := s.Refresh(ctx); rate > 0 {
				log.Printf("[Rates] BTC/USD refreshed: %.2f", rate)
			}
		}),
	)
}
