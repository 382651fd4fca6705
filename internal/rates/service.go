package rates

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "rates:btc_usd"
	cacheTTL = 5 * time.Minute
)

// RateService serves the BTC/USD spot rate, cached in redis for a few
// minutes to bound provider call volume. It degrades to 0 on any failure;
// callers treat 0 as "unavailable", never as a real rate.
type RateService struct {
	client SpotRateClient
	rdb    *redis.Client
}

func NewRateService(client SpotRateClient, rdb *redis.Client) *RateService {
	return &RateService{client: client, rdb: rdb}
}

func (s *RateService) GetBtcUsd(ctx context.Context) float64 {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Float64()
		if err == nil {
			return cached
		}
	}

	return s.Refresh(ctx)
}

// Refresh fetches a fresh rate from the provider and rewrites the cache.
func (s *RateService) Refresh(ctx context.Context) float64 {
	rate, err := s.client.GetSpotRate(ctx)
	if err != nil {
		log.Println("Error fetching BTC spot rate:", err)
		return 0
	}
	if rate <= 0 || math.IsNaN(rate) {
		return 0
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, cacheKey, rate, cacheTTL).Err(); err != nil {
			log.Println("Error caching BTC spot rate:", err)
		}
	}

	return rate
}

// FiatValue converts a µBTC amount to USD at the given spot rate. A zero,
// negative or NaN rate means the provider is unavailable and yields 0.
func FiatValue(uBtc int64, spotRateUsdPerBtc float64) float64 {
	if spotRateUsdPerBtc <= 0 || math.IsNaN(spotRateUsdPerBtc) {
		return 0
	}
	return float64(uBtc) / 1_000_000 * spotRateUsdPerBtc
}
