package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// SpotRateClient fetches the current BTC/USD spot rate from a provider.
type SpotRateClient interface {
	GetSpotRate(ctx context.Context) (float64, error)
}

type CoinGeckoClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewCoinGeckoClient() *CoinGeckoClient {
	baseURL := os.Getenv("RATE_API_URL")
	if baseURL == "" {
		baseURL = "https://api.coingecko.com"
	}

	return &CoinGeckoClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *CoinGeckoClient) GetSpotRate(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/simple/price?ids=bitcoin&vs_currencies=usd", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call rate provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var response struct {
		Bitcoin struct {
			Usd float64 `json:"usd"`
		} `json:"bitcoin"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, fmt.Errorf("failed to decode rate provider response: %w", err)
	}

	return response.Bitcoin.Usd, nil
}
