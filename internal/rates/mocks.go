package rates

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSpotRateClient struct {
	mock.Mock
}

func (m *MockSpotRateClient) GetSpotRate(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}
