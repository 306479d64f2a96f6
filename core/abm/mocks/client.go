package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"device-sync/core/abm"
)

// Client is a mock implementation of abm.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListDevices(ctx context.Context) ([]abm.Device, error) {
	args := m.Called(ctx)
	if devices, ok := args.Get(0).([]abm.Device); ok {
		return devices, args.Error(1)
	}
	return nil, args.Error(1)
}
