package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"device-sync/core/jamf"
)

// Client is a mock implementation of jamf.Client
type Client struct {
	mock.Mock
}

func (m *Client) FindComputerBySerial(ctx context.Context, serial string) (*jamf.Computer, error) {
	args := m.Called(ctx, serial)
	if computer, ok := args.Get(0).(*jamf.Computer); ok {
		return computer, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdatePurchasing(ctx context.Context, computerID int, update jamf.PurchasingUpdate) error {
	args := m.Called(ctx, computerID, update)
	return args.Error(0)
}
