package testutil

import (
	"errors"

	"github.com/AntonioJCosta/contactbook/internal/core/ports"
)

// MockStoreConfigProvider is a mock implementation of ports.StoreConfigProvider.
type MockStoreConfigProvider struct {
	GetStoreConfigsFunc func() ([]ports.StoreConfig, error)
}

func (m *MockStoreConfigProvider) GetStoreConfigs() ([]ports.StoreConfig, error) {
	if m.GetStoreConfigsFunc != nil {
		return m.GetStoreConfigsFunc()
	}
	return nil, errors.New("MockStoreConfigProvider: GetStoreConfigsFunc not implemented")
}

var _ ports.StoreConfigProvider = (*MockStoreConfigProvider)(nil)
