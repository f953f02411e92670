package ports

import "github.com/AntonioJCosta/contactbook/internal/core/domain/contact"

// StoreConfig describes one contact store to create at startup.
type StoreConfig struct {
	Name     string            `yaml:"name"`
	Match    string            `yaml:"match"`
	Contacts []contact.Contact `yaml:"contacts"`
}

// StoreConfigProvider defines the interface for sourcing the store layout,
// like a configuration file.
type StoreConfigProvider interface {
	// GetStoreConfigs loads the stores to create, in registration order.
	GetStoreConfigs() ([]StoreConfig, error)
}
