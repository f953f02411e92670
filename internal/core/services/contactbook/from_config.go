package contactbook

import (
	"fmt"

	"github.com/AntonioJCosta/contactbook/internal/core/matching"
	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"github.com/AntonioJCosta/contactbook/internal/core/services/contactstore"
	"go.uber.org/zap"
)

// FromConfig builds a contact book with one store per configured entry,
// registered in configuration order and pre-filled with its seed contacts.
func FromConfig(provider ports.StoreConfigProvider, logger *zap.Logger) (ports.ContactBook, error) {
	if provider == nil {
		panic("store config provider cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	configs, err := provider.GetStoreConfigs()
	if err != nil {
		return nil, fmt.Errorf("failed to load store configuration: %w", err)
	}

	book := NewService(logger)
	for _, sc := range configs {
		strategy, err := matching.ByName(sc.Match)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", sc.Name, err)
		}
		store := contactstore.NewService(sc.Name, strategy, logger)
		for _, c := range sc.Contacts {
			store.Add(c.Name, c.Phone, c.Email)
		}
		book.Register(store)
	}
	logger.Debug("contact book ready", zap.Int("stores", len(configs)))
	return book, nil
}
