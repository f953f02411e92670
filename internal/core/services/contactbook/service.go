package contactbook

import (
	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	stores []ports.ContactStore
	logger *zap.Logger
}

// NewService creates a contact book that broadcasts every operation to the given stores.
// It panics if any store is nil.
func NewService(logger *zap.Logger, stores ...ports.ContactStore) ports.ContactBook {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &service{logger: logger}
	for _, st := range stores {
		s.Register(st)
	}
	return s
}

// Register appends a store. The same store may be registered more than once.
func (s *service) Register(store ports.ContactStore) {
	if store == nil {
		panic("contact store cannot be nil")
	}
	s.stores = append(s.stores, store)
	s.logger.Debug("store registered", zap.String("store", store.Name()), zap.Int("stores", len(s.stores)))
}

func (s *service) Stores() []ports.ContactStore {
	out := make([]ports.ContactStore, len(s.stores))
	copy(out, s.stores)
	return out
}

func (s *service) Add(name, phone, email string) []ports.AddOutcome {
	outcomes := make([]ports.AddOutcome, 0, len(s.stores))
	for _, st := range s.stores {
		c := st.Add(name, phone, email)
		outcomes = append(outcomes, ports.AddOutcome{Store: st.Name(), Contact: c})
	}
	return outcomes
}

// Remove asks every store to remove name. A store that does not hold the
// contact reports Removed=false and the remaining stores are still processed.
func (s *service) Remove(name string) []ports.RemoveOutcome {
	outcomes := make([]ports.RemoveOutcome, 0, len(s.stores))
	for _, st := range s.stores {
		_, removed := st.Remove(name)
		outcomes = append(outcomes, ports.RemoveOutcome{Store: st.Name(), Name: name, Removed: removed})
	}
	return outcomes
}

func (s *service) List() []ports.Listing {
	listings := make([]ports.Listing, 0, len(s.stores))
	for _, st := range s.stores {
		listings = append(listings, ports.Listing{Store: st.Name(), Contacts: st.List()})
	}
	return listings
}

func (s *service) Search(query string) []ports.Listing {
	listings := make([]ports.Listing, 0, len(s.stores))
	for _, st := range s.stores {
		listings = append(listings, ports.Listing{Store: st.Name(), Contacts: st.Search(query)})
	}
	return listings
}
