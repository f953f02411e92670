package contactstore

import (
	"github.com/AntonioJCosta/contactbook/internal/core/domain/contact"
	"github.com/AntonioJCosta/contactbook/internal/core/matching"
	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	name     string
	contacts []contact.Contact
	strategy ports.MatchStrategy
	logger   *zap.Logger
}

// NewService creates an empty contact store.
// A nil strategy selects case-insensitive substring matching on the name,
// and a nil logger discards notifications.
func NewService(name string, strategy ports.MatchStrategy, logger *zap.Logger) ports.ContactStore {
	if strategy == nil {
		strategy = matching.NewSubstringName()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		name:     name,
		contacts: []contact.Contact{},
		strategy: strategy,
		logger:   logger.With(zap.String("store", name)),
	}
}

func (s *service) Name() string {
	return s.name
}

// Add appends a contact. Duplicates are permitted.
func (s *service) Add(name, phone, email string) contact.Contact {
	c := contact.New(name, phone, email)
	s.contacts = append(s.contacts, c)
	s.logger.Info("contact added", zap.String("name", name))
	return c
}

// Remove deletes the first contact whose name is exactly name.
// Later contacts sharing the name are kept.
func (s *service) Remove(name string) (contact.Contact, bool) {
	for i, c := range s.contacts {
		if c.Name != name {
			continue
		}
		s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
		s.logger.Info("contact removed", zap.String("name", name))
		return c, true
	}
	s.logger.Info("contact not found", zap.String("name", name))
	return contact.Contact{}, false
}

// List returns a copy, so callers cannot reorder or edit the store.
func (s *service) List() []contact.Contact {
	out := make([]contact.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

func (s *service) Search(query string) []contact.Contact {
	matched := s.strategy.Match(s.List(), query)
	if matched == nil {
		matched = []contact.Contact{}
	}
	s.logger.Debug("search", zap.String("query", query), zap.Int("matches", len(matched)))
	return matched
}

func (s *service) Len() int {
	return len(s.contacts)
}
