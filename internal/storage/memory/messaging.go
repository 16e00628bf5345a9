package memory

import (
	"fmt"
	"sort"

	"github.com/shelfmates/shelfmates/shared/domain"
)

func (s *Storage) CreateMessage(m domain.DirectMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.messages[m.Id]; exists {
		return fmt.Errorf("message %s already exists", m.Id)
	}
	s.messages[m.Id] = m
	return nil
}

func (s *Storage) Message(id domain.MessageId) (domain.DirectMessage, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	return m, ok, nil
}

func (s *Storage) DeleteMessage(id domain.MessageId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, id)
	return nil
}

func (s *Storage) Conversation(a, b domain.UserId) ([]domain.DirectMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.DirectMessage
	for _, m := range s.messages {
		if (m.Sender == a && m.Recipient == b) || (m.Sender == b && m.Recipient == a) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Id < out[j].Id
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
