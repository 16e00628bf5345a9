package memory

import (
	"fmt"
	"sort"

	"github.com/shelfmates/shelfmates/shared/domain"
)

func (s *Storage) CreateMatch(m domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.matches[m.Id]; exists {
		return fmt.Errorf("match %s already exists", m.Id)
	}
	s.matches[m.Id] = m
	return nil
}

func (s *Storage) Match(id domain.MatchId) (domain.Match, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	return m, ok, nil
}

func (s *Storage) ActiveMatchBetween(a, b domain.UserId) (domain.Match, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.matches {
		if !m.Active() {
			continue
		}
		if (m.Proposer == a && m.Recipient == b) || (m.Proposer == b && m.Recipient == a) {
			return m, true, nil
		}
	}
	return domain.Match{}, false, nil
}

func (s *Storage) UpdateMatch(m domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.matches[m.Id]; !exists {
		return fmt.Errorf("match %s does not exist", m.Id)
	}
	s.matches[m.Id] = m
	return nil
}

func (s *Storage) MatchesByUser(user domain.UserId) ([]domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Match
	for _, m := range s.matches {
		if m.Involves(user) {
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
