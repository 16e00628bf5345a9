package memory

import (
	"fmt"
	"sort"

	"github.com/shelfmates/shelfmates/shared/domain"
)

func cloneProfile(p domain.Profile) domain.Profile {
	p.Genres = append([]domain.Genre(nil), p.Genres...)
	return p
}

func (s *Storage) CreateProfile(p domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[p.User]; exists {
		return fmt.Errorf("profile for %s already exists", p.User)
	}
	s.profiles[p.User] = cloneProfile(p)
	return nil
}

func (s *Storage) Profile(user domain.UserId) (domain.Profile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[user]
	if !ok {
		return domain.Profile{}, false, nil
	}
	return cloneProfile(p), true, nil
}

func (s *Storage) UpdateProfile(p domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[p.User]; !exists {
		return fmt.Errorf("profile for %s does not exist", p.User)
	}
	s.profiles[p.User] = cloneProfile(p)
	return nil
}

func (s *Storage) ProfilesByGenres(genres []domain.Genre) ([]domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[domain.Genre]bool, len(genres))
	for _, g := range genres {
		wanted[g] = true
	}

	var out []domain.Profile
	for _, p := range s.profiles {
		for _, g := range p.Genres {
			if wanted[g] {
				out = append(out, cloneProfile(p))
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].User < out[j].User })
	return out, nil
}
