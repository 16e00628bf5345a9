// Package recommend holds the matching heuristic behind the
// service.Recommender interface. The scorer here is intentionally
// simple: rank by how many favorite genres two readers share.
package recommend

import (
	"sort"

	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
)

// ProfileDirectory is the slice of profile storage the recommender reads.
type ProfileDirectory interface {
	Profile(user domain.UserId) (domain.Profile, bool, error)
	ProfilesByGenres(genres []domain.Genre) ([]domain.Profile, error)
}

type SharedGenre struct {
	profiles ProfileDirectory
	limit    int
}

func NewSharedGenre(profiles ProfileDirectory, limit int) *SharedGenre {
	if limit <= 0 {
		limit = 20
	}
	return &SharedGenre{profiles, limit}
}

// SuggestFor ranks readers whose profiles share at least one genre
// with the user, most shared genres first.
func (r *SharedGenre) SuggestFor(user domain.UserId) ([]domain.Suggestion, error) {
	profile, found, err := r.profiles.Profile(user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Profile not found")
	}

	candidates, err := r.profiles.ProfilesByGenres(profile.Genres)
	if err != nil {
		return nil, err
	}

	own := make(map[domain.Genre]bool, len(profile.Genres))
	for _, genre := range profile.Genres {
		own[genre] = true
	}

	suggestions := make([]domain.Suggestion, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.User == user {
			continue
		}
		var shared []domain.Genre
		for _, genre := range candidate.Genres {
			if own[genre] {
				shared = append(shared, genre)
			}
		}
		if len(shared) == 0 {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{
			User:         candidate.User,
			DisplayName:  candidate.DisplayName,
			SharedGenres: shared,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return len(suggestions[i].SharedGenres) > len(suggestions[j].SharedGenres)
	})
	if len(suggestions) > r.limit {
		suggestions = suggestions[:r.limit]
	}
	return suggestions, nil
}
