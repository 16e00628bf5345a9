package service

import (
	"time"

	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
)

// ProfileService keeps one public profile per user.
type ProfileService interface {
	CreateProfile(data domain.ProfileCreationData) (domain.Profile, error)
	UpdateProfile(user domain.UserId, update domain.ProfileUpdate) (domain.Profile, error)
	Profile(user domain.UserId) (domain.Profile, bool, error)
}

type Profiles struct {
	storage   ProfileStorage
	validator NameValidator
	tags      TagValidator
}

type ProfileStorage interface {
	CreateProfile(p domain.Profile) error
	Profile(user domain.UserId) (domain.Profile, bool, error)
	UpdateProfile(p domain.Profile) error
	ProfilesByGenres(genres []domain.Genre) ([]domain.Profile, error)
}

func NewProfiles(storage ProfileStorage, validator NameValidator, tags TagValidator) *Profiles {
	return &Profiles{storage, validator, tags}
}

// cleanGenres validates every genre tag, preserving order.
func (s *Profiles) cleanGenres(genres []domain.Genre) ([]domain.Genre, error) {
	cleaned := make([]domain.Genre, 0, len(genres))
	for _, genre := range genres {
		tag, err := s.tags.Tag(string(genre))
		if err != nil {
			return nil, err
		}
		cleaned = append(cleaned, domain.Genre(tag))
	}
	return cleaned, nil
}

func (s *Profiles) CreateProfile(data domain.ProfileCreationData) (domain.Profile, error) {
	displayName, err := s.validator.Name(data.DisplayName)
	if err != nil {
		return domain.Profile{}, err
	}
	genres, err := s.cleanGenres(data.Genres)
	if err != nil {
		return domain.Profile{}, err
	}

	if _, exists, err := s.storage.Profile(data.User); err != nil {
		return domain.Profile{}, err
	} else if exists {
		return domain.Profile{}, errors.Conflict("Profile already exists")
	}

	now := time.Now().UTC()
	profile := domain.Profile{
		User:        data.User,
		DisplayName: displayName,
		Bio:         data.Bio,
		Genres:      genres,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.storage.CreateProfile(profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile changes only the fields the update carries.
func (s *Profiles) UpdateProfile(user domain.UserId, update domain.ProfileUpdate) (domain.Profile, error) {
	profile, found, err := s.storage.Profile(user)
	if err != nil {
		return domain.Profile{}, err
	}
	if !found {
		return domain.Profile{}, errors.NotFound("Profile not found")
	}

	if update.DisplayName != nil {
		displayName, err := s.validator.Name(*update.DisplayName)
		if err != nil {
			return domain.Profile{}, err
		}
		profile.DisplayName = displayName
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Genres != nil {
		genres, err := s.cleanGenres(*update.Genres)
		if err != nil {
			return domain.Profile{}, err
		}
		profile.Genres = genres
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateProfile(profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *Profiles) Profile(user domain.UserId) (domain.Profile, bool, error) {
	return s.storage.Profile(user)
}
