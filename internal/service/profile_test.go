package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfmates/shelfmates/shared/domain"
)

type MockProfileStorage struct {
	CreateProfileFunc    func(p domain.Profile) error
	ProfileFunc          func(user domain.UserId) (domain.Profile, bool, error)
	UpdateProfileFunc    func(p domain.Profile) error
	ProfilesByGenresFunc func(genres []domain.Genre) ([]domain.Profile, error)
}

func (m *MockProfileStorage) CreateProfile(p domain.Profile) error {
	if m.CreateProfileFunc != nil {
		return m.CreateProfileFunc(p)
	}
	return nil
}

func (m *MockProfileStorage) Profile(user domain.UserId) (domain.Profile, bool, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(user)
	}
	return domain.Profile{}, false, nil
}

func (m *MockProfileStorage) UpdateProfile(p domain.Profile) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(p)
	}
	return nil
}

func (m *MockProfileStorage) ProfilesByGenres(genres []domain.Genre) ([]domain.Profile, error) {
	if m.ProfilesByGenresFunc != nil {
		return m.ProfilesByGenresFunc(genres)
	}
	return nil, nil
}

func TestProfilesCreate(t *testing.T) {
	t.Run("creates profile", func(t *testing.T) {
		storage := &MockProfileStorage{}
		var created domain.Profile
		storage.CreateProfileFunc = func(p domain.Profile) error {
			created = p
			return nil
		}

		service := NewProfiles(storage, passValidator{}, passValidator{})
		profile, err := service.CreateProfile(domain.ProfileCreationData{
			User: "alice", DisplayName: "Alice", Genres: []domain.Genre{"gothic"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Alice", created.DisplayName)
		assert.Equal(t, created, profile)
	})

	t.Run("duplicate profile", func(t *testing.T) {
		storage := &MockProfileStorage{
			ProfileFunc: func(user domain.UserId) (domain.Profile, bool, error) {
				return domain.Profile{User: user}, true, nil
			},
		}

		service := NewProfiles(storage, passValidator{}, passValidator{})
		_, err := service.CreateProfile(domain.ProfileCreationData{User: "alice", DisplayName: "Alice"})
		assertStatusCode(t, err, 409)
	})

	t.Run("invalid genre aborts before storage", func(t *testing.T) {
		storage := &MockProfileStorage{
			CreateProfileFunc: func(p domain.Profile) error {
				t.Error("unexpected CreateProfile call")
				return nil
			},
		}

		service := NewProfiles(storage, passValidator{}, failTagValidator{})
		_, err := service.CreateProfile(domain.ProfileCreationData{
			User: "alice", DisplayName: "Alice", Genres: []domain.Genre{"gothic"},
		})
		assertStatusCode(t, err, 400)
	})
}

func TestProfilesUpdate(t *testing.T) {
	existing := domain.Profile{
		User:        "alice",
		DisplayName: "Alice",
		Bio:         "old bio",
		Genres:      []domain.Genre{"gothic"},
	}

	t.Run("only provided fields change", func(t *testing.T) {
		storage := &MockProfileStorage{
			ProfileFunc: func(user domain.UserId) (domain.Profile, bool, error) {
				return existing, true, nil
			},
		}
		var updated domain.Profile
		storage.UpdateProfileFunc = func(p domain.Profile) error {
			updated = p
			return nil
		}

		newBio := "new bio"
		service := NewProfiles(storage, passValidator{}, passValidator{})
		_, err := service.UpdateProfile("alice", domain.ProfileUpdate{Bio: &newBio})

		require.NoError(t, err)
		assert.Equal(t, "new bio", updated.Bio)
		assert.Equal(t, "Alice", updated.DisplayName)
		assert.Equal(t, existing.Genres, updated.Genres)
	})

	t.Run("missing profile", func(t *testing.T) {
		service := NewProfiles(&MockProfileStorage{}, passValidator{}, passValidator{})
		_, err := service.UpdateProfile("nobody", domain.ProfileUpdate{})
		assertStatusCode(t, err, 404)
	})

	t.Run("invalid genre rejects update", func(t *testing.T) {
		storage := &MockProfileStorage{
			ProfileFunc: func(user domain.UserId) (domain.Profile, bool, error) {
				return existing, true, nil
			},
			UpdateProfileFunc: func(p domain.Profile) error {
				t.Error("unexpected UpdateProfile call")
				return nil
			},
		}

		genres := []domain.Genre{"gothic"}
		service := NewProfiles(storage, passValidator{}, failTagValidator{})
		_, err := service.UpdateProfile("alice", domain.ProfileUpdate{Genres: &genres})
		assertStatusCode(t, err, 400)
	})
}
