package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
)

// MockProfileService implements service.ProfileService.
type MockProfileService struct {
	MockCreateProfile func(data domain.ProfileCreationData) (domain.Profile, error)
	MockUpdateProfile func(user domain.UserId, update domain.ProfileUpdate) (domain.Profile, error)
	MockProfile       func(user domain.UserId) (domain.Profile, bool, error)
}

func (m *MockProfileService) CreateProfile(data domain.ProfileCreationData) (domain.Profile, error) {
	if m.MockCreateProfile != nil {
		return m.MockCreateProfile(data)
	}
	return domain.Profile{}, nil
}

func (m *MockProfileService) UpdateProfile(user domain.UserId, update domain.ProfileUpdate) (domain.Profile, error) {
	if m.MockUpdateProfile != nil {
		return m.MockUpdateProfile(user, update)
	}
	return domain.Profile{}, nil
}

func (m *MockProfileService) Profile(user domain.UserId) (domain.Profile, bool, error) {
	if m.MockProfile != nil {
		return m.MockProfile(user)
	}
	return domain.Profile{}, false, nil
}

func setupProfileTestHandler(profiles *MockProfileService) *mux.Router {
	h := &Handler{profiles: profiles}
	router := mux.NewRouter()
	router.HandleFunc("/profiles", h.CreateProfile).Methods(http.MethodPost)
	router.HandleFunc("/profiles/{user}", h.UpdateProfile).Methods(http.MethodPatch)
	router.HandleFunc("/profiles/{user}", h.GetProfile).Methods(http.MethodGet)
	return router
}

func TestCreateProfileHandler(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		mockService := &MockProfileService{
			MockCreateProfile: func(data domain.ProfileCreationData) (domain.Profile, error) {
				assert.Equal(t, domain.UserId("alice"), data.User)
				assert.Equal(t, []domain.Genre{"gothic", "satire"}, data.Genres)
				return domain.Profile{User: data.User, DisplayName: data.DisplayName, Genres: data.Genres}, nil
			},
		}
		router := setupProfileTestHandler(mockService)

		body := []byte(`{"user": "alice", "display_name": "Alice", "genres": ["gothic", "satire"]}`)
		req := httptest.NewRequest(http.MethodPost, "/profiles", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"Alice"`)
	})

	t.Run("duplicate profile", func(t *testing.T) {
		mockService := &MockProfileService{
			MockCreateProfile: func(data domain.ProfileCreationData) (domain.Profile, error) {
				return domain.Profile{}, errors.Conflict("Profile already exists")
			},
		}
		router := setupProfileTestHandler(mockService)

		body := []byte(`{"user": "alice", "display_name": "Alice"}`)
		req := httptest.NewRequest(http.MethodPost, "/profiles", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		mockService := &MockProfileService{
			MockUpdateProfile: func(user domain.UserId, update domain.ProfileUpdate) (domain.Profile, error) {
				assert.Equal(t, domain.UserId("alice"), user)
				assert.Nil(t, update.DisplayName)
				assert.NotNil(t, update.Bio)
				assert.Equal(t, "new bio", *update.Bio)
				return domain.Profile{User: user, DisplayName: "Alice", Bio: *update.Bio}, nil
			},
		}
		router := setupProfileTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPatch, "/profiles/alice", bytes.NewBuffer([]byte(`{"bio": "new bio"}`)))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "new bio")
	})

	t.Run("unknown user", func(t *testing.T) {
		mockService := &MockProfileService{
			MockUpdateProfile: func(user domain.UserId, update domain.ProfileUpdate) (domain.Profile, error) {
				return domain.Profile{}, errors.NotFound("Profile not found")
			},
		}
		router := setupProfileTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPatch, "/profiles/ghost", bytes.NewBuffer([]byte(`{"bio": "x"}`)))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetProfileHandler(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		router := setupProfileTestHandler(&MockProfileService{})

		req := httptest.NewRequest(http.MethodGet, "/profiles/ghost", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "error")
	})
}
