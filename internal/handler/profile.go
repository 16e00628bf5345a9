package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
	"github.com/shelfmates/shelfmates/shared/utils"
)

func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	type bodyJson struct {
		User        domain.UserId  `validate:"required" json:"user"`
		DisplayName string         `validate:"required" json:"display_name"`
		Bio         string         `json:"bio"`
		Genres      []domain.Genre `json:"genres"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	profile, err := h.profiles.CreateProfile(domain.ProfileCreationData{
		User:        body.User,
		DisplayName: body.DisplayName,
		Bio:         body.Bio,
		Genres:      body.Genres,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, profile)
}

// UpdateProfile applies a partial update. Omitted fields keep their
// current value; an explicit empty value overwrites.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := domain.UserId(mux.Vars(r)["user"])

	type bodyJson struct {
		DisplayName *string         `json:"display_name"`
		Bio         *string         `json:"bio"`
		Genres      *[]domain.Genre `json:"genres"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	profile, err := h.profiles.UpdateProfile(user, domain.ProfileUpdate{
		DisplayName: body.DisplayName,
		Bio:         body.Bio,
		Genres:      body.Genres,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := domain.UserId(mux.Vars(r)["user"])

	profile, found, err := h.profiles.Profile(user)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, errors.NotFound("Profile not found"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}
