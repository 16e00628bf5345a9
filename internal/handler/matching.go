package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
	"github.com/shelfmates/shelfmates/shared/utils"
)

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	type bodyJson struct {
		Proposer  domain.UserId `validate:"required" json:"proposer"`
		Recipient domain.UserId `validate:"required" json:"recipient"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	id, err := h.matching.Propose(body.Proposer, body.Recipient)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]domain.MatchId{"id": id})
}

// RespondToMatch lets the recipient accept or decline a pending match.
func (h *Handler) RespondToMatch(w http.ResponseWriter, r *http.Request) {
	id := domain.MatchId(mux.Vars(r)["match"])

	type bodyJson struct {
		User   domain.UserId `validate:"required" json:"user"`
		Accept *bool         `validate:"required" json:"accept"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	match, err := h.matching.Respond(body.User, id, *body.Accept)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, match)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id := domain.MatchId(mux.Vars(r)["match"])

	match, found, err := h.matching.Match(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, errors.NotFound("Match not found"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, match)
}

func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	user := domain.UserId(mux.Vars(r)["user"])

	matches, err := h.matching.MatchesFor(user)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, matches)
}

func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	user := domain.UserId(mux.Vars(r)["user"])

	suggestions, err := h.matching.Suggestions(user)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, suggestions)
}
