package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
	"github.com/shelfmates/shelfmates/shared/utils"
)

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	type bodyJson struct {
		Sender    domain.UserId `validate:"required" json:"sender"`
		Recipient domain.UserId `validate:"required" json:"recipient"`
		Body      string        `validate:"required" json:"body"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	id, err := h.messaging.Send(domain.MessageCreationData{
		Sender:    body.Sender,
		Recipient: body.Recipient,
		Body:      body.Body,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]domain.MessageId{"id": id})
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id := domain.MessageId(mux.Vars(r)["message"])

	msg, found, err := h.messaging.Message(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, errors.NotFound("Message not found"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, msg)
}

// DeleteMessage removes a message. Only the sender may delete.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := domain.MessageId(mux.Vars(r)["message"])

	requestor := domain.UserId(r.URL.Query().Get("requestor"))
	if requestor == "" {
		utils.WriteError(w, errors.BadRequest("Missing requestor"))
		return
	}

	if err := h.messaging.Delete(requestor, id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GetConversation returns every message between two readers, oldest
// first, regardless of direction.
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	a := domain.UserId(r.URL.Query().Get("user"))
	b := domain.UserId(r.URL.Query().Get("with"))
	if a == "" || b == "" {
		utils.WriteError(w, errors.BadRequest("Missing user or with"))
		return
	}

	msgs, err := h.messaging.Conversation(a, b)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, msgs)
}
