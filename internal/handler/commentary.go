package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
	"github.com/shelfmates/shelfmates/shared/utils"
)

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	book := domain.BookId(mux.Vars(r)["book"])
	section := domain.SectionId(mux.Vars(r)["section"])

	type bodyJson struct {
		Author domain.UserId `validate:"required" json:"author"`
		Body   string        `validate:"required" json:"body"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	id, err := h.commentary.PostComment(domain.CommentCreationData{
		Author:  body.Author,
		Book:    book,
		Section: section,
		Body:    body.Body,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]domain.CommentId{"id": id})
}

func (h *Handler) GetThreadComments(w http.ResponseWriter, r *http.Request) {
	book := domain.BookId(mux.Vars(r)["book"])
	section := domain.SectionId(mux.Vars(r)["section"])

	comments, err := h.commentary.ThreadComments(book, section)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, comments)
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	parent := domain.CommentId(mux.Vars(r)["comment"])

	type bodyJson struct {
		Author domain.UserId `validate:"required" json:"author"`
		Body   string        `validate:"required" json:"body"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	id, err := h.commentary.Reply(domain.ReplyCreationData{
		Author: body.Author,
		Parent: parent,
		Body:   body.Body,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]domain.CommentId{"id": id})
}

func (h *Handler) CreateReaction(w http.ResponseWriter, r *http.Request) {
	target := domain.CommentId(mux.Vars(r)["comment"])

	type bodyJson struct {
		Reactor domain.UserId       `validate:"required" json:"reactor"`
		Kind    domain.ReactionKind `validate:"required" json:"kind"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	id, err := h.commentary.React(domain.ReactionCreationData{
		Reactor: body.Reactor,
		Target:  target,
		Kind:    body.Kind,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]domain.ReactionId{"id": id})
}

func (h *Handler) GetReactions(w http.ResponseWriter, r *http.Request) {
	comment := domain.CommentId(mux.Vars(r)["comment"])

	reactions, err := h.commentary.CommentReactions(comment)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, reactions)
}

func (h *Handler) GetComment(w http.ResponseWriter, r *http.Request) {
	id := domain.CommentId(mux.Vars(r)["comment"])

	comment, found, err := h.commentary.Comment(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, errors.NotFound("Comment not found"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, comment)
}

// DeleteComment removes a comment and everything hanging off it. The
// requestor comes from the query string; only the author may delete.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id := domain.CommentId(mux.Vars(r)["comment"])

	requestor := domain.UserId(r.URL.Query().Get("requestor"))
	if requestor == "" {
		utils.WriteError(w, errors.BadRequest("Missing requestor"))
		return
	}

	if err := h.commentary.DeleteComment(requestor, id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	id := domain.ThreadId(mux.Vars(r)["thread"])

	thread, found, err := h.commentary.Thread(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, errors.NotFound("Thread not found"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, thread)
}
