package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
	"github.com/shelfmates/shelfmates/shared/utils"
)

func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	type bodyJson struct {
		Title    string   `validate:"required" json:"title"`
		Author   string   `validate:"required" json:"author"`
		Sections []string `json:"sections"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	id, err := h.library.AddBook(domain.BookCreationData{
		Title:    body.Title,
		Author:   body.Author,
		Sections: body.Sections,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]domain.BookId{"id": id})
}

func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := domain.BookId(mux.Vars(r)["book"])

	book, found, err := h.library.Book(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, errors.NotFound("Book not found"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, book)
}

func (h *Handler) StartReading(w http.ResponseWriter, r *http.Request) {
	book := domain.BookId(mux.Vars(r)["book"])

	type bodyJson struct {
		Reader domain.UserId `validate:"required" json:"reader"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	progress, err := h.library.StartReading(body.Reader, book)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, progress)
}

// FinishSection advances the reader past their current section,
// marking the book finished when it was the last one.
func (h *Handler) FinishSection(w http.ResponseWriter, r *http.Request) {
	book := domain.BookId(mux.Vars(r)["book"])

	type bodyJson struct {
		Reader domain.UserId `validate:"required" json:"reader"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	progress, err := h.library.FinishSection(body.Reader, book)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, progress)
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	book := domain.BookId(mux.Vars(r)["book"])

	reader := domain.UserId(r.URL.Query().Get("reader"))
	if reader == "" {
		utils.WriteError(w, errors.BadRequest("Missing reader"))
		return
	}

	progress, found, err := h.library.Progress(reader, book)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, errors.NotFound("Progress not found"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, progress)
}

func (h *Handler) GetReaderProgress(w http.ResponseWriter, r *http.Request) {
	reader := domain.UserId(mux.Vars(r)["user"])

	progress, err := h.library.ReaderProgress(reader)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, progress)
}
