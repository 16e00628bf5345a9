package service

import (
	"time"

	"github.com/shelfmates/shelfmates/internal/idgen"
	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
)

// LibraryService tracks books and per-reader reading progress.
// Progress advances strictly along the book's ordered section list.
type LibraryService interface {
	AddBook(data domain.BookCreationData) (domain.BookId, error)
	StartReading(reader domain.UserId, book domain.BookId) (domain.Progress, error)
	FinishSection(reader domain.UserId, book domain.BookId) (domain.Progress, error)

	Book(id domain.BookId) (domain.Book, bool, error)
	Progress(reader domain.UserId, book domain.BookId) (domain.Progress, bool, error)
	ReaderProgress(reader domain.UserId) ([]domain.Progress, error)
}

type Library struct {
	storage   LibraryStorage
	ids       idgen.Generator
	validator NameValidator
}

type LibraryStorage interface {
	CreateBook(b domain.Book) error
	Book(id domain.BookId) (domain.Book, bool, error)

	CreateProgress(p domain.Progress) error
	Progress(reader domain.UserId, book domain.BookId) (domain.Progress, bool, error)
	UpdateProgress(p domain.Progress) error
	ProgressByReader(reader domain.UserId) ([]domain.Progress, error)
}

type NameValidator interface {
	Name(name string) (string, error)
}

func NewLibrary(storage LibraryStorage, ids idgen.Generator, validator NameValidator) *Library {
	return &Library{storage, ids, validator}
}

// AddBook registers a book. Section order is reading order; every
// section gets its own opaque id.
func (l *Library) AddBook(data domain.BookCreationData) (domain.BookId, error) {
	title, err := l.validator.Name(data.Title)
	if err != nil {
		return "", err
	}

	sections := make([]domain.Section, 0, len(data.Sections))
	for _, sectionTitle := range data.Sections {
		sectionTitle, err := l.validator.Name(sectionTitle)
		if err != nil {
			return "", err
		}
		sections = append(sections, domain.Section{Id: l.ids.NewId(), Title: sectionTitle})
	}

	book := domain.Book{
		Id:        l.ids.NewId(),
		Title:     title,
		Author:    data.Author,
		Sections:  sections,
		CreatedAt: time.Now().UTC(),
	}
	if err := l.storage.CreateBook(book); err != nil {
		return "", err
	}
	return book.Id, nil
}

// StartReading opens a progress record at the book's first section.
// A book with no sections starts already finished.
func (l *Library) StartReading(reader domain.UserId, book domain.BookId) (domain.Progress, error) {
	b, found, err := l.storage.Book(book)
	if err != nil {
		return domain.Progress{}, err
	}
	if !found {
		return domain.Progress{}, errors.NotFound("Book not found")
	}

	if _, exists, err := l.storage.Progress(reader, book); err != nil {
		return domain.Progress{}, err
	} else if exists {
		return domain.Progress{}, errors.Conflict("Reader is already reading this book")
	}

	now := time.Now().UTC()
	progress := domain.Progress{
		Id:        l.ids.NewId(),
		Reader:    reader,
		Book:      book,
		StartedAt: now,
		UpdatedAt: now,
	}
	if len(b.Sections) == 0 {
		progress.Finished = true
	} else {
		progress.Section = b.Sections[0].Id
	}

	if err := l.storage.CreateProgress(progress); err != nil {
		return domain.Progress{}, err
	}
	return progress, nil
}

// FinishSection marks the current section done and advances to the
// next one in reading order, or finishes the book at the last section.
func (l *Library) FinishSection(reader domain.UserId, book domain.BookId) (domain.Progress, error) {
	progress, found, err := l.storage.Progress(reader, book)
	if err != nil {
		return domain.Progress{}, err
	}
	if !found {
		return domain.Progress{}, errors.NotFound("Reader is not reading this book")
	}
	if progress.Finished {
		return domain.Progress{}, errors.Conflict("Book is already finished")
	}

	b, found, err := l.storage.Book(book)
	if err != nil {
		return domain.Progress{}, err
	}
	if !found {
		return domain.Progress{}, errors.NotFound("Book not found")
	}

	if next, ok := b.NextSection(progress.Section); ok {
		progress.Section = next.Id
	} else {
		progress.Section = ""
		progress.Finished = true
	}
	progress.UpdatedAt = time.Now().UTC()

	if err := l.storage.UpdateProgress(progress); err != nil {
		return domain.Progress{}, err
	}
	return progress, nil
}

func (l *Library) Book(id domain.BookId) (domain.Book, bool, error) {
	return l.storage.Book(id)
}

func (l *Library) Progress(reader domain.UserId, book domain.BookId) (domain.Progress, bool, error) {
	return l.storage.Progress(reader, book)
}

func (l *Library) ReaderProgress(reader domain.UserId) ([]domain.Progress, error) {
	return l.storage.ProgressByReader(reader)
}
