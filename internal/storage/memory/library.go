package memory

import (
	"fmt"
	"sort"

	"github.com/shelfmates/shelfmates/shared/domain"
)

func cloneBook(b domain.Book) domain.Book {
	b.Sections = append([]domain.Section(nil), b.Sections...)
	return b
}

func (s *Storage) CreateBook(b domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[b.Id]; exists {
		return fmt.Errorf("book %s already exists", b.Id)
	}
	s.books[b.Id] = cloneBook(b)
	return nil
}

func (s *Storage) Book(id domain.BookId) (domain.Book, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return domain.Book{}, false, nil
	}
	return cloneBook(b), true, nil
}

func (s *Storage) CreateProgress(p domain.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey{p.Reader, p.Book}
	if _, exists := s.progress[key]; exists {
		return fmt.Errorf("progress for (%s, %s) already exists", p.Reader, p.Book)
	}
	s.progress[key] = p
	return nil
}

func (s *Storage) Progress(reader domain.UserId, book domain.BookId) (domain.Progress, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.progress[progressKey{reader, book}]
	return p, ok, nil
}

func (s *Storage) UpdateProgress(p domain.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey{p.Reader, p.Book}
	if _, exists := s.progress[key]; !exists {
		return fmt.Errorf("progress for (%s, %s) does not exist", p.Reader, p.Book)
	}
	s.progress[key] = p
	return nil
}

func (s *Storage) ProgressByReader(reader domain.UserId) ([]domain.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Progress
	for _, p := range s.progress {
		if p.Reader == reader {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].Id < out[j].Id
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out, nil
}
