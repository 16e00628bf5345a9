package memory

import (
	"fmt"
	"sort"

	"github.com/shelfmates/shelfmates/shared/domain"
)

// Slices inside stored structs are copied on the way in and out so
// callers can't alias internal state.

func cloneComment(c domain.Comment) domain.Comment {
	c.Reactions = append([]domain.ReactionId(nil), c.Reactions...)
	return c
}

func cloneThread(t domain.Thread) domain.Thread {
	t.TopLevel = append([]domain.CommentId(nil), t.TopLevel...)
	return t
}

func (s *Storage) CreateThread(t domain.Thread) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := scope{t.Book, t.Section}
	if _, exists := s.threadByScope[key]; exists {
		return fmt.Errorf("thread for (%s, %s) already exists", t.Book, t.Section)
	}
	s.threads[t.Id] = cloneThread(t)
	s.threadByScope[key] = t.Id
	return nil
}

func (s *Storage) Thread(id domain.ThreadId) (domain.Thread, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.threads[id]
	if !ok {
		return domain.Thread{}, false, nil
	}
	return cloneThread(t), true, nil
}

func (s *Storage) ThreadByScope(book domain.BookId, section domain.SectionId) (domain.Thread, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.threadByScope[scope{book, section}]
	if !ok {
		return domain.Thread{}, false, nil
	}
	return cloneThread(s.threads[id]), true, nil
}

func (s *Storage) AppendTopLevelComment(thread domain.ThreadId, comment domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[thread]
	if !ok {
		return fmt.Errorf("thread %s does not exist", thread)
	}
	t.TopLevel = append(t.TopLevel, comment)
	s.threads[thread] = t
	return nil
}

func (s *Storage) RemoveTopLevelComment(thread domain.ThreadId, comment domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[thread]
	if !ok {
		return fmt.Errorf("thread %s does not exist", thread)
	}
	kept := make([]domain.CommentId, 0, len(t.TopLevel))
	for _, id := range t.TopLevel {
		if id != comment {
			kept = append(kept, id)
		}
	}
	t.TopLevel = kept
	s.threads[thread] = t
	return nil
}

func (s *Storage) CreateComment(c domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.comments[c.Id]; exists {
		return fmt.Errorf("comment %s already exists", c.Id)
	}
	s.comments[c.Id] = cloneComment(c)
	return nil
}

func (s *Storage) Comment(id domain.CommentId) (domain.Comment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return domain.Comment{}, false, nil
	}
	return cloneComment(c), true, nil
}

func (s *Storage) CommentsByThread(thread domain.ThreadId) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Comment
	for _, c := range s.comments {
		if c.Thread == thread {
			out = append(out, cloneComment(c))
		}
	}
	sortComments(out)
	return out, nil
}

func (s *Storage) CommentsByParents(parents []domain.CommentId) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[domain.CommentId]bool, len(parents))
	for _, p := range parents {
		wanted[p] = true
	}
	var out []domain.Comment
	for _, c := range s.comments {
		if c.Parent != "" && wanted[c.Parent] {
			out = append(out, cloneComment(c))
		}
	}
	sortComments(out)
	return out, nil
}

func (s *Storage) DeleteComments(ids []domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.comments, id)
	}
	return nil
}

func (s *Storage) CreateReaction(r domain.Reaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reactions[r.Id]; exists {
		return fmt.Errorf("reaction %s already exists", r.Id)
	}
	s.reactions[r.Id] = r
	return nil
}

func (s *Storage) AppendReaction(comment domain.CommentId, reaction domain.ReactionId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[comment]
	if !ok {
		return fmt.Errorf("comment %s does not exist", comment)
	}
	c.Reactions = append(c.Reactions, reaction)
	s.comments[comment] = c
	return nil
}

func (s *Storage) ReactionExists(reactor domain.UserId, comment domain.CommentId, kind domain.ReactionKind) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reactions {
		if r.Reactor == reactor && r.Comment == comment && r.Kind == kind {
			return true, nil
		}
	}
	return false, nil
}

func (s *Storage) ReactionsByComment(comment domain.CommentId) ([]domain.Reaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Reaction
	for _, r := range s.reactions {
		if r.Comment == comment {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Id < out[j].Id
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Storage) DeleteReactionsByComments(comments []domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[domain.CommentId]bool, len(comments))
	for _, c := range comments {
		wanted[c] = true
	}
	for id, r := range s.reactions {
		if wanted[r.Comment] {
			delete(s.reactions, id)
		}
	}
	return nil
}

func sortComments(comments []domain.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].Id < comments[j].Id
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}
