package service

import (
	"time"

	"github.com/shelfmates/shelfmates/internal/idgen"
	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
)

// CommentaryService owns threads, comments and reactions and the
// invariants connecting them: one thread per (book, section), replies
// never cross threads, reaction triples are unique, and deleting a
// comment sweeps its whole reply subtree plus every reaction on it.
type CommentaryService interface {
	PostComment(data domain.CommentCreationData) (domain.CommentId, error)
	Reply(data domain.ReplyCreationData) (domain.CommentId, error)
	React(data domain.ReactionCreationData) (domain.ReactionId, error)
	DeleteComment(requestor domain.UserId, target domain.CommentId) error

	ThreadComments(book domain.BookId, section domain.SectionId) ([]domain.Comment, error)
	CommentReactions(comment domain.CommentId) ([]domain.Reaction, error)
	Comment(id domain.CommentId) (domain.Comment, bool, error)
	Thread(id domain.ThreadId) (domain.Thread, bool, error)
}

type Commentary struct {
	storage   CommentaryStorage
	ids       idgen.Generator
	validator BodyValidator
	tags      TagValidator
}

type CommentaryStorage interface {
	CreateThread(t domain.Thread) error
	Thread(id domain.ThreadId) (domain.Thread, bool, error)
	ThreadByScope(book domain.BookId, section domain.SectionId) (domain.Thread, bool, error)
	AppendTopLevelComment(thread domain.ThreadId, comment domain.CommentId) error
	RemoveTopLevelComment(thread domain.ThreadId, comment domain.CommentId) error

	CreateComment(c domain.Comment) error
	Comment(id domain.CommentId) (domain.Comment, bool, error)
	CommentsByThread(thread domain.ThreadId) ([]domain.Comment, error)
	CommentsByParents(parents []domain.CommentId) ([]domain.Comment, error)
	DeleteComments(ids []domain.CommentId) error

	CreateReaction(r domain.Reaction) error
	AppendReaction(comment domain.CommentId, reaction domain.ReactionId) error
	ReactionExists(reactor domain.UserId, comment domain.CommentId, kind domain.ReactionKind) (bool, error)
	ReactionsByComment(comment domain.CommentId) ([]domain.Reaction, error)
	DeleteReactionsByComments(comments []domain.CommentId) error
}

type BodyValidator interface {
	Body(text string) (string, error)
}

type TagValidator interface {
	Tag(tag string) (string, error)
}

func NewCommentary(storage CommentaryStorage, ids idgen.Generator, validator BodyValidator, tags TagValidator) *Commentary {
	return &Commentary{storage, ids, validator, tags}
}

// PostComment creates a top-level comment, lazily creating the thread
// for the (book, section) pair on first use.
func (c *Commentary) PostComment(data domain.CommentCreationData) (domain.CommentId, error) {
	body, err := c.validator.Body(data.Body)
	if err != nil {
		return "", err
	}

	thread, found, err := c.storage.ThreadByScope(data.Book, data.Section)
	if err != nil {
		return "", err
	}
	if !found {
		thread = domain.Thread{
			Id:        c.ids.NewId(),
			Book:      data.Book,
			Section:   data.Section,
			CreatedAt: time.Now().UTC(),
		}
		if err := c.storage.CreateThread(thread); err != nil {
			return "", err
		}
	}

	comment := domain.Comment{
		Id:        c.ids.NewId(),
		Author:    data.Author,
		Body:      body,
		Thread:    thread.Id,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.storage.CreateComment(comment); err != nil {
		return "", err
	}
	if err := c.storage.AppendTopLevelComment(thread.Id, comment.Id); err != nil {
		return "", err
	}
	return comment.Id, nil
}

// Reply attaches a child comment to parent. The child lives in the
// parent's thread but is never listed in the thread's top-level list.
func (c *Commentary) Reply(data domain.ReplyCreationData) (domain.CommentId, error) {
	body, err := c.validator.Body(data.Body)
	if err != nil {
		return "", err
	}

	parent, found, err := c.storage.Comment(data.Parent)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.NotFound("Parent comment not found")
	}

	comment := domain.Comment{
		Id:        c.ids.NewId(),
		Author:    data.Author,
		Body:      body,
		Thread:    parent.Thread,
		Parent:    parent.Id,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.storage.CreateComment(comment); err != nil {
		return "", err
	}
	return comment.Id, nil
}

// React records a tagged response. The (reactor, target, kind) triple
// may not repeat; changing any component of it is a new reaction.
func (c *Commentary) React(data domain.ReactionCreationData) (domain.ReactionId, error) {
	kind, err := c.tags.Tag(string(data.Kind))
	if err != nil {
		return "", err
	}
	data.Kind = domain.ReactionKind(kind)

	_, found, err := c.storage.Comment(data.Target)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.NotFound("Comment not found")
	}

	exists, err := c.storage.ReactionExists(data.Reactor, data.Target, data.Kind)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.Conflict("User already reacted to this comment with this kind")
	}

	reaction := domain.Reaction{
		Id:        c.ids.NewId(),
		Reactor:   data.Reactor,
		Comment:   data.Target,
		Kind:      data.Kind,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.storage.CreateReaction(reaction); err != nil {
		return "", err
	}
	if err := c.storage.AppendReaction(data.Target, reaction.Id); err != nil {
		return "", err
	}
	return reaction.Id, nil
}

// DeleteComment removes the target together with its transitive replies
// and every reaction targeting any of them. Only the author may delete.
// The steps are not atomic across collections; a concurrent reader can
// observe an intermediate state.
func (c *Commentary) DeleteComment(requestor domain.UserId, target domain.CommentId) error {
	comment, found, err := c.storage.Comment(target)
	if err != nil {
		return err
	}
	if !found {
		return errors.NotFound("Comment not found")
	}
	if comment.Author != requestor {
		return errors.Forbidden("Only the author can delete a comment")
	}

	doomed, err := c.collectSubtree(target)
	if err != nil {
		return err
	}

	if err := c.storage.DeleteReactionsByComments(doomed); err != nil {
		return err
	}
	if err := c.storage.DeleteComments(doomed); err != nil {
		return err
	}
	// Replies were never listed in the thread, so only a top-level
	// target needs the membership update. The thread itself persists
	// even when its list becomes empty.
	if comment.Parent == "" {
		return c.storage.RemoveTopLevelComment(comment.Thread, comment.Id)
	}
	return nil
}

// collectSubtree walks the parent-pointer relation breadth-first from
// root. Termination is guaranteed: a comment always references an
// already-existing parent, so the relation is acyclic.
func (c *Commentary) collectSubtree(root domain.CommentId) ([]domain.CommentId, error) {
	doomed := []domain.CommentId{root}
	seen := map[domain.CommentId]bool{root: true}
	frontier := []domain.CommentId{root}

	for len(frontier) > 0 {
		children, err := c.storage.CommentsByParents(frontier)
		if err != nil {
			return nil, err
		}
		next := make([]domain.CommentId, 0, len(children))
		for _, child := range children {
			if seen[child.Id] {
				continue
			}
			seen[child.Id] = true
			doomed = append(doomed, child.Id)
			next = append(next, child.Id)
		}
		frontier = next
	}
	return doomed, nil
}

// ThreadComments returns the flat comment list for a (book, section)
// pair. Hierarchy is reconstructed by the caller from Parent pointers.
// A pair that never had a comment yields an empty list, not an error.
func (c *Commentary) ThreadComments(book domain.BookId, section domain.SectionId) ([]domain.Comment, error) {
	thread, found, err := c.storage.ThreadByScope(book, section)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Comment{}, nil
	}
	return c.storage.CommentsByThread(thread.Id)
}

func (c *Commentary) CommentReactions(comment domain.CommentId) ([]domain.Reaction, error) {
	return c.storage.ReactionsByComment(comment)
}

func (c *Commentary) Comment(id domain.CommentId) (domain.Comment, bool, error) {
	return c.storage.Comment(id)
}

func (c *Commentary) Thread(id domain.ThreadId) (domain.Thread, bool, error) {
	return c.storage.Thread(id)
}
