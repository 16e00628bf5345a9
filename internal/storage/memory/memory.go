// Package memory is a map-backed storage implementation. It backs
// tests and the "memory" storage_backend dev mode; semantics mirror
// the mongo backend document for document.
package memory

import (
	"context"
	"sync"

	"github.com/shelfmates/shelfmates/shared/domain"
)

type scope struct {
	book    domain.BookId
	section domain.SectionId
}

type progressKey struct {
	reader domain.UserId
	book   domain.BookId
}

type Storage struct {
	mu sync.RWMutex

	threads       map[domain.ThreadId]domain.Thread
	threadByScope map[scope]domain.ThreadId
	comments      map[domain.CommentId]domain.Comment
	reactions     map[domain.ReactionId]domain.Reaction

	books    map[domain.BookId]domain.Book
	progress map[progressKey]domain.Progress

	profiles map[domain.UserId]domain.Profile
	matches  map[domain.MatchId]domain.Match
	messages map[domain.MessageId]domain.DirectMessage
}

func New() *Storage {
	return &Storage{
		threads:       make(map[domain.ThreadId]domain.Thread),
		threadByScope: make(map[scope]domain.ThreadId),
		comments:      make(map[domain.CommentId]domain.Comment),
		reactions:     make(map[domain.ReactionId]domain.Reaction),
		books:         make(map[domain.BookId]domain.Book),
		progress:      make(map[progressKey]domain.Progress),
		profiles:      make(map[domain.UserId]domain.Profile),
		matches:       make(map[domain.MatchId]domain.Match),
		messages:      make(map[domain.MessageId]domain.DirectMessage),
	}
}

func (s *Storage) Cleanup() error {
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}
