// Package storage defines the aggregate persistence contract the
// application wires at startup. Both backends (mongo, memory)
// implement it; services depend only on their own narrow slices.
package storage

import (
	"context"

	"github.com/shelfmates/shelfmates/internal/service"
)

type Storage interface {
	service.CommentaryStorage
	service.LibraryStorage
	service.ProfileStorage
	service.MatchingStorage
	service.MessagingStorage
	Ping(ctx context.Context) error
	Cleanup() error
}
