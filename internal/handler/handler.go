package handler

import (
	"context"

	"github.com/shelfmates/shelfmates/internal/service"
	"github.com/shelfmates/shelfmates/shared/config"
)

// Pinger reports backend reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	commentary service.CommentaryService
	library    service.LibraryService
	profiles   service.ProfileService
	matching   service.MatchingService
	messaging  service.MessagingService
	health     Pinger
	cfg        *config.Config
}

func New(
	commentary service.CommentaryService,
	library service.LibraryService,
	profiles service.ProfileService,
	matching service.MatchingService,
	messaging service.MessagingService,
	health Pinger,
	cfg *config.Config,
) *Handler {
	return &Handler{commentary, library, profiles, matching, messaging, health, cfg}
}
