package service

import (
	"time"

	"github.com/shelfmates/shelfmates/internal/idgen"
	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
)

// MatchingService pairs readers. A match is proposed by one side and
// answered by the other; at most one pending-or-accepted match may
// connect a pair at a time.
type MatchingService interface {
	Propose(proposer, recipient domain.UserId) (domain.MatchId, error)
	Respond(user domain.UserId, match domain.MatchId, accept bool) (domain.Match, error)
	Suggestions(user domain.UserId) ([]domain.Suggestion, error)

	Match(id domain.MatchId) (domain.Match, bool, error)
	MatchesFor(user domain.UserId) ([]domain.Match, error)
}

type Matching struct {
	storage     MatchingStorage
	ids         idgen.Generator
	recommender Recommender
}

type MatchingStorage interface {
	CreateMatch(m domain.Match) error
	Match(id domain.MatchId) (domain.Match, bool, error)
	// ActiveMatchBetween looks in both directions; declined matches don't count.
	ActiveMatchBetween(a, b domain.UserId) (domain.Match, bool, error)
	UpdateMatch(m domain.Match) error
	MatchesByUser(user domain.UserId) ([]domain.Match, error)
}

// Recommender produces candidate reading partners. The in-repo
// implementation is a plain shared-genre scorer; anything smarter
// lives outside this service.
type Recommender interface {
	SuggestFor(user domain.UserId) ([]domain.Suggestion, error)
}

func NewMatching(storage MatchingStorage, ids idgen.Generator, recommender Recommender) *Matching {
	return &Matching{storage, ids, recommender}
}

func (m *Matching) Propose(proposer, recipient domain.UserId) (domain.MatchId, error) {
	if proposer == recipient {
		return "", errors.BadRequest("Cannot propose a match with yourself")
	}

	if _, exists, err := m.storage.ActiveMatchBetween(proposer, recipient); err != nil {
		return "", err
	} else if exists {
		return "", errors.Conflict("A match between these readers already exists")
	}

	match := domain.Match{
		Id:        m.ids.NewId(),
		Proposer:  proposer,
		Recipient: recipient,
		Status:    domain.MatchPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.storage.CreateMatch(match); err != nil {
		return "", err
	}
	return match.Id, nil
}

// Respond accepts or declines a pending match. Only the recipient may respond.
func (m *Matching) Respond(user domain.UserId, match domain.MatchId, accept bool) (domain.Match, error) {
	existing, found, err := m.storage.Match(match)
	if err != nil {
		return domain.Match{}, err
	}
	if !found {
		return domain.Match{}, errors.NotFound("Match not found")
	}
	if existing.Recipient != user {
		return domain.Match{}, errors.Forbidden("Only the recipient can respond to a match")
	}
	if existing.Status != domain.MatchPending {
		return domain.Match{}, errors.Conflict("Match has already been answered")
	}

	if accept {
		existing.Status = domain.MatchAccepted
	} else {
		existing.Status = domain.MatchDeclined
	}
	now := time.Now().UTC()
	existing.RespondedAt = &now

	if err := m.storage.UpdateMatch(existing); err != nil {
		return domain.Match{}, err
	}
	return existing, nil
}

// Suggestions returns candidates from the recommender, minus readers
// the user already has an active match with.
func (m *Matching) Suggestions(user domain.UserId) ([]domain.Suggestion, error) {
	candidates, err := m.recommender.SuggestFor(user)
	if err != nil {
		return nil, err
	}

	matches, err := m.storage.MatchesByUser(user)
	if err != nil {
		return nil, err
	}
	taken := make(map[domain.UserId]bool, len(matches))
	for _, match := range matches {
		if match.Active() {
			taken[match.Proposer] = true
			taken[match.Recipient] = true
		}
	}

	suggestions := make([]domain.Suggestion, 0, len(candidates))
	for _, candidate := range candidates {
		if taken[candidate.User] {
			continue
		}
		suggestions = append(suggestions, candidate)
	}
	return suggestions, nil
}

func (m *Matching) Match(id domain.MatchId) (domain.Match, bool, error) {
	return m.storage.Match(id)
}

func (m *Matching) MatchesFor(user domain.UserId) ([]domain.Match, error) {
	return m.storage.MatchesByUser(user)
}
