package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfmates/shelfmates/shared/domain"
)

type MockMatchingStorage struct {
	CreateMatchFunc        func(m domain.Match) error
	MatchFunc              func(id domain.MatchId) (domain.Match, bool, error)
	ActiveMatchBetweenFunc func(a, b domain.UserId) (domain.Match, bool, error)
	UpdateMatchFunc        func(m domain.Match) error
	MatchesByUserFunc      func(user domain.UserId) ([]domain.Match, error)
}

func (m *MockMatchingStorage) CreateMatch(match domain.Match) error {
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(match)
	}
	return nil
}

func (m *MockMatchingStorage) Match(id domain.MatchId) (domain.Match, bool, error) {
	if m.MatchFunc != nil {
		return m.MatchFunc(id)
	}
	return domain.Match{}, false, nil
}

func (m *MockMatchingStorage) ActiveMatchBetween(a, b domain.UserId) (domain.Match, bool, error) {
	if m.ActiveMatchBetweenFunc != nil {
		return m.ActiveMatchBetweenFunc(a, b)
	}
	return domain.Match{}, false, nil
}

func (m *MockMatchingStorage) UpdateMatch(match domain.Match) error {
	if m.UpdateMatchFunc != nil {
		return m.UpdateMatchFunc(match)
	}
	return nil
}

func (m *MockMatchingStorage) MatchesByUser(user domain.UserId) ([]domain.Match, error) {
	if m.MatchesByUserFunc != nil {
		return m.MatchesByUserFunc(user)
	}
	return nil, nil
}

type MockRecommender struct {
	SuggestForFunc func(user domain.UserId) ([]domain.Suggestion, error)
}

func (m *MockRecommender) SuggestFor(user domain.UserId) ([]domain.Suggestion, error) {
	if m.SuggestForFunc != nil {
		return m.SuggestForFunc(user)
	}
	return nil, nil
}

func TestMatchingPropose(t *testing.T) {
	t.Run("creates pending match", func(t *testing.T) {
		storage := &MockMatchingStorage{}
		var created domain.Match
		storage.CreateMatchFunc = func(m domain.Match) error {
			created = m
			return nil
		}

		service := NewMatching(storage, &seqGen{prefix: "m"}, &MockRecommender{})
		matchId, err := service.Propose("alice", "bob")

		require.NoError(t, err)
		assert.Equal(t, matchId, created.Id)
		assert.Equal(t, domain.MatchPending, created.Status)
	})

	t.Run("self match", func(t *testing.T) {
		service := NewMatching(&MockMatchingStorage{}, &seqGen{prefix: "m"}, &MockRecommender{})
		_, err := service.Propose("alice", "alice")
		assertStatusCode(t, err, 400)
	})

	t.Run("active match between pair blocks proposal", func(t *testing.T) {
		storage := &MockMatchingStorage{
			ActiveMatchBetweenFunc: func(a, b domain.UserId) (domain.Match, bool, error) {
				return domain.Match{Proposer: b, Recipient: a, Status: domain.MatchPending}, true, nil
			},
		}

		service := NewMatching(storage, &seqGen{prefix: "m"}, &MockRecommender{})
		_, err := service.Propose("alice", "bob")
		assertStatusCode(t, err, 409)
	})
}

func TestMatchingRespond(t *testing.T) {
	pending := domain.Match{Id: "m1", Proposer: "alice", Recipient: "bob", Status: domain.MatchPending}
	matchFound := func(id domain.MatchId) (domain.Match, bool, error) {
		if id == pending.Id {
			return pending, true, nil
		}
		return domain.Match{}, false, nil
	}

	t.Run("recipient accepts", func(t *testing.T) {
		storage := &MockMatchingStorage{MatchFunc: matchFound}

		service := NewMatching(storage, &seqGen{prefix: "m"}, &MockRecommender{})
		match, err := service.Respond("bob", "m1", true)

		require.NoError(t, err)
		assert.Equal(t, domain.MatchAccepted, match.Status)
		require.NotNil(t, match.RespondedAt)
	})

	t.Run("recipient declines", func(t *testing.T) {
		storage := &MockMatchingStorage{MatchFunc: matchFound}

		service := NewMatching(storage, &seqGen{prefix: "m"}, &MockRecommender{})
		match, err := service.Respond("bob", "m1", false)

		require.NoError(t, err)
		assert.Equal(t, domain.MatchDeclined, match.Status)
	})

	t.Run("proposer cannot respond", func(t *testing.T) {
		storage := &MockMatchingStorage{MatchFunc: matchFound}

		service := NewMatching(storage, &seqGen{prefix: "m"}, &MockRecommender{})
		_, err := service.Respond("alice", "m1", true)
		assertStatusCode(t, err, 403)
	})

	t.Run("already answered", func(t *testing.T) {
		answered := pending
		answered.Status = domain.MatchAccepted
		storage := &MockMatchingStorage{
			MatchFunc: func(id domain.MatchId) (domain.Match, bool, error) {
				return answered, true, nil
			},
		}

		service := NewMatching(storage, &seqGen{prefix: "m"}, &MockRecommender{})
		_, err := service.Respond("bob", "m1", true)
		assertStatusCode(t, err, 409)
	})

	t.Run("missing match", func(t *testing.T) {
		service := NewMatching(&MockMatchingStorage{}, &seqGen{prefix: "m"}, &MockRecommender{})
		_, err := service.Respond("bob", "nope", true)
		assertStatusCode(t, err, 404)
	})
}

func TestMatchingSuggestions(t *testing.T) {
	recommender := &MockRecommender{
		SuggestForFunc: func(user domain.UserId) ([]domain.Suggestion, error) {
			return []domain.Suggestion{
				{User: "bob", SharedGenres: []domain.Genre{"gothic", "satire"}},
				{User: "carol", SharedGenres: []domain.Genre{"gothic"}},
			}, nil
		},
	}

	t.Run("filters readers with an active match", func(t *testing.T) {
		storage := &MockMatchingStorage{
			MatchesByUserFunc: func(user domain.UserId) ([]domain.Match, error) {
				return []domain.Match{
					{Proposer: "alice", Recipient: "bob", Status: domain.MatchAccepted},
					{Proposer: "dave", Recipient: "alice", Status: domain.MatchDeclined},
				}, nil
			},
		}

		service := NewMatching(storage, &seqGen{prefix: "m"}, recommender)
		suggestions, err := service.Suggestions("alice")

		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, domain.UserId("carol"), suggestions[0].User)
	})

	t.Run("declined matches do not filter", func(t *testing.T) {
		storage := &MockMatchingStorage{
			MatchesByUserFunc: func(user domain.UserId) ([]domain.Match, error) {
				return []domain.Match{
					{Proposer: "alice", Recipient: "bob", Status: domain.MatchDeclined},
				}, nil
			},
		}

		service := NewMatching(storage, &seqGen{prefix: "m"}, recommender)
		suggestions, err := service.Suggestions("alice")

		require.NoError(t, err)
		assert.Len(t, suggestions, 2)
	})
}
