package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
)

type fakeDirectory struct {
	profiles map[domain.UserId]domain.Profile
}

func (d *fakeDirectory) Profile(user domain.UserId) (domain.Profile, bool, error) {
	p, ok := d.profiles[user]
	return p, ok, nil
}

func (d *fakeDirectory) ProfilesByGenres(genres []domain.Genre) ([]domain.Profile, error) {
	wanted := make(map[domain.Genre]bool, len(genres))
	for _, g := range genres {
		wanted[g] = true
	}
	var out []domain.Profile
	for _, p := range d.profiles {
		for _, g := range p.Genres {
			if wanted[g] {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func TestSharedGenreSuggestFor(t *testing.T) {
	dir := &fakeDirectory{profiles: map[domain.UserId]domain.Profile{
		"alice": {User: "alice", Genres: []domain.Genre{"gothic", "satire", "essays"}},
		"bob":   {User: "bob", Genres: []domain.Genre{"gothic", "satire"}},
		"carol": {User: "carol", Genres: []domain.Genre{"satire"}},
		"dave":  {User: "dave", Genres: []domain.Genre{"thriller"}},
	}}

	r := NewSharedGenre(dir, 0)
	suggestions, err := r.SuggestFor("alice")

	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	// most shared genres first, never the user themselves
	assert.Equal(t, domain.UserId("bob"), suggestions[0].User)
	assert.ElementsMatch(t, []domain.Genre{"gothic", "satire"}, suggestions[0].SharedGenres)
	assert.Equal(t, domain.UserId("carol"), suggestions[1].User)
}

func TestSharedGenreSuggestFor_NoProfile(t *testing.T) {
	r := NewSharedGenre(&fakeDirectory{profiles: map[domain.UserId]domain.Profile{}}, 0)

	_, err := r.SuggestFor("ghost")
	var statusErr *errors.ErrorWithStatusCode
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.StatusCode)
}

func TestSharedGenreSuggestFor_Limit(t *testing.T) {
	profiles := map[domain.UserId]domain.Profile{
		"alice": {User: "alice", Genres: []domain.Genre{"gothic"}},
	}
	for _, u := range []domain.UserId{"u1", "u2", "u3"} {
		profiles[u] = domain.Profile{User: u, Genres: []domain.Genre{"gothic"}}
	}

	r := NewSharedGenre(&fakeDirectory{profiles: profiles}, 2)
	suggestions, err := r.SuggestFor("alice")

	require.NoError(t, err)
	assert.Len(t, suggestions, 2)
}
