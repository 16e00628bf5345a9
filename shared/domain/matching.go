package domain

import "time"

type MatchStatus = string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchDeclined MatchStatus = "declined"
)

// Match connects two readers. Only the recipient may respond.
// A declined match does not block a later proposal between the same pair.
type Match struct {
	Id          MatchId     `json:"id" bson:"_id"`
	Proposer    UserId      `json:"proposer" bson:"proposer"`
	Recipient   UserId      `json:"recipient" bson:"recipient"`
	Status      MatchStatus `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	RespondedAt *time.Time  `json:"responded_at,omitempty" bson:"responded_at,omitempty"`
}

// Involves reports whether user is either side of the match.
func (m *Match) Involves(user UserId) bool {
	return m.Proposer == user || m.Recipient == user
}

// Active matches (pending or accepted) block new proposals between a pair.
func (m *Match) Active() bool {
	return m.Status == MatchPending || m.Status == MatchAccepted
}

// Suggestion is a candidate reading partner with the genres both share.
type Suggestion struct {
	User         UserId  `json:"user"`
	DisplayName  string  `json:"display_name"`
	SharedGenres []Genre `json:"shared_genres"`
}
