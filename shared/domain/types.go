package domain

// All identifiers are opaque strings minted by the id generator.
// Callers never parse them.
type (
	UserId    = string
	BookId    = string
	SectionId = string

	ThreadId     = string
	CommentId    = string
	ReactionId   = string
	ReactionKind = string

	MatchId   = string
	MessageId = string

	Genre = string
)
