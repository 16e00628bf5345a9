package domain

import "time"

// Thread is the discussion scope for one (book, section) pair.
// Created lazily on the first comment and never deleted, even when
// its last top-level comment is removed.
type Thread struct {
	Id        ThreadId    `json:"id" bson:"_id"`
	Book      BookId      `json:"book" bson:"book"`
	Section   SectionId   `json:"section" bson:"section"`
	TopLevel  []CommentId `json:"top_level" bson:"top_level"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

// Comment is a single post. Parent is empty for top-level comments;
// replies inherit their parent's thread and are discovered by the
// parent-pointer relation, never via the thread's top-level list.
type Comment struct {
	Id        CommentId    `json:"id" bson:"_id"`
	Author    UserId       `json:"author" bson:"author"`
	Body      string       `json:"body" bson:"body"`
	Thread    ThreadId     `json:"thread" bson:"thread"`
	Parent    CommentId    `json:"parent,omitempty" bson:"parent,omitempty"`
	Reactions []ReactionId `json:"reactions" bson:"reactions"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}

// Reaction records one user's tagged response to one comment.
// The (Reactor, Comment, Kind) triple is unique.
type Reaction struct {
	Id        ReactionId   `json:"id" bson:"_id"`
	Reactor   UserId       `json:"reactor" bson:"reactor"`
	Comment   CommentId    `json:"comment" bson:"comment"`
	Kind      ReactionKind `json:"kind" bson:"kind"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}

type CommentCreationData struct {
	Author  UserId
	Book    BookId
	Section SectionId
	Body    string
}

type ReplyCreationData struct {
	Author UserId
	Parent CommentId
	Body   string
}

type ReactionCreationData struct {
	Reactor UserId
	Target  CommentId
	Kind    ReactionKind
}
