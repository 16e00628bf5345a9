package domain

import "time"

type Section struct {
	Id    SectionId `json:"id" bson:"id"`
	Title string    `json:"title" bson:"title"`
}

// Book holds the ordered section list. Section order is reading order.
type Book struct {
	Id        BookId    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Author    string    `json:"author" bson:"author"`
	Sections  []Section `json:"sections" bson:"sections"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NextSection returns the section following current in reading order.
// Returns false when current is the last section or not part of the book.
func (b *Book) NextSection(current SectionId) (Section, bool) {
	for i, s := range b.Sections {
		if s.Id == current {
			if i+1 < len(b.Sections) {
				return b.Sections[i+1], true
			}
			return Section{}, false
		}
	}
	return Section{}, false
}

// Progress tracks one reader's position in one book.
// Section is empty once the book is finished.
type Progress struct {
	Id        string    `json:"id" bson:"_id"`
	Reader    UserId    `json:"reader" bson:"reader"`
	Book      BookId    `json:"book" bson:"book"`
	Section   SectionId `json:"section,omitempty" bson:"section,omitempty"`
	Finished  bool      `json:"finished" bson:"finished"`
	StartedAt time.Time `json:"started_at" bson:"started_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type BookCreationData struct {
	Title    string
	Author   string
	Sections []string
}
