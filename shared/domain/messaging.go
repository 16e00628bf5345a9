package domain

import "time"

// DirectMessage is one message between two readers.
type DirectMessage struct {
	Id        MessageId `json:"id" bson:"_id"`
	Sender    UserId    `json:"sender" bson:"sender"`
	Recipient UserId    `json:"recipient" bson:"recipient"`
	Body      string    `json:"body" bson:"body"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type MessageCreationData struct {
	Sender    UserId
	Recipient UserId
	Body      string
}
