package service

import (
	"time"

	"github.com/shelfmates/shelfmates/internal/idgen"
	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
)

// MessagingService handles direct messages between readers.
type MessagingService interface {
	Send(data domain.MessageCreationData) (domain.MessageId, error)
	Delete(requestor domain.UserId, id domain.MessageId) error

	Message(id domain.MessageId) (domain.DirectMessage, bool, error)
	Conversation(a, b domain.UserId) ([]domain.DirectMessage, error)
}

type Messaging struct {
	storage   MessagingStorage
	ids       idgen.Generator
	validator BodyValidator
}

type MessagingStorage interface {
	CreateMessage(m domain.DirectMessage) error
	Message(id domain.MessageId) (domain.DirectMessage, bool, error)
	DeleteMessage(id domain.MessageId) error
	// Conversation returns messages in both directions, oldest first.
	Conversation(a, b domain.UserId) ([]domain.DirectMessage, error)
}

func NewMessaging(storage MessagingStorage, ids idgen.Generator, validator BodyValidator) *Messaging {
	return &Messaging{storage, ids, validator}
}

func (s *Messaging) Send(data domain.MessageCreationData) (domain.MessageId, error) {
	if data.Sender == data.Recipient {
		return "", errors.BadRequest("Cannot message yourself")
	}

	body, err := s.validator.Body(data.Body)
	if err != nil {
		return "", err
	}

	message := domain.DirectMessage{
		Id:        s.ids.NewId(),
		Sender:    data.Sender,
		Recipient: data.Recipient,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.storage.CreateMessage(message); err != nil {
		return "", err
	}
	return message.Id, nil
}

// Delete removes a message. Only the sender may delete.
func (s *Messaging) Delete(requestor domain.UserId, id domain.MessageId) error {
	message, found, err := s.storage.Message(id)
	if err != nil {
		return err
	}
	if !found {
		return errors.NotFound("Message not found")
	}
	if message.Sender != requestor {
		return errors.Forbidden("Only the sender can delete a message")
	}
	return s.storage.DeleteMessage(id)
}

func (s *Messaging) Message(id domain.MessageId) (domain.DirectMessage, bool, error) {
	return s.storage.Message(id)
}

func (s *Messaging) Conversation(a, b domain.UserId) ([]domain.DirectMessage, error) {
	return s.storage.Conversation(a, b)
}
