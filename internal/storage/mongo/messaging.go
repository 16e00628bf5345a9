package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shelfmates/shelfmates/shared/domain"
)

func (s *Storage) CreateMessage(m domain.DirectMessage) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.messages().InsertOne(ctx, m)
	return err
}

func (s *Storage) Message(id domain.MessageId) (domain.DirectMessage, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	var m domain.DirectMessage
	err := s.messages().FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return domain.DirectMessage{}, false, nil
	}
	if err != nil {
		return domain.DirectMessage{}, false, err
	}
	return m, true, nil
}

func (s *Storage) DeleteMessage(id domain.MessageId) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.messages().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *Storage) Conversation(a, b domain.UserId) ([]domain.DirectMessage, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"sender": a, "recipient": b},
		{"sender": b, "recipient": a},
	}}
	sorted := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.messages().Find(ctx, filter, sorted)
	if err != nil {
		return nil, err
	}
	var out []domain.DirectMessage
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
