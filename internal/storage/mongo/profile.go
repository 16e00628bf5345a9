package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shelfmates/shelfmates/shared/domain"
)

func (s *Storage) CreateProfile(p domain.Profile) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	if p.Genres == nil {
		p.Genres = []domain.Genre{}
	}
	_, err := s.profiles().InsertOne(ctx, p)
	return err
}

func (s *Storage) Profile(user domain.UserId) (domain.Profile, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	var p domain.Profile
	err := s.profiles().FindOne(ctx, bson.M{"_id": user}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, err
	}
	return p, true, nil
}

func (s *Storage) UpdateProfile(p domain.Profile) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	if p.Genres == nil {
		p.Genres = []domain.Genre{}
	}
	_, err := s.profiles().ReplaceOne(ctx, bson.M{"_id": p.User}, p)
	return err
}

func (s *Storage) ProfilesByGenres(genres []domain.Genre) ([]domain.Profile, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	sorted := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.profiles().Find(ctx, bson.M{"genres": bson.M{"$in": genres}}, sorted)
	if err != nil {
		return nil, err
	}
	var out []domain.Profile
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
