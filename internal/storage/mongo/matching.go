package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shelfmates/shelfmates/shared/domain"
)

func (s *Storage) CreateMatch(m domain.Match) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.matches().InsertOne(ctx, m)
	return err
}

func (s *Storage) Match(id domain.MatchId) (domain.Match, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	var m domain.Match
	err := s.matches().FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return domain.Match{}, false, nil
	}
	if err != nil {
		return domain.Match{}, false, err
	}
	return m, true, nil
}

func (s *Storage) ActiveMatchBetween(a, b domain.UserId) (domain.Match, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	filter := bson.M{
		"status": bson.M{"$in": []domain.MatchStatus{domain.MatchPending, domain.MatchAccepted}},
		"$or": []bson.M{
			{"proposer": a, "recipient": b},
			{"proposer": b, "recipient": a},
		},
	}
	var m domain.Match
	err := s.matches().FindOne(ctx, filter).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return domain.Match{}, false, nil
	}
	if err != nil {
		return domain.Match{}, false, err
	}
	return m, true, nil
}

func (s *Storage) UpdateMatch(m domain.Match) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.matches().ReplaceOne(ctx, bson.M{"_id": m.Id}, m)
	return err
}

func (s *Storage) MatchesByUser(user domain.UserId) ([]domain.Match, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	filter := bson.M{"$or": []bson.M{{"proposer": user}, {"recipient": user}}}
	sorted := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.matches().Find(ctx, filter, sorted)
	if err != nil {
		return nil, err
	}
	var out []domain.Match
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
